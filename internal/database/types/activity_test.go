package types_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestTruncateContent(t *testing.T) {
	t.Parallel()

	short := "куратор, помогите"
	assert.Equal(t, short, types.TruncateContent(short))

	long := strings.Repeat("помощь ", 400)
	truncated := types.TruncateContent(long)

	assert.Equal(t, types.MaxActivityContentLength, utf8.RuneCountInString(truncated))
	// Never split a multi-byte character.
	assert.True(t, utf8.ValidString(truncated))
	assert.True(t, strings.HasPrefix(long, truncated))
}
