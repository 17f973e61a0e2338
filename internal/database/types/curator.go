package types

import (
	"errors"
	"time"

	"github.com/sparkred/curatord/internal/database/types/enum"
)

var ErrCuratorNotFound = errors.New("curator not found")

// Curator represents a moderator account whose response activity is tracked.
// Curators are created by an administrator and deactivated on removal,
// never hard-deleted.
type Curator struct {
	ID        uint64           `bun:",pk,autoincrement"     json:"id"`
	DiscordID uint64           `bun:",notnull,unique"       json:"discordId"`
	Name      string           `bun:",notnull"              json:"name"`
	Factions  []string         `bun:",array"                json:"factions"`
	Kind      enum.CuratorKind `bun:",notnull"              json:"kind"`
	IsActive  bool             `bun:",notnull,default:true" json:"isActive"`
	CreatedAt time.Time        `bun:",notnull"              json:"createdAt"`
}
