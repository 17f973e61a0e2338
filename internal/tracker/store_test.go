package tracker_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
)

// fakeStore is an in-memory TrackingStore enforcing the same structural
// guards as the Postgres model: one open record per mention id, close
// exactly once.
type fakeStore struct {
	mu      sync.Mutex
	nextID  uint64
	records map[uint64]*types.MentionTracking
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uint64]*types.MentionTracking)}
}

func (s *fakeStore) Create(_ context.Context, tracking *types.MentionTracking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.MentionMessageID == tracking.MentionMessageID && existing.IsOpen() {
			return types.ErrTrackingExists
		}
	}

	s.nextID++
	tracking.ID = s.nextID

	stored := *tracking
	s.records[tracking.ID] = &stored

	return nil
}

func (s *fakeStore) GetOpenByMention(_ context.Context, mentionMessageID uint64) (*types.MentionTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.MentionMessageID == mentionMessageID && record.IsOpen() {
			copied := *record
			return &copied, nil
		}
	}

	return nil, types.ErrTrackingNotFound
}

func (s *fakeStore) Close(
	_ context.Context, id uint64, curatorID uint64, responseMessageID *uint64,
	responseTimestamp time.Time, kind enum.ResponseKind, responseTimeSeconds int64,
) (*types.MentionTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[id]
	if !exists {
		return nil, types.ErrTrackingNotFound
	}

	if !record.IsOpen() {
		return nil, types.ErrTrackingClosed
	}

	record.CuratorID = &curatorID
	record.ResponseMessageID = responseMessageID
	record.ResponseTimestamp = &responseTimestamp
	record.ResponseKind = kind
	record.ResponseTimeSeconds = &responseTimeSeconds

	copied := *record

	return &copied, nil
}

func (s *fakeStore) ListUnresponded(_ context.Context) ([]*types.MentionTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var open []*types.MentionTracking

	for _, record := range s.records {
		if record.IsOpen() {
			copied := *record
			open = append(open, &copied)
		}
	}

	sort.Slice(open, func(i, j int) bool {
		return open[i].MentionTimestamp.Before(open[j].MentionTimestamp)
	})

	return open, nil
}
