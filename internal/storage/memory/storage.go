package memory

import (
	"context"
	"sync"

	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/storage"
)

// Storage is an in-memory implementation of the archive store
type Storage struct {
	mu sync.RWMutex

	records map[model.GameCode]*model.ArchiveRecord
	order   []model.GameCode // codes in save order, oldest first
}

// New creates a new in-memory archive store
func New() *Storage {
	return &Storage{
		records: make(map[model.GameCode]*model.ArchiveRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SaveRecord(ctx context.Context, record *model.ArchiveRecord) error {
	stored := *record
	stored.Players = make([]model.Player, len(record.Players))
	copy(stored.Players, record.Players)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[stored.GameCode]; !exists {
		s.order = append(s.order, stored.GameCode)
	}
	s.records[stored.GameCode] = &stored
	return nil
}

func (s *Storage) GetRecord(ctx context.Context, code model.GameCode) (*model.ArchiveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[code]
	if !ok {
		return nil, model.ErrArchiveNotFound
	}
	return record, nil
}

func (s *Storage) ListRecords(ctx context.Context, limit int) ([]*model.ArchiveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := len(s.order)
	if limit > 0 && limit < count {
		count = limit
	}

	records := make([]*model.ArchiveRecord, 0, count)
	for i := len(s.order) - 1; i >= 0 && len(records) < count; i-- {
		records = append(records, s.records[s.order[i]])
	}
	return records, nil
}

func (s *Storage) Close() error {
	return nil
}
