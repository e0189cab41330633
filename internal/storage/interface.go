package storage

import (
	"context"

	"github.com/mcoot/gamelobby-go/internal/model"
)

// Store defines the interface for the game archive. Records are written
// once, when a game starts, and never modified afterwards. Live session
// state is held in memory by the registry and never passes through here.
type Store interface {
	// SaveRecord archives the record of a started game
	SaveRecord(ctx context.Context, record *model.ArchiveRecord) error

	// GetRecord retrieves an archived game by its code
	GetRecord(ctx context.Context, code model.GameCode) (*model.ArchiveRecord, error)

	// ListRecords returns archived games, most recently started first.
	// A limit of zero or less returns every record.
	ListRecords(ctx context.Context, limit int) ([]*model.ArchiveRecord, error)

	// Close releases any resources held by the store
	Close() error
}
