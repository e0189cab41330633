package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/storage"
)

// Storage is a Redis-backed implementation of the archive store
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis archive store
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis archive store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SaveRecord(ctx context.Context, record *model.ArchiveRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Pipeline the record write and the recency index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, recordKey(record.GameCode), data, s.cfg.RecordTTL)
	pipe.ZAdd(ctx, recordsByStartKey(), redis.Z{
		Score:  float64(record.StartedAt.UnixNano()),
		Member: string(record.GameCode),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRecord(ctx context.Context, code model.GameCode) (*model.ArchiveRecord, error) {
	data, err := s.client.Get(ctx, recordKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrArchiveNotFound
		}
		return nil, err
	}

	var record model.ArchiveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) ListRecords(ctx context.Context, limit int) ([]*model.ArchiveRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	codes, err := s.client.ZRevRange(ctx, recordsByStartKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return []*model.ArchiveRecord{}, nil
	}

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = recordKey(model.GameCode(code))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.ArchiveRecord, 0, len(values))
	for _, value := range values {
		// Index entries outlive expired records; skip the gaps
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var record model.ArchiveRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}
