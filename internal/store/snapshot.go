package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrSnapshotNotAvailable is returned when no key-value client is
	// configured; the store then runs memory-only.
	ErrSnapshotNotAvailable = errors.New("snapshot store not available")

	// ErrSnapshotNotFound is returned when the snapshot key is absent.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Snapshot persists the serialized user collection under a single
// string key. A nil client degrades gracefully: loads miss, saves are
// no-ops, and the store keeps working from memory.
type Snapshot struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewSnapshot creates a snapshot helper over the given client, which
// may be nil.
func NewSnapshot(client *redis.Client, key string, logger *slog.Logger) *Snapshot {
	return &Snapshot{
		client: client,
		key:    key,
		logger: logger,
	}
}

// Load reads the raw snapshot blob. A malformed value is the caller's
// problem; absence is reported as ErrSnapshotNotFound.
func (s *Snapshot) Load(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", ErrSnapshotNotAvailable
	}

	data, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", ErrSnapshotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load snapshot: %w", err)
	}

	return data, nil
}

// Save writes the serialized collection. The snapshot never expires;
// it is the durable copy of record.
func (s *Snapshot) Save(ctx context.Context, data string) error {
	if s.client == nil {
		return ErrSnapshotNotAvailable
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// SafeSave saves and logs instead of failing; a lost write costs at
// most the delta since the previous snapshot, recovered on reload.
func (s *Snapshot) SafeSave(ctx context.Context, data string) {
	if err := s.Save(ctx, data); err != nil && !errors.Is(err, ErrSnapshotNotAvailable) {
		s.logger.Warn("Failed to persist user snapshot", "error", err)
	}
}

// Ping checks the key-value connection.
func (s *Snapshot) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrSnapshotNotAvailable
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.client.Ping(ctx).Err()
}
