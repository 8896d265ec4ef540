// Package kvstore is the durable key-value slot the repositories persist to.
// Values are whole JSON documents; every write replaces the previous value.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Keys used by the repositories.
const (
	KeyDeletedProjects = "sitetrack:deleted_projects"
	KeyClients         = "sitetrack:clients"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is implemented by RedisStore and SQLStore.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

// LoadJSON decodes key into dst. A missing key, a read failure or corrupt JSON
// all leave dst untouched; failures are logged, never returned. A value that
// only partly decodes counts as corrupt.
func LoadJSON[T any](ctx context.Context, s Store, key string, dst *T) {
	b, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("kvstore: read failed, treating as empty")
		}
		return
	}
	if len(b) == 0 {
		return
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("kvstore: corrupt value, treating as empty")
		return
	}
	*dst = v
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(ctx context.Context, s Store, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
