// Package storage is the durable key/value cache behind the catalog.
// Values are stored as JSON documents under string keys.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// Keys used by the catalog.
const (
	KeyGames = "games"
	KeyTags  = "tags"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("storage: key not found")

// Store persists JSON-serializable values by key.
type Store interface {
	// Load decodes the value stored under key into dst.
	Load(ctx context.Context, key string, dst any) error
	// Save encodes value and stores it under key, replacing any previous value.
	Save(ctx context.Context, key string, value any) error
	Close() error
}

// LoadOrDefault reads key from s and falls back to def when the value is
// absent, unreadable or has the wrong shape. It never fails.
func LoadOrDefault[T any](ctx context.Context, s Store, key string, def T) T {
	var v T
	if err := s.Load(ctx, key, &v); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Warning: discarding stored %q: %v", key, err)
		}
		return def
	}
	return v
}

func decode(key string, payload []byte, dst any) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		return &DecodeError{Key: key, Err: err}
	}
	return nil
}

// DecodeError reports a stored payload that could not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string { return "storage: decode " + e.Key + ": " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
