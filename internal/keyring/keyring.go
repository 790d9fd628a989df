// Package keyring rotates requests across a fixed pool of provider API keys.
package keyring

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	// ErrEmptyPool is returned when the pool has no usable keys.
	ErrEmptyPool = errors.New("api key pool is empty")
	// ErrIndexOutOfRange is returned by Key for an index outside the pool.
	ErrIndexOutOfRange = errors.New("api key index out of range")
)

// Rotator hands out keys from the pool round-robin. It is safe for concurrent use.
type Rotator struct {
	keys   []string
	cursor atomic.Uint64
}

// New creates a rotator over the given keys. The pool is copied and never changes afterwards.
func New(keys []string) (*Rotator, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyPool
	}

	pool := make([]string, len(keys))
	for i, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: key %d is blank", ErrEmptyPool, i)
		}
		pool[i] = key
	}

	return &Rotator{keys: pool}, nil
}

// Next returns the next key in the cycle.
func (r *Rotator) Next() string {
	n := r.cursor.Add(1) - 1
	return r.keys[n%uint64(len(r.keys))]
}

// Size returns the number of keys in the pool.
func (r *Rotator) Size() int {
	return len(r.keys)
}

// Key returns the key at the given index without advancing the cursor.
func (r *Rotator) Key(idx int) (string, error) {
	if idx < 0 || idx >= len(r.keys) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}

	return r.keys[idx], nil
}
