package dispatch

import (
	"sync"

	"github.com/google/uuid"
)

// Env is the ambient per-dispatch store. The scheduler creates one Env
// before extraction begins and discards it after the handler returns;
// middlewares and extractors share it by reference.
//
// Env is safe for concurrent readers. Writes are expected from middleware
// running before the handler, not from competing extraction attempts.
type Env struct {
	id string

	mu     sync.RWMutex
	values map[string]any
}

// NewEnv creates an empty Env with a fresh dispatch ID.
func NewEnv() *Env {
	return &Env{
		id:     uuid.NewString(),
		values: make(map[string]any),
	}
}

// DispatchID returns the unique ID minted for this dispatch. Use it to
// correlate hook callbacks, logs, and handler output for one update.
func (e *Env) DispatchID() string {
	return e.id
}

// Set stores a value under key, replacing any previous value.
func (e *Env) Set(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (e *Env) Get(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.values[key]
	return v, ok
}

// Delete removes key from the store.
func (e *Env) Delete(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.values, key)
}

// Keys returns a snapshot of the stored keys in unspecified order.
func (e *Env) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored values.
func (e *Env) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.values)
}
