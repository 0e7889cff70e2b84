// Package store persists high scores, the leaderboard and settings as
// opaque blobs in a string-keyed store.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

// ErrNotFound is returned by Load for a key that was never saved.
var ErrNotFound = errors.New("key not found")

// KV is a string-keyed blob store.
type KV interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// storeObject groups every key under one gdata object.
const storeObject = "pixelshooter"

// GdataKV keeps blobs in the per-user data directory managed by gdata.
type GdataKV struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata store for appName.
func OpenGdata(appName string) (*GdataKV, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir for %q: %w", appName, err)
	}
	return &GdataKV{m: m}, nil
}

// Load reads a blob. Missing keys yield ErrNotFound.
func (g *GdataKV) Load(key string) ([]byte, error) {
	if !g.m.ObjectPropExists(storeObject, key) {
		return nil, ErrNotFound
	}
	data, err := g.m.LoadObjectProp(storeObject, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return data, nil
}

// Save writes a blob, replacing any previous value.
func (g *GdataKV) Save(key string, data []byte) error {
	if err := g.m.SaveObjectProp(storeObject, key, data); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// OpenOrMemory opens the gdata store for appName and falls back to an
// in-memory store, logging why, when the data dir is unavailable.
func OpenOrMemory(appName string, logger *log.Logger) KV {
	kv, err := OpenGdata(appName)
	if err != nil {
		if logger != nil {
			logger.Warn("Scores will not persist", "err", err)
		}
		return NewMemoryKV()
	}
	return kv
}

// MemoryKV is an in-process KV used when no data dir is available and in
// tests. Safe for concurrent use.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryKV) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}
