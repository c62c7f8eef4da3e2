package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-dashboard/internal/ports/kv"
)

var errEmptyKey = errors.New("memory: empty key")

// KVStore guarda los blobs en memoria. Útil en dev y tests; se pierde al cerrar el proceso.
type KVStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewKVStore() *KVStore {
	return &KVStore{
		byKey: make(map[string][]byte),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	// copia para que el caller no mute el estado interno
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.byKey[key] = cp
	return nil
}

// keys devuelve las keys ordenadas.
func (s *KVStore) keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var _ kv.Store = (*KVStore)(nil)
