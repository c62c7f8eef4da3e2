package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pet-care-dashboard/internal/ports/kv"
)

// KVStore guarda cada key como <root>/<key>.json.
// Es el equivalente local del localStorage del navegador: un archivo por colección.
type KVStore struct {
	mu   sync.Mutex
	root string
}

// New crea el directorio si no existe.
func New(root string) (*KVStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("file: data dir required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("file: create data dir: %w", err)
	}
	return &KVStore{root: root}, nil
}

// Root devuelve el directorio de datos.
func (s *KVStore) Root() string {
	return s.root
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("file: read %s: %w", key, err)
	}
	return b, nil
}

// Set escribe a un temp file y hace rename, así un crash nunca deja JSON a medias.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.root, ".tmp-"+key+"-*")
	if err != nil {
		return fmt.Errorf("file: create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file: write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file: sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file: close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("file: rename %s: %w", key, err)
	}
	return nil
}

// pathFor valida que la key no se escape del root.
func (s *KVStore) pathFor(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("file: empty key")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("file: invalid key %q", key)
	}
	return filepath.Join(s.root, key+".json"), nil
}

var _ kv.Store = (*KVStore)(nil)
