package kv

import (
	"context"
	"errors"
)

// ErrNotFound indica que la key no existe en el store.
var ErrNotFound = errors.New("kv: key not found")

// Store es un key-value store de blobs con nombre (el "localStorage" del dashboard).
// Los valores son opacos para el store; el adapter de persistencia los serializa como JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
