package memory

import (
	"context"
	"errors"
	"testing"

	"pet-care-dashboard/internal/ports/kv"
)

func TestKVStore_Get_MissingKey(t *testing.T) {
	s := NewKVStore()

	_, err := s.Get(context.Background(), "pets")
	if !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
}

func TestKVStore_SetGet_RoundTrip_AndOverwrite(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	if err := s.Set(ctx, "pets", []byte(`[1]`)); err != nil {
		t.Fatalf("Set #1: %v", err)
	}
	if err := s.Set(ctx, "pets", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Set #2: %v", err)
	}

	got, err := s.Get(ctx, "pets")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Fatalf("expected last value, got %s", got)
	}
}

func TestKVStore_Get_ReturnsCopy(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	in := []byte(`[]`)
	_ = s.Set(ctx, "appointments", in)
	in[0] = 'x'

	got, _ := s.Get(ctx, "appointments")
	got[1] = 'x'

	again, _ := s.Get(ctx, "appointments")
	if string(again) != `[]` {
		t.Fatalf("stored value was mutated: %s", again)
	}
}

func TestKVStore_Set_RejectsEmptyKey(t *testing.T) {
	s := NewKVStore()
	if err := s.Set(context.Background(), "  ", []byte(`[]`)); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if len(s.keys()) != 0 {
		t.Fatalf("expected no keys, got %v", s.keys())
	}
}
