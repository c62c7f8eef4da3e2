package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"

	"pet-care-dashboard/internal/adapters/storage/memory"
	"pet-care-dashboard/internal/domain/dashboard"
	"pet-care-dashboard/internal/persist"
	"pet-care-dashboard/internal/router"
)

// Cada ruta de la API tiene que estar documentada en /swagger/doc.json.
func TestSwaggerDoc_CoversRoutes(t *testing.T) {
	adapter := persist.NewAdapter(memory.NewKVStore(), persist.Options{})
	st := dashboard.New(context.Background(), adapter, dashboard.Options{})

	routes, ok := router.NewRouter(router.Options{State: st}).(chi.Routes)
	if !ok {
		t.Fatalf("router does not expose chi.Routes")
	}

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read swagger doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}

	seen := 0
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger/") || route == "/metrics" {
			return nil
		}
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		seen++
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s missing from swagger doc", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if seen == 0 {
		t.Fatalf("no routes walked")
	}
}
