package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"pet-care-dashboard/internal/adapters/storage/memory"
	"pet-care-dashboard/internal/domain/dashboard"
	"pet-care-dashboard/internal/persist"
	"pet-care-dashboard/internal/platform/metrics"
	"pet-care-dashboard/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	rec := metrics.New()
	adapter := persist.NewAdapter(memory.NewKVStore(), persist.Options{Metrics: rec})
	st := dashboard.New(context.Background(), adapter, dashboard.Options{
		Metrics: rec,
		Now:     func() time.Time { return time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC) },
	})

	ts := httptest.NewServer(router.NewRouter(router.Options{State: st, Metrics: rec}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_Dashboard(t *testing.T) {
	ts := newTestServer(t)

	// 1) Sin datos => NoData
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var s map[string]any
		_ = json.Unmarshal(body, &s)
		if s["overallHealth"] != "NoData" {
			t.Fatalf("expected NoData, got %v", s["overallHealth"])
		}
	}

	// 2) Alta de mascotas
	finoID := createPet(t, ts.URL, map[string]any{"name": "Fino", "breed": "Poodle", "age": 3})
	pamukID := createPet(t, ts.URL, map[string]any{"name": "Pamuk", "breed": "Tekir", "age": 2})

	// 3) Favorita => aparece primero
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+pamukID+"/favorite", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle favorite, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d", st)
		}
		var list []struct {
			ID         int64 `json:"id"`
			IsFavorite bool  `json:"isFavorite"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 2 || strconv.FormatInt(list[0].ID, 10) != pamukID || !list[0].IsFavorite {
			t.Fatalf("expected Pamuk first as favorite, body=%s", string(body))
		}
	}

	// 4) Citas: mayo y después abril => abril primero
	mayID := createAppointment(t, ts.URL, map[string]any{"petId": mustInt(t, finoID), "date": "2024-05-01", "time": "10:00", "type": "veterinary-checkup"})
	_ = createAppointment(t, ts.URL, map[string]any{"petId": mustInt(t, finoID), "date": "2024-04-20", "time": "09:00", "type": "asi", "notes": "kuduz"})
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list appointments, got %d", st)
		}
		var list []struct {
			Date    string `json:"date"`
			Type    string `json:"type"`
			PetName string `json:"petName"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 2 || list[0].Date != "2024-04-20" || list[1].Date != "2024-05-01" {
			t.Fatalf("expected April before May, body=%s", string(body))
		}
		if list[0].Type != "vaccination" || list[0].PetName != "Fino" {
			t.Fatalf("expected normalized type and pet name, body=%s", string(body))
		}
	}

	// 5) Filtros
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments?types=vaccination&q=KUDUZ", nil)
		if st != http.StatusOK || strings.Count(string(body), `"id"`) != 1 {
			t.Fatalf("expected one filtered appointment, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/appointments?types=surgery", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown type filter, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/appointments?from=01-05-2024", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad from, got %d", st)
		}
	}

	// 6) Editar y borrar
	{
		st, body := doReq(t, ts.URL, "PUT", "/appointments/"+mayID, map[string]any{
			"petId": mustInt(t, pamukID), "date": "2024-05-02", "time": "11:00", "type": "grooming",
		})
		if st != http.StatusOK || !strings.Contains(string(body), `"id":`+mayID) {
			t.Fatalf("expected 200 update preserving id, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PUT", "/appointments/1", map[string]any{
			"petId": mustInt(t, pamukID), "date": "2024-05-02", "time": "11:00", "type": "grooming",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 updating unknown appointment, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/appointments/"+mayID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/appointments/"+mayID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 on repeated delete, got %d", st)
		}
	}

	// 7) Salud: sick y después recovering el mismo día => un registro
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+finoID+"/health", map[string]any{"status": "sick", "temperature": 39.5, "weight": 5.1})
		if st != http.StatusOK {
			t.Fatalf("expected 200 upsert, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/pets/"+finoID+"/health", map[string]any{"status": "recovering", "temperature": 38.6, "weight": 5.1})
		if st != http.StatusOK {
			t.Fatalf("expected 200 upsert, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+finoID+"/health", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get health, got %d", st)
		}
		var h struct {
			Latest *struct {
				Status string `json:"status"`
				Date   string `json:"date"`
			} `json:"latest"`
			History []json.RawMessage `json:"history"`
		}
		_ = json.Unmarshal(body, &h)
		if h.Latest == nil || h.Latest.Status != "recovering" || h.Latest.Date != "2024-04-15" || len(h.History) != 1 {
			t.Fatalf("expected single recovering record, body=%s", string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/pets/"+finoID+"/health", map[string]any{"status": "great"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/pets/999/health", map[string]any{"status": "healthy"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown pet, got %d", st)
		}
	}

	// 8) Resumen localizado
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard?lang=tr", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d", st)
		}
		var s struct {
			Pets          int    `json:"pets"`
			Favorites     int    `json:"favorites"`
			Appointments  int    `json:"appointments"`
			OverallHealth string `json:"overallHealth"`
			OverallLabel  string `json:"overallLabel"`
		}
		_ = json.Unmarshal(body, &s)
		if s.Pets != 2 || s.Favorites != 1 || s.Appointments != 1 || s.OverallHealth != "Recovering" || s.OverallLabel != "İyileşiyor" {
			t.Fatalf("unexpected summary: %s", string(body))
		}
	}

	// 9) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "petcare_mutations_total") {
			t.Fatalf("expected metrics, got %d", st)
		}
	}
}

func TestHTTP_Errors(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		method, path string
		body         any
		want         int
	}{
		{"POST", "/pets", map[string]any{"name": " ", "age": 1}, http.StatusBadRequest},
		{"POST", "/pets", map[string]any{"name": "Fino", "age": -2}, http.StatusBadRequest},
		{"GET", "/pets/abc", nil, http.StatusBadRequest},
		{"GET", "/pets/123", nil, http.StatusNotFound},
		{"POST", "/pets/123/favorite", nil, http.StatusNotFound},
		{"GET", "/pets/123/health", nil, http.StatusNotFound},
		{"POST", "/appointments", map[string]any{"petId": 123, "date": "2024-05-01", "time": "10:00", "type": "grooming"}, http.StatusNotFound},
		{"DELETE", "/appointments/xyz", nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
		if st != tc.want {
			t.Fatalf("%s %s: expected %d, got %d body=%s", tc.method, tc.path, tc.want, st, string(body))
		}
	}

	// json inválido
	req, _ := http.NewRequest("POST", ts.URL+"/pets", strings.NewReader("{"))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid json, got %d", res.StatusCode)
	}
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func createAppointment(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/appointments", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func idFrom(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("missing id body=%s", string(body))
	}
	return strconv.FormatInt(resp.ID, 10)
}

func mustInt(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.Fatalf("parse id %q: %v", s, err)
	}
	return n
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
