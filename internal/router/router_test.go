package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-care-tracker/internal/adapters/storage/memory"
	"pet-care-tracker/internal/domain/tracker"
	"pet-care-tracker/internal/platform/metrics"
	"pet-care-tracker/internal/router"
)

func TestHTTP_EndToEnd_TwoPetsAndPersistence(t *testing.T) {
	kv := memory.NewKV()
	m := metrics.New()
	store := tracker.NewStore(tracker.WithPersister(kv), tracker.WithMetrics(m))

	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store, Metrics: m}))
	defer ts.Close()

	// 1) Dos mascotas; la última agregada queda como actual
	createPet(t, ts.URL, "milo", "dog")
	createPet(t, ts.URL, "nina", "cat")

	// 2) Vacuna para nina
	{
		st, body := doReq(t, ts.URL, "POST", "/current/vaccines", map[string]any{
			"name": "Triple felina", "date": "2024-01-10", "next_date": "2099-01-10",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add vaccine, got %d body=%s", st, string(body))
		}
	}

	// 3) Cambiar a milo: no ve la vacuna de nina
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/current", map[string]any{"pet_id": "milo"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set current, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/current/vaccines", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list vaccines, got %d", st)
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("decode vaccines: %v body=%s", err, string(body))
		}
		if len(items) != 0 {
			t.Fatalf("expected no vaccines for milo, got %d", len(items))
		}
	}

	// 4) Pesos de milo en cualquier orden
	for _, w := range []map[string]any{
		{"date": "2024-03-01", "weight": 6.2},
		{"date": "2024-01-01", "weight": 5.0},
	} {
		st, body := doReq(t, ts.URL, "POST", "/current/weights", w)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add weight, got %d body=%s", st, string(body))
		}
	}

	// 5) El peso de milo se deriva del último registro
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/current", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 current pet, got %d", st)
		}
		var p struct {
			ID     string   `json:"id"`
			Weight *float64 `json:"weight"`
		}
		if err := json.Unmarshal(body, &p); err != nil {
			t.Fatalf("decode pet: %v", err)
		}
		if p.ID != "milo" || p.Weight == nil || *p.Weight != 6.2 {
			t.Fatalf("expected milo with weight 6.2, got %s", string(body))
		}
	}

	// 6) El estado sobrevive en el KV: un store nuevo lo rehidrata
	{
		restored := tracker.NewStore(tracker.WithPersister(kv))
		restored.Hydrate(t.Context())
		if got := restored.CurrentPetID(); got != "milo" {
			t.Fatalf("expected current pet milo after hydrate, got %q", got)
		}
		if got := len(restored.CurrentWeightHistory()); got != 2 {
			t.Fatalf("expected 2 weights after hydrate, got %d", got)
		}
	}

	// 7) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), `petcare_store_actions_total{action="add_weight_record",outcome="inserted"} 2`) {
			t.Fatalf("expected weight counter in metrics, got:\n%s", string(body))
		}
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	if !strings.Contains(string(body), "/current/weights/summary") {
		t.Fatalf("swagger doc missing weight summary route")
	}
}

func createPet(t *testing.T, baseURL, id, species string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", map[string]any{
		"id":         id,
		"name":       strings.ToUpper(id[:1]) + id[1:],
		"species":    species,
		"birth_date": "2021-04-02",
		"owner": map[string]any{
			"name":  "Ana Gómez",
			"phone": "+54 11 4444 5555",
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}
