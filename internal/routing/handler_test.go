package routing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

func newHandlerServer(t *testing.T, client chatClient) (*httptest.Server, *Stats) {
	t.Helper()
	stats := NewStats()
	router := NewRouter(client, stats, "test-model", AgentPrimaryCare, time.Second, logging.New("error"))
	h := NewHandler(router, stats, logging.New("error"))

	r := chi.NewRouter()
	r.Post("/route", h.Route)
	r.Post("/route/batch", h.RouteBatch)
	r.Get("/route/stats", h.Stats)
	r.Delete("/route/stats", h.ResetStats)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, stats
}

func TestHandlerRoute(t *testing.T) {
	srv, stats := newHandlerServer(t, &scriptedClient{replies: []string{"Orthopedic, high confidence."}})

	resp, err := http.Post(srv.URL+"/route", "application/json",
		strings.NewReader(`{"message":"my knee hurts"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var d Decision
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Agent != AgentOrthopedic || d.FallbackUsed {
		t.Errorf("decision = %+v", d)
	}
	if stats.Snapshot().Total != 1 {
		t.Error("decision not recorded")
	}
}

func TestHandlerRouteRejectsEmptyMessage(t *testing.T) {
	srv, _ := newHandlerServer(t, &scriptedClient{replies: []string{"x"}})

	resp, err := http.Post(srv.URL+"/route", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandlerRouteBatch(t *testing.T) {
	srv, _ := newHandlerServer(t, &scriptedClient{replies: []string{"Cardiology, high confidence."}})

	resp, err := http.Post(srv.URL+"/route/batch", "application/json",
		strings.NewReader(`{"messages":["chest pain","palpitations"]}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	var got struct {
		Decisions []Decision `json:"decisions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Decisions) != 2 {
		t.Fatalf("got %d decisions, want 2", len(got.Decisions))
	}
}

func TestHandlerStatsAndReset(t *testing.T) {
	srv, stats := newHandlerServer(t, &scriptedClient{replies: []string{"Cardiology, high confidence."}})
	stats.record(Decision{Agent: AgentCardiology})

	resp, err := http.Get(srv.URL + "/route/stats")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if snap.Total != 1 {
		t.Errorf("snapshot = %+v", snap)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/route/stats", nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", delResp.StatusCode)
	}
	if stats.Snapshot().Total != 0 {
		t.Error("stats not reset")
	}
}
