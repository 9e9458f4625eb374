package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/danmuck/craftctl/internal/server"
	"github.com/danmuck/craftctl/internal/testutil/testlog"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := server.NewService(server.DefaultConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return Router(svc, nil)
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	testlog.Start(t)
	rec := get(t, newTestRouter(t), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "craftctl" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestStatusEndpoint(t *testing.T) {
	testlog.Start(t)
	rec := get(t, newTestRouter(t), "/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		ListenAddr string `json:"listen_addr"`
		Protocol   int32  `json:"protocol"`
		Version    string `json:"version"`
		MaxPlayers int    `json:"max_players"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Protocol != 767 || body.Version != "1.21.1" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.ListenAddr != "127.0.0.1:25565" || body.MaxPlayers != 100 {
		t.Fatalf("unexpected defaults: %+v", body)
	}
}

func TestRegistriesEndpoint(t *testing.T) {
	testlog.Start(t)
	rec := get(t, newTestRouter(t), "/registries")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		Registries []struct {
			Name    string `json:"name"`
			Entries int    `json:"entries"`
		} `json:"registries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Registries) != 11 {
		t.Fatalf("expected 11 registries, got %d", len(body.Registries))
	}
	if body.Registries[0].Name != "minecraft:worldgen/biome" {
		t.Fatalf("first registry %q", body.Registries[0].Name)
	}
	for _, r := range body.Registries {
		if r.Entries == 0 {
			t.Fatalf("registry %s is empty", r.Name)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	testlog.Start(t)
	rec := get(t, newTestRouter(t), "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("metrics body empty")
	}
}
