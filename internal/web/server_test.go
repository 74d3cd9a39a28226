package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	srv := NewServer("", model.NewCatalog(), skin.Default(), zap.NewNop())
	t.Cleanup(func() { _ = srv.Stop() })
	return srv.routes()
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	w := get(t, newTestRouter(t), "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if _, ok := body["uptime"]; !ok {
		t.Error("health response missing uptime")
	}
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("health POST status = %d, want 405 or 404", w.Code)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		wantOpen bool
	}{
		{"", false},
		{"?sidebar=open", true},
		{"?sidebar=closed", false},
		{"?sidebar=OPEN", false},
		{"?sidebar=banana", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			w := get(t, newTestRouter(t), "/api/dashboard"+tt.query)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			var page dashboard.Page
			if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
				t.Fatalf("unmarshal page: %v", err)
			}
			want := dashboard.Compose(model.NewCatalog(), dashboard.ViewState{SidebarOpen: tt.wantOpen})
			if diff := cmp.Diff(want, page, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("page mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_ClosedState(t *testing.T) {
	t.Parallel()

	w := get(t, newTestRouter(t), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}

	body := w.Body.String()
	if strings.Contains(body, `class="overlay"`) {
		t.Error("closed page renders the overlay")
	}
	if !strings.Contains(body, `class="icon-button menu" href="/?sidebar=open"`) {
		t.Error("menu link does not open the sidebar")
	}
	if !strings.Contains(body, `<nav class="sidebar" inert>`) {
		t.Error("closed sidebar is not inert")
	}
	for _, want := range []string{
		"Words Analysis",
		"Top 5 Positive Words",
		"Top 5 Negative Words",
		"Post vs Audience Analysis",
		"User&#39;s Perception Analysis",
		"Navigation",
		"Youtube",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestIndex_OpenState(t *testing.T) {
	t.Parallel()

	body := get(t, newTestRouter(t), "/?sidebar=open").Body.String()
	if !strings.Contains(body, `<a class="overlay" href="/?sidebar=closed"`) {
		t.Error("open page missing an overlay that closes the sidebar")
	}
	if !strings.Contains(body, `<nav class="sidebar open">`) {
		t.Error("sidebar not marked open")
	}
	if !strings.Contains(body, `class="icon-button close" href="/?sidebar=closed"`) {
		t.Error("close link does not close the sidebar")
	}
	if !strings.Contains(body, `class="icon-button menu" href="/?sidebar=closed"`) {
		t.Error("menu link does not toggle the sidebar closed")
	}
}

func TestIndex_OneMarkPerDatum(t *testing.T) {
	t.Parallel()

	body := get(t, newTestRouter(t), "/").Body.String()
	// 3 sentiment + 5 + 5 words + 9 platform bars + 5 perception
	if got := strings.Count(body, `<g class="mark">`); got != 27 {
		t.Fatalf("mark groups = %d, want 27", got)
	}
}

func TestServer_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := NewServer("127.0.0.1:0", model.NewCatalog(), skin.Default(), zap.NewNop())
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + srv.Addr() + "/api/health")
	if err != nil {
		_ = srv.Stop()
		t.Fatalf("GET health: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	client.CloseIdleConnections()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestServer_StopBeforeStart(t *testing.T) {
	t.Parallel()

	srv := NewServer("", model.NewCatalog(), skin.Skin{}, nil)
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop before Start = %v, want nil", err)
	}
	if srv.Addr() != model.DefaultListenAddr {
		t.Fatalf("Addr = %q, want %q", srv.Addr(), model.DefaultListenAddr)
	}
}
