package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gobend/internal/config"
	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/material"
)

func newServer(cfg config.ServerConfig) *Server {
	return New(engine.New(nil), cfg, zap.NewNop().Sugar())
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const udl = `{
	"section": "rectangular",
	"section_params": {"width": 50, "height": 100},
	"load": "distributed",
	"load_params": {"intensity": 5000},
	"material": {"name": "steel"},
	"span": 3
}`

func TestAnalyze(t *testing.T) {
	h := newServer(config.ServerConfig{}).Router()
	rec := post(t, h, "/api/analyze?profile=11", udl)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 5625, resp.Result.MaxBendingMoment, 1e-9)
	assert.InDelta(t, 67.5, resp.Result.MaxStress, 1e-9)
	assert.Equal(t, engine.Disclaimer, resp.Result.Disclaimer)
	require.NotNil(t, resp.Profile)
	assert.Len(t, resp.Profile.X, 11)
	assert.Equal(t, engine.Assumptions, resp.Assumptions)
}

func TestAnalyzeStatusCodes(t *testing.T) {
	h := newServer(config.ServerConfig{}).Router()
	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"bad json", "/api/analyze", `{"section":`, http.StatusBadRequest},
		{"unknown field", "/api/analyze", `{"sektion": "rectangular"}`, http.StatusBadRequest},
		{"bad profile", "/api/analyze?profile=1", udl, http.StatusBadRequest},
		{"missing height", "/api/analyze", strings.Replace(udl, `, "height": 100`, "", 1), http.StatusUnprocessableEntity},
		{"t-beam", "/api/analyze", strings.Replace(udl, `"rectangular"`, `"t_beam"`, 1), http.StatusUnprocessableEntity},
		{"unknown material", "/api/analyze", strings.Replace(udl, `"steel"`, `"cheese"`, 1), http.StatusUnprocessableEntity},
		{"imperial ok", "/api/analyze", strings.Replace(udl, `"span": 3`, `"span": 120, "units": "imperial"`, 1), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			if tt.want != http.StatusOK {
				var e errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
				assert.NotEmpty(t, e.Error)
			}
		})
	}
}

func TestWriteJSONUnencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"i": math.Inf(1)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "internal error", e.Error)
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	h := newServer(config.ServerConfig{}).Router()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMaterialsAndHealth(t *testing.T) {
	h := newServer(config.ServerConfig{}).Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var mats []material.Properties
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mats))
	require.Len(t, mats, 3)
	assert.Equal(t, "aluminum", mats[0].Name)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRateLimit(t *testing.T) {
	h := newServer(config.ServerConfig{RateLimit: 0.001, Burst: 2}).Router()
	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.9:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLimiterSweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.getLimiter("10.0.0.1")
	now = now.Add(5 * time.Minute)
	l.getLimiter("10.0.0.2")
	require.Equal(t, 2, l.Len())

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, l.Sweep(limiterTTL))
	assert.Equal(t, 1, l.Len())

	// a returning client gets a fresh bucket
	assert.True(t, l.getLimiter("10.0.0.1").Allow())
	assert.Equal(t, 2, l.Len())
}

func TestServeShutdown(t *testing.T) {
	s := newServer(config.ServerConfig{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Post("http://"+ln.Addr().String()+"/api/analyze", "application/json", bytes.NewBufferString(udl))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}
