package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bondwatch-lab/bondwatch/internal/metrics"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	tests := []struct {
		name       string
		checks     map[string]HealthChecker
		wantStatus int
		wantDeps   map[string]interface{}
	}{
		{
			name:       "all healthy",
			checks:     map[string]HealthChecker{"database": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantDeps:   map[string]interface{}{"database": "connected", "redis": "connected"},
		},
		{
			name:       "redis down",
			checks:     map[string]HealthChecker{"database": ok, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			wantDeps:   map[string]interface{}{"database": "connected", "redis": "unreachable"},
		},
		{
			name:       "nil checker skipped",
			checks:     map[string]HealthChecker{"database": ok, "redis": nil},
			wantStatus: http.StatusOK,
			wantDeps:   map[string]interface{}{"database": "connected"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(":0", "release", tc.checks)

			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tc.wantStatus, resp.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, tc.wantDeps, body["dependencies"])
		})
	}
}

func TestMountMetrics(t *testing.T) {
	m := metrics.New()
	m.RecordWindowFallback("top")

	s := New(":0", "release", nil)
	s.MountMetrics(m.Handler())

	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "bondwatch_window_fallback_total")
}
