package reconcile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_FetchPerCounty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/per-county", r.URL.Path)
		require.Equal(t, "3d_7d", r.URL.Query().Get("window"))
		require.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"window":"3d_7d","buckets":["3d_7d"],"counties":[{"county":"harris","count":4,"bond_sum":"120.5"}]}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/", time.Second)
	totals, err := client.FetchPerCounty(context.Background(), bucket.Window3dTo7d)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	require.Equal(t, "harris", totals[0].County)
	require.Equal(t, int64(4), totals[0].Count)
	require.Equal(t, "120.5", totals[0].BondSum.String())
}

func TestAPIClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "non-200", status: http.StatusInternalServerError, body: `{"error_type":"internal_error"}`, wantErr: "unexpected status 500"},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: "decode response"},
		{name: "fallback window", status: http.StatusOK, body: `{"window":"24h","counties":[]}`, wantErr: "answered for window"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewAPIClient(srv.URL, time.Second).FetchPerCounty(context.Background(), bucket.Window7d)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
