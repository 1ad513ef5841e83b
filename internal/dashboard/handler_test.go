package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/bondwatch-lab/bondwatch/internal/api/v1"
	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	httperr "github.com/bondwatch-lab/bondwatch/internal/core/errors"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	storagemocks "github.com/bondwatch-lab/bondwatch/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandlePerCounty(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().AggregateByCounty(mock.Anything, bucket.BucketsForWindow("30d")).
		Return([]storage.CountyTotal{
			{County: "fortbend", Count: 2, BondSum: decimal.NewFromInt(20)},
			{County: "harris", Count: 8, BondSum: decimal.NewFromInt(80)},
		}, nil).
		Once()

	r := newRouter(NewService(store, nil, nil, Options{}))
	resp := doGet(r, "/dashboard/per-county?window=30d")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Window   string   `json:"window"`
		Buckets  []string `json:"buckets"`
		Counties []struct {
			County string `json:"county"`
			Count  int64  `json:"count"`
		} `json:"counties"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "30d", body.Window)
	require.Equal(t, []string{"0_24h", "24_48h", "48_72h", "3d_7d", "7d_30d"}, body.Buckets)
	require.Len(t, body.Counties, 2)
	require.Equal(t, "fortbend", body.Counties[0].County)
}

func TestHandlePerCounty_UnknownWindowStill200(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().AggregateByCounty(mock.Anything, []bucket.Bucket{bucket.Bucket0To24h}).
		Return([]storage.CountyTotal{}, nil).
		Once()

	r := newRouter(NewService(store, nil, nil, Options{}))
	resp := doGet(r, "/dashboard/per-county?window=bogus")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "24h", body["window"])
	require.Equal(t, "bogus", body["requested_window"])
}

func TestHandleTop_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		configure      func(store *storagemocks.CaseStore)
	}{
		{
			name:           "non-numeric limit returns 400",
			query:          "window=24h&limit=ten",
			expectedStatus: http.StatusBadRequest,
			configure:      func(_ *storagemocks.CaseStore) {},
		},
		{
			name:           "zero limit returns 400",
			query:          "window=24h&limit=0",
			expectedStatus: http.StatusBadRequest,
			configure:      func(_ *storagemocks.CaseStore) {},
		},
		{
			name:           "store error returns 500",
			query:          "window=24h",
			expectedStatus: http.StatusInternalServerError,
			configure: func(store *storagemocks.CaseStore) {
				store.EXPECT().TopByBond(mock.Anything, []bucket.Bucket{bucket.Bucket0To24h}, 10).
					Return(nil, fmt.Errorf("db failure")).
					Once()
			},
		},
		{
			name:           "valid request returns 200",
			query:          "window=72h&limit=3",
			expectedStatus: http.StatusOK,
			configure: func(store *storagemocks.CaseStore) {
				store.EXPECT().TopByBond(mock.Anything, []bucket.Bucket{bucket.Bucket48To72h}, 3).
					Return([]*v1.Case{{ID: "x", County: "harris", TimeBucket: bucket.Bucket48To72h}}, nil).
					Once()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewCaseStore(t)
			tc.configure(store)

			r := newRouter(NewService(store, nil, nil, Options{}))
			resp := doGet(r, "/dashboard/top?"+tc.query)
			require.Equal(t, tc.expectedStatus, resp.Code)

			if tc.expectedStatus == http.StatusBadRequest {
				var errResp httperr.ErrorResponse
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
				require.Equal(t, httperr.HttpInvalidQueryError, errResp.ErrorType)
			}
		})
	}
}

func TestHandleKPIs(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().CountByCountyBucket(mock.Anything).Return(sampleTotals(), nil).Once()

	r := newRouter(NewService(store, nil, nil, Options{}))
	resp := doGet(r, "/dashboard/kpis")
	require.Equal(t, http.StatusOK, resp.Code)

	var body KPIResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Windows, 5)
	require.Equal(t, bucket.Window24h, body.Windows[0].Window)
	require.Equal(t, int64(10), body.Windows[0].Count)
}

func TestHandlePerCounty_NoCacheHeaderSkipsCache(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().AggregateByCounty(mock.Anything, bucket.BucketsForWindow("24h")).
		Return([]storage.CountyTotal{{County: "harris", Count: 1, BondSum: decimal.NewFromInt(10)}}, nil).
		Twice()

	r := newRouter(NewService(store, newFakeCache(), nil, Options{CacheTTL: time.Minute}))

	require.Equal(t, http.StatusOK, doGet(r, "/dashboard/per-county?window=24h").Code)
	require.Equal(t, http.StatusOK, doGet(r, "/dashboard/per-county?window=24h").Code)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/per-county?window=24h", nil)
	req.Header.Set("Cache-Control", "no-cache")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
}
