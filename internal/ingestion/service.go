package ingestion

import (
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	"github.com/bondwatch-lab/bondwatch/internal/metrics"
	"github.com/bondwatch-lab/bondwatch/internal/sources"
	"github.com/gin-gonic/gin"
)

type Service struct {
	sources          *sources.Registry
	store            storage.CaseStore
	metrics          *metrics.Metrics
	maxBodySizeBytes int
	nowFn            func() time.Time
}

// NewService wires case ingestion. m may be nil.
func NewService(reg *sources.Registry, repo storage.CaseStore, m *metrics.Metrics, maxBodySizeMB int) *Service {
	if reg == nil {
		panic("ingestion: source registry must not be nil")
	}
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		sources:          reg,
		store:            repo,
		metrics:          m,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/cases", s.IngestHandler)
	r.GET("/v1/cases/:county/:id", s.GetCaseHandler)
}
