package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/bondwatch-lab/bondwatch/internal/api/v1"
	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	httperr "github.com/bondwatch-lab/bondwatch/internal/core/errors"
	"github.com/bondwatch-lab/bondwatch/internal/core/fields"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to persist case"
	msgDuplicateCase  = "Case already exists"
	msgCaseNotFound   = "Case not found"
	msgLoadFailed     = "Failed to load case"

	unknownCounty = "unknown"
)

// IngestRequest is the body scrapers post for one raw county record.
// BookedAt and BondAmount override the values derived from Data through the source mapping.
type IngestRequest struct {
	ID         string                 `json:"id"`
	County     string                 `json:"county"`
	Source     string                 `json:"source"`
	FullName   string                 `json:"full_name"`
	BookedAt   string                 `json:"booked_at"`
	BondAmount interface{}            `json:"bond_amount"`
	Data       map[string]interface{} `json:"data"`
}

// CaseView is a stored case as returned to the dashboard, with its freshness badge.
type CaseView struct {
	*v1.Case
	Freshness string `json:"freshness"`
}

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles HTTP POST requests for case ingestion.
func (s *Service) IngestHandler(c *gin.Context) {
	req, payloadSize, err := s.parseRequest(c)
	if err != nil {
		writeError(c, err)
		return
	}

	cs, err := s.buildCase(req)
	if err != nil {
		s.metrics.RecordIngest(s.countyLabel(req.Source), "rejected")
		writeError(c, err)
		return
	}

	slog.Info("[Ingestion] Received case",
		"case_id", cs.ID,
		"county", cs.County,
		"source", cs.Source,
		"time_bucket_v2", cs.TimeBucket,
		"payload_size", payloadSize)

	if err := s.persistCase(c.Request.Context(), cs); err != nil {
		writeError(c, err)
		return
	}

	s.metrics.RecordIngest(cs.County, "accepted")
	c.JSON(http.StatusCreated, gin.H{
		"status":         "accepted",
		"id":             cs.ID,
		"time_bucket_v2": cs.TimeBucket,
		"freshness":      cs.Freshness(),
	})
}

// GetCaseHandler handles GET /v1/cases/:county/:id
func (s *Service) GetCaseHandler(c *gin.Context) {
	county := strings.ToLower(strings.TrimSpace(c.Param("county")))
	id := c.Param("id")

	cs, err := s.store.GetCase(c.Request.Context(), county, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(c, &ingestionError{
				statusCode: http.StatusNotFound,
				errorType:  httperr.HttpNotFoundError,
				message:    msgCaseNotFound,
				details:    map[string]interface{}{"county": county, "id": id},
			})
			return
		}

		slog.Error("[Ingestion] Failed to load case", "error", err, "county", county, "case_id", id)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgLoadFailed,
		})
		return
	}

	c.JSON(http.StatusOK, CaseView{Case: cs, Freshness: cs.Freshness()})
}

// parseRequest reads the raw request body and binds it into an IngestRequest.
// Returns the parsed request and the raw payload size (used for structured logging upstream).
func (s *Service) parseRequest(c *gin.Context) (*IngestRequest, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	req.County = strings.ToLower(strings.TrimSpace(req.County))
	req.Source = strings.TrimSpace(req.Source)
	return &req, len(bodyBytes), nil
}

// countyLabel returns the configured county for a source, or "unknown".
// Request-supplied counties never become metric labels.
func (s *Service) countyLabel(source string) string {
	if src, ok := s.sources.Get(source); ok {
		return src.County
	}
	return unknownCounty
}

// buildCase resolves the source mapping, derives booking time and bond, and assigns the bucket.
func (s *Service) buildCase(req *IngestRequest) (*v1.Case, *ingestionError) {
	src, ok := s.sources.Get(req.Source)
	if !ok {
		slog.Warn("[Ingestion] Unknown source", "source", req.Source, "county", req.County)
		return nil, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpUnknownSourceError,
			message:    "source is not configured",
			details:    map[string]interface{}{"source": req.Source},
		}
	}
	if req.County != "" && req.County != src.County {
		return nil, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpUnknownSourceError,
			message:    "county does not match source",
			details: map[string]interface{}{
				"source":        src.Name,
				"county":        req.County,
				"source_county": src.County,
			},
		}
	}

	now := s.nowFn()
	cs := &v1.Case{
		ID:         strings.TrimSpace(req.ID),
		County:     req.County,
		Source:     src.Name,
		FullName:   strings.TrimSpace(req.FullName),
		IngestedAt: now,
		Data:       req.Data,
	}
	if cs.ID == "" {
		cs.ID = uuid.NewString()
	}

	var derived bool
	if req.BookedAt != "" {
		cs.BookedAt, derived = fields.ParseDate(req.BookedAt)
	} else {
		cs.BookedAt, derived = src.BookedAt(req.Data)
	}
	if !derived {
		return nil, unbucketable(cs, "booking time could not be derived")
	}

	if req.BondAmount != nil {
		cs.BondAmount = fields.ParseBond(req.BondAmount)
	} else {
		cs.BondAmount = src.Bond(req.Data)
	}
	if cs.BondAmount.IsNegative() {
		cs.BondAmount = decimal.Zero
	}

	b, ok := bucket.Classify(cs.BookedAt, now)
	if !ok {
		return nil, unbucketable(cs, "booking time is in the future")
	}
	cs.TimeBucket = b

	if err := cs.Validate(); err != nil {
		slog.Warn("[Ingestion] Case validation failed", "error", err, "case_id", cs.ID)
		return nil, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    err.Error(),
		}
	}
	return cs, nil
}

func unbucketable(cs *v1.Case, reason string) *ingestionError {
	slog.Warn("[Ingestion] Case cannot be bucketed", "case_id", cs.ID, "source", cs.Source, "reason", reason)
	return &ingestionError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpUnbucketableError,
		message:    reason,
		details:    map[string]interface{}{"id": cs.ID, "source": cs.Source},
	}
}

// persistCase saves the case to the backing store.
func (s *Service) persistCase(ctx context.Context, cs *v1.Case) *ingestionError {
	if err := s.store.SaveCase(ctx, cs); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("[Ingestion] Duplicate case rejected", "case_id", cs.ID, "county", cs.County)
			s.metrics.RecordIngest(cs.County, "duplicate")
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateCaseError,
				message:    msgDuplicateCase,
			}
		}

		slog.Error("[Ingestion] Failed to persist case", "error", err, "case_id", cs.ID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
