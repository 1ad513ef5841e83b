package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	httperr "github.com/bondwatch-lab/bondwatch/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the dashboard read routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/dashboard")
	g.GET("/kpis", s.HandleKPIs)
	g.GET("/per-county", s.HandlePerCounty)
	g.GET("/top", s.HandleTop)
}

// requestContext honors "Cache-Control: no-cache" by skipping the response cache.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if strings.Contains(strings.ToLower(c.GetHeader("Cache-Control")), "no-cache") {
		return WithoutCache(ctx)
	}
	return ctx
}

// HandleKPIs handles GET /dashboard/kpis
func (s *Service) HandleKPIs(c *gin.Context) {
	resp, err := s.KPIs(requestContext(c))
	if err != nil {
		writeQueryError(c, err, "Failed to load KPIs")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePerCounty handles GET /dashboard/per-county?window=24h
func (s *Service) HandlePerCounty(c *gin.Context) {
	resp, err := s.PerCounty(requestContext(c), c.Query("window"))
	if err != nil {
		writeQueryError(c, err, "Failed to load per-county totals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleTop handles GET /dashboard/top?window=24h&limit=10
func (s *Service) HandleTop(c *gin.Context) {
	limit := 0
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "limit must be a positive integer",
				Details:   map[string]interface{}{"limit": raw},
			})
			return
		}
		limit = n
	}

	resp, err := s.Top(requestContext(c), c.Query("window"), limit)
	if err != nil {
		writeQueryError(c, err, "Failed to load top cases")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeQueryError(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid dashboard query",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   msg,
		Details:   err.Error(),
	})
}
