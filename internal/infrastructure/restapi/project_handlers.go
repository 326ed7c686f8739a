package restapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const contentTypeJSON = "application/json; charset=utf-8"

// APIProjectListResponse is the body of GET /projects.
type APIProjectListResponse struct {
	Data struct {
		Projects []entity.ProjectSummary `json:"projects"`
	} `json:"data"`
	Count int `json:"count"`
}

// APIErrorResponse is returned with every non-2xx status.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// ProjectHandler serves the read-only project catalog. Encoded responses are
// cached; the registry does not change after startup.
type ProjectHandler struct {
	registry port.ProjectRegistry
	cache    *cache.Cache
	logger   port.Logger
}

// NewProjectHandler creates a new ProjectHandler. ttl <= 0 keeps cached
// responses forever.
func NewProjectHandler(registry port.ProjectRegistry, ttl time.Duration, l port.Logger) *ProjectHandler {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &ProjectHandler{
		registry: registry,
		cache:    cache.New(ttl, 10*time.Minute),
		logger:   l,
	}
}

func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, APIErrorResponse{Error: err.Error()})
}

// cached writes the response stored under key, or encodes build() and stores it.
func (h *ProjectHandler) cached(c *gin.Context, key string, build func() (any, error)) {
	if body, found := h.cache.Get(key); found {
		metrics.APICacheHits.WithLabelValues("hit").Inc()
		c.Data(http.StatusOK, contentTypeJSON, body.([]byte))
		return
	}
	metrics.APICacheHits.WithLabelValues("miss").Inc()

	v, err := build()
	if errors.Is(err, entity.ErrNotFound) {
		abortWithError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		h.logger.Error("Failed to build API response", "path", c.Request.URL.Path, "error", err)
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode API response", "path", c.Request.URL.Path, "error", err)
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	h.cache.Set(key, body, cache.DefaultExpiration)
	c.Data(http.StatusOK, contentTypeJSON, body)
}

// ListProjectsHandler handles GET /api/v1/projects?category=&purpose=&sort=.
func (h *ProjectHandler) ListProjectsHandler(c *gin.Context) {
	sortKey, err := entity.ParseSortKey(c.Query("sort"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	filter := entity.ListFilter{
		Category: c.Query("category"),
		Purpose:  c.Query("purpose"),
		SortBy:   sortKey,
	}

	key := "list|" + filter.Category + "|" + filter.Purpose + "|" + string(filter.SortBy)
	h.cached(c, key, func() (any, error) {
		var resp APIProjectListResponse
		resp.Data.Projects = []entity.ProjectSummary{}
		for record := range h.registry.List(filter) {
			resp.Data.Projects = append(resp.Data.Projects, record.Summary())
		}
		resp.Count = len(resp.Data.Projects)
		return resp, nil
	})
}

// GetProjectHandler handles GET /api/v1/projects/:id.
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	id := c.Param("id")
	h.cached(c, "project|"+id, func() (any, error) {
		return h.registry.Get(id)
	})
}

// GetProjectStageHandler handles GET /api/v1/projects/:id/stage.
func (h *ProjectHandler) GetProjectStageHandler(c *gin.Context) {
	id := c.Param("id")
	h.cached(c, "stage|"+id, func() (any, error) {
		record, err := h.registry.Get(id)
		if err != nil {
			return nil, err
		}
		return record.Stage, nil
	})
}

// HealthHandler handles GET /healthz.
func (h *ProjectHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "projects": h.registry.Len()})
}
