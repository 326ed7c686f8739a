package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/domain/entity/entitytest"
	"github.com/orb3-protocol/l2beat/internal/domain/stage"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/registry"
	"github.com/orb3-protocol/l2beat/internal/pkg/logger"
)

type RouterSuite struct {
	suite.Suite
	registry *registry.MemoryRegistry
	router   *gin.Engine
}

func (s *RouterSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *RouterSuite) SetupTest() {
	s.registry = registry.NewMemoryRegistry(logger.NewNopAdapter())
	for _, r := range []*entity.ProjectRecord{
		entitytest.Record("vesper", "Vesper"),
		entitytest.Record("lumen", "Lumen"),
		entitytest.Record("aurora", "Aurora"),
	} {
		if r.ID == "aurora" {
			r.Display.Category = entity.CategoryZKRollup
			r.Display.Purposes = []string{"Exchange"}
		}
		r.Stage.StageResult = stage.GetStage(r.Stage.Criteria, r.Stage.Context)
		s.Require().NoError(s.registry.Register(r))
	}
	handler := NewProjectHandler(s.registry, time.Minute, logger.NewNopAdapter())
	s.router = SetupRouter(handler, RouterOptions{})
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decodeList(w *httptest.ResponseRecorder) []string {
	var resp APIProjectListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(len(resp.Data.Projects), resp.Count)
	ids := make([]string, 0, len(resp.Data.Projects))
	for _, p := range resp.Data.Projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *RouterSuite) TestListProjects() {
	w := s.get("/api/v1/projects")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal([]string{"vesper", "lumen", "aurora"}, s.decodeList(w))

	s.Equal([]string{"aurora", "lumen", "vesper"}, s.decodeList(s.get("/api/v1/projects?sort=name")))
	s.Equal([]string{"aurora"}, s.decodeList(s.get("/api/v1/projects?category=ZK%20Rollup")))
	s.Equal([]string{"vesper", "lumen"}, s.decodeList(s.get("/api/v1/projects?purpose=Universal")))
	s.Empty(s.decodeList(s.get("/api/v1/projects?purpose=Gaming")))
}

func (s *RouterSuite) TestListProjectsBadSort() {
	w := s.get("/api/v1/projects?sort=tvl")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "unknown sort key")
}

func (s *RouterSuite) TestGetProject() {
	w := s.get("/api/v1/projects/lumen")
	s.Require().Equal(http.StatusOK, w.Code)

	var record entity.ProjectRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &record))
	want, err := s.registry.Get("lumen")
	s.Require().NoError(err)
	s.Equal(*want, record)
}

func (s *RouterSuite) TestGetProjectNotFound() {
	w := s.get("/api/v1/projects/nope")
	s.Equal(http.StatusNotFound, w.Code)

	var resp APIErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Contains(resp.Error, "project not found")

	s.Equal(http.StatusNotFound, s.get("/api/v1/projects/nope/stage").Code)
}

func (s *RouterSuite) TestGetProjectStage() {
	w := s.get("/api/v1/projects/vesper/stage")
	s.Require().Equal(http.StatusOK, w.Code)

	var classification entity.StageClassification
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &classification))
	s.Equal(entity.Stage1, classification.Stage)
	s.Equal(1, classification.Tier)
	s.Equal(entity.CriterionSatisfied, classification.Criteria.Stage1.UsersHave7DaysToExit)
}

func (s *RouterSuite) TestResponsesAreCached() {
	first := s.get("/api/v1/projects").Body.String()

	late := entitytest.Record("zephyr", "Zephyr")
	late.Stage.StageResult = stage.GetStage(late.Stage.Criteria, late.Stage.Context)
	s.Require().NoError(s.registry.Register(late))

	s.Equal(first, s.get("/api/v1/projects").Body.String())

	uncached := SetupRouter(NewProjectHandler(s.registry, time.Minute, logger.NewNopAdapter()), RouterOptions{})
	w := httptest.NewRecorder()
	uncached.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(s.decodeList(w), "zephyr")
}

func (s *RouterSuite) TestHealthAndMetrics() {
	w := s.get("/healthz")
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok","projects":3}`, w.Body.String())

	s.get("/api/v1/projects")
	s.Equal(http.StatusOK, s.get("/metrics").Code)
}

func (s *RouterSuite) TestSwaggerDisabledByDefault() {
	s.Equal(http.StatusNotFound, s.get("/swagger/index.html").Code)
}
