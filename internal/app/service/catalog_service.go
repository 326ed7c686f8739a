package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/pkg/metrics"
)

// FailurePolicy decides what happens when a single project fails to build.
type FailurePolicy string

const (
	// FailureSkip drops the failed project and keeps building the rest.
	FailureSkip FailurePolicy = "skip"
	// FailureAbort stops the whole build on the first failure.
	FailureAbort FailurePolicy = "abort"
)

// ParseFailurePolicy accepts "skip" and "abort"; empty means skip.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(s); p {
	case "":
		return FailureSkip, nil
	case FailureSkip, FailureAbort:
		return p, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q", s)
	}
}

// CatalogService builds every configured project and fills the registry.
type CatalogService struct {
	definitions   []port.ProjectDefinition
	source        port.DiscoverySource
	builder       port.RecordBuilder
	registry      port.ProjectRegistry
	logger        port.Logger
	maxConcurrent int
	policy        FailurePolicy
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(
	defs []port.ProjectDefinition,
	source port.DiscoverySource,
	builder port.RecordBuilder,
	registry port.ProjectRegistry,
	l port.Logger,
	maxConcurrent int,
	policy FailurePolicy,
) *CatalogService {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &CatalogService{
		definitions:   defs,
		source:        source,
		builder:       builder,
		registry:      registry,
		logger:        l,
		maxConcurrent: maxConcurrent,
		policy:        policy,
	}
}

type buildResult struct {
	record  *entity.ProjectRecord
	failure *entity.BuildFailure
}

// BuildAll loads and builds every definition in parallel, then registers the
// records in definition order. With FailureAbort the first failure cancels
// the remaining builds and nothing is registered.
func (s *CatalogService) BuildAll(ctx context.Context) (entity.BuildReport, error) {
	s.logger.Info("Building project catalog", "projects", len(s.definitions), "concurrency", s.maxConcurrent, "policy", s.policy)

	results := make([]buildResult, len(s.definitions))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.maxConcurrent)

	for i, def := range s.definitions {
		eg.Go(func() error {
			res := s.buildOne(egCtx, def)

			mu.Lock()
			results[i] = res
			mu.Unlock()

			if res.failure != nil && s.policy == FailureAbort {
				return fmt.Errorf("project %s failed during %s: %w", res.failure.ProjectID, res.failure.Stage, res.failure.Err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		s.logger.Error("Catalog build aborted", "error", err)
		return entity.BuildReport{}, err
	}

	report := entity.BuildReport{Built: []string{}, Failed: []entity.BuildFailure{}}
	for _, res := range results {
		if res.failure != nil {
			report.Failed = append(report.Failed, *res.failure)
			continue
		}
		if err := s.registry.Register(res.record); err != nil {
			if s.policy == FailureAbort {
				return entity.BuildReport{}, fmt.Errorf("failed to register project %s: %w", res.record.ID, err)
			}
			s.logger.Warn("Skipping project that could not be registered", "project", res.record.ID, "error", err)
			report.Failed = append(report.Failed, entity.BuildFailure{ProjectID: res.record.ID, Stage: "register", Message: err.Error(), Err: err})
			continue
		}
		report.Built = append(report.Built, res.record.ID)
	}
	metrics.RegisteredProjects.Set(float64(s.registry.Len()))

	s.logger.Info("Project catalog built", "built", len(report.Built), "failed", len(report.Failed))
	return report, nil
}

func (s *CatalogService) buildOne(ctx context.Context, def port.ProjectDefinition) buildResult {
	id := def.ID()
	start := time.Now()
	defer func() { metrics.ProjectBuildDuration.Observe(time.Since(start).Seconds()) }()

	fail := func(stage, result string, err error) buildResult {
		metrics.ProjectBuildsTotal.WithLabelValues(result).Inc()
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn("Project build failed", "project", id, "stage", stage, "error", err)
		}
		return buildResult{failure: &entity.BuildFailure{ProjectID: id, Stage: stage, Message: err.Error(), Err: err}}
	}

	snapshot, err := s.source.Load(ctx, id)
	if err != nil {
		return fail("discovery", "discovery_error", err)
	}
	record, err := s.builder.Build(def, snapshot)
	if err != nil {
		return fail("build", "build_error", err)
	}

	metrics.ProjectBuildsTotal.WithLabelValues("ok").Inc()
	s.logger.Debug("Project built", "project", id, "stage", record.Stage.Stage, "took", time.Since(start))
	return buildResult{record: record}
}
