package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dev-insights-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds the worker pool for batch snapshot
// generation. Each unit of work is an independent upsert, safe to retry or
// cancel before its commit point.
const DefaultBatchConcurrency = 4

// SnapshotService recomputes metric sets and persists them as
// replace-on-recompute snapshots. batchConcurrency comes from
// SNAPSHOT_CONCURRENCY and bounds the batch worker pool.
type SnapshotService struct {
	insights         *InsightsService
	snapshots        SnapshotRepository
	batchConcurrency int
}

func NewSnapshotService(insights *InsightsService, snapshots SnapshotRepository, batchConcurrency int) *SnapshotService {
	if batchConcurrency <= 0 {
		batchConcurrency = DefaultBatchConcurrency
	}
	return &SnapshotService{
		insights:         insights,
		snapshots:        snapshots,
		batchConcurrency: batchConcurrency,
	}
}

// SaveDeveloperSnapshot recomputes all five metric sets for the period and
// upserts the snapshot by its identity key. Repeated calls for the same
// identity overwrite the same row.
func (s *SnapshotService) SaveDeveloperSnapshot(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, window domain.Window) (*domain.DeveloperMetricsSnapshot, error) {
	if err := s.insights.checkDeveloperRequest(ctx, developerID, workspaceID, periodType, window); err != nil {
		return nil, err
	}

	dims, err := s.insights.ComputeDimensions(ctx, developerID, workspaceID, window)
	if err != nil {
		return nil, err
	}

	snap := &domain.DeveloperMetricsSnapshot{
		DeveloperID: developerID,
		WorkspaceID: workspaceID,
		PeriodType:  periodType,
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
		Metrics:     *dims,
		ComputedAt:  time.Now().UTC(),
	}

	saved, err := s.snapshots.UpsertDeveloperSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert developer snapshot: %w", err)
	}
	return saved, nil
}

// SaveTeamSnapshot runs the distribution analyzer over the team (or the
// whole workspace when teamID is nil) and upserts the team snapshot.
func (s *SnapshotService) SaveTeamSnapshot(ctx context.Context, workspaceID string, teamID *string, periodType domain.PeriodType, window domain.Window) (*domain.TeamMetricsSnapshot, error) {
	insights, err := s.insights.GetTeamInsights(ctx, workspaceID, teamID, periodType, window)
	if err != nil {
		return nil, err
	}

	snap := &domain.TeamMetricsSnapshot{
		WorkspaceID:  workspaceID,
		TeamID:       teamID,
		PeriodType:   periodType,
		PeriodStart:  window.Start,
		PeriodEnd:    window.End,
		Aggregate:    insights.Aggregate,
		Distribution: insights.Distribution,
		MemberCount:  insights.MemberCount,
		ComputedAt:   time.Now().UTC(),
	}

	saved, err := s.snapshots.UpsertTeamSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert team snapshot: %w", err)
	}
	return saved, nil
}

// GetDeveloperSnapshots returns persisted snapshots for the developer,
// newest period first.
func (s *SnapshotService) GetDeveloperSnapshots(ctx context.Context, developerID string, periodType domain.PeriodType, limit int) ([]domain.DeveloperMetricsSnapshot, error) {
	snaps, err := s.snapshots.GetDeveloperSnapshots(ctx, developerID, periodType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get developer snapshots: %w", err)
	}
	return snaps, nil
}

// GenerateWorkspaceSnapshots produces a snapshot for every workspace member
// plus a workspace-level team snapshot, using a bounded worker pool. Each
// member upsert is independently transactional; cancellation between units
// leaves no partial state.
func (s *SnapshotService) GenerateWorkspaceSnapshots(ctx context.Context, workspaceID string, periodType domain.PeriodType, window domain.Window) (int, error) {
	members, err := s.insights.resolveMembers(ctx, workspaceID, nil, periodType, window)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for _, developerID := range members {
		developerID := developerID
		g.Go(func() error {
			if _, err := s.SaveDeveloperSnapshot(gctx, developerID, workspaceID, periodType, window); err != nil {
				return fmt.Errorf("snapshot for %s: %w", developerID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if _, err := s.SaveTeamSnapshot(ctx, workspaceID, nil, periodType, window); err != nil {
		return len(members), err
	}

	slog.Info("workspace snapshots generated",
		"workspace_id", workspaceID,
		"period_type", string(periodType),
		"members", len(members),
	)
	return len(members), nil
}
