package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/my_errors"

	"golang.org/x/sync/errgroup"
)

// leaderboardConcurrency bounds parallel per-member reads for leaderboard
// and team queries.
const leaderboardConcurrency = 8

// InsightsService composes the five metric computers and the distribution
// analyzer behind the query API. Computation is stateless and read-only;
// concurrent calls share nothing mutable.
type InsightsService struct {
	activity  ActivityRepository
	directory DirectoryRepository
	snapshots SnapshotRepository

	velocity       *VelocityComputer
	efficiency     *EfficiencyComputer
	quality        *QualityComputer
	sustainability *SustainabilityComputer
	collaboration  *CollaborationComputer
	analyzer       *DistributionAnalyzer
}

func NewInsightsService(activity ActivityRepository, directory DirectoryRepository, snapshots SnapshotRepository) *InsightsService {
	return &InsightsService{
		activity:       activity,
		directory:      directory,
		snapshots:      snapshots,
		velocity:       NewVelocityComputer(activity),
		efficiency:     NewEfficiencyComputer(activity),
		quality:        NewQualityComputer(activity),
		sustainability: NewSustainabilityComputer(activity),
		collaboration:  NewCollaborationComputer(activity),
		analyzer:       NewDistributionAnalyzer(activity),
	}
}

// Analyzer exposes the distribution analyzer so callers can tune the
// bottleneck threshold or value proxy.
func (s *InsightsService) Analyzer() *DistributionAnalyzer {
	return s.analyzer
}

func (s *InsightsService) GetDeveloperInsights(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, window domain.Window) (*domain.DeveloperInsights, error) {
	if err := s.checkDeveloperRequest(ctx, developerID, workspaceID, periodType, window); err != nil {
		return nil, err
	}

	dims, err := s.ComputeDimensions(ctx, developerID, workspaceID, window)
	if err != nil {
		return nil, err
	}

	insights := &domain.DeveloperInsights{
		DeveloperID: developerID,
		WorkspaceID: workspaceID,
		PeriodType:  periodType,
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
		Metrics:     *dims,
	}

	previous, err := s.snapshots.GetPreviousDeveloperSnapshot(ctx, developerID, workspaceID, periodType, window.Start)
	if err != nil && !errors.Is(err, my_errors.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to load previous snapshot: %w", err)
	}
	insights.Previous = previous

	return insights, nil
}

// ComputeDimensions runs the five computers for one developer and window.
// The computers issue independent reads, so they run concurrently.
func (s *InsightsService) ComputeDimensions(ctx context.Context, developerID, workspaceID string, window domain.Window) (*domain.MetricDimensions, error) {
	dims := &domain.MetricDimensions{}
	var prsOpened int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.velocity.Compute(gctx, developerID, window)
		if err != nil {
			return err
		}
		dims.Velocity = *m
		return nil
	})
	g.Go(func() error {
		m, err := s.efficiency.Compute(gctx, developerID, window)
		if err != nil {
			return err
		}
		dims.Efficiency = *m
		return nil
	})
	g.Go(func() error {
		m, err := s.quality.Compute(gctx, developerID, workspaceID, window)
		if err != nil {
			return err
		}
		dims.Quality = *m
		return nil
	})
	g.Go(func() error {
		m, err := s.sustainability.Compute(gctx, developerID, window)
		if err != nil {
			return err
		}
		dims.Sustainability = *m
		return nil
	})
	g.Go(func() error {
		m, err := s.collaboration.Compute(gctx, developerID, window)
		if err != nil {
			return err
		}
		dims.Collaboration = *m
		return nil
	})
	g.Go(func() error {
		opened, err := s.activity.FetchOpenedPRs(gctx, developerID, window)
		if err != nil {
			return fmt.Errorf("failed to fetch opened PRs: %w", err)
		}
		prsOpened = len(opened)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dims.RawCounts = domain.RawCounts{
		Commits:         dims.Velocity.CommitsCount,
		PRsOpened:       prsOpened,
		PRsMerged:       dims.Velocity.PRsMerged,
		ReviewsGiven:    dims.Collaboration.ReviewsGiven,
		ReviewsReceived: dims.Collaboration.ReviewsReceived,
	}

	return dims, nil
}

func (s *InsightsService) GetTeamInsights(ctx context.Context, workspaceID string, teamID *string, periodType domain.PeriodType, window domain.Window) (*domain.TeamInsights, error) {
	members, err := s.resolveMembers(ctx, workspaceID, teamID, periodType, window)
	if err != nil {
		return nil, err
	}

	distribution, err := s.analyzer.Analyze(ctx, members, window)
	if err != nil {
		return nil, err
	}

	return &domain.TeamInsights{
		WorkspaceID:  workspaceID,
		TeamID:       teamID,
		PeriodType:   periodType,
		PeriodStart:  window.Start,
		PeriodEnd:    window.End,
		Aggregate:    aggregateMembers(distribution.MemberMetrics),
		Distribution: *distribution,
		MemberCount:  len(members),
	}, nil
}

// Leaderboard ranks workspace members by one raw activity metric over the
// window. Values come from activity reads, not persisted snapshots, so the
// query works without prior snapshot generation.
func (s *InsightsService) Leaderboard(ctx context.Context, workspaceID, metric string, periodType domain.PeriodType, window domain.Window, limit int) ([]domain.LeaderboardEntry, error) {
	valueOf, err := s.metricValueFunc(metric)
	if err != nil {
		return nil, err
	}
	members, err := s.resolveMembers(ctx, workspaceID, nil, periodType, window)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(leaderboardConcurrency)
	for i, developerID := range members {
		i, developerID := i, developerID
		g.Go(func() error {
			value, err := valueOf(gctx, developerID, window)
			if err != nil {
				return err
			}
			entries[i] = domain.LeaderboardEntry{DeveloperID: developerID, Value: value}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
	for i := range entries {
		entries[i].Rank = i + 1
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *InsightsService) metricValueFunc(metric string) (func(context.Context, string, domain.Window) (float64, error), error) {
	switch metric {
	case domain.MetricCommits:
		return func(ctx context.Context, id string, w domain.Window) (float64, error) {
			commits, err := s.activity.FetchCommits(ctx, id, w)
			return float64(len(commits)), err
		}, nil
	case domain.MetricPRsMerged:
		return func(ctx context.Context, id string, w domain.Window) (float64, error) {
			prs, err := s.activity.FetchMergedPRs(ctx, id, w)
			return float64(len(prs)), err
		}, nil
	case domain.MetricLinesAdded:
		return func(ctx context.Context, id string, w domain.Window) (float64, error) {
			commits, err := s.activity.FetchCommits(ctx, id, w)
			if err != nil {
				return 0, err
			}
			var total int
			for _, c := range commits {
				total += c.Additions
			}
			return float64(total), nil
		}, nil
	case domain.MetricReviewsGiven:
		return func(ctx context.Context, id string, w domain.Window) (float64, error) {
			reviews, err := s.activity.FetchReviewsByDeveloper(ctx, id, w)
			return float64(len(reviews)), err
		}, nil
	}
	return nil, fmt.Errorf("%s: %w", metric, my_errors.ErrUnknownMetric)
}

func (s *InsightsService) checkDeveloperRequest(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, window domain.Window) error {
	if err := checkPeriod(periodType, window); err != nil {
		return err
	}
	exists, err := s.directory.WorkspaceExists(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to check workspace: %w", err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", workspaceID, my_errors.ErrWorkspaceNotFound)
	}
	exists, err = s.directory.DeveloperExists(ctx, developerID)
	if err != nil {
		return fmt.Errorf("failed to check developer: %w", err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", developerID, my_errors.ErrDeveloperNotFound)
	}
	return nil
}

// resolveMembers validates the team request and returns the member list:
// team members when teamID is set, all workspace members otherwise.
func (s *InsightsService) resolveMembers(ctx context.Context, workspaceID string, teamID *string, periodType domain.PeriodType, window domain.Window) ([]string, error) {
	if err := checkPeriod(periodType, window); err != nil {
		return nil, err
	}
	exists, err := s.directory.WorkspaceExists(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", workspaceID, my_errors.ErrWorkspaceNotFound)
	}

	if teamID == nil {
		members, err := s.directory.ListWorkspaceMembers(ctx, workspaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to list workspace members: %w", err)
		}
		return members, nil
	}

	exists, err = s.directory.TeamExists(ctx, workspaceID, *teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", *teamID, my_errors.ErrTeamNotFound)
	}
	members, err := s.directory.ListTeamMembers(ctx, workspaceID, *teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

func checkPeriod(periodType domain.PeriodType, window domain.Window) error {
	if !periodType.Valid() {
		return fmt.Errorf("%s: %w", periodType, my_errors.ErrInvalidPeriodType)
	}
	return window.Validate()
}

func aggregateMembers(members []domain.MemberMetric) domain.AggregateMetrics {
	agg := domain.AggregateMetrics{}
	for _, m := range members {
		agg.TotalCommits += m.Commits
		agg.TotalPRsMerged += m.PRsMerged
		agg.TotalLinesAdded += m.LinesAdded
		agg.TotalLinesRemoved += m.LinesRemoved
	}
	agg.AvgCommitsPerMember = safeDiv(float64(agg.TotalCommits), float64(len(members)))
	agg.AvgPRsMergedPerMember = safeDiv(float64(agg.TotalPRsMerged), float64(len(members)))
	return agg
}
