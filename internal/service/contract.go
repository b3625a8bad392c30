package service

import (
	"context"
	"time"

	"dev-insights-service/internal/domain"
)

// ActivityRepository supplies immutable commit, pull request and review
// records scoped by developer and half-open time window.
type ActivityRepository interface {
	FetchCommits(ctx context.Context, developerID string, window domain.Window) ([]domain.Commit, error)
	FetchMergedPRs(ctx context.Context, developerID string, window domain.Window) ([]domain.PullRequest, error)
	FetchOpenedPRs(ctx context.Context, developerID string, window domain.Window) ([]domain.PullRequest, error)
	FetchPRsByIDs(ctx context.Context, prIDs []string) ([]domain.PullRequest, error)
	FetchReviewsByDeveloper(ctx context.Context, developerID string, window domain.Window) ([]domain.CodeReview, error)
	FetchReviewsOnDeveloperPRs(ctx context.Context, developerID string, window domain.Window) ([]domain.CodeReview, error)
	FetchReviewsForPRs(ctx context.Context, prIDs []string) ([]domain.CodeReview, error)
	CountDistinctPRsReviewed(ctx context.Context, workspaceID string, window domain.Window) (int, error)
}

// DirectoryRepository resolves developers, workspaces and teams.
type DirectoryRepository interface {
	DeveloperExists(ctx context.Context, developerID string) (bool, error)
	WorkspaceExists(ctx context.Context, workspaceID string) (bool, error)
	TeamExists(ctx context.Context, workspaceID, teamID string) (bool, error)
	ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]string, error)
	ListTeamMembers(ctx context.Context, workspaceID, teamID string) ([]string, error)
}

// SnapshotRepository persists computed snapshots with insert-or-update
// semantics keyed by natural identity.
type SnapshotRepository interface {
	UpsertDeveloperSnapshot(ctx context.Context, snap *domain.DeveloperMetricsSnapshot) (*domain.DeveloperMetricsSnapshot, error)
	UpsertTeamSnapshot(ctx context.Context, snap *domain.TeamMetricsSnapshot) (*domain.TeamMetricsSnapshot, error)
	GetDeveloperSnapshots(ctx context.Context, developerID string, periodType domain.PeriodType, limit int) ([]domain.DeveloperMetricsSnapshot, error)
	GetPreviousDeveloperSnapshot(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, before time.Time) (*domain.DeveloperMetricsSnapshot, error)
}
