package service

import (
	"context"
	"testing"
	"time"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() *fakeDirectory {
	return &fakeDirectory{
		developers: map[string]struct{}{"dev-1": {}, "dev-2": {}, "dev-3": {}},
		workspaces: map[string][]string{"ws-1": {"dev-1", "dev-2", "dev-3"}},
		teams:      map[string][]string{"ws-1/team-a": {"dev-1", "dev-2"}},
	}
}

func TestInsightsService_GetDeveloperInsights_Validation(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	svc := NewInsightsService(&fakeActivity{}, testDirectory(), newFakeSnapshots())
	ctx := context.Background()

	tests := []struct {
		name        string
		developerID string
		workspaceID string
		periodType  domain.PeriodType
		window      domain.Window
		wantErr     error
	}{
		{
			name:        "unknown workspace",
			developerID: "dev-1",
			workspaceID: "ws-missing",
			periodType:  domain.PeriodWeekly,
			window:      window,
			wantErr:     my_errors.ErrWorkspaceNotFound,
		},
		{
			name:        "unknown developer",
			developerID: "dev-missing",
			workspaceID: "ws-1",
			periodType:  domain.PeriodWeekly,
			window:      window,
			wantErr:     my_errors.ErrDeveloperNotFound,
		},
		{
			name:        "invalid period type",
			developerID: "dev-1",
			workspaceID: "ws-1",
			periodType:  domain.PeriodType("quarterly"),
			window:      window,
			wantErr:     my_errors.ErrInvalidPeriodType,
		},
		{
			name:        "inverted window",
			developerID: "dev-1",
			workspaceID: "ws-1",
			periodType:  domain.PeriodWeekly,
			window:      domain.Window{Start: window.End, End: window.Start},
			wantErr:     my_errors.ErrInvalidWindow,
		},
		{
			name:        "zero-length window",
			developerID: "dev-1",
			workspaceID: "ws-1",
			periodType:  domain.PeriodWeekly,
			window:      domain.Window{Start: window.Start, End: window.Start},
			wantErr:     my_errors.ErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetDeveloperInsights(ctx, tt.developerID, tt.workspaceID, tt.periodType, tt.window)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInsightsService_GetDeveloperInsights_RawCounts(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	merged := at.Add(24 * time.Hour)

	activity := &fakeActivity{
		commits: []domain.Commit{
			{SHA: "c1", DeveloperID: "dev-1", Repository: "r", Additions: 10, CommittedAt: at},
			{SHA: "c2", DeveloperID: "dev-1", Repository: "r", Additions: 10, CommittedAt: at.Add(time.Hour)},
		},
		prs: []domain.PullRequest{
			{ID: "pr-1", DeveloperID: "dev-1", State: domain.PRStateMerged, CreatedAt: at, MergedAt: &merged},
			{ID: "pr-2", DeveloperID: "dev-1", State: domain.PRStateOpen, CreatedAt: at},
			{ID: "pr-3", DeveloperID: "dev-2", State: domain.PRStateOpen, CreatedAt: at},
		},
		reviews: []domain.CodeReview{
			{ID: "r1", DeveloperID: "dev-1", PullRequestID: "pr-3", State: domain.ReviewStateApproved, SubmittedAt: at.Add(time.Hour)},
			{ID: "r2", DeveloperID: "dev-2", PullRequestID: "pr-1", State: domain.ReviewStateApproved, SubmittedAt: at.Add(2 * time.Hour)},
		},
	}

	svc := NewInsightsService(activity, testDirectory(), newFakeSnapshots())
	insights, err := svc.GetDeveloperInsights(context.Background(), "dev-1", "ws-1", domain.PeriodWeekly, window)
	require.NoError(t, err)

	assert.Equal(t, domain.RawCounts{
		Commits:         2,
		PRsOpened:       2,
		PRsMerged:       1,
		ReviewsGiven:    1,
		ReviewsReceived: 1,
	}, insights.Metrics.RawCounts)
	assert.Nil(t, insights.Previous)
}

func TestInsightsService_GetDeveloperInsights_PreviousSnapshot(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	}
	snapshots := newFakeSnapshots()
	previous := &domain.DeveloperMetricsSnapshot{
		DeveloperID: "dev-1",
		WorkspaceID: "ws-1",
		PeriodType:  domain.PeriodWeekly,
		PeriodStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   window.Start,
	}
	saved, err := snapshots.UpsertDeveloperSnapshot(context.Background(), previous)
	require.NoError(t, err)

	// A snapshot for a different period cadence must never be picked up.
	_, err = snapshots.UpsertDeveloperSnapshot(context.Background(), &domain.DeveloperMetricsSnapshot{
		DeveloperID: "dev-1",
		WorkspaceID: "ws-1",
		PeriodType:  domain.PeriodDaily,
		PeriodStart: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	svc := NewInsightsService(&fakeActivity{}, testDirectory(), snapshots)
	insights, err := svc.GetDeveloperInsights(context.Background(), "dev-1", "ws-1", domain.PeriodWeekly, window)
	require.NoError(t, err)

	require.NotNil(t, insights.Previous)
	assert.Equal(t, saved.ID, insights.Previous.ID)
	assert.Equal(t, previous.PeriodStart, insights.Previous.PeriodStart)
}

func TestInsightsService_GetTeamInsights(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	activity := &fakeActivity{
		commits: []domain.Commit{
			{SHA: "c1", DeveloperID: "dev-1", Repository: "r", Additions: 30, Deletions: 10, CommittedAt: at},
			{SHA: "c2", DeveloperID: "dev-1", Repository: "r", Additions: 30, Deletions: 10, CommittedAt: at},
			{SHA: "c3", DeveloperID: "dev-2", Repository: "r", Additions: 40, Deletions: 20, CommittedAt: at},
			// dev-3 is outside team-a, so this commit only shows up for the workspace.
			{SHA: "c4", DeveloperID: "dev-3", Repository: "r", Additions: 5, Deletions: 0, CommittedAt: at},
		},
	}
	svc := NewInsightsService(activity, testDirectory(), newFakeSnapshots())
	teamID := "team-a"

	insights, err := svc.GetTeamInsights(context.Background(), "ws-1", &teamID, domain.PeriodWeekly, window)
	require.NoError(t, err)

	assert.Equal(t, 2, insights.MemberCount)
	assert.Equal(t, 3, insights.Aggregate.TotalCommits)
	assert.Equal(t, 100, insights.Aggregate.TotalLinesAdded)
	assert.Equal(t, 40, insights.Aggregate.TotalLinesRemoved)
	assert.InDelta(t, 1.5, insights.Aggregate.AvgCommitsPerMember, 1e-9)
	assert.Len(t, insights.Distribution.MemberMetrics, 2)

	// teamID nil aggregates the whole workspace.
	insights, err = svc.GetTeamInsights(context.Background(), "ws-1", nil, domain.PeriodWeekly, window)
	require.NoError(t, err)
	assert.Equal(t, 3, insights.MemberCount)
	assert.Equal(t, 4, insights.Aggregate.TotalCommits)
}

func TestInsightsService_GetTeamInsights_UnknownTeam(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	svc := NewInsightsService(&fakeActivity{}, testDirectory(), newFakeSnapshots())
	teamID := "team-missing"

	_, err := svc.GetTeamInsights(context.Background(), "ws-1", &teamID, domain.PeriodWeekly, window)
	assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
}

func TestInsightsService_Leaderboard(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	commitsFor := func(developerID string, n int) []domain.Commit {
		out := make([]domain.Commit, n)
		for i := range out {
			out[i] = domain.Commit{
				SHA:         developerID + "-" + string(rune('a'+i)),
				DeveloperID: developerID,
				Repository:  "r",
				CommittedAt: at,
			}
		}
		return out
	}

	var commits []domain.Commit
	commits = append(commits, commitsFor("dev-1", 3)...)
	commits = append(commits, commitsFor("dev-2", 7)...)
	commits = append(commits, commitsFor("dev-3", 5)...)

	svc := NewInsightsService(&fakeActivity{commits: commits}, testDirectory(), newFakeSnapshots())

	entries, err := svc.Leaderboard(context.Background(), "ws-1", domain.MetricCommits, domain.PeriodWeekly, window, 0)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, domain.LeaderboardEntry{DeveloperID: "dev-2", Value: 7, Rank: 1}, entries[0])
	assert.Equal(t, domain.LeaderboardEntry{DeveloperID: "dev-3", Value: 5, Rank: 2}, entries[1])
	assert.Equal(t, domain.LeaderboardEntry{DeveloperID: "dev-1", Value: 3, Rank: 3}, entries[2])

	entries, err = svc.Leaderboard(context.Background(), "ws-1", domain.MetricCommits, domain.PeriodWeekly, window, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "dev-2", entries[0].DeveloperID)
}

func TestInsightsService_Leaderboard_UnknownMetric(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	svc := NewInsightsService(&fakeActivity{}, testDirectory(), newFakeSnapshots())

	_, err := svc.Leaderboard(context.Background(), "ws-1", "story_points", domain.PeriodWeekly, window, 0)
	assert.ErrorIs(t, err, my_errors.ErrUnknownMetric)
}
