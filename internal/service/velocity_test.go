package service

import (
	"context"
	"testing"
	"time"

	"dev-insights-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocityComputer_Compute(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	}
	day1 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	merged1 := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	merged2 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	activity := &fakeActivity{
		commits: []domain.Commit{
			{SHA: "c1", DeveloperID: "dev-1", Repository: "repo-a", Additions: 100, Deletions: 20, CommittedAt: day1},
			{SHA: "c2", DeveloperID: "dev-1", Repository: "repo-a", Additions: 100, Deletions: 20, CommittedAt: day1.Add(time.Hour)},
			{SHA: "c3", DeveloperID: "dev-1", Repository: "repo-a", Additions: 100, Deletions: 20, CommittedAt: day1.Add(2 * time.Hour)},
			{SHA: "c4", DeveloperID: "dev-1", Repository: "repo-a", Additions: 100, Deletions: 20, CommittedAt: day2},
			{SHA: "c5", DeveloperID: "dev-1", Repository: "repo-a", Additions: 100, Deletions: 20, CommittedAt: day2.Add(time.Hour)},
			// Other developers and out-of-window commits must not leak in.
			{SHA: "c6", DeveloperID: "dev-2", Repository: "repo-a", Additions: 500, Deletions: 0, CommittedAt: day1},
			{SHA: "c7", DeveloperID: "dev-1", Repository: "repo-a", Additions: 500, Deletions: 0, CommittedAt: window.End},
		},
		prs: []domain.PullRequest{
			{ID: "pr-1", DeveloperID: "dev-1", State: domain.PRStateMerged, CreatedAt: day1, MergedAt: &merged1},
			{ID: "pr-2", DeveloperID: "dev-1", State: domain.PRStateMerged, CreatedAt: day2, MergedAt: &merged2},
		},
	}

	m, err := NewVelocityComputer(activity).Compute(context.Background(), "dev-1", window)
	require.NoError(t, err)

	assert.Equal(t, 5, m.CommitsCount)
	assert.Equal(t, 2, m.PRsMerged)
	assert.Equal(t, 500, m.LinesAdded)
	assert.Equal(t, 100, m.LinesRemoved)
	assert.Equal(t, 400, m.NetLines)
	assert.InDelta(t, 120.0, m.AvgCommitSize, 1e-9)
	assert.InDelta(t, 2.5, m.CommitFrequency, 1e-9) // 5 commits over 2 active days
	assert.InDelta(t, 1.0, m.PRThroughput, 1e-9)    // 2 merged PRs over 2 weeks
}

func TestVelocityComputer_Compute_NoActivity(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	m, err := NewVelocityComputer(&fakeActivity{}).Compute(context.Background(), "dev-1", window)
	require.NoError(t, err)

	assert.Equal(t, &domain.VelocityMetrics{}, m)
}

func TestVelocityComputer_Compute_WindowBoundaries(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	activity := &fakeActivity{
		commits: []domain.Commit{
			{SHA: "at-start", DeveloperID: "dev-1", Repository: "r", Additions: 1, CommittedAt: window.Start},
			{SHA: "at-end", DeveloperID: "dev-1", Repository: "r", Additions: 1, CommittedAt: window.End},
			{SHA: "before", DeveloperID: "dev-1", Repository: "r", Additions: 1, CommittedAt: window.Start.Add(-time.Second)},
		},
	}

	m, err := NewVelocityComputer(activity).Compute(context.Background(), "dev-1", window)
	require.NoError(t, err)

	// Half-open window: the start instant is in, the end instant is out.
	assert.Equal(t, 1, m.CommitsCount)
}
