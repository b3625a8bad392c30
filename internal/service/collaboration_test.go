package service

import (
	"context"
	"testing"
	"time"

	"dev-insights-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollaborationComputer_Compute(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	activity := &fakeActivity{
		prs: []domain.PullRequest{
			{ID: "pr-own", DeveloperID: "dev-1", State: domain.PRStateOpen, CreatedAt: at},
			{ID: "pr-bob", DeveloperID: "dev-2", State: domain.PRStateOpen, CreatedAt: at},
			{ID: "pr-carol", DeveloperID: "dev-3", State: domain.PRStateOpen, CreatedAt: at},
		},
		reviews: []domain.CodeReview{
			// dev-1 reviews two other developers' PRs.
			{ID: "r1", DeveloperID: "dev-1", PullRequestID: "pr-bob", State: domain.ReviewStateApproved, SubmittedAt: at.Add(time.Hour)},
			{ID: "r2", DeveloperID: "dev-1", PullRequestID: "pr-carol", State: domain.ReviewStateCommented, SubmittedAt: at.Add(2 * time.Hour)},
			// A review of dev-1's own PR contributes nothing to reviews given.
			{ID: "r3", DeveloperID: "dev-1", PullRequestID: "pr-own", State: domain.ReviewStateCommented, SubmittedAt: at.Add(3 * time.Hour)},
			// dev-2 and dev-3 review dev-1's PR.
			{ID: "r4", DeveloperID: "dev-2", PullRequestID: "pr-own", State: domain.ReviewStateApproved, SubmittedAt: at.Add(4 * time.Hour)},
			{ID: "r5", DeveloperID: "dev-3", PullRequestID: "pr-own", State: domain.ReviewStateChangesRequested, SubmittedAt: at.Add(5 * time.Hour)},
		},
	}

	m, err := NewCollaborationComputer(activity).Compute(context.Background(), "dev-1", window)
	require.NoError(t, err)

	assert.Equal(t, 2, m.ReviewsGiven)
	assert.Equal(t, 2, m.ReviewsReceived)
	// dev-2 and dev-3 appear on both sides but count once each.
	assert.Equal(t, 2, m.UniqueCollaborators)
}

func TestCollaborationComputer_Compute_NoActivity(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	m, err := NewCollaborationComputer(&fakeActivity{}).Compute(context.Background(), "dev-1", window)
	require.NoError(t, err)

	assert.Equal(t, &domain.CollaborationMetrics{}, m)
}
