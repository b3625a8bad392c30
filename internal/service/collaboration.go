package service

import (
	"context"
	"fmt"

	"dev-insights-service/internal/domain"
)

// CollaborationComputer counts the review relationships a developer is part
// of within a window: reviews given on others' PRs, reviews received from
// others, and the distinct set of people on the other side.
type CollaborationComputer struct {
	activity ActivityRepository
}

func NewCollaborationComputer(activity ActivityRepository) *CollaborationComputer {
	return &CollaborationComputer{activity: activity}
}

func (c *CollaborationComputer) Compute(ctx context.Context, developerID string, window domain.Window) (*domain.CollaborationMetrics, error) {
	given, err := c.activity.FetchReviewsByDeveloper(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews by developer: %w", err)
	}

	received, err := c.activity.FetchReviewsOnDeveloperPRs(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews on developer PRs: %w", err)
	}

	m := &domain.CollaborationMetrics{}
	collaborators := make(map[string]struct{})

	for _, rev := range received {
		if rev.DeveloperID == developerID {
			continue
		}
		m.ReviewsReceived++
		collaborators[rev.DeveloperID] = struct{}{}
	}

	if len(given) > 0 {
		prIDs := make([]string, 0, len(given))
		seen := make(map[string]struct{})
		for _, rev := range given {
			if _, ok := seen[rev.PullRequestID]; ok {
				continue
			}
			seen[rev.PullRequestID] = struct{}{}
			prIDs = append(prIDs, rev.PullRequestID)
		}
		prs, err := c.activity.FetchPRsByIDs(ctx, prIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch reviewed PRs: %w", err)
		}
		authorByPR := make(map[string]string, len(prs))
		for _, pr := range prs {
			authorByPR[pr.ID] = pr.DeveloperID
		}
		for _, rev := range given {
			author, ok := authorByPR[rev.PullRequestID]
			if !ok || author == developerID {
				continue
			}
			m.ReviewsGiven++
			collaborators[author] = struct{}{}
		}
	}

	m.UniqueCollaborators = len(collaborators)
	return m, nil
}
