package service

import (
	"context"
	"fmt"

	"dev-insights-service/internal/domain"
)

// EfficiencyComputer derives review-cycle statistics for one developer's
// pull requests over a half-open window.
type EfficiencyComputer struct {
	activity ActivityRepository
}

func NewEfficiencyComputer(activity ActivityRepository) *EfficiencyComputer {
	return &EfficiencyComputer{activity: activity}
}

func (c *EfficiencyComputer) Compute(ctx context.Context, developerID string, window domain.Window) (*domain.EfficiencyMetrics, error) {
	merged, err := c.activity.FetchMergedPRs(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merged PRs: %w", err)
	}

	opened, err := c.activity.FetchOpenedPRs(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opened PRs: %w", err)
	}

	m := &domain.EfficiencyMetrics{}

	var mergedOfOpened, closedOfOpened int
	for _, pr := range opened {
		switch pr.State {
		case domain.PRStateMerged:
			mergedOfOpened++
		case domain.PRStateClosed:
			closedOfOpened++
		}
	}
	m.PRMergeRate = safeDiv(float64(mergedOfOpened), float64(mergedOfOpened+closedOfOpened))

	if len(merged) == 0 {
		return m, nil
	}

	prIDs := make([]string, 0, len(merged))
	for _, pr := range merged {
		prIDs = append(prIDs, pr.ID)
	}
	reviews, err := c.activity.FetchReviewsForPRs(ctx, prIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for merged PRs: %w", err)
	}
	reviewsByPR := make(map[string][]domain.CodeReview)
	for _, rev := range reviews {
		reviewsByPR[rev.PullRequestID] = append(reviewsByPR[rev.PullRequestID], rev)
	}

	var (
		cycleSum        float64
		sizeSum         float64
		firstReviewSum  float64
		reviewedPRs     int
		reworkedPRs     int
	)
	for _, pr := range merged {
		if pr.MergedAt != nil {
			cycleSum += pr.MergedAt.Sub(pr.CreatedAt).Hours()
		}
		sizeSum += float64(pr.Additions + pr.Deletions)

		var hasFirst bool
		var firstHours float64
		var reworked bool
		for _, rev := range reviewsByPR[pr.ID] {
			if rev.DeveloperID == developerID {
				continue
			}
			hours := rev.SubmittedAt.Sub(pr.CreatedAt).Hours()
			if !hasFirst || hours < firstHours {
				hasFirst = true
				firstHours = hours
			}
			if rev.State == domain.ReviewStateChangesRequested && pr.MergedAt != nil && rev.SubmittedAt.Before(*pr.MergedAt) {
				reworked = true
			}
		}
		// PRs with no other-developer review are excluded from the
		// first-review average, not treated as zero.
		if hasFirst {
			firstReviewSum += firstHours
			reviewedPRs++
		}
		if reworked {
			reworkedPRs++
		}
	}

	m.AvgPRCycleTimeHours = safeDiv(cycleSum, float64(len(merged)))
	m.AvgTimeToFirstReviewHours = safeDiv(firstReviewSum, float64(reviewedPRs))
	m.AvgPRSize = safeDiv(sizeSum, float64(len(merged)))
	m.ReworkRatio = safeDiv(float64(reworkedPRs), float64(len(merged)))

	return m, nil
}
