package service

import (
	"context"
	"fmt"

	"dev-insights-service/internal/domain"
)

// QualityComputer derives review engagement statistics: how much of the
// workspace's review load the developer carries, how deep their reviews go,
// and how often their own PRs merge unreviewed.
type QualityComputer struct {
	activity ActivityRepository
}

func NewQualityComputer(activity ActivityRepository) *QualityComputer {
	return &QualityComputer{activity: activity}
}

func (c *QualityComputer) Compute(ctx context.Context, developerID, workspaceID string, window domain.Window) (*domain.QualityMetrics, error) {
	given, err := c.activity.FetchReviewsByDeveloper(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews by developer: %w", err)
	}

	m := &domain.QualityMetrics{}

	reviewedPRs := make(map[string]struct{})
	var commentsSum float64
	for _, rev := range given {
		reviewedPRs[rev.PullRequestID] = struct{}{}
		commentsSum += float64(rev.CommentsCount)
	}
	m.AvgReviewDepth = safeDiv(commentsSum, float64(len(given)))

	workspaceReviewed, err := c.activity.CountDistinctPRsReviewed(ctx, workspaceID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count workspace reviewed PRs: %w", err)
	}
	m.ReviewParticipationRate = safeDiv(float64(len(reviewedPRs)), float64(workspaceReviewed))

	if len(given) > 0 {
		prIDs := make([]string, 0, len(reviewedPRs))
		for id := range reviewedPRs {
			prIDs = append(prIDs, id)
		}
		prs, err := c.activity.FetchPRsByIDs(ctx, prIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch reviewed PRs: %w", err)
		}
		createdAt := make(map[string]domain.PullRequest, len(prs))
		for _, pr := range prs {
			createdAt[pr.ID] = pr
		}
		var turnaroundSum float64
		var turnaroundCount int
		for _, rev := range given {
			pr, ok := createdAt[rev.PullRequestID]
			if !ok {
				continue
			}
			turnaroundSum += rev.SubmittedAt.Sub(pr.CreatedAt).Hours()
			turnaroundCount++
		}
		m.ReviewTurnaroundHours = safeDiv(turnaroundSum, float64(turnaroundCount))
	}

	selfMergeRate, err := c.selfMergeRate(ctx, developerID, window)
	if err != nil {
		return nil, err
	}
	m.SelfMergeRate = selfMergeRate

	return m, nil
}

// selfMergeRate is the fraction of the developer's own merged PRs that had
// zero reviews from anyone else before merge.
func (c *QualityComputer) selfMergeRate(ctx context.Context, developerID string, window domain.Window) (float64, error) {
	merged, err := c.activity.FetchMergedPRs(ctx, developerID, window)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch merged PRs: %w", err)
	}
	if len(merged) == 0 {
		return 0, nil
	}

	prIDs := make([]string, 0, len(merged))
	for _, pr := range merged {
		prIDs = append(prIDs, pr.ID)
	}
	reviews, err := c.activity.FetchReviewsForPRs(ctx, prIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch reviews for merged PRs: %w", err)
	}

	reviewedBefore := make(map[string]bool)
	mergedAt := make(map[string]*domain.PullRequest, len(merged))
	for i := range merged {
		mergedAt[merged[i].ID] = &merged[i]
	}
	for _, rev := range reviews {
		if rev.DeveloperID == developerID {
			continue
		}
		pr, ok := mergedAt[rev.PullRequestID]
		if !ok || pr.MergedAt == nil {
			continue
		}
		if rev.SubmittedAt.Before(*pr.MergedAt) {
			reviewedBefore[rev.PullRequestID] = true
		}
	}

	selfMerged := 0
	for _, pr := range merged {
		if !reviewedBefore[pr.ID] {
			selfMerged++
		}
	}
	return safeDiv(float64(selfMerged), float64(len(merged))), nil
}
