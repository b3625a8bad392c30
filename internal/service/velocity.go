package service

import (
	"context"
	"fmt"

	"dev-insights-service/internal/domain"
)

// VelocityComputer derives raw output volume statistics for one developer
// over a half-open window.
type VelocityComputer struct {
	activity ActivityRepository
}

func NewVelocityComputer(activity ActivityRepository) *VelocityComputer {
	return &VelocityComputer{activity: activity}
}

func (c *VelocityComputer) Compute(ctx context.Context, developerID string, window domain.Window) (*domain.VelocityMetrics, error) {
	commits, err := c.activity.FetchCommits(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}

	merged, err := c.activity.FetchMergedPRs(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merged PRs: %w", err)
	}

	m := &domain.VelocityMetrics{
		CommitsCount: len(commits),
		PRsMerged:    len(merged),
	}

	activeDays := make(map[string]struct{})
	for _, commit := range commits {
		m.LinesAdded += commit.Additions
		m.LinesRemoved += commit.Deletions
		activeDays[commit.CommittedAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	m.NetLines = m.LinesAdded - m.LinesRemoved
	m.AvgCommitSize = safeDiv(float64(m.LinesAdded+m.LinesRemoved), float64(m.CommitsCount))
	m.CommitFrequency = safeDiv(float64(m.CommitsCount), float64(len(activeDays)))
	m.PRThroughput = safeDiv(float64(m.PRsMerged), window.Weeks())

	return m, nil
}

// safeDiv guards all ratio computations: zero denominator resolves to 0
// rather than NaN/Inf.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
