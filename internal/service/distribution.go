package service

import (
	"context"
	"fmt"
	"sort"

	"dev-insights-service/internal/domain"
)

// DefaultBottleneckThreshold marks a member as a bottleneck when their
// value exceeds this multiple of the group mean.
const DefaultBottleneckThreshold = 2.0

// MemberValueFunc picks the per-member value the distribution is computed
// over. The default proxy is commit count.
type MemberValueFunc func(domain.MemberMetric) float64

// DistributionAnalyzer aggregates per-member activity into team-level
// concentration statistics.
type DistributionAnalyzer struct {
	activity            ActivityRepository
	bottleneckThreshold float64
	valueOf             MemberValueFunc
}

func NewDistributionAnalyzer(activity ActivityRepository) *DistributionAnalyzer {
	return &DistributionAnalyzer{
		activity:            activity,
		bottleneckThreshold: DefaultBottleneckThreshold,
		valueOf:             func(m domain.MemberMetric) float64 { return float64(m.Commits) },
	}
}

func (a *DistributionAnalyzer) WithBottleneckThreshold(threshold float64) *DistributionAnalyzer {
	a.bottleneckThreshold = threshold
	return a
}

func (a *DistributionAnalyzer) WithValueFunc(f MemberValueFunc) *DistributionAnalyzer {
	a.valueOf = f
	return a
}

// Analyze computes distribution statistics across the given members for the
// window. An empty member list yields a zeroed result, never an error.
func (a *DistributionAnalyzer) Analyze(ctx context.Context, developerIDs []string, window domain.Window) (*domain.DistributionMetrics, error) {
	result := &domain.DistributionMetrics{
		BottleneckDevelopers: []string{},
		MemberMetrics:        []domain.MemberMetric{},
	}
	if len(developerIDs) == 0 {
		return result, nil
	}

	for _, id := range developerIDs {
		member, err := a.memberMetric(ctx, id, window)
		if err != nil {
			return nil, err
		}
		result.MemberMetrics = append(result.MemberMetrics, member)
	}

	values := make([]float64, len(result.MemberMetrics))
	var sum, max float64
	for i, member := range result.MemberMetrics {
		values[i] = a.valueOf(member)
		sum += values[i]
		if values[i] > max {
			max = values[i]
		}
	}

	result.Gini = ComputeGini(values)
	result.TopContributorShare = safeDiv(max, sum)

	mean := sum / float64(len(values))
	for i, member := range result.MemberMetrics {
		if mean > 0 && values[i] > a.bottleneckThreshold*mean {
			result.BottleneckDevelopers = append(result.BottleneckDevelopers, member.DeveloperID)
		}
	}

	return result, nil
}

func (a *DistributionAnalyzer) memberMetric(ctx context.Context, developerID string, window domain.Window) (domain.MemberMetric, error) {
	member := domain.MemberMetric{DeveloperID: developerID}

	commits, err := a.activity.FetchCommits(ctx, developerID, window)
	if err != nil {
		return member, fmt.Errorf("failed to fetch commits for %s: %w", developerID, err)
	}
	member.Commits = len(commits)
	for _, commit := range commits {
		member.LinesAdded += commit.Additions
		member.LinesRemoved += commit.Deletions
	}

	merged, err := a.activity.FetchMergedPRs(ctx, developerID, window)
	if err != nil {
		return member, fmt.Errorf("failed to fetch merged PRs for %s: %w", developerID, err)
	}
	member.PRsMerged = len(merged)

	reviews, err := a.activity.FetchReviewsByDeveloper(ctx, developerID, window)
	if err != nil {
		return member, fmt.Errorf("failed to fetch reviews for %s: %w", developerID, err)
	}
	member.ReviewsGiven = len(reviews)

	return member, nil
}

// ComputeGini returns the Gini coefficient of the value distribution.
// Empty or all-zero input yields 0. Uniform values yield 0; one member
// holding the entire total among n yields (n-1)/n.
func ComputeGini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum, weighted float64
	for i, v := range sorted {
		sum += v
		weighted += float64(i+1) * v
	}
	if sum == 0 {
		return 0
	}

	return (2*weighted)/(float64(n)*sum) - float64(n+1)/float64(n)
}
