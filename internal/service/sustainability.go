package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dev-insights-service/internal/domain"
)

// DefaultStreakGapDays is the largest gap between commit days that still
// continues a streak. Observed behavior: exactly one day, any larger gap
// breaks the run.
const DefaultStreakGapDays = 1

// SustainabilityComputer derives working-pattern statistics from commit
// timestamps. Timestamps are taken as raw UTC with no per-developer
// timezone normalization.
type SustainabilityComputer struct {
	activity      ActivityRepository
	streakGapDays int
}

func NewSustainabilityComputer(activity ActivityRepository) *SustainabilityComputer {
	return &SustainabilityComputer{activity: activity, streakGapDays: DefaultStreakGapDays}
}

// WithStreakGapDays overrides the gap tolerance between consecutive commit
// days that keeps a streak alive.
func (c *SustainabilityComputer) WithStreakGapDays(days int) *SustainabilityComputer {
	c.streakGapDays = days
	return c
}

func (c *SustainabilityComputer) Compute(ctx context.Context, developerID string, window domain.Window) (*domain.SustainabilityMetrics, error) {
	commits, err := c.activity.FetchCommits(ctx, developerID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}

	m := &domain.SustainabilityMetrics{}
	if len(commits) == 0 {
		return m, nil
	}

	var weekend, lateNight int
	repoCommits := make(map[string]int)
	daySet := make(map[time.Time]struct{})
	for _, commit := range commits {
		ts := commit.CommittedAt.UTC()
		if wd := ts.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
		if h := ts.Hour(); h >= 22 || h < 6 {
			lateNight++
		}
		repoCommits[commit.Repository]++
		daySet[ts.Truncate(24*time.Hour)] = struct{}{}
	}

	total := float64(len(commits))
	m.WeekendCommitRatio = float64(weekend) / total
	m.LateNightCommitRatio = float64(lateNight) / total
	m.LongestStreakDays = longestStreak(daySet, c.streakGapDays)

	// Herfindahl-Hirschman index over per-repository commit shares.
	// 1.0 means all activity concentrated in a single repository.
	for _, n := range repoCommits {
		share := float64(n) / total
		m.FocusScore += share * share
	}

	return m, nil
}

// longestStreak finds the longest run of distinct commit days where each
// consecutive pair is at most gapDays apart.
func longestStreak(daySet map[time.Time]struct{}, gapDays int) int {
	if len(daySet) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		gap := int(days[i].Sub(days[i-1]).Hours() / 24)
		if gap <= gapDays {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}
