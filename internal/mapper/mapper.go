package mapper

import (
	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/dto"
)

// Metric set mappers
func MapMetricDimensionsToDTO(m *domain.MetricDimensions) dto.MetricDimensionsDTO {
	return dto.MetricDimensionsDTO{
		Velocity: dto.VelocityMetricsDTO{
			CommitsCount:    m.Velocity.CommitsCount,
			PRsMerged:       m.Velocity.PRsMerged,
			LinesAdded:      m.Velocity.LinesAdded,
			LinesRemoved:    m.Velocity.LinesRemoved,
			NetLines:        m.Velocity.NetLines,
			AvgCommitSize:   m.Velocity.AvgCommitSize,
			CommitFrequency: m.Velocity.CommitFrequency,
			PRThroughput:    m.Velocity.PRThroughput,
		},
		Efficiency: dto.EfficiencyMetricsDTO{
			AvgPRCycleTimeHours:       m.Efficiency.AvgPRCycleTimeHours,
			AvgTimeToFirstReviewHours: m.Efficiency.AvgTimeToFirstReviewHours,
			PRMergeRate:               m.Efficiency.PRMergeRate,
			AvgPRSize:                 m.Efficiency.AvgPRSize,
			ReworkRatio:               m.Efficiency.ReworkRatio,
		},
		Quality: dto.QualityMetricsDTO{
			ReviewParticipationRate: m.Quality.ReviewParticipationRate,
			AvgReviewDepth:          m.Quality.AvgReviewDepth,
			ReviewTurnaroundHours:   m.Quality.ReviewTurnaroundHours,
			SelfMergeRate:           m.Quality.SelfMergeRate,
		},
		Sustainability: dto.SustainabilityMetricsDTO{
			WeekendCommitRatio:   m.Sustainability.WeekendCommitRatio,
			LateNightCommitRatio: m.Sustainability.LateNightCommitRatio,
			LongestStreakDays:    m.Sustainability.LongestStreakDays,
			FocusScore:           m.Sustainability.FocusScore,
		},
		Collaboration: dto.CollaborationMetricsDTO{
			UniqueCollaborators: m.Collaboration.UniqueCollaborators,
			ReviewsGiven:        m.Collaboration.ReviewsGiven,
			ReviewsReceived:     m.Collaboration.ReviewsReceived,
		},
		RawCounts: dto.RawCountsDTO{
			Commits:         m.RawCounts.Commits,
			PRsOpened:       m.RawCounts.PRsOpened,
			PRsMerged:       m.RawCounts.PRsMerged,
			ReviewsGiven:    m.RawCounts.ReviewsGiven,
			ReviewsReceived: m.RawCounts.ReviewsReceived,
		},
	}
}

// Snapshot mappers
func MapDeveloperSnapshotToDTO(snap *domain.DeveloperMetricsSnapshot) dto.DeveloperSnapshotDTO {
	return dto.DeveloperSnapshotDTO{
		ID:          snap.ID,
		DeveloperID: snap.DeveloperID,
		WorkspaceID: snap.WorkspaceID,
		PeriodType:  string(snap.PeriodType),
		PeriodStart: snap.PeriodStart,
		PeriodEnd:   snap.PeriodEnd,
		Metrics:     MapMetricDimensionsToDTO(&snap.Metrics),
		ComputedAt:  snap.ComputedAt,
	}
}

func MapDeveloperSnapshotsToDTO(snaps []domain.DeveloperMetricsSnapshot) []dto.DeveloperSnapshotDTO {
	result := make([]dto.DeveloperSnapshotDTO, len(snaps))
	for i := range snaps {
		result[i] = MapDeveloperSnapshotToDTO(&snaps[i])
	}
	return result
}

func MapTeamSnapshotToDTO(snap *domain.TeamMetricsSnapshot) dto.TeamSnapshotDTO {
	return dto.TeamSnapshotDTO{
		ID:           snap.ID,
		WorkspaceID:  snap.WorkspaceID,
		TeamID:       snap.TeamID,
		PeriodType:   string(snap.PeriodType),
		PeriodStart:  snap.PeriodStart,
		PeriodEnd:    snap.PeriodEnd,
		Aggregate:    MapAggregateMetricsToDTO(snap.Aggregate),
		Distribution: MapDistributionMetricsToDTO(&snap.Distribution),
		MemberCount:  snap.MemberCount,
		ComputedAt:   snap.ComputedAt,
	}
}

// Distribution mappers
func MapDistributionMetricsToDTO(m *domain.DistributionMetrics) dto.DistributionMetricsDTO {
	members := make([]dto.MemberMetricDTO, len(m.MemberMetrics))
	for i, member := range m.MemberMetrics {
		members[i] = dto.MemberMetricDTO{
			DeveloperID:  member.DeveloperID,
			Commits:      member.Commits,
			PRsMerged:    member.PRsMerged,
			ReviewsGiven: member.ReviewsGiven,
			LinesAdded:   member.LinesAdded,
			LinesRemoved: member.LinesRemoved,
		}
	}
	bottlenecks := m.BottleneckDevelopers
	if bottlenecks == nil {
		bottlenecks = []string{}
	}
	return dto.DistributionMetricsDTO{
		Gini:                 m.Gini,
		TopContributorShare:  m.TopContributorShare,
		BottleneckDevelopers: bottlenecks,
		MemberMetrics:        members,
	}
}

func MapAggregateMetricsToDTO(m domain.AggregateMetrics) dto.AggregateMetricsDTO {
	return dto.AggregateMetricsDTO{
		TotalCommits:          m.TotalCommits,
		TotalPRsMerged:        m.TotalPRsMerged,
		TotalLinesAdded:       m.TotalLinesAdded,
		TotalLinesRemoved:     m.TotalLinesRemoved,
		AvgCommitsPerMember:   m.AvgCommitsPerMember,
		AvgPRsMergedPerMember: m.AvgPRsMergedPerMember,
	}
}

// Leaderboard mappers
func MapLeaderboardEntriesToDTO(entries []domain.LeaderboardEntry) []dto.LeaderboardEntryDTO {
	result := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		result[i] = dto.LeaderboardEntryDTO{
			DeveloperID: e.DeveloperID,
			Value:       e.Value,
			Rank:        e.Rank,
		}
	}
	return result
}
