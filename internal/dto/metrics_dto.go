package dto

import "time"

type VelocityMetricsDTO struct {
	CommitsCount    int     `json:"commits_count"`
	PRsMerged       int     `json:"prs_merged"`
	LinesAdded      int     `json:"lines_added"`
	LinesRemoved    int     `json:"lines_removed"`
	NetLines        int     `json:"net_lines"`
	AvgCommitSize   float64 `json:"avg_commit_size"`
	CommitFrequency float64 `json:"commit_frequency"`
	PRThroughput    float64 `json:"pr_throughput"`
}

type EfficiencyMetricsDTO struct {
	AvgPRCycleTimeHours       float64 `json:"avg_pr_cycle_time_hours"`
	AvgTimeToFirstReviewHours float64 `json:"avg_time_to_first_review_hours"`
	PRMergeRate               float64 `json:"pr_merge_rate"`
	AvgPRSize                 float64 `json:"avg_pr_size"`
	ReworkRatio               float64 `json:"rework_ratio"`
}

type QualityMetricsDTO struct {
	ReviewParticipationRate float64 `json:"review_participation_rate"`
	AvgReviewDepth          float64 `json:"avg_review_depth"`
	ReviewTurnaroundHours   float64 `json:"review_turnaround_hours"`
	SelfMergeRate           float64 `json:"self_merge_rate"`
}

type SustainabilityMetricsDTO struct {
	WeekendCommitRatio   float64 `json:"weekend_commit_ratio"`
	LateNightCommitRatio float64 `json:"late_night_commit_ratio"`
	LongestStreakDays    int     `json:"longest_streak_days"`
	FocusScore           float64 `json:"focus_score"`
}

type CollaborationMetricsDTO struct {
	UniqueCollaborators int `json:"unique_collaborators"`
	ReviewsGiven        int `json:"reviews_given"`
	ReviewsReceived     int `json:"reviews_received"`
}

type RawCountsDTO struct {
	Commits         int `json:"commits"`
	PRsOpened       int `json:"prs_opened"`
	PRsMerged       int `json:"prs_merged"`
	ReviewsGiven    int `json:"reviews_given"`
	ReviewsReceived int `json:"reviews_received"`
}

type MetricDimensionsDTO struct {
	Velocity       VelocityMetricsDTO       `json:"velocity"`
	Efficiency     EfficiencyMetricsDTO     `json:"efficiency"`
	Quality        QualityMetricsDTO        `json:"quality"`
	Sustainability SustainabilityMetricsDTO `json:"sustainability"`
	Collaboration  CollaborationMetricsDTO  `json:"collaboration"`
	RawCounts      RawCountsDTO             `json:"raw_counts"`
}

type DeveloperSnapshotDTO struct {
	ID          string              `json:"id"`
	DeveloperID string              `json:"developer_id"`
	WorkspaceID string              `json:"workspace_id"`
	PeriodType  string              `json:"period_type"`
	PeriodStart time.Time           `json:"period_start"`
	PeriodEnd   time.Time           `json:"period_end"`
	Metrics     MetricDimensionsDTO `json:"metrics"`
	ComputedAt  time.Time           `json:"computed_at"`
}

type MemberMetricDTO struct {
	DeveloperID  string `json:"developer_id"`
	Commits      int    `json:"commits"`
	PRsMerged    int    `json:"prs_merged"`
	ReviewsGiven int    `json:"reviews_given"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
}

type DistributionMetricsDTO struct {
	Gini                 float64           `json:"gini"`
	TopContributorShare  float64           `json:"top_contributor_share"`
	BottleneckDevelopers []string          `json:"bottleneck_developers"`
	MemberMetrics        []MemberMetricDTO `json:"member_metrics"`
}

type AggregateMetricsDTO struct {
	TotalCommits          int     `json:"total_commits"`
	TotalPRsMerged        int     `json:"total_prs_merged"`
	TotalLinesAdded       int     `json:"total_lines_added"`
	TotalLinesRemoved     int     `json:"total_lines_removed"`
	AvgCommitsPerMember   float64 `json:"avg_commits_per_member"`
	AvgPRsMergedPerMember float64 `json:"avg_prs_merged_per_member"`
}

type TeamSnapshotDTO struct {
	ID           string                 `json:"id"`
	WorkspaceID  string                 `json:"workspace_id"`
	TeamID       *string                `json:"team_id,omitempty"`
	PeriodType   string                 `json:"period_type"`
	PeriodStart  time.Time              `json:"period_start"`
	PeriodEnd    time.Time              `json:"period_end"`
	Aggregate    AggregateMetricsDTO    `json:"aggregate_metrics"`
	Distribution DistributionMetricsDTO `json:"distribution_metrics"`
	MemberCount  int                    `json:"member_count"`
	ComputedAt   time.Time              `json:"computed_at"`
}

type LeaderboardEntryDTO struct {
	DeveloperID string  `json:"developer_id"`
	Value       float64 `json:"value"`
	Rank        int     `json:"rank"`
}
