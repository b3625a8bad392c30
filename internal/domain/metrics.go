package domain

// VelocityMetrics describes raw output volume over a window.
type VelocityMetrics struct {
	CommitsCount    int     `json:"commits_count"`
	PRsMerged       int     `json:"prs_merged"`
	LinesAdded      int     `json:"lines_added"`
	LinesRemoved    int     `json:"lines_removed"`
	NetLines        int     `json:"net_lines"`
	AvgCommitSize   float64 `json:"avg_commit_size"`
	CommitFrequency float64 `json:"commit_frequency"`
	PRThroughput    float64 `json:"pr_throughput"`
}

// EfficiencyMetrics describes how quickly work moves through review.
type EfficiencyMetrics struct {
	AvgPRCycleTimeHours       float64 `json:"avg_pr_cycle_time_hours"`
	AvgTimeToFirstReviewHours float64 `json:"avg_time_to_first_review_hours"`
	PRMergeRate               float64 `json:"pr_merge_rate"`
	AvgPRSize                 float64 `json:"avg_pr_size"`
	ReworkRatio               float64 `json:"rework_ratio"`
}

// QualityMetrics describes review engagement and hygiene.
type QualityMetrics struct {
	ReviewParticipationRate float64 `json:"review_participation_rate"`
	AvgReviewDepth          float64 `json:"avg_review_depth"`
	ReviewTurnaroundHours   float64 `json:"review_turnaround_hours"`
	SelfMergeRate           float64 `json:"self_merge_rate"`
}

// SustainabilityMetrics describes working-pattern health. Ratios are
// computed on raw UTC timestamps, no per-developer timezone adjustment.
type SustainabilityMetrics struct {
	WeekendCommitRatio   float64 `json:"weekend_commit_ratio"`
	LateNightCommitRatio float64 `json:"late_night_commit_ratio"`
	LongestStreakDays    int     `json:"longest_streak_days"`
	FocusScore           float64 `json:"focus_score"`
}

type CollaborationMetrics struct {
	UniqueCollaborators int `json:"unique_collaborators"`
	ReviewsGiven        int `json:"reviews_given"`
	ReviewsReceived     int `json:"reviews_received"`
}

type RawCounts struct {
	Commits         int `json:"commits"`
	PRsOpened       int `json:"prs_opened"`
	PRsMerged       int `json:"prs_merged"`
	ReviewsGiven    int `json:"reviews_given"`
	ReviewsReceived int `json:"reviews_received"`
}

// MetricDimensions bundles the five computed metric sets for one developer
// and one window, plus the raw activity counts behind them.
type MetricDimensions struct {
	Velocity       VelocityMetrics       `json:"velocity"`
	Efficiency     EfficiencyMetrics     `json:"efficiency"`
	Quality        QualityMetrics        `json:"quality"`
	Sustainability SustainabilityMetrics `json:"sustainability"`
	Collaboration  CollaborationMetrics  `json:"collaboration"`
	RawCounts      RawCounts             `json:"raw_counts"`
}

// MemberMetric is the per-developer summary produced for a team period.
type MemberMetric struct {
	DeveloperID  string `json:"developer_id"`
	Commits      int    `json:"commits"`
	PRsMerged    int    `json:"prs_merged"`
	ReviewsGiven int    `json:"reviews_given"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
}

// DistributionMetrics describes how activity is spread across a team.
type DistributionMetrics struct {
	Gini                 float64        `json:"gini"`
	TopContributorShare  float64        `json:"top_contributor_share"`
	BottleneckDevelopers []string       `json:"bottleneck_developers"`
	MemberMetrics        []MemberMetric `json:"member_metrics"`
}

// AggregateMetrics is the sum/mean rollup of member activity for a team period.
type AggregateMetrics struct {
	TotalCommits          int     `json:"total_commits"`
	TotalPRsMerged        int     `json:"total_prs_merged"`
	TotalLinesAdded       int     `json:"total_lines_added"`
	TotalLinesRemoved     int     `json:"total_lines_removed"`
	AvgCommitsPerMember   float64 `json:"avg_commits_per_member"`
	AvgPRsMergedPerMember float64 `json:"avg_prs_merged_per_member"`
}

type LeaderboardEntry struct {
	DeveloperID string  `json:"developer_id"`
	Value       float64 `json:"value"`
	Rank        int     `json:"rank"`
}

// Leaderboard metric names accepted by the orchestrator.
const (
	MetricCommits      = "commits"
	MetricPRsMerged    = "prs_merged"
	MetricLinesAdded   = "lines_added"
	MetricReviewsGiven = "reviews_given"
)
