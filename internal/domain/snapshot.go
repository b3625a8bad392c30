package domain

import "time"

// DeveloperMetricsSnapshot is a replace-on-recompute fact about one
// developer and one closed period. Identity is
// (developer_id, workspace_id, period_type, period_start); recomputing the
// same identity overwrites the row and keeps its id.
type DeveloperMetricsSnapshot struct {
	ID          string     `json:"id"`
	DeveloperID string     `json:"developer_id"`
	WorkspaceID string     `json:"workspace_id"`
	PeriodType  PeriodType `json:"period_type"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	Metrics     MetricDimensions `json:"metrics"`
	ComputedAt  time.Time  `json:"computed_at"`
}

// TeamMetricsSnapshot is the team-level analogue, keyed by
// (workspace_id, team_id, period_type, period_start). A nil TeamID means
// the whole workspace.
type TeamMetricsSnapshot struct {
	ID           string              `json:"id"`
	WorkspaceID  string              `json:"workspace_id"`
	TeamID       *string             `json:"team_id,omitempty"`
	PeriodType   PeriodType          `json:"period_type"`
	PeriodStart  time.Time           `json:"period_start"`
	PeriodEnd    time.Time           `json:"period_end"`
	Aggregate    AggregateMetrics    `json:"aggregate_metrics"`
	Distribution DistributionMetrics `json:"distribution_metrics"`
	MemberCount  int                 `json:"member_count"`
	ComputedAt   time.Time           `json:"computed_at"`
}

// DeveloperInsights is the query-time view of one developer's metrics,
// with the most recent earlier snapshot attached when one exists.
type DeveloperInsights struct {
	DeveloperID string     `json:"developer_id"`
	WorkspaceID string     `json:"workspace_id"`
	PeriodType  PeriodType `json:"period_type"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	Metrics     MetricDimensions          `json:"metrics"`
	Previous    *DeveloperMetricsSnapshot `json:"previous,omitempty"`
}

type TeamInsights struct {
	WorkspaceID  string              `json:"workspace_id"`
	TeamID       *string             `json:"team_id,omitempty"`
	PeriodType   PeriodType          `json:"period_type"`
	PeriodStart  time.Time           `json:"period_start"`
	PeriodEnd    time.Time           `json:"period_end"`
	Aggregate    AggregateMetrics    `json:"aggregate_metrics"`
	Distribution DistributionMetrics `json:"distribution_metrics"`
	MemberCount  int                 `json:"member_count"`
}
