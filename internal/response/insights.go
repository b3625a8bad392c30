package response

import (
	"time"

	"dev-insights-service/internal/dto"
)

type DeveloperInsightsResponse struct {
	DeveloperID string                    `json:"developer_id"`
	WorkspaceID string                    `json:"workspace_id"`
	PeriodType  string                    `json:"period_type"`
	PeriodStart time.Time                 `json:"period_start"`
	PeriodEnd   time.Time                 `json:"period_end"`
	Metrics     dto.MetricDimensionsDTO   `json:"metrics"`
	Previous    *dto.DeveloperSnapshotDTO `json:"previous,omitempty"`
}

type TeamInsightsResponse struct {
	WorkspaceID  string                     `json:"workspace_id"`
	TeamID       *string                    `json:"team_id,omitempty"`
	PeriodType   string                     `json:"period_type"`
	PeriodStart  time.Time                  `json:"period_start"`
	PeriodEnd    time.Time                  `json:"period_end"`
	Aggregate    dto.AggregateMetricsDTO    `json:"aggregate_metrics"`
	Distribution dto.DistributionMetricsDTO `json:"distribution_metrics"`
	MemberCount  int                        `json:"member_count"`
}

type LeaderboardResponse struct {
	Metric      string                    `json:"metric"`
	PeriodType  string                    `json:"period_type"`
	PeriodStart time.Time                 `json:"period_start"`
	PeriodEnd   time.Time                 `json:"period_end"`
	Entries     []dto.LeaderboardEntryDTO `json:"entries"`
}
