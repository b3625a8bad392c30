package handler

import (
	"context"
	"net/http"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/dto"
	"dev-insights-service/internal/mapper"
	"dev-insights-service/internal/response"
)

type InsightsService interface {
	GetDeveloperInsights(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, window domain.Window) (*domain.DeveloperInsights, error)
	GetTeamInsights(ctx context.Context, workspaceID string, teamID *string, periodType domain.PeriodType, window domain.Window) (*domain.TeamInsights, error)
	Leaderboard(ctx context.Context, workspaceID, metric string, periodType domain.PeriodType, window domain.Window, limit int) ([]domain.LeaderboardEntry, error)
}

type InsightsHandler struct {
	service InsightsService
}

func NewInsightsHandler(service InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// GetDeveloperInsights godoc
// @Summary Get developer insights
// @Description Compute the five metric dimensions for a developer over a half-open period
// @Tags Insights
// @Produce json
// @Param developer_id query string true "Developer ID"
// @Param workspace_id query string true "Workspace ID"
// @Param period_type query string true "Period type" Enums(daily, weekly, sprint, monthly)
// @Param period_start query string true "Period start (RFC3339)"
// @Param period_end query string true "Period end (RFC3339)"
// @Success 200 {object} response.DeveloperInsightsResponse "Insights computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Developer or workspace not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insights/developer [get]
func (h *InsightsHandler) GetDeveloperInsights(w http.ResponseWriter, r *http.Request) {
	developerID := r.URL.Query().Get("developer_id")
	workspaceID := r.URL.Query().Get("workspace_id")
	if developerID == "" || workspaceID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "developer_id and workspace_id are required")
		return
	}
	periodType, window, err := parsePeriodQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, err.Error())
		return
	}

	insights, err := h.service.GetDeveloperInsights(r.Context(), developerID, workspaceID, periodType, window)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.DeveloperInsightsResponse{
		DeveloperID: insights.DeveloperID,
		WorkspaceID: insights.WorkspaceID,
		PeriodType:  string(insights.PeriodType),
		PeriodStart: insights.PeriodStart,
		PeriodEnd:   insights.PeriodEnd,
		Metrics:     mapper.MapMetricDimensionsToDTO(&insights.Metrics),
	}
	if insights.Previous != nil {
		prev := mapper.MapDeveloperSnapshotToDTO(insights.Previous)
		resp.Previous = &prev
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetTeamInsights godoc
// @Summary Get team insights
// @Description Aggregate and distribution metrics for a team or whole workspace
// @Tags Insights
// @Produce json
// @Param workspace_id query string true "Workspace ID"
// @Param team_id query string false "Team ID (whole workspace when omitted)"
// @Param period_type query string true "Period type" Enums(daily, weekly, sprint, monthly)
// @Param period_start query string true "Period start (RFC3339)"
// @Param period_end query string true "Period end (RFC3339)"
// @Success 200 {object} response.TeamInsightsResponse "Insights computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Workspace or team not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insights/team [get]
func (h *InsightsHandler) GetTeamInsights(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.URL.Query().Get("workspace_id")
	if workspaceID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "workspace_id is required")
		return
	}
	var teamID *string
	if v := r.URL.Query().Get("team_id"); v != "" {
		teamID = &v
	}
	periodType, window, err := parsePeriodQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, err.Error())
		return
	}

	insights, err := h.service.GetTeamInsights(r.Context(), workspaceID, teamID, periodType, window)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.TeamInsightsResponse{
		WorkspaceID:  insights.WorkspaceID,
		TeamID:       insights.TeamID,
		PeriodType:   string(insights.PeriodType),
		PeriodStart:  insights.PeriodStart,
		PeriodEnd:    insights.PeriodEnd,
		Aggregate:    mapper.MapAggregateMetricsToDTO(insights.Aggregate),
		Distribution: mapper.MapDistributionMetricsToDTO(&insights.Distribution),
		MemberCount:  insights.MemberCount,
	}

	respondJSON(w, http.StatusOK, resp)
}

// Leaderboard godoc
// @Summary Get workspace leaderboard
// @Description Rank workspace members by one activity metric over a period
// @Tags Insights
// @Produce json
// @Param workspace_id query string true "Workspace ID"
// @Param metric query string true "Metric" Enums(commits, prs_merged, lines_added, reviews_given)
// @Param period_type query string true "Period type" Enums(daily, weekly, sprint, monthly)
// @Param period_start query string true "Period start (RFC3339)"
// @Param period_end query string true "Period end (RFC3339)"
// @Param limit query int false "Max entries"
// @Success 200 {object} response.LeaderboardResponse "Ranked entries"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Workspace not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insights/leaderboard [get]
func (h *InsightsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.URL.Query().Get("workspace_id")
	metric := r.URL.Query().Get("metric")
	if workspaceID == "" || metric == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "workspace_id and metric are required")
		return
	}
	periodType, window, err := parsePeriodQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, err.Error())
		return
	}
	limit := parseLimitQuery(r, 0)

	entries, err := h.service.Leaderboard(r.Context(), workspaceID, metric, periodType, window, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.LeaderboardResponse{
		Metric:      metric,
		PeriodType:  string(periodType),
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
		Entries:     mapper.MapLeaderboardEntriesToDTO(entries),
	}

	respondJSON(w, http.StatusOK, resp)
}
