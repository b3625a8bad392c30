package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/dto"
	"dev-insights-service/internal/mapper"
	"dev-insights-service/internal/request"
	"dev-insights-service/internal/response"

	"github.com/go-playground/validator/v10"
)

type SnapshotService interface {
	SaveDeveloperSnapshot(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, window domain.Window) (*domain.DeveloperMetricsSnapshot, error)
	SaveTeamSnapshot(ctx context.Context, workspaceID string, teamID *string, periodType domain.PeriodType, window domain.Window) (*domain.TeamMetricsSnapshot, error)
	GetDeveloperSnapshots(ctx context.Context, developerID string, periodType domain.PeriodType, limit int) ([]domain.DeveloperMetricsSnapshot, error)
	GenerateWorkspaceSnapshots(ctx context.Context, workspaceID string, periodType domain.PeriodType, window domain.Window) (int, error)
}

const defaultSnapshotListLimit = 12

type SnapshotHandler struct {
	service   SnapshotService
	validator *validator.Validate
}

func NewSnapshotHandler(service SnapshotService, validator *validator.Validate) *SnapshotHandler {
	return &SnapshotHandler{
		service:   service,
		validator: validator,
	}
}

// SaveDeveloperSnapshot godoc
// @Summary Save a developer snapshot
// @Description Recompute all metric dimensions for the period and upsert the snapshot by identity
// @Tags Snapshots
// @Accept json
// @Produce json
// @Param request body request.SaveDeveloperSnapshotRequest true "Snapshot request"
// @Success 200 {object} response.DeveloperSnapshotResponse "Snapshot persisted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Developer or workspace not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /snapshots/developer [post]
func (h *SnapshotHandler) SaveDeveloperSnapshot(w http.ResponseWriter, r *http.Request) {
	var req request.SaveDeveloperSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "validation error: "+err.Error())
		return
	}

	snap, err := h.service.SaveDeveloperSnapshot(
		r.Context(),
		req.DeveloperID,
		req.WorkspaceID,
		domain.PeriodType(req.PeriodType),
		domain.Window{Start: req.PeriodStart, End: req.PeriodEnd},
	)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.DeveloperSnapshotResponse{
		Snapshot: mapper.MapDeveloperSnapshotToDTO(snap),
	}

	respondJSON(w, http.StatusOK, resp)
}

// SaveTeamSnapshot godoc
// @Summary Save a team snapshot
// @Description Recompute team aggregate and distribution metrics and upsert the snapshot
// @Tags Snapshots
// @Accept json
// @Produce json
// @Param request body request.SaveTeamSnapshotRequest true "Snapshot request"
// @Success 200 {object} response.TeamSnapshotResponse "Snapshot persisted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Workspace or team not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /snapshots/team [post]
func (h *SnapshotHandler) SaveTeamSnapshot(w http.ResponseWriter, r *http.Request) {
	var req request.SaveTeamSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "validation error: "+err.Error())
		return
	}

	snap, err := h.service.SaveTeamSnapshot(
		r.Context(),
		req.WorkspaceID,
		req.TeamID,
		domain.PeriodType(req.PeriodType),
		domain.Window{Start: req.PeriodStart, End: req.PeriodEnd},
	)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.TeamSnapshotResponse{
		Snapshot: mapper.MapTeamSnapshotToDTO(snap),
	}

	respondJSON(w, http.StatusOK, resp)
}

// GenerateWorkspaceSnapshots godoc
// @Summary Generate workspace snapshots
// @Description Recompute and upsert snapshots for every workspace member plus a workspace-level team snapshot
// @Tags Snapshots
// @Accept json
// @Produce json
// @Param request body request.GenerateWorkspaceSnapshotsRequest true "Batch request"
// @Success 200 {object} response.WorkspaceSnapshotsResponse "Snapshots generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Workspace not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /snapshots/workspace [post]
func (h *SnapshotHandler) GenerateWorkspaceSnapshots(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateWorkspaceSnapshotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "validation error: "+err.Error())
		return
	}

	count, err := h.service.GenerateWorkspaceSnapshots(
		r.Context(),
		req.WorkspaceID,
		domain.PeriodType(req.PeriodType),
		domain.Window{Start: req.PeriodStart, End: req.PeriodEnd},
	)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.WorkspaceSnapshotsResponse{
		WorkspaceID:        req.WorkspaceID,
		SnapshotsGenerated: count,
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetDeveloperSnapshots godoc
// @Summary List developer snapshots
// @Description Persisted snapshots for a developer, newest period first
// @Tags Snapshots
// @Produce json
// @Param developer_id query string true "Developer ID"
// @Param period_type query string true "Period type" Enums(daily, weekly, sprint, monthly)
// @Param limit query int false "Max snapshots (default 12)"
// @Success 200 {object} response.DeveloperSnapshotListResponse "Snapshots"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /snapshots/developer [get]
func (h *SnapshotHandler) GetDeveloperSnapshots(w http.ResponseWriter, r *http.Request) {
	developerID := r.URL.Query().Get("developer_id")
	if developerID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "developer_id is required")
		return
	}
	periodType := domain.PeriodType(r.URL.Query().Get("period_type"))
	if !periodType.Valid() {
		respondError(w, http.StatusBadRequest, dto.ErrCodeInvalidPeriod, "period_type must be one of daily, weekly, sprint, monthly")
		return
	}
	limit := parseLimitQuery(r, defaultSnapshotListLimit)

	snaps, err := h.service.GetDeveloperSnapshots(r.Context(), developerID, periodType, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.DeveloperSnapshotListResponse{
		DeveloperID: developerID,
		Snapshots:   mapper.MapDeveloperSnapshotsToDTO(snaps),
	}

	respondJSON(w, http.StatusOK, resp)
}
