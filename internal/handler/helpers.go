package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/dto"
	"dev-insights-service/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondWithError(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func respondWithError(w http.ResponseWriter, status int, errResp *dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondServiceError maps the service error taxonomy to HTTP codes:
// structural misuse is a client error, everything else is infrastructure.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrDeveloperNotFound),
		errors.Is(err, my_errors.ErrWorkspaceNotFound),
		errors.Is(err, my_errors.ErrTeamNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrInvalidWindow):
		respondError(w, http.StatusBadRequest, dto.ErrCodeInvalidWindow, err.Error())
	case errors.Is(err, my_errors.ErrInvalidPeriodType):
		respondError(w, http.StatusBadRequest, dto.ErrCodeInvalidPeriod, err.Error())
	case errors.Is(err, my_errors.ErrUnknownMetric):
		respondError(w, http.StatusBadRequest, dto.ErrCodeUnknownMetric, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
	}
}

// parsePeriodQuery reads period_type, period_start and period_end query
// parameters. Timestamps are RFC3339.
func parsePeriodQuery(r *http.Request) (domain.PeriodType, domain.Window, error) {
	periodType := domain.PeriodType(r.URL.Query().Get("period_type"))

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("period_start"))
	if err != nil {
		return "", domain.Window{}, fmt.Errorf("invalid period_start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("period_end"))
	if err != nil {
		return "", domain.Window{}, fmt.Errorf("invalid period_end: %w", err)
	}

	return periodType, domain.Window{Start: start, End: end}, nil
}

// parseLimitQuery reads an optional positive limit parameter, falling back
// to def.
func parseLimitQuery(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
