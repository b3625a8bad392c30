package handler

import (
	"context"
	"net/http"
	"time"

	"dev-insights-service/internal/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler reports liveness plus database reachability, since every
// endpoint in this service is backed by Postgres reads.
type HealthHandler struct {
	pool *pgxpool.Pool
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, dto.ErrCodeInternal, "database unreachable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
