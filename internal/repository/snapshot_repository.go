package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/my_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository persists metric snapshots. Upserts are single
// INSERT ... ON CONFLICT statements over the natural identity, so concurrent
// recomputes of the same period never duplicate rows or leave partial field
// sets; the row id is assigned on first insert and stable afterwards.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) UpsertDeveloperSnapshot(ctx context.Context, snap *domain.DeveloperMetricsSnapshot) (*domain.DeveloperMetricsSnapshot, error) {
	velocity, err := json.Marshal(snap.Metrics.Velocity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal velocity: %w", err)
	}
	efficiency, err := json.Marshal(snap.Metrics.Efficiency)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal efficiency: %w", err)
	}
	quality, err := json.Marshal(snap.Metrics.Quality)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quality: %w", err)
	}
	sustainability, err := json.Marshal(snap.Metrics.Sustainability)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sustainability: %w", err)
	}
	collaboration, err := json.Marshal(snap.Metrics.Collaboration)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collaboration: %w", err)
	}
	rawCounts, err := json.Marshal(snap.Metrics.RawCounts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw counts: %w", err)
	}

	query := `
        INSERT INTO developer_metrics_snapshots (
            id, developer_id, workspace_id, period_type, period_start, period_end,
            velocity, efficiency, quality, sustainability, collaboration, raw_counts, computed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (developer_id, workspace_id, period_type, period_start) DO UPDATE SET
            period_end = EXCLUDED.period_end,
            velocity = EXCLUDED.velocity,
            efficiency = EXCLUDED.efficiency,
            quality = EXCLUDED.quality,
            sustainability = EXCLUDED.sustainability,
            collaboration = EXCLUDED.collaboration,
            raw_counts = EXCLUDED.raw_counts,
            computed_at = EXCLUDED.computed_at
        RETURNING id
    `
	saved := *snap
	err = r.pool.QueryRow(ctx, query,
		uuid.New().String(), snap.DeveloperID, snap.WorkspaceID, string(snap.PeriodType),
		snap.PeriodStart, snap.PeriodEnd,
		velocity, efficiency, quality, sustainability, collaboration, rawCounts,
		snap.ComputedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert developer snapshot: %w", err)
	}
	return &saved, nil
}

func (r *SnapshotRepository) UpsertTeamSnapshot(ctx context.Context, snap *domain.TeamMetricsSnapshot) (*domain.TeamMetricsSnapshot, error) {
	aggregate, err := json.Marshal(snap.Aggregate)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal aggregate metrics: %w", err)
	}
	distribution, err := json.Marshal(snap.Distribution)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal distribution metrics: %w", err)
	}

	// NULL team_id means the whole workspace; the unique index coalesces it
	// so there is one row per (workspace, team, period type, period start).
	query := `
        INSERT INTO team_metrics_snapshots (
            id, workspace_id, team_id, period_type, period_start, period_end,
            aggregate_metrics, distribution_metrics, member_count, computed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (workspace_id, (COALESCE(team_id, '')), period_type, period_start) DO UPDATE SET
            period_end = EXCLUDED.period_end,
            aggregate_metrics = EXCLUDED.aggregate_metrics,
            distribution_metrics = EXCLUDED.distribution_metrics,
            member_count = EXCLUDED.member_count,
            computed_at = EXCLUDED.computed_at
        RETURNING id
    `
	saved := *snap
	err = r.pool.QueryRow(ctx, query,
		uuid.New().String(), snap.WorkspaceID, snap.TeamID, string(snap.PeriodType),
		snap.PeriodStart, snap.PeriodEnd,
		aggregate, distribution, snap.MemberCount, snap.ComputedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert team snapshot: %w", err)
	}
	return &saved, nil
}

func (r *SnapshotRepository) GetDeveloperSnapshots(ctx context.Context, developerID string, periodType domain.PeriodType, limit int) ([]domain.DeveloperMetricsSnapshot, error) {
	query := `
        SELECT id, developer_id, workspace_id, period_type, period_start, period_end,
               velocity, efficiency, quality, sustainability, collaboration, raw_counts, computed_at
        FROM developer_metrics_snapshots
        WHERE developer_id = $1 AND period_type = $2
        ORDER BY period_start DESC
        LIMIT $3
    `
	rows, err := r.pool.Query(ctx, query, developerID, string(periodType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get developer snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.DeveloperMetricsSnapshot
	for rows.Next() {
		snap, err := scanDeveloperSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, *snap)
	}
	return snaps, rows.Err()
}

// GetPreviousDeveloperSnapshot returns the most recent persisted snapshot
// whose period starts strictly before the given time.
func (r *SnapshotRepository) GetPreviousDeveloperSnapshot(ctx context.Context, developerID, workspaceID string, periodType domain.PeriodType, before time.Time) (*domain.DeveloperMetricsSnapshot, error) {
	query := `
        SELECT id, developer_id, workspace_id, period_type, period_start, period_end,
               velocity, efficiency, quality, sustainability, collaboration, raw_counts, computed_at
        FROM developer_metrics_snapshots
        WHERE developer_id = $1 AND workspace_id = $2 AND period_type = $3 AND period_start < $4
        ORDER BY period_start DESC
        LIMIT 1
    `
	rows, err := r.pool.Query(ctx, query, developerID, workspaceID, string(periodType), before)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get previous snapshot: %w", err)
		}
		return nil, my_errors.ErrSnapshotNotFound
	}
	return scanDeveloperSnapshot(rows)
}

func scanDeveloperSnapshot(rows pgx.Rows) (*domain.DeveloperMetricsSnapshot, error) {
	var snap domain.DeveloperMetricsSnapshot
	var velocity, efficiency, quality, sustainability, collaboration, rawCounts []byte
	if err := rows.Scan(
		&snap.ID, &snap.DeveloperID, &snap.WorkspaceID, &snap.PeriodType,
		&snap.PeriodStart, &snap.PeriodEnd,
		&velocity, &efficiency, &quality, &sustainability, &collaboration, &rawCounts,
		&snap.ComputedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan developer snapshot: %w", err)
	}

	for _, part := range []struct {
		raw []byte
		dst any
	}{
		{velocity, &snap.Metrics.Velocity},
		{efficiency, &snap.Metrics.Efficiency},
		{quality, &snap.Metrics.Quality},
		{sustainability, &snap.Metrics.Sustainability},
		{collaboration, &snap.Metrics.Collaboration},
		{rawCounts, &snap.Metrics.RawCounts},
	} {
		if err := json.Unmarshal(part.raw, part.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot metrics: %w", err)
		}
	}
	return &snap, nil
}
