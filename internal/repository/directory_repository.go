package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DirectoryRepository resolves developer, workspace and team identifiers.
// Membership itself is managed by an external module; this service only
// reads it.
type DirectoryRepository struct {
	pool *pgxpool.Pool
}

func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

func (r *DirectoryRepository) DeveloperExists(ctx context.Context, developerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM developers WHERE developer_id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, developerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check developer existence: %w", err)
	}
	return exists, nil
}

func (r *DirectoryRepository) WorkspaceExists(ctx context.Context, workspaceID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM workspaces WHERE workspace_id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, workspaceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check workspace existence: %w", err)
	}
	return exists, nil
}

func (r *DirectoryRepository) TeamExists(ctx context.Context, workspaceID, teamID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE workspace_id = $1 AND team_id = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, workspaceID, teamID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

func (r *DirectoryRepository) ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]string, error) {
	query := `SELECT developer_id FROM developers WHERE workspace_id = $1 AND is_active = true ORDER BY developer_id`
	return r.listMembers(ctx, query, workspaceID)
}

func (r *DirectoryRepository) ListTeamMembers(ctx context.Context, workspaceID, teamID string) ([]string, error) {
	query := `SELECT developer_id FROM developers WHERE workspace_id = $1 AND team_id = $2 AND is_active = true ORDER BY developer_id`
	return r.listMembers(ctx, query, workspaceID, teamID)
}

func (r *DirectoryRepository) listMembers(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, id)
	}
	return members, rows.Err()
}
