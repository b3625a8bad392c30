package repository

import (
	"context"
	"fmt"

	"dev-insights-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository reads the append-only activity tables owned by the
// ingestion pipeline. All window filters are half-open: [start, end).
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) FetchCommits(ctx context.Context, developerID string, window domain.Window) ([]domain.Commit, error) {
	query := `
        SELECT sha, developer_id, repository, additions, deletions, files_changed, committed_at
        FROM commits
        WHERE developer_id = $1 AND committed_at >= $2 AND committed_at < $3
        ORDER BY committed_at
    `
	rows, err := r.pool.Query(ctx, query, developerID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}
	defer rows.Close()

	var commits []domain.Commit
	for rows.Next() {
		var c domain.Commit
		if err := rows.Scan(&c.SHA, &c.DeveloperID, &c.Repository, &c.Additions, &c.Deletions, &c.FilesChanged, &c.CommittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		commits = append(commits, c)
	}
	return commits, rows.Err()
}

func (r *ActivityRepository) FetchMergedPRs(ctx context.Context, developerID string, window domain.Window) ([]domain.PullRequest, error) {
	query := `
        SELECT id, developer_id, repository, state, additions, deletions, created_at, merged_at
        FROM pull_requests
        WHERE developer_id = $1 AND merged_at IS NOT NULL AND merged_at >= $2 AND merged_at < $3
        ORDER BY merged_at
    `
	rows, err := r.pool.Query(ctx, query, developerID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merged PRs: %w", err)
	}
	defer rows.Close()
	return collectPRs(rows)
}

func (r *ActivityRepository) FetchOpenedPRs(ctx context.Context, developerID string, window domain.Window) ([]domain.PullRequest, error) {
	query := `
        SELECT id, developer_id, repository, state, additions, deletions, created_at, merged_at
        FROM pull_requests
        WHERE developer_id = $1 AND created_at >= $2 AND created_at < $3
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query, developerID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opened PRs: %w", err)
	}
	defer rows.Close()
	return collectPRs(rows)
}

func (r *ActivityRepository) FetchPRsByIDs(ctx context.Context, prIDs []string) ([]domain.PullRequest, error) {
	if len(prIDs) == 0 {
		return nil, nil
	}
	query := `
        SELECT id, developer_id, repository, state, additions, deletions, created_at, merged_at
        FROM pull_requests
        WHERE id = ANY($1)
    `
	rows, err := r.pool.Query(ctx, query, prIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PRs by ids: %w", err)
	}
	defer rows.Close()
	return collectPRs(rows)
}

func (r *ActivityRepository) FetchReviewsByDeveloper(ctx context.Context, developerID string, window domain.Window) ([]domain.CodeReview, error) {
	query := `
        SELECT id, developer_id, pull_request_id, repository, state, comments_count, submitted_at
        FROM code_reviews
        WHERE developer_id = $1 AND submitted_at >= $2 AND submitted_at < $3
        ORDER BY submitted_at
    `
	rows, err := r.pool.Query(ctx, query, developerID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews by developer: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *ActivityRepository) FetchReviewsOnDeveloperPRs(ctx context.Context, developerID string, window domain.Window) ([]domain.CodeReview, error) {
	query := `
        SELECT cr.id, cr.developer_id, cr.pull_request_id, cr.repository, cr.state, cr.comments_count, cr.submitted_at
        FROM code_reviews cr
        INNER JOIN pull_requests pr ON cr.pull_request_id = pr.id
        WHERE pr.developer_id = $1 AND cr.submitted_at >= $2 AND cr.submitted_at < $3
        ORDER BY cr.submitted_at
    `
	rows, err := r.pool.Query(ctx, query, developerID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews on developer PRs: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *ActivityRepository) FetchReviewsForPRs(ctx context.Context, prIDs []string) ([]domain.CodeReview, error) {
	if len(prIDs) == 0 {
		return nil, nil
	}
	query := `
        SELECT id, developer_id, pull_request_id, repository, state, comments_count, submitted_at
        FROM code_reviews
        WHERE pull_request_id = ANY($1)
        ORDER BY submitted_at
    `
	rows, err := r.pool.Query(ctx, query, prIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for PRs: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

// CountDistinctPRsReviewed counts PRs that received at least one review from
// any developer of the workspace within the window.
func (r *ActivityRepository) CountDistinctPRsReviewed(ctx context.Context, workspaceID string, window domain.Window) (int, error) {
	query := `
        SELECT COUNT(DISTINCT cr.pull_request_id)
        FROM code_reviews cr
        INNER JOIN developers d ON cr.developer_id = d.developer_id
        WHERE d.workspace_id = $1 AND cr.submitted_at >= $2 AND cr.submitted_at < $3
    `
	var count int
	if err := r.pool.QueryRow(ctx, query, workspaceID, window.Start, window.End).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviewed PRs: %w", err)
	}
	return count, nil
}

func collectPRs(rows pgx.Rows) ([]domain.PullRequest, error) {
	var prs []domain.PullRequest
	for rows.Next() {
		var pr domain.PullRequest
		if err := rows.Scan(&pr.ID, &pr.DeveloperID, &pr.Repository, &pr.State, &pr.Additions, &pr.Deletions, &pr.CreatedAt, &pr.MergedAt); err != nil {
			return nil, fmt.Errorf("failed to scan PR: %w", err)
		}
		prs = append(prs, pr)
	}
	return prs, rows.Err()
}

func collectReviews(rows pgx.Rows) ([]domain.CodeReview, error) {
	var reviews []domain.CodeReview
	for rows.Next() {
		var rev domain.CodeReview
		if err := rows.Scan(&rev.ID, &rev.DeveloperID, &rev.PullRequestID, &rev.Repository, &rev.State, &rev.CommentsCount, &rev.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
