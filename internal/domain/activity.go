package domain

import "time"

const (
	PRStateOpen   = "open"
	PRStateMerged = "merged"
	PRStateClosed = "closed"

	ReviewStateApproved         = "approved"
	ReviewStateChangesRequested = "changes_requested"
	ReviewStateCommented        = "commented"
)

// Commit is a single commit as recorded by the ingestion pipeline.
// Activity records are append-only and read-only in this service.
type Commit struct {
	SHA          string    `json:"sha"`
	DeveloperID  string    `json:"developer_id"`
	Repository   string    `json:"repository"`
	Additions    int       `json:"additions"`
	Deletions    int       `json:"deletions"`
	FilesChanged int       `json:"files_changed"`
	CommittedAt  time.Time `json:"committed_at"`
}

type PullRequest struct {
	ID          string     `json:"id"`
	DeveloperID string     `json:"developer_id"`
	Repository  string     `json:"repository"`
	State       string     `json:"state"`
	Additions   int        `json:"additions"`
	Deletions   int        `json:"deletions"`
	CreatedAt   time.Time  `json:"created_at"`
	MergedAt    *time.Time `json:"merged_at,omitempty"`
}

type CodeReview struct {
	ID            string    `json:"id"`
	DeveloperID   string    `json:"developer_id"`
	PullRequestID string    `json:"pull_request_id"`
	Repository    string    `json:"repository"`
	State         string    `json:"state"`
	CommentsCount int       `json:"comments_count"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type Developer struct {
	DeveloperID string    `json:"developer_id"`
	WorkspaceID string    `json:"workspace_id"`
	TeamID      *string   `json:"team_id,omitempty"`
	Username    string    `json:"username"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
