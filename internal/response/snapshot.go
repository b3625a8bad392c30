package response

import "dev-insights-service/internal/dto"

type DeveloperSnapshotResponse struct {
	Snapshot dto.DeveloperSnapshotDTO `json:"snapshot"`
}

type TeamSnapshotResponse struct {
	Snapshot dto.TeamSnapshotDTO `json:"snapshot"`
}

type DeveloperSnapshotListResponse struct {
	DeveloperID string                     `json:"developer_id"`
	Snapshots   []dto.DeveloperSnapshotDTO `json:"snapshots"`
}

type WorkspaceSnapshotsResponse struct {
	WorkspaceID        string `json:"workspace_id"`
	SnapshotsGenerated int    `json:"snapshots_generated"`
}
