package request

import "time"

type SaveDeveloperSnapshotRequest struct {
	DeveloperID string    `json:"developer_id" validate:"required,min=1,max=255"`
	WorkspaceID string    `json:"workspace_id" validate:"required,min=1,max=255"`
	PeriodType  string    `json:"period_type" validate:"required,oneof=daily weekly sprint monthly"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
}

type GenerateWorkspaceSnapshotsRequest struct {
	WorkspaceID string    `json:"workspace_id" validate:"required,min=1,max=255"`
	PeriodType  string    `json:"period_type" validate:"required,oneof=daily weekly sprint monthly"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
}

type SaveTeamSnapshotRequest struct {
	WorkspaceID string    `json:"workspace_id" validate:"required,min=1,max=255"`
	TeamID      *string   `json:"team_id,omitempty" validate:"omitempty,min=1,max=255"`
	PeriodType  string    `json:"period_type" validate:"required,oneof=daily weekly sprint monthly"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
}
