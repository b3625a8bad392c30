package my_errors

import "errors"

// Sentinel my_errors for business logic
var (
	// Directory my_errors
	ErrDeveloperNotFound = errors.New("developer not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrTeamNotFound      = errors.New("team not found")

	// Window my_errors
	ErrInvalidWindow     = errors.New("invalid window")
	ErrInvalidPeriodType = errors.New("invalid period type")

	// Query my_errors
	ErrUnknownMetric    = errors.New("unknown leaderboard metric")
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
