package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/my_errors"
)

// fakeActivity serves canned activity records with the same half-open
// window semantics as the real repository.
type fakeActivity struct {
	commits []domain.Commit
	prs     []domain.PullRequest
	reviews []domain.CodeReview
}

func (f *fakeActivity) FetchCommits(_ context.Context, developerID string, window domain.Window) ([]domain.Commit, error) {
	var out []domain.Commit
	for _, c := range f.commits {
		if c.DeveloperID == developerID && window.Contains(c.CommittedAt) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeActivity) FetchMergedPRs(_ context.Context, developerID string, window domain.Window) ([]domain.PullRequest, error) {
	var out []domain.PullRequest
	for _, pr := range f.prs {
		if pr.DeveloperID == developerID && pr.MergedAt != nil && window.Contains(*pr.MergedAt) {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (f *fakeActivity) FetchOpenedPRs(_ context.Context, developerID string, window domain.Window) ([]domain.PullRequest, error) {
	var out []domain.PullRequest
	for _, pr := range f.prs {
		if pr.DeveloperID == developerID && window.Contains(pr.CreatedAt) {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (f *fakeActivity) FetchPRsByIDs(_ context.Context, prIDs []string) ([]domain.PullRequest, error) {
	wanted := make(map[string]struct{}, len(prIDs))
	for _, id := range prIDs {
		wanted[id] = struct{}{}
	}
	var out []domain.PullRequest
	for _, pr := range f.prs {
		if _, ok := wanted[pr.ID]; ok {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (f *fakeActivity) FetchReviewsByDeveloper(_ context.Context, developerID string, window domain.Window) ([]domain.CodeReview, error) {
	var out []domain.CodeReview
	for _, rev := range f.reviews {
		if rev.DeveloperID == developerID && window.Contains(rev.SubmittedAt) {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (f *fakeActivity) FetchReviewsOnDeveloperPRs(_ context.Context, developerID string, window domain.Window) ([]domain.CodeReview, error) {
	owned := make(map[string]struct{})
	for _, pr := range f.prs {
		if pr.DeveloperID == developerID {
			owned[pr.ID] = struct{}{}
		}
	}
	var out []domain.CodeReview
	for _, rev := range f.reviews {
		if _, ok := owned[rev.PullRequestID]; ok && window.Contains(rev.SubmittedAt) {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (f *fakeActivity) FetchReviewsForPRs(_ context.Context, prIDs []string) ([]domain.CodeReview, error) {
	wanted := make(map[string]struct{}, len(prIDs))
	for _, id := range prIDs {
		wanted[id] = struct{}{}
	}
	var out []domain.CodeReview
	for _, rev := range f.reviews {
		if _, ok := wanted[rev.PullRequestID]; ok {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (f *fakeActivity) CountDistinctPRsReviewed(_ context.Context, _ string, window domain.Window) (int, error) {
	prs := make(map[string]struct{})
	for _, rev := range f.reviews {
		if window.Contains(rev.SubmittedAt) {
			prs[rev.PullRequestID] = struct{}{}
		}
	}
	return len(prs), nil
}

type fakeDirectory struct {
	developers map[string]struct{}
	workspaces map[string][]string
	teams      map[string][]string
}

func (f *fakeDirectory) DeveloperExists(_ context.Context, developerID string) (bool, error) {
	_, ok := f.developers[developerID]
	return ok, nil
}

func (f *fakeDirectory) WorkspaceExists(_ context.Context, workspaceID string) (bool, error) {
	_, ok := f.workspaces[workspaceID]
	return ok, nil
}

func (f *fakeDirectory) TeamExists(_ context.Context, workspaceID, teamID string) (bool, error) {
	_, ok := f.teams[workspaceID+"/"+teamID]
	return ok, nil
}

func (f *fakeDirectory) ListWorkspaceMembers(_ context.Context, workspaceID string) ([]string, error) {
	return f.workspaces[workspaceID], nil
}

func (f *fakeDirectory) ListTeamMembers(_ context.Context, workspaceID, teamID string) ([]string, error) {
	return f.teams[workspaceID+"/"+teamID], nil
}

type devSnapshotKey struct {
	developerID string
	workspaceID string
	periodType  domain.PeriodType
	periodStart time.Time
}

// fakeSnapshots mirrors the upsert semantics of the real store: one row per
// identity key, id assigned on first insert and stable afterwards. The mutex
// stands in for the database's statement atomicity; batch generation hits
// the store from several goroutines.
type fakeSnapshots struct {
	mu        sync.Mutex
	developer map[devSnapshotKey]*domain.DeveloperMetricsSnapshot
	team      map[string]*domain.TeamMetricsSnapshot
	nextID    int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{
		developer: make(map[devSnapshotKey]*domain.DeveloperMetricsSnapshot),
		team:      make(map[string]*domain.TeamMetricsSnapshot),
	}
}

func (f *fakeSnapshots) UpsertDeveloperSnapshot(_ context.Context, snap *domain.DeveloperMetricsSnapshot) (*domain.DeveloperMetricsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := devSnapshotKey{snap.DeveloperID, snap.WorkspaceID, snap.PeriodType, snap.PeriodStart}
	saved := *snap
	if existing, ok := f.developer[key]; ok {
		saved.ID = existing.ID
	} else {
		f.nextID++
		saved.ID = fmt.Sprintf("snap-%d", f.nextID)
	}
	f.developer[key] = &saved
	return &saved, nil
}

func (f *fakeSnapshots) UpsertTeamSnapshot(_ context.Context, snap *domain.TeamMetricsSnapshot) (*domain.TeamMetricsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	teamID := ""
	if snap.TeamID != nil {
		teamID = *snap.TeamID
	}
	key := fmt.Sprintf("%s/%s/%s/%d", snap.WorkspaceID, teamID, snap.PeriodType, snap.PeriodStart.Unix())
	saved := *snap
	if existing, ok := f.team[key]; ok {
		saved.ID = existing.ID
	} else {
		f.nextID++
		saved.ID = fmt.Sprintf("snap-%d", f.nextID)
	}
	f.team[key] = &saved
	return &saved, nil
}

func (f *fakeSnapshots) GetDeveloperSnapshots(_ context.Context, developerID string, periodType domain.PeriodType, limit int) ([]domain.DeveloperMetricsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.DeveloperMetricsSnapshot
	for key, snap := range f.developer {
		if key.developerID == developerID && key.periodType == periodType {
			out = append(out, *snap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.After(out[j].PeriodStart) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSnapshots) GetPreviousDeveloperSnapshot(_ context.Context, developerID, workspaceID string, periodType domain.PeriodType, before time.Time) (*domain.DeveloperMetricsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var best *domain.DeveloperMetricsSnapshot
	for key, snap := range f.developer {
		if key.developerID != developerID || key.workspaceID != workspaceID || key.periodType != periodType {
			continue
		}
		if !key.periodStart.Before(before) {
			continue
		}
		if best == nil || key.periodStart.After(best.PeriodStart) {
			best = snap
		}
	}
	if best == nil {
		return nil, my_errors.ErrSnapshotNotFound
	}
	copied := *best
	return &copied, nil
}
