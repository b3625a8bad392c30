package tests

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"dev-insights-service/internal/domain"
	"dev-insights-service/internal/repository"
	"dev-insights-service/internal/service"
	"dev-insights-service/migrations"
	"dev-insights-service/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func benchmarkSetup(b *testing.B) (*pgxpool.Pool, *service.InsightsService, *repository.SnapshotRepository) {
	ctx := context.Background()

	cfg, err := config.Load(".env.tests")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	err = config.RunMigrations(*cfg, migrations.FS)
	require.NoError(b, err)

	pool, err := config.MustInitDB(ctx, *cfg)
	require.NoError(b, err)

	activityRepo := repository.NewActivityRepository(pool)
	directoryRepo := repository.NewDirectoryRepository(pool)
	snapshotRepo := repository.NewSnapshotRepository(pool)

	insightsService := service.NewInsightsService(activityRepo, directoryRepo, snapshotRepo)

	return pool, insightsService, snapshotRepo
}

// seedBenchmarkWorkspace creates memberCount developers with commitsPerDev
// commits each spread across the benchmark window.
func seedBenchmarkWorkspace(b *testing.B, pool *pgxpool.Pool, workspaceID string, memberCount, commitsPerDev int) {
	ctx := context.Background()

	_, err := pool.Exec(ctx, "INSERT INTO workspaces (workspace_id, name) VALUES ($1, $1)", workspaceID)
	require.NoError(b, err)

	repos := []string{"api", "worker", "frontend"}
	for i := 0; i < memberCount; i++ {
		developerID := fmt.Sprintf("bench-dev-%d", i)
		_, err := pool.Exec(ctx, `
			INSERT INTO developers (developer_id, workspace_id, username, is_active)
			VALUES ($1, $2, $1, true)
		`, developerID, workspaceID)
		require.NoError(b, err)

		for j := 0; j < commitsPerDev; j++ {
			_, err := pool.Exec(ctx, `
				INSERT INTO commits (sha, developer_id, repository, additions, deletions, files_changed, committed_at)
				VALUES ($1, $2, $3, $4, $5, 2, $6)
			`,
				fmt.Sprintf("%s-sha-%d", developerID, j),
				developerID,
				repos[rand.Intn(len(repos))],
				rand.Intn(200),
				rand.Intn(50),
				periodStart.Add(time.Duration(rand.Intn(13*24))*time.Hour),
			)
			require.NoError(b, err)
		}
	}
}

func BenchmarkGenerateWorkspaceSnapshots(b *testing.B) {
	pool, insightsService, snapshotRepo := benchmarkSetup(b)
	defer func() {
		cleanupDB(b, pool)
		pool.Close()
	}()

	window := domain.Window{Start: periodStart, End: periodEnd}

	testCases := []struct {
		name        string
		members     int
		commits     int
		concurrency int
	}{
		{"Small_5members_20commits", 5, 20, 4},
		{"Medium_20members_50commits", 20, 50, 4},
		{"Large_50members_50commits_8workers", 50, 50, 8},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			cleanupDB(b, pool)
			workspaceID := fmt.Sprintf("bench-ws-%d", time.Now().UnixNano())
			seedBenchmarkWorkspace(b, pool, workspaceID, tc.members, tc.commits)

			snapshotService := service.NewSnapshotService(insightsService, snapshotRepo, tc.concurrency)
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				count, err := snapshotService.GenerateWorkspaceSnapshots(ctx, workspaceID, domain.PeriodSprint, window)
				require.NoError(b, err)

				if i == 0 {
					b.Logf("First run - snapshots generated for %d members", count)
				}
			}
			b.StopTimer()

			cleanupDB(b, pool)
		})
	}
}

func BenchmarkLeaderboard(b *testing.B) {
	pool, insightsService, _ := benchmarkSetup(b)
	defer func() {
		cleanupDB(b, pool)
		pool.Close()
	}()

	cleanupDB(b, pool)
	workspaceID := fmt.Sprintf("bench-ws-%d", time.Now().UnixNano())
	seedBenchmarkWorkspace(b, pool, workspaceID, 30, 40)

	ctx := context.Background()
	window := domain.Window{Start: periodStart, End: periodEnd}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entries, err := insightsService.Leaderboard(ctx, workspaceID, domain.MetricCommits, domain.PeriodSprint, window, 10)
		require.NoError(b, err)
		require.Len(b, entries, 10)
	}
}
