package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteDB "lockfocus-assistant/config/sqlite"
	"lockfocus-assistant/internal/memory"
	repo "lockfocus-assistant/internal/memory/repository"
	"lockfocus-assistant/internal/model"
	pkgLog "lockfocus-assistant/pkg/log"
)

func newTestRepository(t *testing.T) (*implRepository, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := sqliteDB.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteDB.Disconnect(ctx, db) })

	require.NoError(t, Migrate(ctx, db))
	// migrations are idempotent
	require.NoError(t, Migrate(ctx, db))

	r := New(db, pkgLog.NewNop()).(*implRepository)
	return r, db
}

func TestPatterns(t *testing.T) {
	r, _ := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	require.NoError(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{
		SessionID: "s1", Type: "trigger_night", Data: "still up", Confidence: 0.7,
	}))

	r.now = func() time.Time { return base.Add(time.Minute) }
	require.NoError(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{
		SessionID: "s1", Type: "trigger_break", Data: "stress 8", Confidence: 0.7,
	}))
	require.NoError(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{
		SessionID: "s2", Type: "trigger_break", Data: "other", Confidence: 0.5,
	}))

	patterns, err := r.ListPatterns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, memory.Pattern{
		Type: "trigger_break", Data: "stress 8", Confidence: 0.7, UpdatedAt: base.Add(time.Minute),
	}, patterns[0])
	assert.Equal(t, "trigger_night", patterns[1].Type)

	// same type replaces the previous observation
	r.now = func() time.Time { return base.Add(2 * time.Minute) }
	require.NoError(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{
		SessionID: "s1", Type: "trigger_night", Data: "late again", Confidence: 0.9,
	}))

	patterns, err = r.ListPatterns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "trigger_night", patterns[0].Type)
	assert.Equal(t, "late again", patterns[0].Data)
	assert.InDelta(t, 0.9, patterns[0].Confidence, 1e-9)
}

func TestListPatterns_Empty(t *testing.T) {
	r, _ := newTestRepository(t)

	patterns, err := r.ListPatterns(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, patterns)
	assert.Empty(t, patterns)
}

func TestSyncTasks_KeepsCompleted(t *testing.T) {
	r, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, r.SyncTasks(ctx, repo.SyncTasksOptions{
		SessionID: "s1",
		Tasks: []model.Task{
			{ID: "a", Text: "Pay rent", Priority: model.PriorityHigh},
			{ID: "b", Text: "Call mom", Priority: model.PriorityMedium, Completed: true},
		},
	}))
	require.NoError(t, r.SyncTasks(ctx, repo.SyncTasksOptions{
		SessionID: "s1",
		Tasks:     []model.Task{{ID: "c", Text: "Buy milk", Priority: model.PriorityMedium}},
	}))
	require.NoError(t, r.SyncTasks(ctx, repo.SyncTasksOptions{
		SessionID: "s2",
		Tasks:     []model.Task{{ID: "d", Text: "Other", Priority: model.PriorityLow}},
	}))

	tasks, err := r.ListTasks(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "b", tasks[0].ID)
	assert.Equal(t, memory.TaskStatusCompleted, tasks[0].Status)
	assert.Equal(t, "c", tasks[1].ID)
	assert.Equal(t, "Buy milk", tasks[1].Text)
	assert.Equal(t, model.PriorityMedium, tasks[1].Priority)
	assert.Equal(t, memory.TaskStatusActive, tasks[1].Status)
}

func TestClear(t *testing.T) {
	r, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{SessionID: "s1", Type: "trigger_night", Data: "x"}))
	require.NoError(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{SessionID: "s2", Type: "trigger_night", Data: "y"}))
	require.NoError(t, r.SyncTasks(ctx, repo.SyncTasksOptions{
		SessionID: "s1",
		Tasks:     []model.Task{{ID: "a", Text: "Pay rent", Priority: model.PriorityHigh, Completed: true}},
	}))

	require.NoError(t, r.Clear(ctx, "s1"))

	patterns, err := r.ListPatterns(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, patterns)

	tasks, err := r.ListTasks(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	patterns, err = r.ListPatterns(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, patterns, 1)
}

func TestClosedDatabase(t *testing.T) {
	r, db := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	assert.ErrorIs(t, r.UpsertPattern(ctx, repo.UpsertPatternOptions{SessionID: "s1", Type: "t"}), repo.ErrFailedToUpsert)
	assert.ErrorIs(t, r.SyncTasks(ctx, repo.SyncTasksOptions{SessionID: "s1"}), repo.ErrFailedToSync)
	assert.ErrorIs(t, r.Clear(ctx, "s1"), repo.ErrFailedToDelete)

	_, err := r.ListPatterns(ctx, "s1")
	assert.ErrorIs(t, err, repo.ErrFailedToList)
	_, err = r.ListTasks(ctx, "s1")
	assert.ErrorIs(t, err, repo.ErrFailedToList)
}

func TestNew_RequiresDB(t *testing.T) {
	assert.Panics(t, func() { New(nil, pkgLog.NewNop()) })
}
