package sqlite

import (
	"context"
	"time"

	"lockfocus-assistant/internal/memory"
	repo "lockfocus-assistant/internal/memory/repository"
	"lockfocus-assistant/internal/model"
)

// SyncTasks drops the session's unfinished tasks and stores the new list in one transaction.
func (r *implRepository) SyncTasks(ctx context.Context, opt repo.SyncTasksOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SyncTasks"), err)
		return repo.ErrFailedToSync
	}
	defer func() { _ = tx.Rollback() }()

	const deleteQuery = `DELETE FROM memory_tasks WHERE session_id = ? AND status != ?`
	if _, err := tx.ExecContext(ctx, deleteQuery, opt.SessionID, memory.TaskStatusCompleted); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("SyncTasks"), err)
		return repo.ErrFailedToSync
	}

	const insertQuery = `
		INSERT INTO memory_tasks (session_id, task_id, text, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	createdAt := r.now().UnixMilli()
	for _, t := range opt.Tasks {
		status := memory.TaskStatusActive
		if t.Completed {
			status = memory.TaskStatusCompleted
		}
		if _, err := tx.ExecContext(ctx, insertQuery,
			opt.SessionID, t.ID, t.Text, string(t.Priority), status, createdAt,
		); err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("SyncTasks"), err)
			return repo.ErrFailedToSync
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SyncTasks"), err)
		return repo.ErrFailedToSync
	}
	return nil
}

// ListTasks returns a session's tasks in the order they were stored.
func (r *implRepository) ListTasks(ctx context.Context, sessionID string) ([]memory.Task, error) {
	const query = `
		SELECT task_id, text, priority, status, created_at
		FROM memory_tasks
		WHERE session_id = ?
		ORDER BY row_id`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []memory.Task{}
	for rows.Next() {
		var (
			t         memory.Task
			priority  string
			createdAt int64
		)
		if err := rows.Scan(&t.ID, &t.Text, &priority, &t.Status, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		t.Priority = model.Priority(priority)
		t.CreatedAt = time.UnixMilli(createdAt).UTC()
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Clear deletes every pattern and task of a session.
func (r *implRepository) Clear(ctx context.Context, sessionID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Clear"), err)
		return repo.ErrFailedToDelete
	}
	defer func() { _ = tx.Rollback() }()

	for _, query := range []string{
		`DELETE FROM memory_patterns WHERE session_id = ?`,
		`DELETE FROM memory_tasks WHERE session_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, sessionID); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
			return repo.ErrFailedToDelete
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Clear"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
