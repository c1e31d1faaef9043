package sqlite

import (
	"context"
	"time"

	"lockfocus-assistant/internal/memory"
	repo "lockfocus-assistant/internal/memory/repository"
)

// UpsertPattern inserts a pattern or replaces the one with the same session and type.
func (r *implRepository) UpsertPattern(ctx context.Context, opt repo.UpsertPatternOptions) error {
	const query = `
		INSERT INTO memory_patterns (session_id, pattern_type, data, confidence, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (session_id, pattern_type) DO UPDATE SET
			data = excluded.data,
			confidence = excluded.confidence,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		opt.SessionID, opt.Type, opt.Data, opt.Confidence, r.now().UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPattern"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// ListPatterns returns a session's patterns, most recently updated first.
func (r *implRepository) ListPatterns(ctx context.Context, sessionID string) ([]memory.Pattern, error) {
	const query = `
		SELECT pattern_type, data, confidence, updated_at
		FROM memory_patterns
		WHERE session_id = ?
		ORDER BY updated_at DESC, pattern_type`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPatterns"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	patterns := []memory.Pattern{}
	for rows.Next() {
		var (
			p         memory.Pattern
			updatedAt int64
		)
		if err := rows.Scan(&p.Type, &p.Data, &p.Confidence, &updatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPatterns"), err)
			return nil, repo.ErrFailedToList
		}
		p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPatterns"), err)
		return nil, repo.ErrFailedToList
	}
	return patterns, nil
}
