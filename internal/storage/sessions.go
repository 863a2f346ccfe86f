package storage

import (
	"context"
	"errors"
	"fmt"
)

// CreateSession records a new questionnaire session.
func (s *SQLiteStore) CreateSession(ctx context.Context, sess *Session) error {
	if sess == nil {
		return errors.New("session cannot be nil")
	}
	if sess.SessionID == "" {
		return errors.New("session_id is required")
	}
	if sess.StartedAtUnixMs == 0 {
		return errors.New("started_at_unix_ms is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (session_id, form_title, started_at_unix_ms, ended_at_unix_ms)
		VALUES (?, ?, ?, ?)
	`, sess.SessionID, sess.FormTitle, sess.StartedAtUnixMs, sess.EndedAtUnixMs)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// EndSession marks a session as finished.
func (s *SQLiteStore) EndSession(ctx context.Context, sessionID string, endedAtUnixMs int64) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET ended_at_unix_ms = ? WHERE session_id = ?
	`, endedAtUnixMs, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// GetSessionByPrefix finds the session whose ID starts with prefix. Returns
// ErrSessionNotFound when nothing matches and ErrAmbiguousPrefix when the
// prefix is not unique.
func (s *SQLiteStore) GetSessionByPrefix(ctx context.Context, prefix string) (*Session, error) {
	if prefix == "" {
		return nil, errors.New("session prefix is required")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, form_title, started_at_unix_ms, ended_at_unix_ms
		FROM sessions
		WHERE session_id LIKE ? || '%'
		LIMIT 2
	`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	defer rows.Close()

	var matches []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.SessionID, &sess.FormTitle, &sess.StartedAtUnixMs, &sess.EndedAtUnixMs); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		matches = append(matches, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrSessionNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, ErrAmbiguousPrefix
	}
}

// QuerySessions lists sessions, most recent first.
func (s *SQLiteStore) QuerySessions(ctx context.Context, q SessionQuery) ([]Session, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT session_id, form_title, started_at_unix_ms, ended_at_unix_ms
		FROM sessions
	`
	args := []any{}
	if q.FormTitle != "" {
		query += ` WHERE form_title = ?`
		args = append(args, q.FormTitle)
	}
	query += ` ORDER BY started_at_unix_ms DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.SessionID, &sess.FormTitle, &sess.StartedAtUnixMs, &sess.EndedAtUnixMs); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return sessions, nil
}
