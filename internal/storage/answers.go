package storage

import (
	"context"
	"errors"
	"fmt"
)

// SaveAnswer records one reply within a session.
func (s *SQLiteStore) SaveAnswer(ctx context.Context, a *Answer) error {
	if a == nil {
		return errors.New("answer cannot be nil")
	}
	if a.SessionID == "" {
		return errors.New("session_id is required")
	}
	if a.QuestionID == "" {
		return errors.New("question_id is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answers (session_id, position, question_id, value)
		VALUES (?, ?, ?, ?)
	`, a.SessionID, a.Position, a.QuestionID, a.Value)
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

// GetAnswers returns a session's answers in the order they were asked.
func (s *SQLiteStore) GetAnswers(ctx context.Context, sessionID string) ([]Answer, error) {
	if sessionID == "" {
		return nil, errors.New("session_id is required")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, position, question_id, value
		FROM answers
		WHERE session_id = ?
		ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.SessionID, &a.Position, &a.QuestionID, &a.Value); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	return answers, nil
}
