// Package storage provides SQLite-based persistence for askline. It records
// questionnaire sessions and the answers given in them.
package storage

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when no session matches a lookup.
var ErrSessionNotFound = errors.New("session not found")

// ErrAmbiguousPrefix is returned when a session ID prefix matches more than
// one session.
var ErrAmbiguousPrefix = errors.New("session prefix matches multiple sessions")

// Store defines the interface for all storage operations.
type Store interface {
	// Sessions
	CreateSession(ctx context.Context, s *Session) error
	EndSession(ctx context.Context, sessionID string, endedAtUnixMs int64) error
	GetSessionByPrefix(ctx context.Context, prefix string) (*Session, error)
	QuerySessions(ctx context.Context, q SessionQuery) ([]Session, error)

	// Answers
	SaveAnswer(ctx context.Context, a *Answer) error
	GetAnswers(ctx context.Context, sessionID string) ([]Answer, error)

	// Lifecycle
	Close() error
}

// Session represents one questionnaire run.
type Session struct {
	SessionID       string
	FormTitle       string
	StartedAtUnixMs int64
	EndedAtUnixMs   *int64
}

// Answer represents one recorded reply within a session.
type Answer struct {
	SessionID  string
	Position   int // order the question was asked in, from 0
	QuestionID string
	Value      string
}

// SessionQuery filters and limits session listings. Results are ordered most
// recent first.
type SessionQuery struct {
	Limit     int
	FormTitle string // exact match when non-empty
}
