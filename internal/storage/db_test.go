package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	require.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// reopening must not rerun migrations
	store, err = NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestCloseIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := &Session{
		SessionID:       uuid.NewString(),
		FormTitle:       "Onboarding",
		StartedAtUnixMs: time.Now().UnixMilli(),
	}
	require.NoError(t, store.CreateSession(ctx, sess))

	got, err := store.GetSessionByPrefix(ctx, sess.SessionID[:8])
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, got.SessionID)
	assert.Equal(t, "Onboarding", got.FormTitle)
	assert.Nil(t, got.EndedAtUnixMs)

	ended := sess.StartedAtUnixMs + 1000
	require.NoError(t, store.EndSession(ctx, sess.SessionID, ended))

	got, err = store.GetSessionByPrefix(ctx, sess.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got.EndedAtUnixMs)
	assert.Equal(t, ended, *got.EndedAtUnixMs)
}

func TestSessionLookupErrors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetSessionByPrefix(ctx, "absent")
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.ErrorIs(t, store.EndSession(ctx, "absent", 1), ErrSessionNotFound)

	// two sessions sharing a prefix make that prefix ambiguous
	for _, id := range []string{"aaaa-one", "aaaa-two"} {
		require.NoError(t, store.CreateSession(ctx, &Session{
			SessionID:       id,
			FormTitle:       "t",
			StartedAtUnixMs: 1,
		}))
	}
	_, err = store.GetSessionByPrefix(ctx, "aaaa")
	require.ErrorIs(t, err, ErrAmbiguousPrefix)
}

func TestQuerySessionsOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, store.CreateSession(ctx, &Session{
			SessionID:       uuid.NewString(),
			FormTitle:       "Survey",
			StartedAtUnixMs: i,
		}))
	}

	sessions, err := store.QuerySessions(ctx, SessionQuery{Limit: 3})
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, int64(5), sessions[0].StartedAtUnixMs, "most recent first")
	assert.Equal(t, int64(3), sessions[2].StartedAtUnixMs)

	none, err := store.QuerySessions(ctx, SessionQuery{FormTitle: "Other"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAnswerRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sessionID := uuid.NewString()
	require.NoError(t, store.CreateSession(ctx, &Session{
		SessionID:       sessionID,
		FormTitle:       "Onboarding",
		StartedAtUnixMs: 1,
	}))

	// save out of order; reads come back by position
	answers := []Answer{
		{SessionID: sessionID, Position: 1, QuestionID: "editor", Value: "emacs"},
		{SessionID: sessionID, Position: 0, QuestionID: "name", Value: "ada"},
	}
	for i := range answers {
		require.NoError(t, store.SaveAnswer(ctx, &answers[i]))
	}

	got, err := store.GetAnswers(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "name", got[0].QuestionID)
	assert.Equal(t, "editor", got[1].QuestionID)
}

func TestSaveAnswerValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.Error(t, store.SaveAnswer(ctx, nil))
	require.Error(t, store.SaveAnswer(ctx, &Answer{QuestionID: "q"}))
	require.Error(t, store.SaveAnswer(ctx, &Answer{SessionID: "s"}))
}
