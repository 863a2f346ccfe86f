package storage

// migrationV1 creates the initial schema: sessions and their answers.
const migrationV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS sessions (
	session_id         TEXT PRIMARY KEY,
	form_title         TEXT NOT NULL,
	started_at_unix_ms INTEGER NOT NULL,
	ended_at_unix_ms   INTEGER
);

CREATE INDEX IF NOT EXISTS idx_sessions_started
	ON sessions (started_at_unix_ms DESC);

CREATE TABLE IF NOT EXISTS answers (
	session_id  TEXT NOT NULL REFERENCES sessions (session_id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	question_id TEXT NOT NULL,
	value       TEXT NOT NULL,
	PRIMARY KEY (session_id, position)
);
`
