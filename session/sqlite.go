package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/morpheuslabs/sleepmesh/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS turns (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	role            TEXT NOT NULL,
	agent           TEXT NOT NULL DEFAULT '',
	text            TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_turns_conversation
	ON turns(conversation_id, created_at);

CREATE TABLE IF NOT EXISTS profiles (
	user_id      TEXT PRIMARY KEY,
	display_name TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore is a durable ConversationStore backed by a local SQLite file.
// SQLite supports a single writer, so the connection pool is capped at one
// open connection.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists. WAL mode and a busy timeout keep concurrent readers from
// tripping over the single writer.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path,
	))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// AppendTurn records a turn at the end of the conversation.
func (s *SQLiteStore) AppendTurn(ctx context.Context, turn core.Turn) error {
	created := turn.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (id, conversation_id, role, agent, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		turn.ID, turn.ConversationID, turn.Role, turn.Agent, turn.Text, created,
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// History returns up to limit most recent turns, oldest first.
func (s *SQLiteStore) History(ctx context.Context, conversationID string, limit int) ([]core.Turn, error) {
	if limit <= 0 {
		limit = core.MaxHistoryTurns
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, role, agent, text, created_at
		 FROM (
			SELECT * FROM turns WHERE conversation_id = ?
			ORDER BY created_at DESC, id DESC LIMIT ?
		 ) ORDER BY created_at ASC, id ASC`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var t core.Turn
		if err := rows.Scan(&t.ID, &t.ConversationID, &t.Role, &t.Agent, &t.Text, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// DisplayName returns the stored salutation for a user, or "" when the
// profile is unknown.
func (s *SQLiteStore) DisplayName(ctx context.Context, userID string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT display_name FROM profiles WHERE user_id = ?`, userID,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query display name: %w", err)
	}
	return name, nil
}

// SetDisplayName upserts the salutation for a user.
func (s *SQLiteStore) SetDisplayName(ctx context.Context, userID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, display_name) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET display_name = excluded.display_name`,
		userID, name,
	)
	if err != nil {
		return fmt.Errorf("set display name: %w", err)
	}
	return nil
}
