package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id does not exist.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is a named, persisted move sequence.
type Session struct {
	SessionID string
	Name      string
	CreatedAt time.Time
	MoveCount int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns it.
func (r *SessionRepository) Create(ctx context.Context, name string) (Session, error) {
	s := Session{
		SessionID: uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (session_id, name, created_at)
		VALUES (?, ?, ?)
	`, s.SessionID, s.Name, s.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return s, nil
}

const sessionColumns = `
	SELECT s.session_id, s.name, s.created_at, COUNT(m.move_id)
	FROM sessions s
	LEFT JOIN moves m ON m.session_id = s.session_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var createdAt string
	if err := row.Scan(&s.SessionID, &s.Name, &createdAt, &s.MoveCount); err != nil {
		return Session{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	s.CreatedAt = t
	return s, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (Session, error) {
	row := r.db.QueryRowContext(ctx, sessionColumns+`
		WHERE s.session_id = ?
		GROUP BY s.session_id
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves all sessions, newest first.
func (r *SessionRepository) List(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, sessionColumns+`
		GROUP BY s.session_id
		ORDER BY s.created_at DESC, s.session_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// Delete removes a session and its moves.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}
