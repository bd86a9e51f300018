package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// MoveRepository stores the moves of a session in order.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append adds moves to the end of a session in a single transaction.
// Identity markers are skipped.
func (r *MoveRepository) Append(ctx context.Context, sessionID string, moves []types.Move) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := checkSession(ctx, tx, sessionID); err != nil {
			return err
		}

		var next int
		err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(move_index) + 1, 0) FROM moves WHERE session_id = ?", sessionID,
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to get next move index: %w", err)
		}

		for _, m := range moves {
			if m.IsIdentity() {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO moves (session_id, move_index, level, symbol, sign, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, sessionID, next, m.Level(), m.Symbol().String(), int(m.Sign()), m.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", next, err)
			}
			next++
		}
		return nil
	})
}

// DeleteLast removes the newest move of a session and returns it.
// It returns false when the session has no moves.
func (r *MoveRepository) DeleteLast(ctx context.Context, sessionID string) (types.Move, bool, error) {
	var removed types.Move
	var ok bool

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := checkSession(ctx, tx, sessionID); err != nil {
			return err
		}

		var moveID int64
		var text string
		err := tx.QueryRowContext(ctx, `
			SELECT move_id, notation
			FROM moves
			WHERE session_id = ?
			ORDER BY move_index DESC
			LIMIT 1
		`, sessionID).Scan(&moveID, &text)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get last move: %w", err)
		}

		m, err := notation.ParseNotation(text)
		if err != nil {
			return fmt.Errorf("stored move %q: %w", text, err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM moves WHERE move_id = ?", moveID); err != nil {
			return fmt.Errorf("failed to delete move: %w", err)
		}
		removed, ok = m, true
		return nil
	})
	if err != nil {
		return types.Identity, false, err
	}
	return removed, ok, nil
}

// Clear removes every move of a session, keeping the session itself.
func (r *MoveRepository) Clear(ctx context.Context, sessionID string) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := checkSession(ctx, tx, sessionID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM moves WHERE session_id = ?", sessionID); err != nil {
			return fmt.Errorf("failed to clear moves: %w", err)
		}
		return nil
	})
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkSession returns ErrSessionNotFound unless sessionID exists.
func checkSession(ctx context.Context, q rowQuerier, sessionID string) error {
	var exists int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions WHERE session_id = ?", sessionID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

// GetBySession retrieves all moves for a session in order.
// An unknown session is an error; a session without moves is not.
func (r *MoveRepository) GetBySession(ctx context.Context, sessionID string) ([]types.Move, error) {
	if err := checkSession(ctx, r.db, sessionID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT level, symbol, sign, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []types.Move
	for rows.Next() {
		var level, sign int
		var symbol, text string
		if err := rows.Scan(&level, &symbol, &sign, &text); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		if len(symbol) != 1 {
			return nil, fmt.Errorf("%w: stored symbol %q", types.ErrInvalidMoveConstruction, symbol)
		}
		m, err := types.NewMove(level, types.Symbol(symbol[0]), types.Sign(sign))
		if err != nil {
			return nil, fmt.Errorf("stored move %q: %w", text, err)
		}
		// The notation column is the portable form; it must agree with the triple.
		if parsed, err := notation.ParseNotation(text); err != nil || parsed != m {
			return nil, fmt.Errorf("stored move %q does not match triple %#v", text, m)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}
