package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SessionMove is one logged move of a session.
type SessionMove struct {
	SessionID string
	Seq       int
	Notation  string
	AppliedAt time.Time
}

// MoveRepository stores the ordered move log of each session.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append adds moves to the end of a session's log in one transaction.
func (r *MoveRepository) Append(ctx context.Context, sessionID string, notations []string) error {
	if len(notations) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(timeLayout)
	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := touchSession(ctx, tx, sessionID, now); err != nil {
			return err
		}

		var next int
		err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(seq), 0) + 1 FROM session_moves WHERE session_id = ?", sessionID,
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		for i, n := range notations {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO session_moves (session_id, seq, notation, applied_at)
				VALUES (?, ?, ?, ?)
			`, sessionID, next+i, n, now)
			if err != nil {
				return fmt.Errorf("failed to insert move: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.db.logger.Debug("appended moves",
		zap.String("session_id", sessionID),
		zap.Int("count", len(notations)))
	return nil
}

// List returns the move log of a session in order.
func (r *MoveRepository) List(ctx context.Context, sessionID string) ([]SessionMove, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, seq, notation, applied_at
		FROM session_moves
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []SessionMove
	for rows.Next() {
		var m SessionMove
		var appliedAt string
		if err := rows.Scan(&m.SessionID, &m.Seq, &m.Notation, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		if m.AppliedAt, err = time.Parse(timeLayout, appliedAt); err != nil {
			return nil, fmt.Errorf("failed to parse applied_at: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Notations returns just the notation strings of a session's log.
func (r *MoveRepository) Notations(ctx context.Context, sessionID string) ([]string, error) {
	moves, err := r.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation
	}
	return out, nil
}

// PopLast removes the last move of a session and returns it.
// ok is false when the log is empty.
func (r *MoveRepository) PopLast(ctx context.Context, sessionID string) (m SessionMove, ok bool, err error) {
	now := time.Now().UTC().Format(timeLayout)
	err = r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := touchSession(ctx, tx, sessionID, now); err != nil {
			return err
		}

		var appliedAt string
		err := tx.QueryRowContext(ctx, `
			SELECT session_id, seq, notation, applied_at
			FROM session_moves
			WHERE session_id = ?
			ORDER BY seq DESC
			LIMIT 1
		`, sessionID).Scan(&m.SessionID, &m.Seq, &m.Notation, &appliedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get last move: %w", err)
		}
		if m.AppliedAt, err = time.Parse(timeLayout, appliedAt); err != nil {
			return fmt.Errorf("failed to parse applied_at: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM session_moves WHERE session_id = ? AND seq = ?", sessionID, m.Seq,
		); err != nil {
			return fmt.Errorf("failed to delete move: %w", err)
		}
		ok = true
		return nil
	})
	return m, ok, err
}

// Clear removes every move of a session.
func (r *MoveRepository) Clear(ctx context.Context, sessionID string) error {
	now := time.Now().UTC().Format(timeLayout)
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := touchSession(ctx, tx, sessionID, now); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM session_moves WHERE session_id = ?", sessionID); err != nil {
			return fmt.Errorf("failed to clear moves: %w", err)
		}
		return nil
	})
}

// Count returns the number of moves in a session's log.
func (r *MoveRepository) Count(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM session_moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// touchSession bumps updated_at and fails if the session does not exist.
func touchSession(ctx context.Context, tx *sql.Tx, sessionID, now string) error {
	res, err := tx.ExecContext(ctx, "UPDATE sessions SET updated_at = ? WHERE session_id = ?", now, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}
