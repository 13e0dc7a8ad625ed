// Package recorder manages persisted cube sessions: a named move log that
// is replayed into a tracker whenever it is opened.
package recorder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeperm"
	"github.com/SeamusWaldron/cubeperm/internal/storage"
)

// Recorder applies moves to sessions and keeps their logs in storage.
type Recorder struct {
	catalog     *cubeperm.Catalog
	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
	logger      *zap.Logger
}

// New creates a recorder backed by db. A nil catalog selects the standard
// catalog; a nil logger disables logging.
func New(db *storage.DB, catalog *cubeperm.Catalog, logger *zap.Logger) *Recorder {
	if catalog == nil {
		catalog = cubeperm.Standard()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		catalog:     catalog,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
		logger:      logger,
	}
}

// Start creates a new, solved session.
func (r *Recorder) Start(ctx context.Context, name string) (string, error) {
	id, err := r.sessionRepo.Create(ctx, name)
	if err != nil {
		return "", err
	}
	r.logger.Info("session started", zap.String("session_id", id), zap.String("name", name))
	return id, nil
}

// Load replays a session's move log into a fresh tracker.
func (r *Recorder) Load(ctx context.Context, sessionID string) (*cubeperm.Tracker, error) {
	if _, err := r.sessionRepo.Get(ctx, sessionID); err != nil {
		return nil, err
	}

	notations, err := r.moveRepo.Notations(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tr := cubeperm.NewTracker(cubeperm.WithCatalog(r.catalog))
	for i, n := range notations {
		m, err := cubeperm.ParseMove(n)
		if err != nil {
			return nil, fmt.Errorf("session %s move %d: %w", sessionID, i+1, err)
		}
		if err := tr.ApplyMove(m); err != nil {
			return nil, fmt.Errorf("session %s move %d: %w", sessionID, i+1, err)
		}
	}

	r.logger.Debug("session replayed",
		zap.String("session_id", sessionID),
		zap.Int("moves", len(notations)))
	return tr, nil
}

// Apply validates notation against the catalog, logs the moves and returns
// the updated tracker. Nothing is logged if any move is invalid.
func (r *Recorder) Apply(ctx context.Context, sessionID, notation string) (*cubeperm.Tracker, error) {
	moves, err := cubeperm.ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	if _, err := cubeperm.SequencePerm(r.catalog, moves); err != nil {
		return nil, err
	}

	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.Notation()
	}
	if err := r.moveRepo.Append(ctx, sessionID, notations); err != nil {
		return nil, err
	}

	r.logger.Info("moves applied",
		zap.String("session_id", sessionID),
		zap.String("moves", cubeperm.FormatMoves(moves)))
	return r.Load(ctx, sessionID)
}

// Undo removes the last logged move of a session.
func (r *Recorder) Undo(ctx context.Context, sessionID string) (cubeperm.Move, *cubeperm.Tracker, error) {
	last, ok, err := r.moveRepo.PopLast(ctx, sessionID)
	if err != nil {
		return cubeperm.Move{}, nil, err
	}
	if !ok {
		return cubeperm.Move{}, nil, cubeperm.ErrNothingToUndo
	}

	m, err := cubeperm.ParseMove(last.Notation)
	if err != nil {
		return cubeperm.Move{}, nil, err
	}

	tr, err := r.Load(ctx, sessionID)
	if err != nil {
		return cubeperm.Move{}, nil, err
	}
	r.logger.Info("move undone", zap.String("session_id", sessionID), zap.String("move", m.Notation()))
	return m, tr, nil
}

// Reset clears a session's log, returning it to solved.
func (r *Recorder) Reset(ctx context.Context, sessionID string) error {
	if err := r.moveRepo.Clear(ctx, sessionID); err != nil {
		return err
	}
	r.logger.Info("session reset", zap.String("session_id", sessionID))
	return nil
}

// Delete removes a session entirely.
func (r *Recorder) Delete(ctx context.Context, sessionID string) error {
	if err := r.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	r.logger.Info("session deleted", zap.String("session_id", sessionID))
	return nil
}

// List returns up to limit sessions, most recently updated first.
func (r *Recorder) List(ctx context.Context, limit int) ([]storage.Session, error) {
	return r.sessionRepo.List(ctx, limit)
}

// Get returns a session's metadata.
func (r *Recorder) Get(ctx context.Context, sessionID string) (*storage.Session, error) {
	return r.sessionRepo.Get(ctx, sessionID)
}
