package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp(context.Background()))
	return db
}

func TestMigrateUp_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	v, err := db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, db.MigrateUp(ctx))
	v, err = db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSessionRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create(ctx, "warmup")
	require.NoError(t, err)
	assert.Len(t, id, 36)

	s, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "warmup", s.Name)
	assert.False(t, s.CreatedAt.IsZero())

	second, err := repo.Create(ctx, "second")
	require.NoError(t, err)

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].SessionID)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.ErrorIs(t, repo.Delete(ctx, id), ErrSessionNotFound)
}

func TestMoveRepository_AppendListPop(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, moves.Append(ctx, id, []string{"R", "U"}))
	require.NoError(t, moves.Append(ctx, id, []string{"R'"}))
	require.NoError(t, moves.Append(ctx, id, nil))

	got, err := moves.Notations(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "U", "R'"}, got)

	list, err := moves.List(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Seq, list[1].Seq, list[2].Seq})

	last, ok, err := moves.PopLast(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "R'", last.Notation)
	assert.Equal(t, 3, last.Seq)

	n, err := moves.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, moves.Clear(ctx, id))
	_, ok, err = moves.PopLast(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMoveRepository_UnknownSession(t *testing.T) {
	ctx := context.Background()
	moves := NewMoveRepository(openTestDB(t))

	require.ErrorIs(t, moves.Append(ctx, "missing", []string{"R"}), ErrSessionNotFound)
	require.ErrorIs(t, moves.Clear(ctx, "missing"), ErrSessionNotFound)
	_, _, err := moves.PopLast(ctx, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession_RemovesMoves(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(ctx, "gone")
	require.NoError(t, err)
	require.NoError(t, moves.Append(ctx, id, []string{"F", "F"}))
	require.NoError(t, sessions.Delete(ctx, id))

	n, err := moves.Count(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)
}
