package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertSQL = `INSERT INTO categorias (nome, slug) VALUES ($1, $2)`

func TestTransaction_CommitsOnSuccess(t *testing.T) {
	pool := newFakePool()
	pg, _ := newTestPostgres(pool)

	err := pg.Transaction(context.Background(), func(ctx context.Context, tx *Executor) error {
		_, err := Exec(ctx, tx, insertSQL, "Mercado", "mercado")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"BEGIN", insertSQL, "COMMIT"}, pool.conn.statements)
	assert.Empty(t, pool.statements, "statements must run on the dedicated connection")
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	pool := newFakePool()
	pg, _ := newTestPostgres(pool)
	want := errors.New("duplicate key")

	err := pg.Transaction(context.Background(), func(ctx context.Context, tx *Executor) error {
		if _, err := Exec(ctx, tx, insertSQL, "Mercado", "mercado"); err != nil {
			return err
		}
		return want
	})

	assert.True(t, err == want, "unit of work error must be returned as is")
	assert.Equal(t, []string{"BEGIN", insertSQL, "ROLLBACK"}, pool.conn.statements)
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_RollbackFailureKeepsOriginalError(t *testing.T) {
	pool := newFakePool()
	rbErr := errors.New("conn closed")
	pool.conn.execErrs = map[string]error{"ROLLBACK": rbErr}
	pg, _ := newTestPostgres(pool)
	want := errors.New("check constraint violated")

	err := pg.Transaction(context.Background(), func(context.Context, *Executor) error {
		return want
	})

	var rollbackErr *RollbackError
	require.ErrorAs(t, err, &rollbackErr)
	assert.True(t, rollbackErr.Err == want)
	assert.ErrorIs(t, err, want)
	assert.ErrorIs(t, err, rbErr)
	assert.Equal(t, "check constraint violated (rollback failed: conn closed)", err.Error())
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_PanicRollsBackAndRepanics(t *testing.T) {
	pool := newFakePool()
	pg, _ := newTestPostgres(pool)

	assert.PanicsWithValue(t, "boom", func() {
		_ = pg.Transaction(context.Background(), func(context.Context, *Executor) error {
			panic("boom")
		})
	})

	assert.Equal(t, []string{"BEGIN", "ROLLBACK"}, pool.conn.statements)
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_CommitFailureIsReturned(t *testing.T) {
	pool := newFakePool()
	want := errors.New("could not serialize access")
	pool.conn.execErrs = map[string]error{"COMMIT": want}
	pg, _ := newTestPostgres(pool)

	err := pg.Transaction(context.Background(), func(context.Context, *Executor) error { return nil })

	assert.True(t, err == want)
	assert.Equal(t, []string{"BEGIN", "COMMIT"}, pool.conn.statements)
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_AbortedCommitIsAnError(t *testing.T) {
	pool := newFakePool()
	pool.conn.execTags = map[string]string{"COMMIT": "ROLLBACK"}
	pg, _ := newTestPostgres(pool)

	// The unit of work swallows a failed statement, leaving the transaction aborted.
	err := pg.Transaction(context.Background(), func(ctx context.Context, tx *Executor) error {
		_, _ = Exec(ctx, tx, insertSQL, "Mercado", "mercado")
		return nil
	})

	assert.ErrorIs(t, err, pgx.ErrTxCommitRollback)
	assert.Equal(t, []string{"BEGIN", insertSQL, "COMMIT"}, pool.conn.statements)
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_BeginFailureSkipsUnitOfWork(t *testing.T) {
	pool := newFakePool()
	pool.conn.execErrs = map[string]error{"BEGIN": errors.New("too many connections")}
	pg, _ := newTestPostgres(pool)
	called := false

	err := pg.Transaction(context.Background(), func(context.Context, *Executor) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, 1, pool.conn.releases)
}

func TestTransaction_AcquireFailure(t *testing.T) {
	pool := newFakePool()
	pool.acquireErr = errors.New("timeout acquiring connection")
	pg, _ := newTestPostgres(pool)

	err := pg.Transaction(context.Background(), func(context.Context, *Executor) error { return nil })

	assert.ErrorIs(t, err, pool.acquireErr)
	assert.Zero(t, pool.conn.releases)
	assert.Empty(t, pool.conn.statements)
}

func TestTransaction_CancelledContextStillRollsBack(t *testing.T) {
	pool := newFakePool()
	pg, _ := newTestPostgres(pool)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := pg.Transaction(ctx, func(ctx context.Context, tx *Executor) error {
		cancel()
		_, err := Exec(ctx, tx, insertSQL, "Mercado", "mercado")
		return err
	})

	assert.ErrorIs(t, err, context.Canceled)
	var rollbackErr *RollbackError
	assert.False(t, errors.As(err, &rollbackErr), "rollback must succeed despite cancellation")
	assert.Equal(t, []string{"BEGIN", insertSQL, "ROLLBACK"}, pool.conn.statements)
	assert.Equal(t, 1, pool.conn.releases)
}
