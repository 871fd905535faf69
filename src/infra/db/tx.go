package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// RollbackError is returned when a unit of work failed and the ROLLBACK
// that followed failed too. Err is the unit of work's error and stays the
// primary cause; errors.Is matches both.
type RollbackError struct {
	Err      error
	Rollback error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("%v (rollback failed: %v)", e.Err, e.Rollback)
}

func (e *RollbackError) Unwrap() []error {
	return []error{e.Err, e.Rollback}
}

// Transaction runs fn inside BEGIN/COMMIT on a connection dedicated to it.
// If fn returns an error or panics the transaction is rolled back. The
// connection goes back to the pool exactly once on every path.
func (p *Postgres) Transaction(ctx context.Context, fn func(ctx context.Context, tx *Executor) error) error {
	pool, err := p.Pool(ctx)
	if err != nil {
		return err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		p.log.Error("failed to acquire connection", "error", err)
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	tx := p.bind(conn)
	if _, err := Exec(ctx, tx, "BEGIN"); err != nil {
		return err
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		r := recover()
		if rbErr := p.rollback(ctx, tx); rbErr != nil {
			p.log.Error("rollback after abort failed", "error", rbErr)
		}
		if r != nil {
			panic(r)
		}
	}()

	err = fn(ctx, tx)
	finished = true
	if err != nil {
		if rbErr := p.rollback(ctx, tx); rbErr != nil {
			return &RollbackError{Err: err, Rollback: rbErr}
		}
		return err
	}

	tag, err := Exec(ctx, tx, "COMMIT")
	if err != nil {
		return err
	}
	// An aborted transaction answers COMMIT with a ROLLBACK tag and no error.
	if tag.String() == "ROLLBACK" {
		p.log.Error("commit rolled back by server")
		return pgx.ErrTxCommitRollback
	}
	return nil
}

// rollback ignores cancellation of ctx so a cancelled request still rolls back.
func (p *Postgres) rollback(ctx context.Context, tx *Executor) error {
	_, err := Exec(context.WithoutCancel(ctx), tx, "ROLLBACK")
	return err
}
