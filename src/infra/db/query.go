package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// previewLen is how much of a statement is logged on success.
const previewLen = 100

// Result is the row set of a statement together with its row count.
type Result[T any] struct {
	Rows     []T
	RowCount int64
}

// Runner is anything statements can be run against: the pool (*Postgres)
// or a transaction's dedicated connection (*Executor).
type Runner interface {
	executor(ctx context.Context) (*Executor, error)
}

// Executor runs statements against one Querier and logs each outcome.
type Executor struct {
	q         Querier
	log       *slog.Logger
	logParams bool
}

func (e *Executor) executor(context.Context) (*Executor, error) {
	return e, nil
}

// Query runs a parameterized statement and collects every row with scan.
// Bind values travel separately from the statement text. Errors are logged
// and returned unchanged.
func Query[T any](ctx context.Context, r Runner, sql string, args []any, scan pgx.RowToFunc[T]) (*Result[T], error) {
	e, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		e.failed(sql, args, err)
		return nil, err
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		e.failed(sql, args, err)
		return nil, err
	}

	res := &Result[T]{Rows: items, RowCount: rows.CommandTag().RowsAffected()}
	e.succeeded(sql, time.Since(start), res.RowCount)
	return res, nil
}

// QueryOne is Query for statements expected to yield a single row.
// It returns pgx.ErrNoRows when the statement yields none.
func QueryOne[T any](ctx context.Context, r Runner, sql string, args []any, scan pgx.RowToFunc[T]) (T, error) {
	var zero T
	res, err := Query(ctx, r, sql, args, scan)
	if err != nil {
		return zero, err
	}
	if len(res.Rows) == 0 {
		return zero, pgx.ErrNoRows
	}
	return res.Rows[0], nil
}

// Exec runs a statement that returns no rows.
func Exec(ctx context.Context, r Runner, sql string, args ...any) (pgconn.CommandTag, error) {
	e, err := r.executor(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	start := time.Now()
	tag, err := e.q.Exec(ctx, sql, args...)
	if err != nil {
		e.failed(sql, args, err)
		return tag, err
	}
	e.succeeded(sql, time.Since(start), tag.RowsAffected())
	return tag, nil
}

func (e *Executor) succeeded(sql string, d time.Duration, rows int64) {
	e.log.Debug("query executed",
		"query", preview(sql),
		"duration", d.String(),
		"rows", rows,
	)
}

func (e *Executor) failed(sql string, args []any, err error) {
	attrs := []any{"query", sql, "error", err}
	if e.logParams {
		attrs = append(attrs, "params", args)
	} else {
		attrs = append(attrs, "params_count", len(args))
	}
	e.log.Error("query failed", attrs...)
}

func preview(sql string) string {
	r := []rune(sql)
	if len(r) <= previewLen {
		return sql
	}
	return string(r[:previewLen])
}
