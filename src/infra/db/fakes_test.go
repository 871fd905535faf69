package db

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRows is an in-memory pgx.Rows.
type fakeRows struct {
	data   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.data)))
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: want %d destinations, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

// fakeQuerier records statements and replays canned results.
type fakeQuerier struct {
	mu         sync.Mutex
	statements []string
	args       [][]any
	rows       *fakeRows
	queryErr   error
	execErrs   map[string]error
	execTags   map[string]string
}

func (q *fakeQuerier) record(sql string, args []any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.statements = append(q.statements, sql)
	q.args = append(q.args, args)
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.record(sql, args)
	if err := ctx.Err(); err != nil {
		return pgconn.CommandTag{}, err
	}
	if err := q.execErrs[sql]; err != nil {
		return pgconn.CommandTag{}, err
	}
	if tag, ok := q.execTags[sql]; ok {
		return pgconn.NewCommandTag(tag), nil
	}
	return pgconn.NewCommandTag(sql + " 1"), nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.record(sql, args)
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	if q.rows == nil {
		return &fakeRows{}, nil
	}
	return q.rows, nil
}

type fakeConn struct {
	fakeQuerier
	releases int
}

func (c *fakeConn) Release() { c.releases++ }

type fakePool struct {
	fakeQuerier
	conn       *fakeConn
	acquireErr error
	pingErr    error
	closed     bool
}

func newFakePool() *fakePool {
	return &fakePool{conn: &fakeConn{}}
}

func (p *fakePool) Acquire(context.Context) (Conn, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conn, nil
}

func (p *fakePool) Ping(context.Context) error { return p.pingErr }
func (p *fakePool) Close()                     { p.closed = true }
