package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubDB satisfies database.PgxIface without a live connection.
type stubDB struct {
	tx        *stubTx
	beginErr  error
	queryRows pgx.Rows
	queryErr  error
}

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.queryRows, nil
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("QueryRow not stubbed")
}

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	panic("Exec not stubbed")
}

func (s *stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.tx, nil
}

func (s *stubDB) Ping(ctx context.Context) error { return nil }
func (s *stubDB) Close()                         {}

type execResult struct {
	tag pgconn.CommandTag
	err error
}

// stubTx scripts Exec results call by call so the RowsAffected branches
// in CreateAggregate and Finalize can be driven deterministically. Calls
// past the script succeed with INSERT 0 1.
type stubTx struct {
	script     []execResult
	sql        []string
	committed  bool
	rolledBack bool
}

func (t *stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	call := len(t.sql)
	t.sql = append(t.sql, sql)
	if call >= len(t.script) {
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return t.script[call].tag, t.script[call].err
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

// The repositories defer Rollback unconditionally, so only a rollback
// before Commit counts as a real one.
func (t *stubTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("Begin not stubbed") }
func (t *stubTx) Conn() *pgx.Conn                           { return nil }

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("CopyFrom not stubbed")
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("SendBatch not stubbed")
}

func (t *stubTx) LargeObjects() pgx.LargeObjects { panic("LargeObjects not stubbed") }

func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("Prepare not stubbed")
}

func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("Query not stubbed")
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("QueryRow not stubbed")
}

// fakeRows feeds scripted rows and then surfaces err from Err(), the way
// pgx reports a connection dropped mid-iteration.
type fakeRows struct {
	data   [][]any
	idx    int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = row[i].(uuid.UUID)
		case *int:
			*p = row[i].(int)
		case *int64:
			*p = row[i].(int64)
		case *bool:
			*p = row[i].(bool)
		case *string:
			*p = row[i].(string)
		case *float64:
			*p = row[i].(float64)
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan target %T", d)
		}
	}
	return nil
}

func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
