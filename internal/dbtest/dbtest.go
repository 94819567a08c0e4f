// Package dbtest backs gorm with a scripted database/sql driver so repositories
// can be tested against the exact SQL they emit, without a MySQL server.
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Kind int

const (
	KindQuery Kind = iota
	KindExec
)

func (k Kind) String() string {
	if k == KindExec {
		return "exec"
	}
	return "query"
}

// Step is one expected statement. A nil Args skips argument checking.
type Step struct {
	Kind    Kind
	Pattern *regexp.Regexp
	Args    []driver.Value
	Columns []string
	Rows    [][]driver.Value
	Err     error
	Result  driver.Result
}

// Query expects a SELECT-like statement matching pattern.
func Query(pattern string) *Step {
	return &Step{Kind: KindQuery, Pattern: regexp.MustCompile(pattern)}
}

// Exec expects an INSERT/UPDATE/DELETE statement matching pattern.
func Exec(pattern string) *Step {
	return &Step{Kind: KindExec, Pattern: regexp.MustCompile(pattern)}
}

// WithArgs pins the bind values. database/sql hands the driver converted
// values, so integers arrive as int64.
func (s *Step) WithArgs(args ...driver.Value) *Step {
	if args == nil {
		args = []driver.Value{}
	}
	s.Args = args
	return s
}

func (s *Step) Returns(columns []string, rows ...[]driver.Value) *Step {
	s.Columns = columns
	s.Rows = rows
	return s
}

func (s *Step) Fails(err error) *Step {
	s.Err = err
	return s
}

// Inserted makes an exec step report a new row id.
func (s *Step) Inserted(id int64) *Step {
	s.Result = Result{LastID: id, Affected: 1}
	return s
}

func (s *Step) Affects(n int64) *Step {
	s.Result = Result{Affected: n}
	return s
}

// Row is shorthand for a result row.
func Row(values ...driver.Value) []driver.Value {
	return values
}

// Script is the shared expectation queue plus transaction bookkeeping.
type Script struct {
	mu    sync.Mutex
	steps []*Step

	begins    int32
	commits   int32
	rollbacks int32
}

func (s *Script) next(kind Kind, query string, args []driver.NamedValue) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("unexpected %s: %s", kind, query)
	}
	step := s.steps[0]
	if step.Kind != kind {
		return nil, fmt.Errorf("unexpected kind for %s: got %v want %v", query, kind, step.Kind)
	}
	if !step.Pattern.MatchString(query) {
		return nil, fmt.Errorf("unexpected %s: %s (want /%s/)", kind, query, step.Pattern)
	}
	if step.Args != nil {
		if len(step.Args) != len(args) {
			return nil, fmt.Errorf("unexpected arg count for %s: got %d want %d", query, len(args), len(step.Args))
		}
		for i := range args {
			if !reflect.DeepEqual(args[i].Value, step.Args[i]) {
				return nil, fmt.Errorf("unexpected arg %d for %s: got %#v want %#v", i, query, args[i].Value, step.Args[i])
			}
		}
	}
	s.steps = s.steps[1:]
	return step, nil
}

// ExpectationsMet reports steps that were never consumed.
func (s *Script) ExpectationsMet() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) != 0 {
		return fmt.Errorf("unmet expectations: %d, next /%s/", len(s.steps), s.steps[0].Pattern)
	}
	return nil
}

func (s *Script) Begins() int    { return int(atomic.LoadInt32(&s.begins)) }
func (s *Script) Commits() int   { return int(atomic.LoadInt32(&s.commits)) }
func (s *Script) Rollbacks() int { return int(atomic.LoadInt32(&s.rollbacks)) }

var driverSeq int64

// New opens a gorm MySQL handle over the scripted steps. The connection is
// closed when the test finishes.
func New(t testing.TB, steps ...*Step) (*gorm.DB, *Script) {
	t.Helper()
	script := &Script{steps: steps}
	name := fmt.Sprintf("dbtest_%d", atomic.AddInt64(&driverSeq, 1))
	sql.Register(name, &scriptedDriver{script: script})

	sqlDB, err := sql.Open(name, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db, script
}

type scriptedDriver struct {
	script *Script
}

func (d *scriptedDriver) Open(string) (driver.Conn, error) {
	return &scriptedConn{script: d.script}, nil
}

type scriptedConn struct {
	script *Script
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) {
	atomic.AddInt32(&c.script.begins, 1)
	return scriptedTx{script: c.script}, nil
}

func (c *scriptedConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	step, err := c.script.next(KindQuery, query, args)
	if err != nil {
		return nil, err
	}
	if step.Err != nil {
		return nil, step.Err
	}
	return &scriptedRows{columns: step.Columns, rows: step.Rows}, nil
}

func (c *scriptedConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	step, err := c.script.next(KindExec, query, args)
	if err != nil {
		return nil, err
	}
	if step.Err != nil {
		return nil, step.Err
	}
	if step.Result != nil {
		return step.Result, nil
	}
	return Result{Affected: 1}, nil
}

type scriptedTx struct {
	script *Script
}

func (tx scriptedTx) Commit() error {
	atomic.AddInt32(&tx.script.commits, 1)
	return nil
}

func (tx scriptedTx) Rollback() error {
	atomic.AddInt32(&tx.script.rollbacks, 1)
	return nil
}

type Result struct {
	LastID   int64
	Affected int64
}

func (r Result) LastInsertId() (int64, error) { return r.LastID, nil }

func (r Result) RowsAffected() (int64, error) { return r.Affected, nil }

type scriptedRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *scriptedRows) Columns() []string { return r.columns }

func (r *scriptedRows) Close() error { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.idx]
	for i := range dest {
		dest[i] = nil
	}
	copy(dest, row)
	r.idx++
	return nil
}
