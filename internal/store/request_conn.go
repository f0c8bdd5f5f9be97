package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/MKhiriev/go-blogr/internal/logger"
)

// Querier is the subset of database operations shared by *sql.DB and
// *sql.Conn. Repositories run all their statements through a Querier resolved
// from the request context, so a single request never executes on more than
// one connection.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RequestConn owns at most one database connection for the duration of a
// single inbound request.
//
// The connection is checked out of the pool lazily on the first Acquire call
// and cached; every later Acquire within the same request returns the
// identical handle. Release closes the handle (returning it to the pool) and
// marks the RequestConn unusable: any further Acquire fails with
// [ErrConnClosed] instead of silently reconnecting.
type RequestConn struct {
	db *DB

	mu       sync.Mutex
	conn     *sql.Conn
	released bool
}

// NewRequestConn creates an empty per-request connection slot backed by the
// given pool. No connection is checked out until the first Acquire.
func NewRequestConn(db *DB) *RequestConn {
	return &RequestConn{db: db}
}

// Acquire returns the request's database connection, checking one out of the
// pool on first use. Returns [ErrConnClosed] once Release has been called.
func (rc *RequestConn) Acquire(ctx context.Context) (*sql.Conn, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.released {
		return nil, ErrConnClosed
	}

	if rc.conn == nil {
		conn, err := rc.db.Conn(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*RequestConn.Acquire").Msg("error checking out request connection")
			return nil, err
		}
		rc.conn = conn
	}

	return rc.conn, nil
}

// Release closes the request's connection if one was acquired and marks the
// slot released. It is idempotent and must be called unconditionally at
// request teardown.
func (rc *RequestConn) Release() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.released {
		return nil
	}
	rc.released = true

	if rc.conn == nil {
		return nil
	}

	conn := rc.conn
	rc.conn = nil

	return conn.Close()
}

// requestConnCtxKey is a private context key type for storing the
// per-request connection. A dedicated type prevents collisions with keys
// from other packages.
type requestConnCtxKey struct{}

// WithRequestConn returns a copy of ctx carrying rc.
func WithRequestConn(ctx context.Context, rc *RequestConn) context.Context {
	return context.WithValue(ctx, requestConnCtxKey{}, rc)
}

// RequestConnFromContext retrieves the per-request connection previously
// attached with [WithRequestConn].
func RequestConnFromContext(ctx context.Context) (*RequestConn, bool) {
	rc, ok := ctx.Value(requestConnCtxKey{}).(*RequestConn)
	return rc, ok
}

// QuerierFromContext resolves the Querier a repository call must run on.
//
// When ctx carries a [RequestConn], its (lazily acquired) connection is
// returned, so every statement of the request shares one handle and a
// released request fails fast with [ErrConnClosed]. Outside of a request
// lifecycle (startup tasks, tests) the pool itself is returned.
func QuerierFromContext(ctx context.Context, pool *DB) (Querier, error) {
	if rc, ok := RequestConnFromContext(ctx); ok {
		conn, err := rc.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}

	return pool, nil
}

// normalizeConnErr maps database/sql's stale-connection error to the
// package's [ErrConnClosed] sentinel. A *sql.Conn used after Close reports
// [sql.ErrConnDone]; callers must see the same contract-violation error in
// that case as on a released RequestConn.
func normalizeConnErr(err error) error {
	if errors.Is(err, sql.ErrConnDone) {
		return ErrConnClosed
	}

	return err
}
