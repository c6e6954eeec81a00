// Package pgerr classifies errors returned by pgx into the few categories
// repositories care about.
package pgerr

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

type Code int

const (
	Other Code = iota
	NoRows
	TooManyRows
	UniqueViolation
	NotNullViolation
	CheckViolation
	Unavailable
)

// SQLSTATE values, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

func (c Code) String() string {
	switch c {
	case NoRows:
		return "no_rows"
	case TooManyRows:
		return "too_many_rows"
	case UniqueViolation:
		return "unique_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case Unavailable:
		return "unavailable"
	default:
		return "other"
	}
}

// Classify maps err to a Code. Only connection level failures (dial, TLS,
// pool closed, timeouts, cancellation) are Unavailable. Client side errors
// such as argument encoding stay Other.
func Classify(err error) Code {
	if err == nil {
		return Other
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NoRows
	}
	if errors.Is(err, pgx.ErrTooManyRows) {
		return TooManyRows
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapSQLState(pgErr.Code)
	}

	if isConnectionFailure(err) {
		return Unavailable
	}

	return Other
}

func isConnectionFailure(err error) bool {
	var (
		connErr *pgconn.ConnectError
		netErr  net.Error
	)

	switch {
	case errors.As(err, &connErr), errors.As(err, &netErr):
		return true
	case pgconn.Timeout(err):
		return true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return true
	case errors.Is(err, puddle.ErrClosedPool):
		return true
	default:
		return false
	}
}

// Constraint returns the violated constraint name, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func mapSQLState(code string) Code {
	switch code {
	case sqlStateUniqueViolation:
		return UniqueViolation
	case sqlStateNotNullViolation:
		return NotNullViolation
	case sqlStateCheckViolation:
		return CheckViolation
	default:
		return Other
	}
}
