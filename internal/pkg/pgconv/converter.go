package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// TimeInFromPgtype returns the stored instant expressed in loc.
func TimeInFromPgtype(pt pgtype.Timestamptz, loc *time.Location) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	if loc == nil {
		return pt.Time
	}
	return pt.Time.In(loc)
}

// TimeToPgtype maps the zero time to NULL.
func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
