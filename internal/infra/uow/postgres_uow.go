package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/infra/readstore"
	"stadium-scheduler/internal/infra/repository"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/usecase/queries"
	"stadium-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	loc  *time.Location
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, loc *time.Location) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
		loc:  loc,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	followerRepo    shared.FollowerRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Followers() shared.FollowerRepository {
	if t.followerRepo == nil {
		t.followerRepo = repository.NewFollowerRepository(t.uow.q, t.dbtx)
	}
	return t.followerRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	reservationStore *readstore.ReservationReadStore
	clubStore        *readstore.ClubReadStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx, r.uow.loc)
	}
	return r.reservationStore
}

func (r *commandReads) clubs() *readstore.ClubReadStore {
	if r.clubStore == nil {
		r.clubStore = readstore.NewClubReadStore(r.uow.q, r.dbtx)
	}
	return r.clubStore
}

func (r *commandReads) StadiumByID(ctx context.Context, id uuid.UUID) (*shared.StadiumSnapshot, error) {
	stadium, err := r.clubs().FindStadiumByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.StadiumSnapshot{
		ID:     stadium.ID,
		ClubID: stadium.ClubID,
		Name:   stadium.Name,
	}, nil
}

func (r *commandReads) ClubByID(ctx context.Context, id uuid.UUID) (*shared.ClubSnapshot, error) {
	club, err := r.clubs().FindClubByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ClubSnapshot{ID: club.ID, Name: club.Name}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	view, err := r.reservations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSnapshot(view)
}

func (r *commandReads) ReservationByStadiumAndHour(ctx context.Context, stadiumID uuid.UUID, from, to time.Time) (*shared.ReservationSnapshot, error) {
	view, err := r.reservations().FindByStadiumAndHourRange(ctx, stadiumID, from, to)
	if err != nil {
		return nil, err
	}
	return toSnapshot(view)
}

func (r *commandReads) PinnedReservationsByDay(ctx context.Context, from, to time.Time) ([]*shared.ReservationSnapshot, error) {
	views, err := r.reservations().FindPinnedByDate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	snaps := make([]*shared.ReservationSnapshot, len(views))
	for i, v := range views {
		snap, err := toSnapshot(v)
		if err != nil {
			return nil, err
		}
		snaps[i] = snap
	}
	return snaps, nil
}

func (r *commandReads) FollowerEmailsByClub(ctx context.Context, clubID uuid.UUID) ([]string, error) {
	return r.clubs().FindFollowerEmails(ctx, clubID)
}

func (r *commandReads) IsFollowing(ctx context.Context, userID, clubID uuid.UUID) (bool, error) {
	return r.clubs().IsFollowing(ctx, userID, clubID)
}

func toSnapshot(v *queries.ReservationView) (*shared.ReservationSnapshot, error) {
	status, err := reservation.ParseStatus(v.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation "+v.ID.String()+" has an unknown status", err, infra.KindDBFailure)
	}
	return &shared.ReservationSnapshot{
		ID:              v.ID,
		StadiumID:       v.StadiumID,
		UserID:          v.UserID,
		PlayerName:      v.PlayerName,
		ReservationTime: v.ReservationTime,
		Status:          status,
	}, nil
}
