//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationViewQueries) GetReservationByStadiumAndTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByStadiumAndTimeRangeParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByStadiumAndTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByStadiumAndTimeRangeParams) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

func (m *MockReservationViewQueries) ListPinnedReservationsByTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPinnedReservationsByTimeRangeParams) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

func tokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestReservationReadStore_FindByID(t *testing.T) {
	row := builder.NewReservationBuilder().BuildInfra()
	corrupt := row
	corrupt.Status = "reserved"

	tests := []struct {
		name      string
		mockRow   sqlc.Reservations
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found (pgx)", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "not found (sql)", mockError: sql.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "unknown status", mockRow: corrupt, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := tokyo(t)
			mockQueries := new(MockReservationViewQueries)
			mockQueries.On("GetReservationByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			store := NewReservationReadStore(mockQueries, nil, loc)
			view, err := store.FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, view)
				assert.Equal(t, row.ID, view.ID)
				assert.Equal(t, row.Status, view.Status)
				assert.Equal(t, loc, view.ReservationTime.Location())
				assert.True(t, row.ReservationTime.Time.Equal(view.ReservationTime))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationReadStore_FindByStadiumAndHourRange(t *testing.T) {
	loc := tokyo(t)
	stadiumID := uuid.New()
	from := time.Date(2026, 3, 1, 10, 0, 0, 0, loc)
	to := from.Add(time.Hour)

	t.Run("vacant slot is NOT_FOUND", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservationByStadiumAndTimeRange", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.GetReservationByStadiumAndTimeRangeParams) bool {
			return p.StadiumID == stadiumID && p.FromTime.Time.Equal(from) && p.ToTime.Time.Equal(to)
		})).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		store := NewReservationReadStore(mockQueries, nil, loc)
		view, err := store.FindByStadiumAndHourRange(context.Background(), stadiumID, from, to)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})

	t.Run("occupant returned", func(t *testing.T) {
		row := builder.NewReservationBuilder().WithStadiumID(stadiumID).WithTime(from.Add(15 * time.Minute)).BuildInfra()
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservationByStadiumAndTimeRange", mock.Anything, mock.Anything, mock.Anything).Return(row, nil)

		store := NewReservationReadStore(mockQueries, nil, loc)
		view, err := store.FindByStadiumAndHourRange(context.Background(), stadiumID, from, to)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.True(t, view.SlotStart.Equal(from))
	})
}

func TestReservationReadStore_FindByStadiumAndDate(t *testing.T) {
	loc := tokyo(t)
	stadiumID := uuid.New()
	date := time.Date(2026, 3, 1, 17, 30, 0, 0, loc)
	wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	wantTo := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	rows := []sqlc.Reservations{
		builder.NewReservationBuilder().WithStadiumID(stadiumID).WithTime(wantFrom.Add(9 * time.Hour)).BuildInfra(),
		builder.NewReservationBuilder().WithStadiumID(stadiumID).WithTime(wantFrom.Add(11 * time.Hour)).BuildInfra(),
	}

	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListReservationsByStadiumAndTimeRange", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ListReservationsByStadiumAndTimeRangeParams) bool {
		return p.StadiumID == stadiumID && p.FromTime.Time.Equal(wantFrom) && p.ToTime.Time.Equal(wantTo)
	})).Return(rows, nil)

	store := NewReservationReadStore(mockQueries, nil, loc)
	views, err := store.FindByStadiumAndDate(context.Background(), stadiumID, date)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, rows[0].ID, views[0].ID)
	assert.Equal(t, rows[1].ID, views[1].ID)
	mockQueries.AssertExpectations(t)

	t.Run("one unknown status fails the whole list", func(t *testing.T) {
		bad := append([]sqlc.Reservations{}, rows...)
		bad[1].Status = "EXPIRED"
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListReservationsByStadiumAndTimeRange", mock.Anything, mock.Anything, mock.Anything).Return(bad, nil)

		views, err := NewReservationReadStore(mockQueries, nil, loc).FindByStadiumAndDate(context.Background(), stadiumID, date)

		require.Error(t, err)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestReservationReadStore_FindPinnedByDate(t *testing.T) {
	loc := tokyo(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListPinnedReservationsByTimeRange", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Reservations(nil), assert.AnError)

	store := NewReservationReadStore(mockQueries, nil, loc)
	views, err := store.FindPinnedByDate(context.Background(), from, to)

	require.Error(t, err)
	assert.Nil(t, views)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
