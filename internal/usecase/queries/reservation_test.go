//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/usecase/queries"
	"stadium-scheduler/tests/common/builder"
	queriesmock "stadium-scheduler/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	reservations *queriesmock.MockReservationReadStore
	stadiums     *queriesmock.MockStadiumReadStore
	now          time.Time
	q            queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservations = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.stadiums = queriesmock.NewMockStadiumReadStore(s.ctrl)
	s.now = time.Date(2026, 3, 3, 10, 0, 0, 0, builder.Tokyo())
	s.q = queries.NewReservationQueries(s.reservations, s.stadiums, clock.NewMockClock(s.now))
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	view := builder.NewReservationBuilder().BuildView()

	tests := []struct {
		name     string
		storeErr error
		wantView bool
		errIs    error
	}{
		{name: "found", wantView: true},
		{name: "not found", storeErr: notFound(), errIs: errs.ErrReservationNotFound},
		{name: "store failure", storeErr: infra.WrapRepoErr("boom", errors.New("conn")), errIs: errs.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			if tt.storeErr != nil {
				s.reservations.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tt.storeErr)
			} else {
				s.reservations.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := s.q.GetByID(context.Background(), view.ID)
			if tt.errIs != nil {
				s.Nil(got)
				s.True(errs.Is(err, tt.errIs), "got %v", err)
				return
			}
			s.Require().NoError(err)
			s.Equal(view, got)
		})
	}
}

func (s *ReservationQueriesTestSuite) TestListByStadiumAndDate() {
	stadiumID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, builder.Tokyo())

	s.Run("returns the store's views in order", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithStadiumID(stadiumID).WithTime(date.Add(9 * time.Hour)).BuildView(),
			builder.NewReservationBuilder().WithStadiumID(stadiumID).WithTime(date.Add(18 * time.Hour)).AsCanceled().BuildView(),
		}
		s.reservations.EXPECT().FindByStadiumAndDate(gomock.Any(), stadiumID, date).Return(views, nil)

		got, err := s.q.ListByStadiumAndDate(context.Background(), stadiumID, date)
		s.Require().NoError(err)
		s.Equal(views, got)
	})

	s.Run("unknown stadium is an empty list", func() {
		s.reservations.EXPECT().FindByStadiumAndDate(gomock.Any(), stadiumID, date).Return([]*queries.ReservationView{}, nil)

		got, err := s.q.ListByStadiumAndDate(context.Background(), stadiumID, date)
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("store failure", func() {
		s.reservations.EXPECT().FindByStadiumAndDate(gomock.Any(), stadiumID, date).Return(nil, errors.New("timeout"))

		_, err := s.q.ListByStadiumAndDate(context.Background(), stadiumID, date)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *ReservationQueriesTestSuite) TestListUpcoming() {
	stadiumID := uuid.New()
	stadium := &queries.StadiumView{ID: stadiumID, ClubID: uuid.New(), Name: "North Pitch"}

	s.Run("window starts now and spans the requested days", func() {
		s.stadiums.EXPECT().FindStadiumByID(gomock.Any(), stadiumID).Return(stadium, nil)
		s.reservations.EXPECT().
			FindByStadiumAndDateRange(gomock.Any(), stadiumID, s.now, s.now.AddDate(0, 0, 3)).
			Return([]*queries.ReservationView{}, nil)

		got, err := s.q.ListUpcoming(context.Background(), stadiumID, 3)
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("zero days falls back to the default window", func() {
		s.stadiums.EXPECT().FindStadiumByID(gomock.Any(), stadiumID).Return(stadium, nil)
		s.reservations.EXPECT().
			FindByStadiumAndDateRange(gomock.Any(), stadiumID, s.now, s.now.AddDate(0, 0, queries.DefaultUpcomingDays)).
			Return(nil, nil)

		_, err := s.q.ListUpcoming(context.Background(), stadiumID, 0)
		s.NoError(err)
	})

	s.Run("more than the maximum is rejected before any lookup", func() {
		_, err := s.q.ListUpcoming(context.Background(), stadiumID, queries.MaxUpcomingDays+1)
		s.ErrorIs(err, errs.ErrInvalidRange)
	})

	s.Run("unknown stadium", func() {
		s.stadiums.EXPECT().FindStadiumByID(gomock.Any(), stadiumID).Return(nil, notFound())

		_, err := s.q.ListUpcoming(context.Background(), stadiumID, 7)
		s.ErrorIs(err, errs.ErrStadiumNotFound)
	})

	s.Run("stadium lookup failure", func() {
		s.stadiums.EXPECT().FindStadiumByID(gomock.Any(), stadiumID).Return(nil, errors.New("timeout"))

		_, err := s.q.ListUpcoming(context.Background(), stadiumID, 7)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
		s.False(errs.Is(err, errs.ErrStadiumNotFound))
	})
}

func TestListUpcomingMaximumIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	reservations := queriesmock.NewMockReservationReadStore(ctrl)
	stadiums := queriesmock.NewMockStadiumReadStore(ctrl)
	now := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	stadiumID := uuid.New()

	stadiums.EXPECT().FindStadiumByID(gomock.Any(), stadiumID).Return(&queries.StadiumView{ID: stadiumID}, nil)
	reservations.EXPECT().
		FindByStadiumAndDateRange(gomock.Any(), stadiumID, now, now.AddDate(0, 0, queries.MaxUpcomingDays)).
		Return(nil, nil)

	got, err := queries.NewReservationQueries(reservations, stadiums, clock.NewMockClock(now)).
		ListUpcoming(context.Background(), stadiumID, queries.MaxUpcomingDays)
	require.NoError(t, err)
	assert.Empty(t, got)
}
