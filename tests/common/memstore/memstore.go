//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for command tests. It keeps
// the one-live-reservation-per-stadium-hour rule the database enforces.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var errUniqueSlot = errors.New(`duplicate key value violates unique constraint "ux_reservations_active_slot"`)

type followKey struct {
	userID uuid.UUID
	clubID uuid.UUID
}

type row struct {
	snap     shared.ReservationSnapshot
	slotHour time.Time
	seq      int
}

type state struct {
	clubs        map[uuid.UUID]shared.ClubSnapshot
	stadiums     map[uuid.UUID]shared.StadiumSnapshot
	emails       map[uuid.UUID]string
	followers    map[followKey]int
	reservations map[uuid.UUID]row
	seq          int
}

func (s *state) clone() *state {
	c := &state{
		clubs:        make(map[uuid.UUID]shared.ClubSnapshot, len(s.clubs)),
		stadiums:     make(map[uuid.UUID]shared.StadiumSnapshot, len(s.stadiums)),
		emails:       make(map[uuid.UUID]string, len(s.emails)),
		followers:    make(map[followKey]int, len(s.followers)),
		reservations: make(map[uuid.UUID]row, len(s.reservations)),
		seq:          s.seq,
	}
	for k, v := range s.clubs {
		c.clubs[k] = v
	}
	for k, v := range s.stadiums {
		c.stadiums[k] = v
	}
	for k, v := range s.emails {
		c.emails[k] = v
	}
	for k, v := range s.followers {
		c.followers[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

// Store is safe for concurrent use. Within works on a copy and swaps it in on success.
type Store struct {
	mu    sync.Mutex
	loc   *time.Location
	state *state

	// Fault injection. A non-nil return fails the call.
	SaveErr   func(res *reservation.Reservation) error
	CancelErr func(id uuid.UUID) error
	ReadErr   func(op string) error

	commits   int
	rollbacks int
}

func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{
		loc: loc,
		state: &state{
			clubs:        map[uuid.UUID]shared.ClubSnapshot{},
			stadiums:     map[uuid.UUID]shared.StadiumSnapshot{},
			emails:       map[uuid.UUID]string{},
			followers:    map[followKey]int{},
			reservations: map[uuid.UUID]row{},
		},
	}
}

// Seeding

func (s *Store) AddClub(name string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.clubs[id] = shared.ClubSnapshot{ID: id, Name: name}
	return id
}

func (s *Store) AddStadium(clubID uuid.UUID, name string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.stadiums[id] = shared.StadiumSnapshot{ID: id, ClubID: clubID, Name: name}
	return id
}

func (s *Store) AddUser(email string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.emails[id] = email
	return id
}

func (s *Store) AddFollower(userID, clubID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.seq++
	s.state.followers[followKey{userID, clubID}] = s.state.seq
}

// Seed stores res as is, bypassing the slot rule, so tests can build states the
// application would normally refuse.
func (s *Store) Seed(res *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.put(res, s.loc)
}

// Inspection

func (s *Store) Get(id uuid.UUID) (shared.ReservationSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.reservations[id]
	return r.snap, ok
}

// InHour lists every record of the stadium-hour containing t, oldest first.
func (s *Store) InHour(stadiumID uuid.UUID, t time.Time) []shared.ReservationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := reservation.NewSlot(t.In(s.loc))
	var out []shared.ReservationSnapshot
	for _, r := range s.state.sorted() {
		if r.snap.StadiumID == stadiumID && r.slotHour.Equal(slot.Start()) {
			out = append(out, r.snap)
		}
	}
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.reservations)
}

func (s *Store) IsFollowing(userID, clubID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.followers[followKey{userID, clubID}]
	return ok
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	work := s.state.clone()
	s.mu.Unlock()

	tx := &memTx{store: s, state: work, dirty: map[uuid.UUID]bool{}}
	if err := fn(ctx, tx); err != nil {
		s.mu.Lock()
		s.rollbacks++
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a concurrent commit may have taken a slot this transaction also wrote
	for id := range tx.dirty {
		r := work.reservations[id]
		if r.snap.Status == reservation.StatusCanceled {
			continue
		}
		if other, ok := s.state.activeAt(r.snap.StadiumID, r.slotHour); ok && other.snap.ID != r.snap.ID {
			s.rollbacks++
			return infra.WrapRepoErr("failed to commit transaction", errUniqueSlot, infra.KindDuplicateKey)
		}
	}
	s.state = work
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &reads{store: s, state: s.state.clone()}
}

type memTx struct {
	store *Store
	state *state
	dirty map[uuid.UUID]bool
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{tx: t}
}

func (t *memTx) Followers() shared.FollowerRepository {
	return &followerRepo{tx: t}
}

func (t *memTx) Reads() shared.CommandReads {
	return &reads{store: t.store, state: t.state}
}

func (t *memTx) DB() sqlc.DBTX {
	return nil
}

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) Save(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.tx.store.SaveErr != nil {
		if err := r.tx.store.SaveErr(res); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to upsert reservation", err)
		}
	}
	st := r.tx.state
	if _, ok := st.stadiums[res.StadiumID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert reservation", errors.New("stadium fk"), infra.KindForeignKeyViolated)
	}
	if res.Status() != reservation.StatusCanceled {
		slotHour := reservation.NewSlot(res.Time().In(r.tx.store.loc)).Start()
		if other, ok := st.activeAt(res.StadiumID(), slotHour); ok && other.snap.ID != res.ID() {
			return uuid.Nil, infra.WrapRepoErr("failed to upsert reservation", errUniqueSlot, infra.KindDuplicateKey)
		}
	}
	st.put(res, r.tx.store.loc)
	r.tx.dirty[res.ID()] = true
	return res.ID(), nil
}

func (r *reservationRepo) CancelByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	if r.tx.store.CancelErr != nil {
		if err := r.tx.store.CancelErr(id); err != nil {
			return 0, infra.WrapRepoErr("failed to cancel reservation", err)
		}
	}
	st := r.tx.state
	existing, ok := st.reservations[id]
	if !ok {
		return 0, nil
	}
	existing.snap.Status = reservation.StatusCanceled
	st.reservations[id] = existing
	r.tx.dirty[id] = true
	return 1, nil
}

type followerRepo struct {
	tx *memTx
}

func (r *followerRepo) Follow(_ context.Context, _ sqlc.DBTX, userID, clubID uuid.UUID) error {
	st := r.tx.state
	key := followKey{userID, clubID}
	if _, ok := st.followers[key]; ok {
		return infra.WrapRepoErr("failed to create club follower", errors.New("duplicate follower"), infra.KindDuplicateKey)
	}
	st.seq++
	st.followers[key] = st.seq
	return nil
}

func (r *followerRepo) Unfollow(_ context.Context, _ sqlc.DBTX, userID, clubID uuid.UUID) (int64, error) {
	st := r.tx.state
	key := followKey{userID, clubID}
	if _, ok := st.followers[key]; !ok {
		return 0, nil
	}
	delete(st.followers, key)
	return 1, nil
}

type reads struct {
	store *Store
	state *state
}

func (r *reads) fail(op string) error {
	if r.store.ReadErr == nil {
		return nil
	}
	if err := r.store.ReadErr(op); err != nil {
		return infra.WrapRepoErr(op, err)
	}
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (r *reads) StadiumByID(_ context.Context, id uuid.UUID) (*shared.StadiumSnapshot, error) {
	if err := r.fail("StadiumByID"); err != nil {
		return nil, err
	}
	s, ok := r.state.stadiums[id]
	if !ok {
		return nil, notFound("stadium not found")
	}
	return &s, nil
}

func (r *reads) ClubByID(_ context.Context, id uuid.UUID) (*shared.ClubSnapshot, error) {
	if err := r.fail("ClubByID"); err != nil {
		return nil, err
	}
	c, ok := r.state.clubs[id]
	if !ok {
		return nil, notFound("club not found")
	}
	return &c, nil
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if err := r.fail("ReservationByID"); err != nil {
		return nil, err
	}
	rec, ok := r.state.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	snap := rec.snap
	return &snap, nil
}

// ReservationByStadiumAndHour prefers a live record, then the latest time, like the SQL query.
func (r *reads) ReservationByStadiumAndHour(_ context.Context, stadiumID uuid.UUID, from, to time.Time) (*shared.ReservationSnapshot, error) {
	if err := r.fail("ReservationByStadiumAndHour"); err != nil {
		return nil, err
	}
	var best *row
	for _, candidate := range r.state.sorted() {
		t := candidate.snap.ReservationTime
		if candidate.snap.StadiumID != stadiumID || t.Before(from) || !t.Before(to) {
			continue
		}
		if best == nil || better(candidate, *best) {
			c := candidate
			best = &c
		}
	}
	if best == nil {
		return nil, notFound("slot is vacant")
	}
	snap := best.snap
	return &snap, nil
}

func better(a, b row) bool {
	aLive := a.snap.Status != reservation.StatusCanceled
	bLive := b.snap.Status != reservation.StatusCanceled
	if aLive != bLive {
		return aLive
	}
	return a.snap.ReservationTime.After(b.snap.ReservationTime)
}

func (r *reads) PinnedReservationsByDay(_ context.Context, from, to time.Time) ([]*shared.ReservationSnapshot, error) {
	if err := r.fail("PinnedReservationsByDay"); err != nil {
		return nil, err
	}
	var out []*shared.ReservationSnapshot
	for _, candidate := range r.state.sorted() {
		t := candidate.snap.ReservationTime
		if candidate.snap.Status != reservation.StatusPinned || t.Before(from) || !t.Before(to) {
			continue
		}
		snap := candidate.snap
		out = append(out, &snap)
	}
	return out, nil
}

func (r *reads) FollowerEmailsByClub(_ context.Context, clubID uuid.UUID) ([]string, error) {
	if err := r.fail("FollowerEmailsByClub"); err != nil {
		return nil, err
	}
	type follower struct {
		email string
		seq   int
	}
	var fs []follower
	for key, seq := range r.state.followers {
		if key.clubID != clubID {
			continue
		}
		if email, ok := r.state.emails[key.userID]; ok {
			fs = append(fs, follower{email: email, seq: seq})
		}
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i].seq < fs[j].seq })
	emails := make([]string, len(fs))
	for i, f := range fs {
		emails[i] = f.email
	}
	return emails, nil
}

func (r *reads) IsFollowing(_ context.Context, userID, clubID uuid.UUID) (bool, error) {
	if err := r.fail("IsFollowing"); err != nil {
		return false, err
	}
	_, ok := r.state.followers[followKey{userID, clubID}]
	return ok, nil
}

// state helpers

func (s *state) put(res *reservation.Reservation, loc *time.Location) {
	existing, ok := s.reservations[res.ID()]
	seq := existing.seq
	if !ok {
		s.seq++
		seq = s.seq
	}
	s.reservations[res.ID()] = row{
		snap: shared.ReservationSnapshot{
			ID:              res.ID(),
			StadiumID:       res.StadiumID(),
			UserID:          res.UserID(),
			PlayerName:      res.PlayerName().String(),
			ReservationTime: res.Time(),
			Status:          res.Status(),
		},
		slotHour: reservation.NewSlot(res.Time().In(loc)).Start(),
		seq:      seq,
	}
}

func (s *state) activeAt(stadiumID uuid.UUID, slotHour time.Time) (row, bool) {
	for _, r := range s.reservations {
		if r.snap.StadiumID == stadiumID && r.snap.Status != reservation.StatusCanceled && r.slotHour.Equal(slotHour) {
			return r, true
		}
	}
	return row{}, false
}

func (s *state) sorted() []row {
	rows := make([]row, 0, len(s.reservations))
	for _, r := range s.reservations {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}
