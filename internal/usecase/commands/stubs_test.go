//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stagepass/internal/domain/managerreq"
	"stagepass/internal/domain/reservation"
	"stagepass/internal/domain/schedule"
	"stagepass/internal/domain/team"
	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func repoNotFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

func repoDuplicate(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("unique violation"), infra.KindDuplicateKey)
}

type stubUserRepo struct {
	users     map[uuid.UUID]*user.User
	createErr error
	created   []*user.User
	updated   []*user.User
}

func newStubUserRepo(seed ...*user.User) *stubUserRepo {
	s := &stubUserRepo{users: make(map[uuid.UUID]*user.User)}
	for _, u := range seed {
		s.users[u.ID()] = u
	}
	return s
}

func (s *stubUserRepo) Create(_ context.Context, u *user.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.users[u.ID()] = u
	s.created = append(s.created, u)
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repoNotFound("user not found")
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range s.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, repoNotFound("user not found")
}

func (s *stubUserRepo) FindByKakaoID(_ context.Context, kakaoID int64) (*user.User, error) {
	for _, u := range s.users {
		if u.KakaoID() != nil && *u.KakaoID() == kakaoID {
			return u, nil
		}
	}
	return nil, repoNotFound("user not found")
}

func (s *stubUserRepo) Update(_ context.Context, u *user.User) error {
	s.users[u.ID()] = u
	s.updated = append(s.updated, u)
	return nil
}

type stubTeamRepo struct {
	teams     map[uuid.UUID]*team.Team
	createErr error
	updateErr error
	deleted   []uuid.UUID
	updated   []*team.Team
}

func newStubTeamRepo(seed ...*team.Team) *stubTeamRepo {
	s := &stubTeamRepo{teams: make(map[uuid.UUID]*team.Team)}
	for _, tm := range seed {
		s.teams[tm.ID()] = tm
	}
	return s
}

func (s *stubTeamRepo) Create(_ context.Context, t *team.Team) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.teams[t.ID()] = t
	return nil
}

func (s *stubTeamRepo) Update(_ context.Context, t *team.Team) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.teams[t.ID()] = t
	s.updated = append(s.updated, t)
	return nil
}

func (s *stubTeamRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.teams, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*team.Team, error) {
	if t, ok := s.teams[id]; ok {
		return t, nil
	}
	return nil, repoNotFound("team not found")
}

func (s *stubTeamRepo) FindAll(_ context.Context) ([]*team.Team, error) {
	all := make([]*team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		all = append(all, t)
	}
	return all, nil
}

// stubTxBeginner hands out no-op transactions so command tests can drive the
// reservation write path without a database.
type stubTxBeginner struct {
	tx stubTx
}

func (s *stubTxBeginner) Begin(_ context.Context) (pgx.Tx, error) {
	return &s.tx, nil
}

type stubTx struct {
	commits   int
	rollbacks int
}

func (t *stubTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(_ context.Context) error          { t.commits++; return nil }
func (t *stubTx) Rollback(_ context.Context) error        { t.rollbacks++; return nil }
func (t *stubTx) Conn() *pgx.Conn                         { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects          { return pgx.LargeObjects{} }

func (t *stubTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *stubTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults {
	return nil
}

func (t *stubTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *stubTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

type stubScheduleRepo struct {
	schedules   map[uuid.UUID]*schedule.Schedule
	activeCount int64
	updated     []*schedule.Schedule
	locked      []uuid.UUID
}

func newStubScheduleRepo(seed ...*schedule.Schedule) *stubScheduleRepo {
	s := &stubScheduleRepo{schedules: make(map[uuid.UUID]*schedule.Schedule)}
	for _, sc := range seed {
		s.schedules[sc.ID()] = sc
	}
	return s
}

func (s *stubScheduleRepo) Create(_ context.Context, sc *schedule.Schedule) error {
	s.schedules[sc.ID()] = sc
	return nil
}

func (s *stubScheduleRepo) Update(_ context.Context, sc *schedule.Schedule) error {
	s.schedules[sc.ID()] = sc
	s.updated = append(s.updated, sc)
	return nil
}

func (s *stubScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	if sc, ok := s.schedules[id]; ok {
		return sc, nil
	}
	return nil, repoNotFound("schedule not found")
}

func (s *stubScheduleRepo) CountActiveReservations(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.activeCount, nil
}

func (s *stubScheduleRepo) LockForUpdate(_ context.Context, _ db.DBTX, scheduleID uuid.UUID) error {
	if _, ok := s.schedules[scheduleID]; !ok {
		return repoNotFound("schedule not found")
	}
	s.locked = append(s.locked, scheduleID)
	return nil
}

type stubReservationRepo struct {
	byID         map[uuid.UUID]*reservation.Reservation
	byQR         map[string]*reservation.Reservation
	updateCount  int
	activeCount  int64
	existsActive bool
}

func newStubReservationRepo(seed ...*reservation.Reservation) *stubReservationRepo {
	s := &stubReservationRepo{
		byID: make(map[uuid.UUID]*reservation.Reservation),
		byQR: make(map[string]*reservation.Reservation),
	}
	for _, r := range seed {
		s.byID[r.ID()] = r
		s.byQR[r.QRCode()] = r
	}
	return s
}

func (s *stubReservationRepo) Create(_ context.Context, _ db.DBTX, r *reservation.Reservation) error {
	s.byID[r.ID()] = r
	s.byQR[r.QRCode()] = r
	return nil
}

func (s *stubReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if r, ok := s.byID[id]; ok {
		return r, nil
	}
	return nil, repoNotFound("reservation not found")
}

func (s *stubReservationRepo) FindByQRCode(_ context.Context, code string) (*reservation.Reservation, error) {
	if r, ok := s.byQR[code]; ok {
		return r, nil
	}
	return nil, repoNotFound("reservation not found")
}

func (s *stubReservationRepo) Update(_ context.Context, r *reservation.Reservation) error {
	s.byID[r.ID()] = r
	s.updateCount++
	return nil
}

func (s *stubReservationRepo) CountActiveBySchedule(_ context.Context, _ db.DBTX, _ uuid.UUID) (int64, error) {
	return s.activeCount, nil
}

func (s *stubReservationRepo) ExistsActive(_ context.Context, _ db.DBTX, _, _ uuid.UUID, _ *uuid.UUID) (bool, error) {
	return s.existsActive, nil
}

func (s *stubReservationRepo) CancelExpiredPending(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type stubIdempotencyRepo struct {
	inserted  bool
	record    *commands.IdempotencyRecord
	insertErr error
	getErr    error
}

func (s *stubIdempotencyRepo) TryInsert(_ context.Context, _, _ uuid.UUID, _, _ string, _ time.Time) (bool, error) {
	if s.insertErr != nil {
		return false, s.insertErr
	}
	return s.inserted, nil
}

func (s *stubIdempotencyRepo) Get(_ context.Context, _, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.record, nil
}

func (s *stubIdempotencyRepo) UpdateStatusCompleted(_ context.Context, _ db.DBTX, _, _, _ uuid.UUID) error {
	return nil
}

type stubNotificationRepo struct{}

func (s *stubNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, _, _ string, _ []byte, _ time.Time) error {
	return nil
}

type stubRequestRepo struct {
	requests  map[uuid.UUID]*managerreq.Request
	pending   bool
	createErr error
	updated   []*managerreq.Request
}

func newStubRequestRepo(seed ...*managerreq.Request) *stubRequestRepo {
	s := &stubRequestRepo{requests: make(map[uuid.UUID]*managerreq.Request)}
	for _, r := range seed {
		s.requests[r.ID()] = r
	}
	return s
}

func (s *stubRequestRepo) Create(_ context.Context, r *managerreq.Request) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.requests[r.ID()] = r
	return nil
}

func (s *stubRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*managerreq.Request, error) {
	if r, ok := s.requests[id]; ok {
		return r, nil
	}
	return nil, repoNotFound("manager request not found")
}

func (s *stubRequestRepo) Update(_ context.Context, r *managerreq.Request) error {
	s.requests[r.ID()] = r
	s.updated = append(s.updated, r)
	return nil
}

func (s *stubRequestRepo) HasPending(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.pending, nil
}

type stubDeduper struct {
	first bool
	err   error
}

func (s *stubDeduper) Acquire(_ context.Context, _ string) (bool, error) {
	return s.first, s.err
}

type stubKakaoClient struct {
	exchangeErr error
	fetchErr    error
	profile     *commands.KakaoProfile
}

func (s *stubKakaoClient) ExchangeCode(_ context.Context, _ string) (string, error) {
	if s.exchangeErr != nil {
		return "", s.exchangeErr
	}
	return "access-token", nil
}

func (s *stubKakaoClient) FetchProfile(_ context.Context, _ string) (*commands.KakaoProfile, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.profile, nil
}

// stubReservationViews satisfies queries.ReservationQueries with a fixed view
// per reservation ID, sidestepping the read store. When repo is set, views
// for reservations written during the test are derived from it, covering the
// read-after-write lookup for IDs generated inside the command.
type stubReservationViews struct {
	views map[uuid.UUID]*queries.ReservationView
	repo  *stubReservationRepo
}

func newStubReservationViews(seed ...*queries.ReservationView) *stubReservationViews {
	s := &stubReservationViews{views: make(map[uuid.UUID]*queries.ReservationView)}
	for _, v := range seed {
		s.views[v.ID] = v
	}
	return s
}

func (s *stubReservationViews) GetByID(_ context.Context, _ uuid.UUID, _ user.Role, id uuid.UUID) (*queries.ReservationView, error) {
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	return nil, queries.ErrNotFound
}

func (s *stubReservationViews) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	if s.repo != nil {
		if res, ok := s.repo.byID[id]; ok {
			return reservationViewFor(res), nil
		}
	}
	return nil, queries.ErrNotFound
}

func (s *stubReservationViews) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	var out []*queries.ReservationView
	for _, v := range s.views {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func testSchedule(t *testing.T, managerID uuid.UUID, pricing schedule.Pricing) *schedule.Schedule {
	t.Helper()
	window, err := schedule.NewPublishWindow(nil, nil)
	require.NoError(t, err)
	s, err := schedule.NewSchedule(managerID, "가을 공연", nil, time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), window, 50, nil, nil, nil, pricing, true, nil)
	require.NoError(t, err)
	return s
}

func freePricing(t *testing.T) schedule.Pricing {
	t.Helper()
	p, err := schedule.NewPricing(nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return p
}

func paidPricing(t *testing.T, advance int64) schedule.Pricing {
	t.Helper()
	p, err := schedule.NewPricing(&advance, nil, nil, nil, nil)
	require.NoError(t, err)
	return p
}

func confirmedReservation(t *testing.T, userID, scheduleID uuid.UUID) *reservation.Reservation {
	t.Helper()
	money, err := reservation.NewMoney(0)
	require.NoError(t, err)
	res, err := reservation.NewReservation(userID, scheduleID, nil, "밴드A", nil, reservation.MethodCard, money, nil)
	require.NoError(t, err)
	return res
}

func pendingBankReservation(t *testing.T, userID, scheduleID uuid.UUID) *reservation.Reservation {
	t.Helper()
	money, err := reservation.NewMoney(15000)
	require.NoError(t, err)
	acc, err := reservation.NewRefundAccount("신한", "110-123-456789", "김하늘")
	require.NoError(t, err)
	res, err := reservation.NewReservation(userID, scheduleID, nil, "밴드A", nil, reservation.MethodBank, money, &acc)
	require.NoError(t, err)
	return res
}

func reservationViewFor(res *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                res.ID(),
		UserID:            res.UserID(),
		ScheduleID:        res.ScheduleID(),
		PerformerName:     res.PerformerName(),
		PaymentStatus:     res.PaymentStatus().String(),
		ReservationStatus: res.Status().String(),
		PaymentMethod:     res.PaymentMethod().String(),
		Amount:            res.Amount().Won(),
		QRCode:            res.QRCode(),
		IsEntered:         res.IsEntered(),
	}
}
