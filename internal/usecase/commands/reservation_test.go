//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"stagepass/internal/domain/reservation"
	"stagepass/internal/domain/schedule"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationEnv struct {
	commands        commands.ReservationCommands
	reservationRepo *stubReservationRepo
	scheduleRepo    *stubScheduleRepo
	idempotency     *stubIdempotencyRepo
	views           *stubReservationViews
	tx              *stubTxBeginner
	clock           *clock.MockClock
}

func newReservationEnv(t *testing.T) *reservationEnv {
	t.Helper()
	env := &reservationEnv{
		reservationRepo: newStubReservationRepo(),
		scheduleRepo:    newStubScheduleRepo(),
		idempotency:     &stubIdempotencyRepo{inserted: true},
		views:           newStubReservationViews(),
		tx:              &stubTxBeginner{},
		clock:           clock.NewMockClock(time.Date(2025, 10, 4, 12, 0, 0, 0, time.UTC)),
	}
	env.views.repo = env.reservationRepo
	env.commands = commands.NewReservationCommands(
		env.reservationRepo,
		env.scheduleRepo,
		env.idempotency,
		&stubNotificationRepo{},
		env.views,
		env.tx,
		env.clock,
	)
	return env
}

func paramsHash(t *testing.T, params commands.CreateReservationParams) string {
	t.Helper()
	data, err := json.Marshal(params)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestCreateReservationIdempotency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("completed key replays the stored result", func(t *testing.T) {
		env := newReservationEnv(t)
		res := confirmedReservation(t, userID, uuid.New())
		env.views.views[res.ID()] = reservationViewFor(res)

		resID := res.ID()
		env.idempotency.inserted = false
		env.idempotency.record = &commands.IdempotencyRecord{
			Status:              "completed",
			ResultReservationID: &resID,
		}

		result, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: res.ScheduleID()}, userID, uuid.New())

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, res.ID(), result.Reservation.ID)
	})

	t.Run("same key with a different body is a duplicate", func(t *testing.T) {
		env := newReservationEnv(t)
		env.idempotency.inserted = false
		env.idempotency.record = &commands.IdempotencyRecord{
			Status:      "processing",
			RequestHash: "something-else",
		}

		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: uuid.New()}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrDuplicateReservation)
	})

	t.Run("same key with the same body is still in flight", func(t *testing.T) {
		env := newReservationEnv(t)
		params := commands.CreateReservationParams{ScheduleID: uuid.New(), PaymentMethod: "CARD"}

		env.idempotency.inserted = false
		env.idempotency.record = &commands.IdempotencyRecord{
			Status:      "processing",
			RequestHash: paramsHash(t, params),
		}

		_, err := env.commands.CreateReservation(ctx, params, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})
}

func TestCreateReservationValidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unknown schedule", func(t *testing.T) {
		env := newReservationEnv(t)

		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: uuid.New(), PaymentMethod: "CARD"}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrScheduleNotFound)
	})

	t.Run("unpublished schedule hidden", func(t *testing.T) {
		env := newReservationEnv(t)
		window, err := schedule.NewPublishWindow(nil, nil)
		require.NoError(t, err)
		hidden, err := schedule.NewSchedule(uuid.New(), "비공개 공연", nil, env.clock.Now(), window, 50, nil, nil, nil, freePricing(t), false, nil)
		require.NoError(t, err)
		env.scheduleRepo.schedules[hidden.ID()] = hidden

		_, err = env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: hidden.ID(), PaymentMethod: "CARD"}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrScheduleNotFound)
	})

	t.Run("ticket sales not open yet", func(t *testing.T) {
		env := newReservationEnv(t)
		open := env.clock.Now().Add(time.Hour)
		window, err := schedule.NewPublishWindow(nil, &open)
		require.NoError(t, err)
		sched, err := schedule.NewSchedule(uuid.New(), "가을 공연", nil, env.clock.Now(), window, 50, nil, nil, nil, freePricing(t), true, nil)
		require.NoError(t, err)
		env.scheduleRepo.schedules[sched.ID()] = sched

		_, err = env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: sched.ID(), PaymentMethod: "CARD"}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrTicketNotOpen)
	})

	t.Run("unknown slot", func(t *testing.T) {
		env := newReservationEnv(t)
		sched := testSchedule(t, uuid.New(), freePricing(t))
		env.scheduleRepo.schedules[sched.ID()] = sched

		slotID := uuid.New()
		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: sched.ID(), SlotID: &slotID, PaymentMethod: "CARD"}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("paid bank transfer needs a refund account", func(t *testing.T) {
		env := newReservationEnv(t)
		sched := testSchedule(t, uuid.New(), paidPricing(t, 15000))
		env.scheduleRepo.schedules[sched.ID()] = sched

		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: sched.ID(), PaymentMethod: "BANK"}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrRefundAccountRequired)
	})

	t.Run("unpriced seat grade rejected", func(t *testing.T) {
		env := newReservationEnv(t)
		sched := testSchedule(t, uuid.New(), paidPricing(t, 15000))
		env.scheduleRepo.schedules[sched.ID()] = sched

		grade := "R"
		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{ScheduleID: sched.ID(), SeatGrade: &grade, PaymentMethod: "CARD"}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestCreateReservationCapacity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("last seat is granted under the schedule row lock", func(t *testing.T) {
		env := newReservationEnv(t)
		sched := testSchedule(t, uuid.New(), freePricing(t))
		env.scheduleRepo.schedules[sched.ID()] = sched
		env.reservationRepo.activeCount = int64(sched.Capacity()) - 1

		result, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{
			ScheduleID:    sched.ID(),
			PerformerName: "밴드A",
			PaymentMethod: "CARD",
		}, userID, uuid.New())

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		require.Len(t, env.scheduleRepo.locked, 1)
		assert.Equal(t, sched.ID(), env.scheduleRepo.locked[0])
		assert.Equal(t, 1, env.tx.tx.commits)
	})

	t.Run("full schedule rejected after the lock is taken", func(t *testing.T) {
		env := newReservationEnv(t)
		sched := testSchedule(t, uuid.New(), freePricing(t))
		env.scheduleRepo.schedules[sched.ID()] = sched
		env.reservationRepo.activeCount = int64(sched.Capacity())

		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{
			ScheduleID:    sched.ID(),
			PerformerName: "밴드A",
			PaymentMethod: "CARD",
		}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrCapacityExceeded)
		require.Len(t, env.scheduleRepo.locked, 1)
		assert.Equal(t, 0, env.tx.tx.commits)
		assert.Empty(t, env.reservationRepo.byID)
	})

	t.Run("second active reservation for the schedule is a duplicate", func(t *testing.T) {
		env := newReservationEnv(t)
		sched := testSchedule(t, uuid.New(), freePricing(t))
		env.scheduleRepo.schedules[sched.ID()] = sched
		env.reservationRepo.existsActive = true

		_, err := env.commands.CreateReservation(ctx, commands.CreateReservationParams{
			ScheduleID:    sched.ID(),
			PerformerName: "밴드A",
			PaymentMethod: "CARD",
		}, userID, uuid.New())

		require.ErrorIs(t, err, commands.ErrDuplicateReservation)
		assert.Equal(t, 0, env.tx.tx.commits)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("owner cancels a confirmed reservation", func(t *testing.T) {
		env := newReservationEnv(t)
		res := pendingBankReservation(t, userID, uuid.New())
		env.reservationRepo.byID[res.ID()] = res

		err := env.commands.CancelReservation(ctx, res.ID(), userID)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, 1, env.reservationRepo.updateCount)
	})

	t.Run("someone else's reservation forbidden", func(t *testing.T) {
		env := newReservationEnv(t)
		res := confirmedReservation(t, userID, uuid.New())
		env.reservationRepo.byID[res.ID()] = res

		err := env.commands.CancelReservation(ctx, res.ID(), uuid.New())

		require.ErrorIs(t, err, commands.ErrForbidden)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("entered reservation cannot cancel", func(t *testing.T) {
		env := newReservationEnv(t)
		res := confirmedReservation(t, userID, uuid.New())
		require.NoError(t, res.MarkEntered(env.clock.Now()))
		env.reservationRepo.byID[res.ID()] = res

		err := env.commands.CancelReservation(ctx, res.ID(), userID)

		require.ErrorIs(t, err, commands.ErrCannotCancel)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		env := newReservationEnv(t)

		err := env.commands.CancelReservation(ctx, uuid.New(), userID)

		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}
