package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"stagepass/internal/domain/reservation"
	"stagepass/internal/domain/schedule"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/errs"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

type RefundAccountParams struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	HolderName    string `json:"holder_name"`
}

type CreateReservationParams struct {
	ScheduleID    uuid.UUID            `json:"schedule_id"`
	SlotID        *uuid.UUID           `json:"slot_id,omitempty"`
	PerformerName string               `json:"performer_name"`
	SeatGrade     *string              `json:"seat_grade,omitempty"`
	PaymentMethod string               `json:"payment_method"`
	RefundAccount *RefundAccountParams `json:"refund_account,omitempty"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, reservationID, actorID uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	scheduleRepo       ScheduleRepository
	idempotencyRepo    IdempotencyRepository
	notificationRepo   NotificationRepository
	reservationQueries queries.ReservationQueries
	db                 TxBeginner
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	idempotencyRepo IdempotencyRepository,
	notificationRepo NotificationRepository,
	reservationQueries queries.ReservationQueries,
	db TxBeginner,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		scheduleRepo:       scheduleRepo,
		idempotencyRepo:    idempotencyRepo,
		notificationRepo:   notificationRepo,
		reservationQueries: reservationQueries,
		db:                 db,
		clock:              clock,
	}
}

func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	params CreateReservationParams,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	requestHash := r.calculateRequestHash(params)
	expiresAt := r.clock.Now().Add(idempotencyTTL)

	existingResult, err := r.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existingResult != nil {
		return &CreateReservationResult{
			Reservation: existingResult,
			IsReplayed:  true,
		}, nil
	}

	reservationView, err := r.createNewReservation(ctx, params, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{
		Reservation: reservationView,
		IsReplayed:  false,
	}, nil
}

func (r *reservationCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	inserted, err := r.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /reservations", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		// Fresh claim, proceed with creation
		return nil, nil
	}

	existing, err := r.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultReservationID != nil {
			// Use system-level access for idempotency replay
			return r.reservationQueries.GetByIDSystem(ctx, *existing.ResultReservationID)
		}
		return nil, errs.New("completed request missing result reservation ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateReservation
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationCommandsImpl) createNewReservation(
	ctx context.Context,
	params CreateReservationParams,
	userID, idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	sched, err := r.validateSchedule(ctx, params.ScheduleID)
	if err != nil {
		return nil, err
	}

	performerName := params.PerformerName
	if params.SlotID != nil {
		slot, slotErr := sched.SlotByID(*params.SlotID)
		if slotErr != nil {
			return nil, ErrSlotNotFound
		}
		performerName = slot.PerformerName()
	}
	if performerName == "" {
		// Single-performer schedules skip the selection step
		if performers := sched.DistinctPerformers(); len(performers) == 1 {
			performerName = performers[0]
		}
	}

	reservationEntity, err := r.buildReservation(params, userID, sched, performerName)
	if err != nil {
		return nil, err
	}

	return r.executeReservationTransaction(ctx, sched, reservationEntity, idempotencyKey, userID)
}

func (r *reservationCommandsImpl) validateSchedule(ctx context.Context, scheduleID uuid.UUID) (*schedule.Schedule, error) {
	sched, err := r.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := sched.CanReserveAt(r.clock.Now()); err != nil {
		switch err {
		case schedule.ErrNotPublished:
			return nil, ErrScheduleNotFound
		case schedule.ErrTicketNotOpen:
			return nil, ErrTicketNotOpen
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}
	return sched, nil
}

func (r *reservationCommandsImpl) buildReservation(
	params CreateReservationParams,
	userID uuid.UUID,
	sched *schedule.Schedule,
	performerName string,
) (*reservation.Reservation, error) {
	var grade *schedule.SeatGrade
	if params.SeatGrade != nil {
		g, err := schedule.NewSeatGrade(*params.SeatGrade)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		grade = &g
	}

	won, err := sched.Pricing().AmountFor(grade)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	amount, err := reservation.NewMoney(won)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	method, err := reservation.NewPaymentMethod(params.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var refundAccount *reservation.RefundAccount
	if params.RefundAccount != nil {
		account, accErr := reservation.NewRefundAccount(
			params.RefundAccount.Bank,
			params.RefundAccount.AccountNumber,
			params.RefundAccount.HolderName,
		)
		if accErr != nil {
			return nil, errs.Mark(accErr, ErrDomainValidation)
		}
		refundAccount = &account
	}

	var seatGrade *string
	if grade != nil {
		g := grade.String()
		seatGrade = &g
	}

	reservationEntity, err := reservation.NewReservation(
		userID,
		sched.ID(),
		params.SlotID,
		performerName,
		seatGrade,
		method,
		amount,
		refundAccount,
	)
	if err != nil {
		if err == reservation.ErrRefundAccountRequired {
			return nil, ErrRefundAccountRequired
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return reservationEntity, nil
}

func (r *reservationCommandsImpl) executeReservationTransaction(
	ctx context.Context,
	sched *schedule.Schedule,
	reservationEntity *reservation.Reservation,
	idempotencyKey, userID uuid.UUID,
) (*queries.ReservationView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// Serialize capacity checks on the schedule row. Without the lock two
	// requests for the last seat both see a free seat and both insert.
	if err := r.scheduleRepo.LockForUpdate(ctx, tx, sched.ID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	exists, err := r.reservationRepo.ExistsActive(ctx, tx, userID, sched.ID(), reservationEntity.SlotID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrDuplicateReservation
	}

	reservedCount, err := r.reservationRepo.CountActiveBySchedule(ctx, tx, sched.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !sched.HasRemainingCapacity(reservedCount) {
		return nil, ErrCapacityExceeded
	}

	if err := r.reservationRepo.Create(ctx, tx, reservationEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateReservation
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if notificationErr := r.createNotificationJob(ctx, tx, reservationEntity); notificationErr != nil {
		return nil, errs.Mark(notificationErr, ErrDatabaseOperationFailed)
	}

	err = r.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, userID, reservationEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write through the read store for the complete view
	reservationView, err := r.reservationQueries.GetByIDSystem(ctx, reservationEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return reservationView, nil
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID, actorID uuid.UUID) error {
	found, err := r.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if found.UserID() != actorID {
		return ErrForbidden
	}

	if err := found.Cancel(); err != nil {
		return errs.Mark(err, ErrCannotCancel)
	}

	if err := r.reservationRepo.Update(ctx, found); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationCommandsImpl) createNotificationJob(
	ctx context.Context,
	tx db.DBTX,
	reservationEntity *reservation.Reservation,
) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationEntity.ID(),
		"user_id":        reservationEntity.UserID(),
		"type":           "reservation_created",
	})
	if err != nil {
		return err
	}
	return r.notificationRepo.CreateJob(ctx, tx, "email", "reservation_created", payload, r.clock.Now())
}

func (r *reservationCommandsImpl) calculateRequestHash(params CreateReservationParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
