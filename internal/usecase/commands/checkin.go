package commands

import (
	"context"

	"stagepass/internal/domain/reservation"
	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/errs"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

// EnterResult mirrors the create flow: a duplicate scan within the dedup
// window replays the already-entered view instead of failing the console.
type EnterResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type CheckInCommands interface {
	ConfirmPayment(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) error
	EnterByID(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) (*EnterResult, error)
	EnterByQRCode(ctx context.Context, qrCode string, actorID uuid.UUID, actorRole user.Role) (*EnterResult, error)
}

type checkInCommandsImpl struct {
	reservationRepo    ReservationRepository
	scheduleRepo       ScheduleRepository
	reservationQueries queries.ReservationQueries
	deduper            ScanDeduper
	clock              clock.Clock
}

func NewCheckInCommands(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	reservationQueries queries.ReservationQueries,
	deduper ScanDeduper,
	clock clock.Clock,
) CheckInCommands {
	return &checkInCommandsImpl{
		reservationRepo:    reservationRepo,
		scheduleRepo:       scheduleRepo,
		reservationQueries: reservationQueries,
		deduper:            deduper,
		clock:              clock,
	}
}

func (c *checkInCommandsImpl) ConfirmPayment(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) error {
	found, err := c.authorizedReservation(ctx, reservationID, actorID, actorRole)
	if err != nil {
		return err
	}

	if err := found.ConfirmPayment(); err != nil {
		if err == reservation.ErrPaymentNotPending {
			return ErrPaymentNotPending
		}
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.reservationRepo.Update(ctx, found); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *checkInCommandsImpl) EnterByID(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) (*EnterResult, error) {
	found, err := c.authorizedReservation(ctx, reservationID, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	return c.enter(ctx, found, false)
}

func (c *checkInCommandsImpl) EnterByQRCode(ctx context.Context, qrCode string, actorID uuid.UUID, actorRole user.Role) (*EnterResult, error) {
	first, err := c.deduper.Acquire(ctx, qrCode)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	found, err := c.reservationRepo.FindByQRCode(ctx, qrCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.authorize(ctx, found, actorID, actorRole); err != nil {
		return nil, err
	}

	// A repeat frame of the same code inside the window is a replay, not a
	// second admission attempt.
	return c.enter(ctx, found, !first)
}

func (c *checkInCommandsImpl) enter(ctx context.Context, found *reservation.Reservation, withinDedupWindow bool) (*EnterResult, error) {
	if err := found.MarkEntered(c.clock.Now()); err != nil {
		if err == reservation.ErrAlreadyEntered && withinDedupWindow {
			view, viewErr := c.reservationQueries.GetByIDSystem(ctx, found.ID())
			if viewErr != nil {
				return nil, errs.Mark(viewErr, ErrDatabaseOperationFailed)
			}
			return &EnterResult{Reservation: view, IsReplayed: true}, nil
		}
		if err == reservation.ErrAlreadyEntered {
			return nil, ErrAlreadyEntered
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.reservationRepo.Update(ctx, found); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.reservationQueries.GetByIDSystem(ctx, found.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &EnterResult{Reservation: view, IsReplayed: false}, nil
}

func (c *checkInCommandsImpl) authorizedReservation(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) (*reservation.Reservation, error) {
	found, err := c.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.authorize(ctx, found, actorID, actorRole); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *checkInCommandsImpl) authorize(ctx context.Context, found *reservation.Reservation, actorID uuid.UUID, actorRole user.Role) error {
	if actorRole == user.RoleAdmin {
		return nil
	}
	sched, err := c.scheduleRepo.FindByID(ctx, found.ScheduleID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if sched.ManagerID() != actorID {
		return ErrForbidden
	}
	return nil
}
