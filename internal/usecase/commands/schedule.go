package commands

import (
	"context"
	"time"

	"stagepass/internal/domain/schedule"
	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/errs"

	"github.com/google/uuid"
)

type TimeSlotParams struct {
	StartTime     time.Time
	EndTime       time.Time
	PerformerName string
	Description   *string
}

type PricingParams struct {
	Advance *int64
	Door    *int64
	GradeA  *int64
	GradeS  *int64
	GradeR  *int64
}

type CreateScheduleParams struct {
	Title        string
	Organizer    *string
	Date         time.Time
	PublicAt     *time.Time
	TicketOpenAt *time.Time
	Capacity     int32
	Venue        *string
	Description  *string
	ImageURL     *string
	Pricing      PricingParams
	IsPublished  bool
	Slots        []TimeSlotParams
}

type UpdateScheduleParams struct {
	Title        string
	Organizer    *string
	Date         time.Time
	PublicAt     *time.Time
	TicketOpenAt *time.Time
	Capacity     int32
	Venue        *string
	Description  *string
	ImageURL     *string
	Pricing      PricingParams
	IsPublished  bool
	Slots        []TimeSlotParams
}

type ScheduleCommands interface {
	CreateSchedule(ctx context.Context, params CreateScheduleParams, actorID uuid.UUID) (uuid.UUID, error)
	UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, params UpdateScheduleParams, actorID uuid.UUID, actorRole user.Role) error
	DeleteSchedule(ctx context.Context, scheduleID, actorID uuid.UUID, actorRole user.Role) error
}

type scheduleCommandsImpl struct {
	scheduleRepo ScheduleRepository
	teamRepo     TeamRepository
}

func NewScheduleCommands(scheduleRepo ScheduleRepository, teamRepo TeamRepository) ScheduleCommands {
	return &scheduleCommandsImpl{
		scheduleRepo: scheduleRepo,
		teamRepo:     teamRepo,
	}
}

func (s *scheduleCommandsImpl) CreateSchedule(ctx context.Context, params CreateScheduleParams, actorID uuid.UUID) (uuid.UUID, error) {
	entity, err := s.buildSchedule(params, actorID)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.resolvePerformers(ctx, entity); err != nil {
		return uuid.Nil, err
	}

	if err := s.scheduleRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (s *scheduleCommandsImpl) UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, params UpdateScheduleParams, actorID uuid.UUID, actorRole user.Role) error {
	existing, err := s.findSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if actorRole != user.RoleAdmin && existing.ManagerID() != actorID {
		return ErrForbidden
	}

	replacement, err := s.buildSchedule(CreateScheduleParams(params), existing.ManagerID())
	if err != nil {
		return err
	}

	// Reuse the existing identity so slot replacement stays a full rewrite
	updated := schedule.ReconstructSchedule(
		existing.ID(),
		existing.ManagerID(),
		replacement.Title(),
		replacement.Organizer(),
		replacement.Date(),
		replacement.Window(),
		replacement.Capacity(),
		replacement.Venue(),
		replacement.Description(),
		replacement.ImageURL(),
		replacement.Pricing(),
		replacement.IsPublished(),
		existing.IsDeleted(),
		replacement.Slots(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	)

	if err := s.resolvePerformers(ctx, updated); err != nil {
		return err
	}

	if err := s.scheduleRepo.Update(ctx, updated); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *scheduleCommandsImpl) DeleteSchedule(ctx context.Context, scheduleID, actorID uuid.UUID, actorRole user.Role) error {
	existing, err := s.findSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if actorRole != user.RoleAdmin && existing.ManagerID() != actorID {
		return ErrForbidden
	}

	count, err := s.scheduleRepo.CountActiveReservations(ctx, scheduleID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := existing.SoftDelete(count); err != nil {
		if err == schedule.ErrHasReservations {
			return ErrHasReservations
		}
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := s.scheduleRepo.Update(ctx, existing); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *scheduleCommandsImpl) buildSchedule(params CreateScheduleParams, managerID uuid.UUID) (*schedule.Schedule, error) {
	window, err := schedule.NewPublishWindow(params.PublicAt, params.TicketOpenAt)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	pricing, err := schedule.NewPricing(
		params.Pricing.Advance,
		params.Pricing.Door,
		params.Pricing.GradeA,
		params.Pricing.GradeS,
		params.Pricing.GradeR,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	slots := make([]schedule.TimeSlot, 0, len(params.Slots))
	for _, sp := range params.Slots {
		slot, slotErr := schedule.NewTimeSlot(sp.StartTime, sp.EndTime, sp.PerformerName, sp.Description)
		if slotErr != nil {
			return nil, errs.Mark(slotErr, ErrDomainValidation)
		}
		slots = append(slots, slot)
	}

	entity, err := schedule.NewSchedule(
		managerID,
		params.Title,
		params.Organizer,
		params.Date,
		window,
		params.Capacity,
		params.Venue,
		params.Description,
		params.ImageURL,
		pricing,
		params.IsPublished,
		slots,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

func (s *scheduleCommandsImpl) resolvePerformers(ctx context.Context, entity *schedule.Schedule) error {
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	entity.ResolvePerformers(teams)
	return nil
}

func (s *scheduleCommandsImpl) findSchedule(ctx context.Context, scheduleID uuid.UUID) (*schedule.Schedule, error) {
	existing, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return existing, nil
}
