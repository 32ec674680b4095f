package queries

import (
	"context"
	"strings"

	"stagepass/internal/domain/user"
	"stagepass/internal/infra"

	"github.com/google/uuid"
)

// CheckInQueries serves the organizer console: the reservation list for one
// schedule, searchable across reserver contact fields.
type CheckInQueries interface {
	ListBySchedule(ctx context.Context, actorID uuid.UUID, actorRole user.Role, scheduleID uuid.UUID, search string) ([]*ReservationView, error)
}

type checkInQueriesImpl struct {
	reservations ReservationReadStore
	schedules    ScheduleReadStore
}

func NewCheckInQueries(reservations ReservationReadStore, schedules ScheduleReadStore) CheckInQueries {
	return &checkInQueriesImpl{
		reservations: reservations,
		schedules:    schedules,
	}
}

func (q *checkInQueriesImpl) ListBySchedule(ctx context.Context, actorID uuid.UUID, actorRole user.Role, scheduleID uuid.UUID, search string) ([]*ReservationView, error) {
	sched, err := q.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sched.ManagerID != actorID && actorRole != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return q.reservations.ListBySchedule(ctx, scheduleID, strings.TrimSpace(search))
}
