package queries

import (
	"context"

	"stagepass/internal/domain/user"
	"stagepass/internal/infra"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	// ListBySchedule filters on the reserver's name/phone/email when search
	// is non-empty and orders not-yet-entered rows first.
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID, search string) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	// GetByIDSystem bypasses ownership checks, for idempotency replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID && view.ScheduleManagerID != actorID && actorRole != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.find(ctx, id)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *reservationQueriesImpl) find(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return view, nil
}
