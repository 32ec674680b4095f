package queries

import (
	"context"
	"time"

	"stagepass/internal/domain/team"
	"stagepass/internal/domain/user"
	"stagepass/internal/infra"

	"github.com/google/uuid"
)

type ScheduleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error)
	ListPublished(ctx context.Context) ([]*ScheduleListItem, error)
	ListByDate(ctx context.Context, date string) ([]*ScheduleListItem, error)
	ListByMonth(ctx context.Context, year, month int) ([]*ScheduleListItem, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]*ScheduleListItem, error)
}

type ScheduleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error)
	List(ctx context.Context) ([]*ScheduleListItem, error)
	ListByDate(ctx context.Context, date string) ([]*ScheduleListItem, error)
	ListByMonth(ctx context.Context, year, month int) ([]*ScheduleListItem, error)
	ListByManager(ctx context.Context, actorID uuid.UUID, actorRole user.Role, managerID uuid.UUID) ([]*ScheduleListItem, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
}

func NewScheduleQueries(store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store}
}

func (q *scheduleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view.Performers = distinctPerformers(view.Slots)
	return view, nil
}

func (q *scheduleQueriesImpl) List(ctx context.Context) ([]*ScheduleListItem, error) {
	return q.store.ListPublished(ctx)
}

func (q *scheduleQueriesImpl) ListByDate(ctx context.Context, date string) ([]*ScheduleListItem, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}
	return q.store.ListByDate(ctx, date)
}

func (q *scheduleQueriesImpl) ListByMonth(ctx context.Context, year, month int) ([]*ScheduleListItem, error) {
	return q.store.ListByMonth(ctx, year, month)
}

func (q *scheduleQueriesImpl) ListByManager(ctx context.Context, actorID uuid.UUID, actorRole user.Role, managerID uuid.UUID) ([]*ScheduleListItem, error) {
	if actorID != managerID && actorRole != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return q.store.ListByManager(ctx, managerID)
}

func distinctPerformers(slots []TimeSlotView) []string {
	seen := make(map[string]struct{}, len(slots))
	names := make([]string, 0, len(slots))
	for _, slot := range slots {
		key := team.NameKey(slot.PerformerName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, slot.PerformerName)
	}
	return names
}
