package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(db db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

const scheduleListColumns = `
	id, manager_id, title, date, venue, image_url, capacity, is_published`

func (r *ScheduleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ScheduleView, error) {
	const query = `
		SELECT s.id, s.manager_id, s.title, s.organizer, s.date, s.public_at, s.ticket_open_at,
		       s.capacity, s.venue, s.description, s.image_url,
		       s.advance_price, s.door_price, s.price_a, s.price_s, s.price_r,
		       s.is_published, s.created_at, s.updated_at,
		       (SELECT COUNT(*) FROM reservations r
		        WHERE r.schedule_id = s.id AND r.reservation_status <> 'CANCELLED') AS reserved_count
		FROM schedules s
		WHERE s.id = $1 AND NOT s.is_deleted`

	view := &queries.ScheduleView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ManagerID, &view.Title, &view.Organizer, &view.Date,
		&view.PublicAt, &view.TicketOpenAt,
		&view.Capacity, &view.Venue, &view.Description, &view.ImageURL,
		&view.AdvancePrice, &view.DoorPrice, &view.PriceA, &view.PriceS, &view.PriceR,
		&view.IsPublished, &view.CreatedAt, &view.UpdatedAt,
		&view.ReservedCount,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule", err)
	}

	slots, err := r.loadSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Slots = slots
	return view, nil
}

func (r *ScheduleReadStore) ListPublished(ctx context.Context) ([]*queries.ScheduleListItem, error) {
	const query = `
		SELECT ` + scheduleListColumns + `
		FROM schedules
		WHERE is_published AND NOT is_deleted AND (public_at IS NULL OR public_at <= now())
		ORDER BY date, created_at`

	return r.listItems(ctx, query)
}

func (r *ScheduleReadStore) ListByDate(ctx context.Context, date string) ([]*queries.ScheduleListItem, error) {
	const query = `
		SELECT ` + scheduleListColumns + `
		FROM schedules
		WHERE is_published AND NOT is_deleted AND (public_at IS NULL OR public_at <= now())
		  AND date = $1::date
		ORDER BY created_at`

	return r.listItems(ctx, query, date)
}

func (r *ScheduleReadStore) ListByMonth(ctx context.Context, year, month int) ([]*queries.ScheduleListItem, error) {
	const query = `
		SELECT ` + scheduleListColumns + `
		FROM schedules
		WHERE is_published AND NOT is_deleted AND (public_at IS NULL OR public_at <= now())
		  AND EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date, created_at`

	return r.listItems(ctx, query, year, month)
}

func (r *ScheduleReadStore) ListByManager(ctx context.Context, managerID uuid.UUID) ([]*queries.ScheduleListItem, error) {
	const query = `
		SELECT ` + scheduleListColumns + `
		FROM schedules
		WHERE manager_id = $1 AND NOT is_deleted
		ORDER BY date DESC, created_at DESC`

	return r.listItems(ctx, query, managerID)
}

func (r *ScheduleReadStore) listItems(ctx context.Context, query string, args ...any) ([]*queries.ScheduleListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}
	defer rows.Close()

	items := []*queries.ScheduleListItem{}
	for rows.Next() {
		item := &queries.ScheduleListItem{}
		if err := rows.Scan(
			&item.ID, &item.ManagerID, &item.Title, &item.Date,
			&item.Venue, &item.ImageURL, &item.Capacity, &item.IsPublished,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedules", err)
	}
	return items, nil
}

func (r *ScheduleReadStore) loadSlots(ctx context.Context, scheduleID uuid.UUID) ([]queries.TimeSlotView, error) {
	const query = `
		SELECT id, start_time, end_time, performer_name, team_id, description
		FROM time_slots
		WHERE schedule_id = $1
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load time slots", err)
	}
	defer rows.Close()

	slots := []queries.TimeSlotView{}
	for rows.Next() {
		var slot queries.TimeSlotView
		if err := rows.Scan(
			&slot.ID, &slot.StartTime, &slot.EndTime,
			&slot.PerformerName, &slot.TeamID, &slot.Description,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time slots", err)
	}
	return slots, nil
}
