package repository

import (
	"context"
	"log/slog"
	"time"

	"stagepass/internal/domain/schedule"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository holds the pool directly because schedule writes span
// the schedules and time_slots tables in one transaction.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *schedule.Schedule) error {
	const query = `
		INSERT INTO schedules (
			id, manager_id, title, organizer, date, public_at, ticket_open_at,
			capacity, venue, description, image_url,
			advance_price, door_price, price_a, price_s, price_r,
			is_published, is_deleted
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	return r.inTx(ctx, func(tx db.DBTX) error {
		pricing := s.Pricing()
		_, err := tx.Exec(ctx, query,
			s.ID(), s.ManagerID(), s.Title(), s.Organizer(), s.Date(),
			s.Window().PublicAt(), s.Window().TicketOpenAt(),
			s.Capacity(), s.Venue(), s.Description(), s.ImageURL(),
			pricing.Advance(), pricing.Door(), pricing.GradeA(), pricing.GradeS(), pricing.GradeR(),
			s.IsPublished(), s.IsDeleted(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create schedule", err)
		}
		return r.insertSlots(ctx, tx, s.ID(), s.Slots())
	})
}

func (r *ScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	const query = `
		UPDATE schedules
		SET title = $2, organizer = $3, date = $4, public_at = $5, ticket_open_at = $6,
		    capacity = $7, venue = $8, description = $9, image_url = $10,
		    advance_price = $11, door_price = $12, price_a = $13, price_s = $14, price_r = $15,
		    is_published = $16, is_deleted = $17, updated_at = now()
		WHERE id = $1`

	return r.inTx(ctx, func(tx db.DBTX) error {
		pricing := s.Pricing()
		tag, err := tx.Exec(ctx, query,
			s.ID(), s.Title(), s.Organizer(), s.Date(),
			s.Window().PublicAt(), s.Window().TicketOpenAt(),
			s.Capacity(), s.Venue(), s.Description(), s.ImageURL(),
			pricing.Advance(), pricing.Door(), pricing.GradeA(), pricing.GradeS(), pricing.GradeR(),
			s.IsPublished(), s.IsDeleted(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to update schedule", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
		}

		// Slot edits arrive as the full desired set, so rewrite them
		if _, err := tx.Exec(ctx, `DELETE FROM time_slots WHERE schedule_id = $1`, s.ID()); err != nil {
			return infra.WrapRepoErr("failed to clear time slots", err)
		}
		return r.insertSlots(ctx, tx, s.ID(), s.Slots())
	})
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	const query = `
		SELECT id, manager_id, title, organizer, date, public_at, ticket_open_at,
		       capacity, venue, description, image_url,
		       advance_price, door_price, price_a, price_s, price_r,
		       is_published, is_deleted, created_at, updated_at
		FROM schedules
		WHERE id = $1 AND NOT is_deleted`

	var (
		scheduleID, managerID          uuid.UUID
		title                          string
		organizer                      *string
		date                           time.Time
		publicAt, ticketOpenAt         *time.Time
		capacity                       int32
		venue, description, imageURL   *string
		advance, door, pa, ps, pr      *int64
		isPublished, isDeleted         bool
		createdAt, updatedAt           time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&scheduleID, &managerID, &title, &organizer, &date, &publicAt, &ticketOpenAt,
		&capacity, &venue, &description, &imageURL,
		&advance, &door, &pa, &ps, &pr,
		&isPublished, &isDeleted, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule", err)
	}

	slots, err := r.loadSlots(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	window, err := schedule.NewPublishWindow(publicAt, ticketOpenAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored publish window", err)
	}
	pricing, err := schedule.NewPricing(advance, door, pa, ps, pr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored pricing", err)
	}

	return schedule.ReconstructSchedule(
		scheduleID, managerID, title, organizer, date, window, capacity,
		venue, description, imageURL, pricing, isPublished, isDeleted,
		slots, createdAt, updatedAt,
	), nil
}

// LockForUpdate acquires a row lock on the schedule for the lifetime of tx.
// The caller counts active reservations under this lock, so two requests for
// the last seat cannot both pass the capacity check.
func (r *ScheduleRepository) LockForUpdate(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID) error {
	const query = `SELECT id FROM schedules WHERE id = $1 AND NOT is_deleted FOR UPDATE`

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, scheduleID).Scan(&id); err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock schedule", err)
	}
	return nil
}

func (r *ScheduleRepository) CountActiveReservations(ctx context.Context, scheduleID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reservations
		WHERE schedule_id = $1 AND reservation_status <> 'CANCELLED'`

	var count int64
	if err := r.pool.QueryRow(ctx, query, scheduleID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (r *ScheduleRepository) insertSlots(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, slots []schedule.TimeSlot) error {
	const query = `
		INSERT INTO time_slots (id, schedule_id, start_time, end_time, performer_name, team_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, slot := range slots {
		_, err := tx.Exec(ctx, query,
			slot.ID(), scheduleID, slot.StartTime(), slot.EndTime(),
			slot.PerformerName(), slot.ResolvedTeamID(), slot.Description(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert time slot", err)
		}
	}
	return nil
}

func (r *ScheduleRepository) loadSlots(ctx context.Context, scheduleID uuid.UUID) ([]schedule.TimeSlot, error) {
	const query = `
		SELECT id, start_time, end_time, performer_name, team_id, description
		FROM time_slots
		WHERE schedule_id = $1
		ORDER BY start_time`

	rows, err := r.pool.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load time slots", err)
	}
	defer rows.Close()

	var slots []schedule.TimeSlot
	for rows.Next() {
		var (
			id                 uuid.UUID
			startTime, endTime time.Time
			performerName      string
			teamID             *uuid.UUID
			description        *string
		)
		if err := rows.Scan(&id, &startTime, &endTime, &performerName, &teamID, &description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		slots = append(slots, schedule.ReconstructTimeSlot(id, startTime, endTime, performerName, teamID, description))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time slots", err)
	}
	return slots, nil
}

func (r *ScheduleRepository) inTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Debug("rollback after schedule write", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}
