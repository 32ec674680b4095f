package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewQuery = `
	SELECT r.id, r.user_id, u.name, u.phone, u.email,
	       r.schedule_id, s.title, s.manager_id,
	       r.slot_id, r.performer_name, r.seat_grade,
	       r.payment_status, r.reservation_status, r.payment_method, r.amount,
	       r.qr_code, r.is_entered, r.entered_at, r.created_at, r.updated_at
	FROM reservations r
	JOIN users u ON u.id = r.user_id
	JOIN schedules s ON s.id = r.schedule_id`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationViewQuery + `
	WHERE r.id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + `
	WHERE r.user_id = $1
	ORDER BY r.created_at DESC`

	return r.list(ctx, query, userID)
}

// ListBySchedule feeds the check-in console. Rows still waiting at the door
// come first; search matches the reserver's name, phone or email.
func (r *ReservationReadStore) ListBySchedule(ctx context.Context, scheduleID uuid.UUID, search string) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + `
	WHERE r.schedule_id = $1
	  AND ($2 = '' OR u.name ILIKE '%' || $2 || '%' OR u.phone ILIKE '%' || $2 || '%' OR u.email ILIKE '%' || $2 || '%')
	ORDER BY r.is_entered ASC, r.created_at ASC`

	return r.list(ctx, query, scheduleID, search)
}

func (r *ReservationReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := []*queries.ReservationView{}
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	view := &queries.ReservationView{}
	err := row.Scan(
		&view.ID, &view.UserID, &view.UserName, &view.UserPhone, &view.UserEmail,
		&view.ScheduleID, &view.ScheduleTitle, &view.ScheduleManagerID,
		&view.SlotID, &view.PerformerName, &view.SeatGrade,
		&view.PaymentStatus, &view.ReservationStatus, &view.PaymentMethod, &view.Amount,
		&view.QRCode, &view.IsEntered, &view.EnteredAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
