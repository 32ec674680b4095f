package repository

import (
	"context"
	"time"

	"stagepass/internal/domain/reservation"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (
			id, user_id, schedule_id, slot_id, performer_name, seat_grade,
			payment_status, reservation_status, payment_method, amount,
			refund_bank, refund_account_number, refund_holder_name, qr_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var refundBank, refundAccountNumber, refundHolderName *string
	if account := res.RefundAccount(); account != nil {
		bank := account.Bank()
		number := account.AccountNumber()
		holder := account.HolderName()
		refundBank, refundAccountNumber, refundHolderName = &bank, &number, &holder
	}

	_, err := tx.Exec(ctx, query,
		res.ID(), res.UserID(), res.ScheduleID(), res.SlotID(),
		res.PerformerName(), res.SeatGrade(),
		res.PaymentStatus().String(), res.Status().String(), res.PaymentMethod().String(),
		res.Amount().Won(),
		refundBank, refundAccountNumber, refundHolderName,
		res.QRCode(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *ReservationRepository) FindByQRCode(ctx context.Context, code string) (*reservation.Reservation, error) {
	return r.findBy(ctx, "qr_code = $1", code)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET payment_status = $2, reservation_status = $3, is_entered = $4, entered_at = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		res.ID(),
		res.PaymentStatus().String(),
		res.Status().String(),
		res.IsEntered(),
		res.EnteredAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) CountActiveBySchedule(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reservations
		WHERE schedule_id = $1 AND reservation_status <> 'CANCELLED'`

	var count int64
	if err := tx.QueryRow(ctx, query, scheduleID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) ExistsActive(ctx context.Context, tx db.DBTX, userID, scheduleID uuid.UUID, slotID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE user_id = $1 AND schedule_id = $2
			  AND COALESCE(slot_id, '00000000-0000-0000-0000-000000000000'::uuid)
			    = COALESCE($3, '00000000-0000-0000-0000-000000000000'::uuid)
			  AND reservation_status <> 'CANCELLED'
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID, scheduleID, slotID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reservation existence", err)
	}
	return exists, nil
}

// CancelExpiredPending cancels bank-transfer reservations whose deposit
// never arrived within the payment window.
func (r *ReservationRepository) CancelExpiredPending(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
		UPDATE reservations
		SET reservation_status = 'CANCELLED', payment_status = 'CANCELLED', updated_at = now()
		WHERE payment_status = 'PENDING'
		  AND reservation_status = 'PENDING'
		  AND created_at < $1`

	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel expired reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) findBy(ctx context.Context, where string, arg any) (*reservation.Reservation, error) {
	query := `
		SELECT id, user_id, schedule_id, slot_id, performer_name, seat_grade,
		       payment_status, reservation_status, payment_method, amount,
		       refund_bank, refund_account_number, refund_holder_name,
		       qr_code, is_entered, entered_at, created_at, updated_at
		FROM reservations
		WHERE ` + where

	var (
		id, userID, scheduleID                       uuid.UUID
		slotID                                       *uuid.UUID
		performerName                                string
		seatGrade                                    *string
		paymentStatus, status, method                string
		amount                                       int64
		refundBank, refundAccountNumber, refundHolder *string
		qrCode                                       string
		isEntered                                    bool
		enteredAt                                    *time.Time
		createdAt, updatedAt                         time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &userID, &scheduleID, &slotID, &performerName, &seatGrade,
		&paymentStatus, &status, &method, &amount,
		&refundBank, &refundAccountNumber, &refundHolder,
		&qrCode, &isEntered, &enteredAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	money, err := reservation.NewMoney(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored amount", err)
	}

	var refundAccount *reservation.RefundAccount
	if refundBank != nil && refundAccountNumber != nil && refundHolder != nil {
		account, accErr := reservation.NewRefundAccount(*refundBank, *refundAccountNumber, *refundHolder)
		if accErr != nil {
			return nil, infra.WrapRepoErr("invalid stored refund account", accErr)
		}
		refundAccount = &account
	}

	return reservation.ReconstructReservation(
		id, userID, scheduleID, slotID, performerName, seatGrade,
		reservation.PaymentStatus(paymentStatus),
		reservation.Status(status),
		reservation.PaymentMethod(method),
		money, refundAccount, qrCode, isEntered, enteredAt, createdAt, updatedAt,
	), nil
}
