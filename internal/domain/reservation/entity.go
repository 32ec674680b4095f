package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRefundAccountRequired = errors.New("paid bank transfer requires a refund account")
	ErrAlreadyEntered        = errors.New("reservation already entered")
	ErrAlreadyCancelled      = errors.New("reservation is cancelled")
	ErrEnteredCannotCancel   = errors.New("entered reservation cannot be cancelled")
	ErrPaymentNotPending     = errors.New("payment is not pending")
)

type Reservation struct {
	id            uuid.UUID
	userID        uuid.UUID
	scheduleID    uuid.UUID
	slotID        *uuid.UUID
	performerName string
	seatGrade     *string
	paymentStatus PaymentStatus
	status        Status
	paymentMethod PaymentMethod
	amount        Money
	refundAccount *RefundAccount
	qrCode        string
	isEntered     bool
	enteredAt     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation creates a reservation in its initial state. Card payments
// and free events confirm immediately; bank transfers stay pending until an
// organizer confirms the deposit, and paid ones must carry a refund account.
func NewReservation(
	userID, scheduleID uuid.UUID,
	slotID *uuid.UUID,
	performerName string,
	seatGrade *string,
	method PaymentMethod,
	amount Money,
	refundAccount *RefundAccount,
) (*Reservation, error) {
	paymentStatus := PaymentCompleted
	status := StatusConfirmed
	if method == MethodBank && !amount.IsZero() {
		if refundAccount == nil {
			return nil, ErrRefundAccountRequired
		}
		paymentStatus = PaymentPending
		status = StatusPending
	}

	return &Reservation{
		id:            uuid.New(),
		userID:        userID,
		scheduleID:    scheduleID,
		slotID:        slotID,
		performerName: performerName,
		seatGrade:     seatGrade,
		paymentStatus: paymentStatus,
		status:        status,
		paymentMethod: method,
		amount:        amount,
		refundAccount: refundAccount,
		qrCode:        uuid.New().String(),
	}, nil
}

func ReconstructReservation(
	id, userID, scheduleID uuid.UUID,
	slotID *uuid.UUID,
	performerName string,
	seatGrade *string,
	paymentStatus PaymentStatus,
	status Status,
	method PaymentMethod,
	amount Money,
	refundAccount *RefundAccount,
	qrCode string,
	isEntered bool,
	enteredAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		scheduleID:    scheduleID,
		slotID:        slotID,
		performerName: performerName,
		seatGrade:     seatGrade,
		paymentStatus: paymentStatus,
		status:        status,
		paymentMethod: method,
		amount:        amount,
		refundAccount: refundAccount,
		qrCode:        qrCode,
		isEntered:     isEntered,
		enteredAt:     enteredAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ConfirmPayment records an organizer confirming a bank-transfer deposit.
func (r *Reservation) ConfirmPayment() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if r.paymentStatus != PaymentPending {
		return ErrPaymentNotPending
	}
	r.paymentStatus = PaymentCompleted
	r.status = StatusConfirmed
	return nil
}

// MarkEntered transitions to USED. A second entry attempt is a conflict,
// not a silent rewrite: duplicate QR scans must not look like fresh
// admissions.
func (r *Reservation) MarkEntered(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if r.isEntered {
		return ErrAlreadyEntered
	}
	r.isEntered = true
	enteredAt := now
	r.enteredAt = &enteredAt
	r.status = StatusUsed
	return nil
}

// Cancel is owner-initiated and only valid before entry.
func (r *Reservation) Cancel() error {
	if r.isEntered {
		return ErrEnteredCannotCancel
	}
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	if r.paymentStatus == PaymentCompleted {
		r.paymentStatus = PaymentRefunded
	} else {
		r.paymentStatus = PaymentCancelled
	}
	return nil
}

func (r *Reservation) IsAwaitingPayment() bool {
	return r.status == StatusPending && r.paymentStatus == PaymentPending
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) UserID() uuid.UUID             { return r.userID }
func (r *Reservation) ScheduleID() uuid.UUID         { return r.scheduleID }
func (r *Reservation) SlotID() *uuid.UUID            { return r.slotID }
func (r *Reservation) PerformerName() string         { return r.performerName }
func (r *Reservation) SeatGrade() *string            { return r.seatGrade }
func (r *Reservation) PaymentStatus() PaymentStatus  { return r.paymentStatus }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) PaymentMethod() PaymentMethod  { return r.paymentMethod }
func (r *Reservation) Amount() Money                 { return r.amount }
func (r *Reservation) RefundAccount() *RefundAccount { return r.refundAccount }
func (r *Reservation) QRCode() string                { return r.qrCode }
func (r *Reservation) IsEntered() bool               { return r.isEntered }
func (r *Reservation) EnteredAt() *time.Time         { return r.enteredAt }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
