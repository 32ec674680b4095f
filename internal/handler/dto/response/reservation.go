package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"userId"`
	UserName          string     `json:"userName"`
	UserPhone         *string    `json:"userPhone,omitempty"`
	UserEmail         string     `json:"userEmail"`
	ScheduleID        uuid.UUID  `json:"scheduleId"`
	ScheduleTitle     string     `json:"scheduleTitle"`
	SlotID            *uuid.UUID `json:"slotId,omitempty"`
	PerformerName     string     `json:"performerName"`
	SeatGrade         *string    `json:"seatGrade,omitempty"`
	PaymentStatus     string     `json:"paymentStatus"`
	ReservationStatus string     `json:"reservationStatus"`
	PaymentMethod     string     `json:"paymentMethod"`
	Amount            int64      `json:"amount"`
	QRCode            string     `json:"qrCode"`
	IsEntered         bool       `json:"isEntered"`
	EnteredAt         *time.Time `json:"enteredAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                rm.ID,
		UserID:            rm.UserID,
		UserName:          rm.UserName,
		UserPhone:         rm.UserPhone,
		UserEmail:         rm.UserEmail,
		ScheduleID:        rm.ScheduleID,
		ScheduleTitle:     rm.ScheduleTitle,
		SlotID:            rm.SlotID,
		PerformerName:     rm.PerformerName,
		SeatGrade:         rm.SeatGrade,
		PaymentStatus:     rm.PaymentStatus,
		ReservationStatus: rm.ReservationStatus,
		PaymentMethod:     rm.PaymentMethod,
		Amount:            rm.Amount,
		QRCode:            rm.QRCode,
		IsEntered:         rm.IsEntered,
		EnteredAt:         rm.EnteredAt,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	responses := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromReservationView(rm)
	}
	return responses
}
