package request

import (
	"stagepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type RefundAccountRequest struct {
	Bank          string `json:"bank" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	HolderName    string `json:"holder_name" binding:"required"`
}

type CreateReservationRequest struct {
	ScheduleID    uuid.UUID             `json:"schedule_id" binding:"required"`
	SlotID        *uuid.UUID            `json:"slot_id,omitempty"`
	PerformerName string                `json:"performer_name,omitempty"`
	SeatGrade     *string               `json:"seat_grade,omitempty" binding:"omitempty,oneof=A S R"`
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=CARD BANK"`
	RefundAccount *RefundAccountRequest `json:"refund_account,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	params := commands.CreateReservationParams{
		ScheduleID:    r.ScheduleID,
		SlotID:        r.SlotID,
		PerformerName: r.PerformerName,
		SeatGrade:     r.SeatGrade,
		PaymentMethod: r.PaymentMethod,
	}
	if r.RefundAccount != nil {
		params.RefundAccount = &commands.RefundAccountParams{
			Bank:          r.RefundAccount.Bank,
			AccountNumber: r.RefundAccount.AccountNumber,
			HolderName:    r.RefundAccount.HolderName,
		}
	}
	return params
}
