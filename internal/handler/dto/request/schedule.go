package request

import (
	"time"

	"stagepass/internal/usecase/commands"
)

type TimeSlotRequest struct {
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	PerformerName string    `json:"performer_name" binding:"required"`
	Description   *string   `json:"description,omitempty"`
}

type PricingRequest struct {
	Advance *int64 `json:"advance_price,omitempty"`
	Door    *int64 `json:"door_price,omitempty"`
	GradeA  *int64 `json:"price_a,omitempty"`
	GradeS  *int64 `json:"price_s,omitempty"`
	GradeR  *int64 `json:"price_r,omitempty"`
}

type ScheduleRequest struct {
	Title        string            `json:"title" binding:"required"`
	Organizer    *string           `json:"organizer,omitempty"`
	Date         time.Time         `json:"date" binding:"required"`
	PublicAt     *time.Time        `json:"public_at,omitempty"`
	TicketOpenAt *time.Time        `json:"ticket_open_at,omitempty"`
	Capacity     int32             `json:"capacity" binding:"required,gt=0"`
	Venue        *string           `json:"venue,omitempty"`
	Description  *string           `json:"description,omitempty"`
	ImageURL     *string           `json:"image_url,omitempty"`
	Pricing      PricingRequest    `json:"pricing"`
	IsPublished  bool              `json:"is_published"`
	Slots        []TimeSlotRequest `json:"time_slots" binding:"required,min=1,dive"`
}

func (r ScheduleRequest) ToCreateParams() commands.CreateScheduleParams {
	slots := make([]commands.TimeSlotParams, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = commands.TimeSlotParams{
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			PerformerName: s.PerformerName,
			Description:   s.Description,
		}
	}
	return commands.CreateScheduleParams{
		Title:        r.Title,
		Organizer:    r.Organizer,
		Date:         r.Date,
		PublicAt:     r.PublicAt,
		TicketOpenAt: r.TicketOpenAt,
		Capacity:     r.Capacity,
		Venue:        r.Venue,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Pricing: commands.PricingParams{
			Advance: r.Pricing.Advance,
			Door:    r.Pricing.Door,
			GradeA:  r.Pricing.GradeA,
			GradeS:  r.Pricing.GradeS,
			GradeR:  r.Pricing.GradeR,
		},
		IsPublished: r.IsPublished,
		Slots:       slots,
	}
}

func (r ScheduleRequest) ToUpdateParams() commands.UpdateScheduleParams {
	return commands.UpdateScheduleParams(r.ToCreateParams())
}
