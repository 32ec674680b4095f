package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeSlotResponse struct {
	ID            uuid.UUID  `json:"id"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	PerformerName string     `json:"performerName"`
	TeamID        *uuid.UUID `json:"teamId,omitempty"`
	Description   *string    `json:"description,omitempty"`
}

type ScheduleResponse struct {
	ID            uuid.UUID          `json:"id"`
	ManagerID     uuid.UUID          `json:"managerId"`
	Title         string             `json:"title"`
	Organizer     *string            `json:"organizer,omitempty"`
	Date          time.Time          `json:"date"`
	PublicAt      *time.Time         `json:"publicAt,omitempty"`
	TicketOpenAt  *time.Time         `json:"ticketOpenAt,omitempty"`
	Capacity      int32              `json:"capacity"`
	Venue         *string            `json:"venue,omitempty"`
	Description   *string            `json:"description,omitempty"`
	ImageURL      *string            `json:"imageUrl,omitempty"`
	AdvancePrice  *int64             `json:"advancePrice,omitempty"`
	DoorPrice     *int64             `json:"doorPrice,omitempty"`
	PriceA        *int64             `json:"priceA,omitempty"`
	PriceS        *int64             `json:"priceS,omitempty"`
	PriceR        *int64             `json:"priceR,omitempty"`
	IsPublished   bool               `json:"isPublished"`
	Slots         []TimeSlotResponse `json:"timeSlots"`
	Performers    []string           `json:"performers"`
	ReservedCount int64              `json:"reservedCount"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type ScheduleListResponse struct {
	ID          uuid.UUID `json:"id"`
	ManagerID   uuid.UUID `json:"managerId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Venue       *string   `json:"venue,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Capacity    int32     `json:"capacity"`
	IsPublished bool      `json:"isPublished"`
}

func FromScheduleView(rm *queries.ScheduleView) *ScheduleResponse {
	slots := make([]TimeSlotResponse, len(rm.Slots))
	for i, s := range rm.Slots {
		slots[i] = TimeSlotResponse{
			ID:            s.ID,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			PerformerName: s.PerformerName,
			TeamID:        s.TeamID,
			Description:   s.Description,
		}
	}
	return &ScheduleResponse{
		ID:            rm.ID,
		ManagerID:     rm.ManagerID,
		Title:         rm.Title,
		Organizer:     rm.Organizer,
		Date:          rm.Date,
		PublicAt:      rm.PublicAt,
		TicketOpenAt:  rm.TicketOpenAt,
		Capacity:      rm.Capacity,
		Venue:         rm.Venue,
		Description:   rm.Description,
		ImageURL:      rm.ImageURL,
		AdvancePrice:  rm.AdvancePrice,
		DoorPrice:     rm.DoorPrice,
		PriceA:        rm.PriceA,
		PriceS:        rm.PriceS,
		PriceR:        rm.PriceR,
		IsPublished:   rm.IsPublished,
		Slots:         slots,
		Performers:    rm.Performers,
		ReservedCount: rm.ReservedCount,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromScheduleListItems(rms []*queries.ScheduleListItem) []*ScheduleListResponse {
	responses := make([]*ScheduleListResponse, len(rms))
	for i, rm := range rms {
		responses[i] = &ScheduleListResponse{
			ID:          rm.ID,
			ManagerID:   rm.ManagerID,
			Title:       rm.Title,
			Date:        rm.Date,
			Venue:       rm.Venue,
			ImageURL:    rm.ImageURL,
			Capacity:    rm.Capacity,
			IsPublished: rm.IsPublished,
		}
	}
	return responses
}
