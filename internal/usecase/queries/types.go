package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Phone        *string   `json:"phone,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type TeamView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Genre       *string   `json:"genre,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	SNSLink     *string   `json:"sns_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TimeSlotView struct {
	ID            uuid.UUID  `json:"id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	PerformerName string     `json:"performer_name"`
	TeamID        *uuid.UUID `json:"team_id,omitempty"`
	Description   *string    `json:"description,omitempty"`
}

type ScheduleView struct {
	ID            uuid.UUID      `json:"id"`
	ManagerID     uuid.UUID      `json:"manager_id"`
	Title         string         `json:"title"`
	Organizer     *string        `json:"organizer,omitempty"`
	Date          time.Time      `json:"date"`
	PublicAt      *time.Time     `json:"public_at,omitempty"`
	TicketOpenAt  *time.Time     `json:"ticket_open_at,omitempty"`
	Capacity      int32          `json:"capacity"`
	Venue         *string        `json:"venue,omitempty"`
	Description   *string        `json:"description,omitempty"`
	ImageURL      *string        `json:"image_url,omitempty"`
	AdvancePrice  *int64         `json:"advance_price,omitempty"`
	DoorPrice     *int64         `json:"door_price,omitempty"`
	PriceA        *int64         `json:"price_a,omitempty"`
	PriceS        *int64         `json:"price_s,omitempty"`
	PriceR        *int64         `json:"price_r,omitempty"`
	IsPublished   bool           `json:"is_published"`
	Slots         []TimeSlotView `json:"time_slots"`
	Performers    []string       `json:"performers"`
	ReservedCount int64          `json:"reserved_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type ScheduleListItem struct {
	ID          uuid.UUID `json:"id"`
	ManagerID   uuid.UUID `json:"manager_id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Venue       *string   `json:"venue,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Capacity    int32     `json:"capacity"`
	IsPublished bool      `json:"is_published"`
}

type ReservationView struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	UserName          string     `json:"user_name"`
	UserPhone         *string    `json:"user_phone,omitempty"`
	UserEmail         string     `json:"user_email"`
	ScheduleID        uuid.UUID  `json:"schedule_id"`
	ScheduleTitle     string     `json:"schedule_title"`
	ScheduleManagerID uuid.UUID  `json:"-"`
	SlotID            *uuid.UUID `json:"slot_id,omitempty"`
	PerformerName     string     `json:"performer_name"`
	SeatGrade         *string    `json:"seat_grade,omitempty"`
	PaymentStatus     string     `json:"payment_status"`
	ReservationStatus string     `json:"reservation_status"`
	PaymentMethod     string     `json:"payment_method"`
	Amount            int64      `json:"amount"`
	QRCode            string     `json:"qr_code"`
	IsEntered         bool       `json:"is_entered"`
	EnteredAt         *time.Time `json:"entered_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type FavoriteView struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type InquiryView struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserEmail  string     `json:"user_email"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ManagerRequestView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	TeamName     string     `json:"team_name"`
	Description  *string    `json:"description,omitempty"`
	SNSLink      *string    `json:"sns_link,omitempty"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RejectReason *string    `json:"reject_reason,omitempty"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
