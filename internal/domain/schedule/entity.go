package schedule

import (
	"errors"
	"strings"
	"time"

	"stagepass/internal/domain/team"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrAlreadyDeleted   = errors.New("schedule is already deleted")
	ErrHasReservations  = errors.New("schedule has active reservations")
	ErrSlotNotFound     = errors.New("time slot does not belong to schedule")
	ErrNotPublished     = errors.New("schedule is not published")
	ErrTicketNotOpen    = errors.New("ticket sales have not opened")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// TimeSlot is a performance window within a schedule. The performer is
// addressed by free-text name in the original data; resolvedTeamID carries
// the canonical team reference matched at the write boundary.
type TimeSlot struct {
	id             uuid.UUID
	startTime      time.Time
	endTime        time.Time
	performerName  string
	resolvedTeamID *uuid.UUID
	description    *string
}

func NewTimeSlot(startTime, endTime time.Time, performerName string, description *string) (TimeSlot, error) {
	if !startTime.Before(endTime) {
		return TimeSlot{}, ErrInvalidSlotTimes
	}
	trimmed := strings.TrimSpace(performerName)
	if trimmed == "" {
		return TimeSlot{}, ErrEmptyPerformer
	}
	return TimeSlot{
		id:            uuid.New(),
		startTime:     startTime,
		endTime:       endTime,
		performerName: trimmed,
		description:   description,
	}, nil
}

func ReconstructTimeSlot(
	id uuid.UUID,
	startTime, endTime time.Time,
	performerName string,
	resolvedTeamID *uuid.UUID,
	description *string,
) TimeSlot {
	return TimeSlot{
		id:             id,
		startTime:      startTime,
		endTime:        endTime,
		performerName:  performerName,
		resolvedTeamID: resolvedTeamID,
		description:    description,
	}
}

func (s TimeSlot) ID() uuid.UUID             { return s.id }
func (s TimeSlot) StartTime() time.Time      { return s.startTime }
func (s TimeSlot) EndTime() time.Time        { return s.endTime }
func (s TimeSlot) PerformerName() string     { return s.performerName }
func (s TimeSlot) ResolvedTeamID() *uuid.UUID { return s.resolvedTeamID }
func (s TimeSlot) Description() *string      { return s.description }

type Schedule struct {
	id          uuid.UUID
	managerID   uuid.UUID
	title       string
	organizer   *string
	date        time.Time
	window      PublishWindow
	capacity    int32
	venue       *string
	description *string
	imageURL    *string
	pricing     Pricing
	isPublished bool
	isDeleted   bool
	slots       []TimeSlot
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSchedule(
	managerID uuid.UUID,
	title string,
	organizer *string,
	date time.Time,
	window PublishWindow,
	capacity int32,
	venue, description, imageURL *string,
	pricing Pricing,
	isPublished bool,
	slots []TimeSlot,
) (*Schedule, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrEmptyTitle
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Schedule{
		id:          uuid.New(),
		managerID:   managerID,
		title:       trimmed,
		organizer:   organizer,
		date:        date,
		window:      window,
		capacity:    capacity,
		venue:       venue,
		description: description,
		imageURL:    imageURL,
		pricing:     pricing,
		isPublished: isPublished,
		slots:       slots,
	}, nil
}

func ReconstructSchedule(
	id, managerID uuid.UUID,
	title string,
	organizer *string,
	date time.Time,
	window PublishWindow,
	capacity int32,
	venue, description, imageURL *string,
	pricing Pricing,
	isPublished, isDeleted bool,
	slots []TimeSlot,
	createdAt, updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:          id,
		managerID:   managerID,
		title:       title,
		organizer:   organizer,
		date:        date,
		window:      window,
		capacity:    capacity,
		venue:       venue,
		description: description,
		imageURL:    imageURL,
		pricing:     pricing,
		isPublished: isPublished,
		isDeleted:   isDeleted,
		slots:       slots,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ResolvePerformers matches each slot's free-text performer name against the
// team list, exact key match first. Unmatched names stay name-only.
func (s *Schedule) ResolvePerformers(teams []*team.Team) {
	byKey := make(map[string]uuid.UUID, len(teams))
	for _, t := range teams {
		byKey[team.NameKey(t.Name())] = t.ID()
	}
	for i := range s.slots {
		if id, ok := byKey[team.NameKey(s.slots[i].performerName)]; ok {
			teamID := id
			s.slots[i].resolvedTeamID = &teamID
		}
	}
}

// DistinctPerformers returns deduplicated performer names across slots,
// preserving first-seen order. The reservation flow skips team selection
// when there is at most one.
func (s *Schedule) DistinctPerformers() []string {
	seen := make(map[string]struct{}, len(s.slots))
	names := make([]string, 0, len(s.slots))
	for _, slot := range s.slots {
		key := team.NameKey(slot.performerName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, slot.performerName)
	}
	return names
}

func (s *Schedule) SlotByID(slotID uuid.UUID) (TimeSlot, error) {
	for _, slot := range s.slots {
		if slot.id == slotID {
			return slot, nil
		}
	}
	return TimeSlot{}, ErrSlotNotFound
}

// CanReserveAt checks visibility and sale-window gating for a reservation
// attempt.
func (s *Schedule) CanReserveAt(now time.Time) error {
	if s.isDeleted || !s.isPublished || !s.window.IsPublicAt(now) {
		return ErrNotPublished
	}
	if !s.window.IsTicketOpenAt(now) {
		return ErrTicketNotOpen
	}
	return nil
}

func (s *Schedule) HasRemainingCapacity(reservedCount int64) bool {
	return reservedCount < int64(s.capacity)
}

// SoftDelete refuses while reservations exist, matching the original
// delete guard.
func (s *Schedule) SoftDelete(reservationCount int64) error {
	if s.isDeleted {
		return ErrAlreadyDeleted
	}
	if reservationCount > 0 {
		return ErrHasReservations
	}
	s.isDeleted = true
	return nil
}

func (s *Schedule) IsFree() bool {
	return s.pricing.IsFree()
}

func (s *Schedule) ID() uuid.UUID         { return s.id }
func (s *Schedule) ManagerID() uuid.UUID  { return s.managerID }
func (s *Schedule) Title() string         { return s.title }
func (s *Schedule) Organizer() *string    { return s.organizer }
func (s *Schedule) Date() time.Time       { return s.date }
func (s *Schedule) Window() PublishWindow { return s.window }
func (s *Schedule) Capacity() int32       { return s.capacity }
func (s *Schedule) Venue() *string        { return s.venue }
func (s *Schedule) Description() *string  { return s.description }
func (s *Schedule) ImageURL() *string     { return s.imageURL }
func (s *Schedule) Pricing() Pricing      { return s.pricing }
func (s *Schedule) IsPublished() bool     { return s.isPublished }
func (s *Schedule) IsDeleted() bool       { return s.isDeleted }
func (s *Schedule) Slots() []TimeSlot     { return s.slots }
func (s *Schedule) CreatedAt() time.Time  { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time  { return s.updatedAt }
