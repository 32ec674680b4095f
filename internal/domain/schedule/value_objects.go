package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidSlotTimes   = errors.New("slot start time must be before end time")
	ErrEmptyPerformer     = errors.New("slot performer name cannot be empty")
	ErrTicketOpenTooEarly = errors.New("ticket open time cannot precede public release time")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrUnknownSeatGrade   = errors.New("unknown seat grade")
	ErrGradeNotPriced     = errors.New("seat grade has no configured price")
)

type SeatGrade string

const (
	GradeA SeatGrade = "A"
	GradeS SeatGrade = "S"
	GradeR SeatGrade = "R"
)

func NewSeatGrade(s string) (SeatGrade, error) {
	grade := SeatGrade(s)
	switch grade {
	case GradeA, GradeS, GradeR:
		return grade, nil
	default:
		return "", ErrUnknownSeatGrade
	}
}

func (g SeatGrade) String() string {
	return string(g)
}

// PublishWindow holds the public-release and ticket-sale-open timestamps.
// The original client only enforced ticketOpenAt >= publicAt by form
// validation; here the constructor rejects the inversion outright.
type PublishWindow struct {
	publicAt     *time.Time
	ticketOpenAt *time.Time
}

func NewPublishWindow(publicAt, ticketOpenAt *time.Time) (PublishWindow, error) {
	if publicAt != nil && ticketOpenAt != nil && ticketOpenAt.Before(*publicAt) {
		return PublishWindow{}, ErrTicketOpenTooEarly
	}
	return PublishWindow{publicAt: publicAt, ticketOpenAt: ticketOpenAt}, nil
}

func (w PublishWindow) PublicAt() *time.Time     { return w.publicAt }
func (w PublishWindow) TicketOpenAt() *time.Time { return w.ticketOpenAt }

func (w PublishWindow) IsPublicAt(now time.Time) bool {
	return w.publicAt == nil || !now.Before(*w.publicAt)
}

func (w PublishWindow) IsTicketOpenAt(now time.Time) bool {
	return w.ticketOpenAt == nil || !now.Before(*w.ticketOpenAt)
}

// Pricing is the canonical latest shape: optional advance/door flat prices
// plus optional tiered A/S/R seat prices. Earlier flat-price variants are
// superseded. All amounts are in won.
type Pricing struct {
	advance *int64
	door    *int64
	gradeA  *int64
	gradeS  *int64
	gradeR  *int64
}

func NewPricing(advance, door, gradeA, gradeS, gradeR *int64) (Pricing, error) {
	for _, p := range []*int64{advance, door, gradeA, gradeS, gradeR} {
		if p != nil && *p < 0 {
			return Pricing{}, ErrNegativePrice
		}
	}
	return Pricing{advance: advance, door: door, gradeA: gradeA, gradeS: gradeS, gradeR: gradeR}, nil
}

func (p Pricing) Advance() *int64 { return p.advance }
func (p Pricing) Door() *int64    { return p.door }
func (p Pricing) GradeA() *int64  { return p.gradeA }
func (p Pricing) GradeS() *int64  { return p.gradeS }
func (p Pricing) GradeR() *int64  { return p.gradeR }

func (p Pricing) HasTiered() bool {
	return p.gradeA != nil || p.gradeS != nil || p.gradeR != nil
}

func (p Pricing) IsFree() bool {
	return p.advance == nil && p.door == nil && !p.HasTiered()
}

// AmountFor resolves the charge for a reservation: the tiered seat price
// when a grade was chosen, the advance price otherwise, zero for free
// events.
func (p Pricing) AmountFor(grade *SeatGrade) (int64, error) {
	if grade != nil {
		var priced *int64
		switch *grade {
		case GradeA:
			priced = p.gradeA
		case GradeS:
			priced = p.gradeS
		case GradeR:
			priced = p.gradeR
		default:
			return 0, ErrUnknownSeatGrade
		}
		if priced == nil {
			return 0, ErrGradeNotPriced
		}
		return *priced, nil
	}
	if p.advance != nil {
		return *p.advance, nil
	}
	return 0, nil
}
