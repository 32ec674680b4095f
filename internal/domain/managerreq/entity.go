package managerreq

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTeamName     = errors.New("team name cannot be empty")
	ErrEmptyReason       = errors.New("reason cannot be empty")
	ErrAlreadyProcessed  = errors.New("request already processed")
	ErrEmptyRejectReason = errors.New("reject reason cannot be empty")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// Request is a user's application to become a schedule manager.
type Request struct {
	id           uuid.UUID
	userID       uuid.UUID
	teamName     string
	description  *string
	snsLink      *string
	reason       string
	status       Status
	rejectReason *string
	processedAt  *time.Time
	createdAt    time.Time
}

func NewRequest(userID uuid.UUID, teamName string, description, snsLink *string, reason string) (*Request, error) {
	teamName = strings.TrimSpace(teamName)
	reason = strings.TrimSpace(reason)
	if teamName == "" {
		return nil, ErrEmptyTeamName
	}
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return &Request{
		id:          uuid.New(),
		userID:      userID,
		teamName:    teamName,
		description: description,
		snsLink:     snsLink,
		reason:      reason,
		status:      StatusPending,
	}, nil
}

func ReconstructRequest(
	id, userID uuid.UUID,
	teamName string,
	description, snsLink *string,
	reason string,
	status Status,
	rejectReason *string,
	processedAt *time.Time,
	createdAt time.Time,
) *Request {
	return &Request{
		id:           id,
		userID:       userID,
		teamName:     teamName,
		description:  description,
		snsLink:      snsLink,
		reason:       reason,
		status:       status,
		rejectReason: rejectReason,
		processedAt:  processedAt,
		createdAt:    createdAt,
	}
}

func (r *Request) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyProcessed
	}
	r.status = StatusApproved
	processedAt := now
	r.processedAt = &processedAt
	return nil
}

func (r *Request) Reject(reason string, now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyProcessed
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyRejectReason
	}
	r.status = StatusRejected
	r.rejectReason = &reason
	processedAt := now
	r.processedAt = &processedAt
	return nil
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) UserID() uuid.UUID       { return r.userID }
func (r *Request) TeamName() string        { return r.teamName }
func (r *Request) Description() *string    { return r.description }
func (r *Request) SNSLink() *string        { return r.snsLink }
func (r *Request) Reason() string          { return r.reason }
func (r *Request) Status() Status          { return r.status }
func (r *Request) RejectReason() *string   { return r.rejectReason }
func (r *Request) ProcessedAt() *time.Time { return r.processedAt }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
