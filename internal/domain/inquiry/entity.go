package inquiry

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrEmptyAnswer     = errors.New("answer cannot be empty")
	ErrAlreadyAnswered = errors.New("inquiry already answered")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAnswered Status = "ANSWERED"
)

func (s Status) String() string {
	return string(s)
}

type Inquiry struct {
	id         uuid.UUID
	userID     uuid.UUID
	title      string
	content    string
	status     Status
	answer     *string
	answeredAt *time.Time
	createdAt  time.Time
}

func NewInquiry(userID uuid.UUID, title, content string) (*Inquiry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Inquiry{
		id:      uuid.New(),
		userID:  userID,
		title:   title,
		content: content,
		status:  StatusPending,
	}, nil
}

func ReconstructInquiry(
	id, userID uuid.UUID,
	title, content string,
	status Status,
	answer *string,
	answeredAt *time.Time,
	createdAt time.Time,
) *Inquiry {
	return &Inquiry{
		id:         id,
		userID:     userID,
		title:      title,
		content:    content,
		status:     status,
		answer:     answer,
		answeredAt: answeredAt,
		createdAt:  createdAt,
	}
}

func (i *Inquiry) Answer(answer string, now time.Time) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ErrEmptyAnswer
	}
	if i.status == StatusAnswered {
		return ErrAlreadyAnswered
	}
	i.answer = &answer
	answeredAt := now
	i.answeredAt = &answeredAt
	i.status = StatusAnswered
	return nil
}

func (i *Inquiry) ID() uuid.UUID          { return i.id }
func (i *Inquiry) UserID() uuid.UUID      { return i.userID }
func (i *Inquiry) Title() string          { return i.title }
func (i *Inquiry) Content() string        { return i.content }
func (i *Inquiry) Status() Status         { return i.status }
func (i *Inquiry) AnswerText() *string    { return i.answer }
func (i *Inquiry) AnsweredAt() *time.Time { return i.answeredAt }
func (i *Inquiry) CreatedAt() time.Time   { return i.createdAt }
