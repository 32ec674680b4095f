package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyName    = errors.New("name cannot be empty")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

// ReconstructEmail trusts already-persisted values.
func ReconstructEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: trimmed}, nil
}

func ReconstructName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

func (n Name) Value() string {
	return n.value
}
