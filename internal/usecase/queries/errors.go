package queries

import "stagepass/internal/pkg/errs"

var (
	ErrNotFound    = errs.New("not found")
	ErrForbidden   = errs.New("forbidden")
	ErrInvalidDate = errs.New("invalid date")
)
