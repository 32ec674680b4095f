package commands

import "stagepass/internal/pkg/errs"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Auth / user errors
	ErrUserNotFound       = errs.New("user not found")
	ErrEmailTaken         = errs.New("email already registered")
	ErrUsernameTaken      = errs.New("username already taken")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrKakaoAuthFailed    = errs.New("kakao authentication failed")

	// Team errors
	ErrTeamNotFound  = errs.New("team not found")
	ErrTeamNameTaken = errs.New("team name already taken")

	// Schedule errors
	ErrScheduleNotFound = errs.New("schedule not found")
	ErrHasReservations  = errs.New("schedule has reservations")

	// Reservation errors
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrSlotNotFound          = errs.New("time slot not found")
	ErrTicketNotOpen         = errs.New("ticket sales not open")
	ErrCapacityExceeded      = errs.New("no remaining capacity")
	ErrDuplicateReservation  = errs.New("duplicate reservation")
	ErrRefundAccountRequired = errs.New("refund account required")
	ErrAlreadyEntered        = errs.New("reservation already entered")
	ErrPaymentNotPending     = errs.New("payment not pending")
	ErrCannotCancel          = errs.New("reservation cannot be cancelled")

	// Favorite errors
	ErrAlreadyFavorited = errs.New("team already favorited")
	ErrFavoriteNotFound = errs.New("favorite not found")

	// Inquiry / manager request errors
	ErrInquiryNotFound      = errs.New("inquiry not found")
	ErrRequestNotFound      = errs.New("manager request not found")
	ErrPendingRequestExists = errs.New("pending manager request exists")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errs.New("idempotency key required")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errs.New("domain validation error")

	// Access errors
	ErrForbidden = errs.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
