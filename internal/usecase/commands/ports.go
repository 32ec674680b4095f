package commands

import (
	"context"
	"time"

	"stagepass/internal/domain/favorite"
	"stagepass/internal/domain/inquiry"
	"stagepass/internal/domain/managerreq"
	"stagepass/internal/domain/reservation"
	"stagepass/internal/domain/schedule"
	"stagepass/internal/domain/team"
	"stagepass/internal/domain/user"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner opens write transactions. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByKakaoID(ctx context.Context, kakaoID int64) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

type TeamRepository interface {
	Create(ctx context.Context, t *team.Team) error
	Update(ctx context.Context, t *team.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*team.Team, error)
	FindAll(ctx context.Context) ([]*team.Team, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, s *schedule.Schedule) error
	Update(ctx context.Context, s *schedule.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error)
	CountActiveReservations(ctx context.Context, scheduleID uuid.UUID) (int64, error)
	// LockForUpdate takes a row lock on the schedule so concurrent
	// reservations serialize their capacity checks.
	LockForUpdate(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByQRCode(ctx context.Context, code string) (*reservation.Reservation, error)
	Update(ctx context.Context, r *reservation.Reservation) error
	CountActiveBySchedule(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID) (int64, error)
	ExistsActive(ctx context.Context, tx db.DBTX, userID, scheduleID uuid.UUID, slotID *uuid.UUID) (bool, error)
	CancelExpiredPending(ctx context.Context, cutoff time.Time) (int64, error)
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was claimed by this request. A false
	// return means an earlier request holds the key and Get will find it.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID, resultReservationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type FavoriteRepository interface {
	Create(ctx context.Context, f *favorite.Favorite) error
	Delete(ctx context.Context, userID, teamID uuid.UUID) error
}

type InquiryRepository interface {
	Create(ctx context.Context, i *inquiry.Inquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
	Update(ctx context.Context, i *inquiry.Inquiry) error
}

type ManagerRequestRepository interface {
	Create(ctx context.Context, r *managerreq.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*managerreq.Request, error)
	Update(ctx context.Context, r *managerreq.Request) error
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ScanDeduper absorbs repeated submissions of the same QR payload. The
// console scan loop issues one network call per decoded frame, so the same
// code arrives several times within a second or two.
type ScanDeduper interface {
	// Acquire reports whether this code is the first occurrence within the
	// dedup window.
	Acquire(ctx context.Context, code string) (bool, error)
}
