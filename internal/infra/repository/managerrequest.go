package repository

import (
	"context"
	"time"

	"stagepass/internal/domain/managerreq"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type ManagerRequestRepository struct {
	db db.DBTX
}

func NewManagerRequestRepository(db db.DBTX) *ManagerRequestRepository {
	return &ManagerRequestRepository{db: db}
}

func (r *ManagerRequestRepository) Create(ctx context.Context, req *managerreq.Request) error {
	const query = `
		INSERT INTO manager_requests (id, user_id, team_name, description, sns_link, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		req.ID(), req.UserID(), req.TeamName(), req.Description(), req.SNSLink(), req.Reason(), req.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create manager request", err)
	}
	return nil
}

func (r *ManagerRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*managerreq.Request, error) {
	const query = `
		SELECT id, user_id, team_name, description, sns_link, reason, status, reject_reason, processed_at, created_at
		FROM manager_requests
		WHERE id = $1`

	var (
		requestID, userID     uuid.UUID
		teamName, reason      string
		description, snsLink  *string
		status                string
		rejectReason          *string
		processedAt           *time.Time
		createdAt             time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&requestID, &userID, &teamName, &description, &snsLink, &reason,
		&status, &rejectReason, &processedAt, &createdAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("manager request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find manager request", err)
	}

	return managerreq.ReconstructRequest(
		requestID, userID, teamName, description, snsLink, reason,
		managerreq.Status(status), rejectReason, processedAt, createdAt,
	), nil
}

func (r *ManagerRequestRepository) Update(ctx context.Context, req *managerreq.Request) error {
	const query = `
		UPDATE manager_requests
		SET status = $2, reject_reason = $3, processed_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, req.ID(), req.Status().String(), req.RejectReason(), req.ProcessedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update manager request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("manager request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ManagerRequestRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM manager_requests WHERE user_id = $1 AND status = 'PENDING'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending manager request", err)
	}
	return exists, nil
}
