package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ManagerRequestReadStore struct {
	db db.DBTX
}

func NewManagerRequestReadStore(db db.DBTX) *ManagerRequestReadStore {
	return &ManagerRequestReadStore{db: db}
}

const managerRequestViewQuery = `
	SELECT m.id, m.user_id, u.name, u.email, m.team_name, m.description, m.sns_link,
	       m.reason, m.status, m.reject_reason, m.processed_at, m.created_at
	FROM manager_requests m
	JOIN users u ON u.id = m.user_id`

func (r *ManagerRequestReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ManagerRequestView, error) {
	query := managerRequestViewQuery + `
	WHERE m.user_id = $1
	ORDER BY m.created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *ManagerRequestReadStore) ListAll(ctx context.Context) ([]*queries.ManagerRequestView, error) {
	query := managerRequestViewQuery + `
	ORDER BY m.created_at DESC`

	return r.list(ctx, query)
}

func (r *ManagerRequestReadStore) ListPending(ctx context.Context) ([]*queries.ManagerRequestView, error) {
	query := managerRequestViewQuery + `
	WHERE m.status = 'PENDING'
	ORDER BY m.created_at`

	return r.list(ctx, query)
}

func (r *ManagerRequestReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ManagerRequestView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list manager requests", err)
	}
	defer rows.Close()

	views := []*queries.ManagerRequestView{}
	for rows.Next() {
		view := &queries.ManagerRequestView{}
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.UserName, &view.UserEmail,
			&view.TeamName, &view.Description, &view.SNSLink,
			&view.Reason, &view.Status, &view.RejectReason,
			&view.ProcessedAt, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan manager request", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate manager requests", err)
	}
	return views, nil
}
