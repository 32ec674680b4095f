package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type InquiryReadStore struct {
	db db.DBTX
}

func NewInquiryReadStore(db db.DBTX) *InquiryReadStore {
	return &InquiryReadStore{db: db}
}

const inquiryViewQuery = `
	SELECT i.id, i.user_id, u.name, u.email, i.title, i.content, i.status, i.answer, i.answered_at, i.created_at
	FROM inquiries i
	JOIN users u ON u.id = i.user_id`

func (r *InquiryReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.InquiryView, error) {
	query := inquiryViewQuery + `
	WHERE i.user_id = $1
	ORDER BY i.created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *InquiryReadStore) ListAll(ctx context.Context) ([]*queries.InquiryView, error) {
	query := inquiryViewQuery + `
	ORDER BY i.created_at DESC`

	return r.list(ctx, query)
}

func (r *InquiryReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.InquiryView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inquiries", err)
	}
	defer rows.Close()

	views := []*queries.InquiryView{}
	for rows.Next() {
		view := &queries.InquiryView{}
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.UserName, &view.UserEmail,
			&view.Title, &view.Content, &view.Status, &view.Answer,
			&view.AnsweredAt, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inquiry", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inquiries", err)
	}
	return views, nil
}
