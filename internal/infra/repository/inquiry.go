package repository

import (
	"context"
	"time"

	"stagepass/internal/domain/inquiry"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type InquiryRepository struct {
	db db.DBTX
}

func NewInquiryRepository(db db.DBTX) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, i *inquiry.Inquiry) error {
	const query = `
		INSERT INTO inquiries (id, user_id, title, content, status)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, i.ID(), i.UserID(), i.Title(), i.Content(), i.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create inquiry", err)
	}
	return nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	const query = `
		SELECT id, user_id, title, content, status, answer, answered_at, created_at
		FROM inquiries
		WHERE id = $1`

	var (
		inquiryID, userID uuid.UUID
		title, content    string
		status            string
		answer            *string
		answeredAt        *time.Time
		createdAt         time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inquiryID, &userID, &title, &content, &status, &answer, &answeredAt, &createdAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry", err)
	}

	return inquiry.ReconstructInquiry(
		inquiryID, userID, title, content, inquiry.Status(status), answer, answeredAt, createdAt,
	), nil
}

func (r *InquiryRepository) Update(ctx context.Context, i *inquiry.Inquiry) error {
	const query = `
		UPDATE inquiries
		SET status = $2, answer = $3, answered_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, i.ID(), i.Status().String(), i.AnswerText(), i.AnsweredAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update inquiry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inquiry not found", nil, infra.KindNotFound)
	}
	return nil
}
