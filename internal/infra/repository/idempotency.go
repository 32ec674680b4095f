package repository

import (
	"context"
	"time"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key without failing on replays. RowsAffected
// distinguishes a fresh claim from a repeated request.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	record := &commands.IdempotencyRecord{}
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&record.Key,
		&record.UserID,
		&record.Status,
		&record.RequestHash,
		&record.ResultReservationID,
		&record.ExpiresAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return record, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID, resultReservationID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_reservation_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	_, err := tx.Exec(ctx, query, key, userID, resultReservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

// DeleteExpired clears keys past their TTL, called from the sweeper.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at < $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
