package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteReadStore struct {
	db db.DBTX
}

func NewFavoriteReadStore(db db.DBTX) *FavoriteReadStore {
	return &FavoriteReadStore{db: db}
}

func (r *FavoriteReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.FavoriteView, error) {
	const query = `
		SELECT f.id, f.team_id, t.name, f.color, f.created_at
		FROM favorites f
		JOIN teams t ON t.id = f.team_id
		WHERE f.user_id = $1
		ORDER BY f.created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	defer rows.Close()

	views := []*queries.FavoriteView{}
	for rows.Next() {
		view := &queries.FavoriteView{}
		if err := rows.Scan(&view.ID, &view.TeamID, &view.TeamName, &view.Color, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate favorites", err)
	}
	return views, nil
}

func (r *FavoriteReadStore) Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = $1 AND team_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, teamID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check favorite", err)
	}
	return exists, nil
}
