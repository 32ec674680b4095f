package repository

import (
	"context"

	"stagepass/internal/domain/favorite"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type FavoriteRepository struct {
	db db.DBTX
}

func NewFavoriteRepository(db db.DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	const query = `
		INSERT INTO favorites (id, user_id, team_id, color)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, f.ID(), f.UserID(), f.TeamID(), f.Color())
	if err != nil {
		return infra.WrapRepoErr("failed to create favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, teamID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND team_id = $2`, userID, teamID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("favorite not found", nil, infra.KindNotFound)
	}
	return nil
}
