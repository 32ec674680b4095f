package commands

import (
	"context"

	"stagepass/internal/domain/favorite"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/errs"

	"github.com/google/uuid"
)

type FavoriteCommands interface {
	AddFavorite(ctx context.Context, userID, teamID uuid.UUID, color *string) (uuid.UUID, error)
	RemoveFavorite(ctx context.Context, userID, teamID uuid.UUID) error
}

type favoriteCommandsImpl struct {
	favoriteRepo FavoriteRepository
	teamRepo     TeamRepository
}

func NewFavoriteCommands(favoriteRepo FavoriteRepository, teamRepo TeamRepository) FavoriteCommands {
	return &favoriteCommandsImpl{
		favoriteRepo: favoriteRepo,
		teamRepo:     teamRepo,
	}
}

func (f *favoriteCommandsImpl) AddFavorite(ctx context.Context, userID, teamID uuid.UUID, color *string) (uuid.UUID, error) {
	if _, err := f.teamRepo.FindByID(ctx, teamID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrTeamNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := favorite.NewFavorite(userID, teamID, color)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := f.favoriteRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrAlreadyFavorited
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrTeamNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (f *favoriteCommandsImpl) RemoveFavorite(ctx context.Context, userID, teamID uuid.UUID) error {
	if err := f.favoriteRepo.Delete(ctx, userID, teamID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFavoriteNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
