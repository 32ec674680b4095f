package queries

import (
	"context"

	"github.com/google/uuid"
)

type FavoriteReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error)
	Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
}

type FavoriteQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error)
	Check(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
}

type favoriteQueriesImpl struct {
	store FavoriteReadStore
}

func NewFavoriteQueries(store FavoriteReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{store: store}
}

func (f *favoriteQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error) {
	return f.store.ListByUser(ctx, userID)
}

func (f *favoriteQueriesImpl) Check(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	return f.store.Exists(ctx, userID, teamID)
}
