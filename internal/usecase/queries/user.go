package queries

import (
	"context"

	"stagepass/internal/infra"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// FindByEmailWithHash returns the view together with the stored password
	// hash for credential checks.
	FindByEmailWithHash(ctx context.Context, email string) (*UserView, string, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (u *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := u.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (u *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return u.store.List(ctx)
}
