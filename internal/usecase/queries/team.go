package queries

import (
	"context"
	"strings"

	"stagepass/internal/infra"

	"github.com/google/uuid"
)

type TeamReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TeamView, error)
	List(ctx context.Context) ([]*TeamView, error)
	Search(ctx context.Context, q string) ([]*TeamView, error)
}

type TeamQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TeamView, error)
	List(ctx context.Context) ([]*TeamView, error)
	Search(ctx context.Context, q string) ([]*TeamView, error)
}

type teamQueriesImpl struct {
	store TeamReadStore
}

func NewTeamQueries(store TeamReadStore) TeamQueries {
	return &teamQueriesImpl{store: store}
}

func (t *teamQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TeamView, error) {
	view, err := t.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (t *teamQueriesImpl) List(ctx context.Context) ([]*TeamView, error) {
	return t.store.List(ctx)
}

func (t *teamQueriesImpl) Search(ctx context.Context, q string) ([]*TeamView, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []*TeamView{}, nil
	}
	return t.store.Search(ctx, q)
}
