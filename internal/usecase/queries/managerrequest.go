package queries

import (
	"context"

	"github.com/google/uuid"
)

type ManagerRequestReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ManagerRequestView, error)
	ListAll(ctx context.Context) ([]*ManagerRequestView, error)
	ListPending(ctx context.Context) ([]*ManagerRequestView, error)
}

type ManagerRequestQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ManagerRequestView, error)
	ListAll(ctx context.Context) ([]*ManagerRequestView, error)
	ListPending(ctx context.Context) ([]*ManagerRequestView, error)
}

type managerRequestQueriesImpl struct {
	store ManagerRequestReadStore
}

func NewManagerRequestQueries(store ManagerRequestReadStore) ManagerRequestQueries {
	return &managerRequestQueriesImpl{store: store}
}

func (m *managerRequestQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ManagerRequestView, error) {
	return m.store.ListByUser(ctx, userID)
}

func (m *managerRequestQueriesImpl) ListAll(ctx context.Context) ([]*ManagerRequestView, error) {
	return m.store.ListAll(ctx)
}

func (m *managerRequestQueriesImpl) ListPending(ctx context.Context) ([]*ManagerRequestView, error) {
	return m.store.ListPending(ctx)
}
