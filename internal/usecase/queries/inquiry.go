package queries

import (
	"context"

	"github.com/google/uuid"
)

type InquiryReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*InquiryView, error)
	ListAll(ctx context.Context) ([]*InquiryView, error)
}

type InquiryQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*InquiryView, error)
	ListAll(ctx context.Context) ([]*InquiryView, error)
}

type inquiryQueriesImpl struct {
	store InquiryReadStore
}

func NewInquiryQueries(store InquiryReadStore) InquiryQueries {
	return &inquiryQueriesImpl{store: store}
}

func (i *inquiryQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*InquiryView, error) {
	return i.store.ListByUser(ctx, userID)
}

func (i *inquiryQueriesImpl) ListAll(ctx context.Context) ([]*InquiryView, error) {
	return i.store.ListAll(ctx)
}
