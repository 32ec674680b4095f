package commands

import (
	"context"

	"stagepass/internal/domain/inquiry"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/errs"

	"github.com/google/uuid"
)

type InquiryCommands interface {
	CreateInquiry(ctx context.Context, userID uuid.UUID, title, content string) (uuid.UUID, error)
	AnswerInquiry(ctx context.Context, inquiryID uuid.UUID, answer string) error
}

type inquiryCommandsImpl struct {
	inquiryRepo InquiryRepository
	clock       clock.Clock
}

func NewInquiryCommands(inquiryRepo InquiryRepository, clock clock.Clock) InquiryCommands {
	return &inquiryCommandsImpl{
		inquiryRepo: inquiryRepo,
		clock:       clock,
	}
}

func (i *inquiryCommandsImpl) CreateInquiry(ctx context.Context, userID uuid.UUID, title, content string) (uuid.UUID, error) {
	entity, err := inquiry.NewInquiry(userID, title, content)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := i.inquiryRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (i *inquiryCommandsImpl) AnswerInquiry(ctx context.Context, inquiryID uuid.UUID, answer string) error {
	found, err := i.inquiryRepo.FindByID(ctx, inquiryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInquiryNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := found.Answer(answer, i.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := i.inquiryRepo.Update(ctx, found); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
