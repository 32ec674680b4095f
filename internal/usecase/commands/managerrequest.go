package commands

import (
	"context"

	"stagepass/internal/domain/managerreq"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/errs"

	"github.com/google/uuid"
)

type ManagerRequestParams struct {
	TeamName    string
	Description *string
	SNSLink     *string
	Reason      string
}

type ManagerRequestCommands interface {
	SubmitRequest(ctx context.Context, userID uuid.UUID, params ManagerRequestParams) (uuid.UUID, error)
	ApproveRequest(ctx context.Context, requestID uuid.UUID) error
	RejectRequest(ctx context.Context, requestID uuid.UUID, reason string) error
}

type managerRequestCommandsImpl struct {
	requestRepo ManagerRequestRepository
	userRepo    UserRepository
	clock       clock.Clock
}

func NewManagerRequestCommands(
	requestRepo ManagerRequestRepository,
	userRepo UserRepository,
	clock clock.Clock,
) ManagerRequestCommands {
	return &managerRequestCommandsImpl{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

func (m *managerRequestCommandsImpl) SubmitRequest(ctx context.Context, userID uuid.UUID, params ManagerRequestParams) (uuid.UUID, error) {
	pending, err := m.requestRepo.HasPending(ctx, userID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if pending {
		return uuid.Nil, ErrPendingRequestExists
	}

	entity, err := managerreq.NewRequest(userID, params.TeamName, params.Description, params.SNSLink, params.Reason)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := m.requestRepo.Create(ctx, entity); err != nil {
		// The partial unique index closes the race between two submissions
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrPendingRequestExists
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (m *managerRequestCommandsImpl) ApproveRequest(ctx context.Context, requestID uuid.UUID) error {
	found, err := m.findRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if err := found.Approve(m.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	applicant, err := m.userRepo.FindByID(ctx, found.UserID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	applicant.PromoteToManager()

	if err := m.requestRepo.Update(ctx, found); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := m.userRepo.Update(ctx, applicant); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (m *managerRequestCommandsImpl) RejectRequest(ctx context.Context, requestID uuid.UUID, reason string) error {
	found, err := m.findRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if err := found.Reject(reason, m.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := m.requestRepo.Update(ctx, found); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (m *managerRequestCommandsImpl) findRequest(ctx context.Context, requestID uuid.UUID) (*managerreq.Request, error) {
	found, err := m.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return found, nil
}
