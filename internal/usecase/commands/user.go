package commands

import (
	"context"

	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/errs"

	"github.com/google/uuid"
)

type UpdateProfileParams struct {
	Name         string
	Phone        *string
	ProfileImage *string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error
	ChangeRole(ctx context.Context, userID uuid.UUID, role string) error
}

type userCommandsImpl struct {
	userRepo UserRepository
}

func NewUserCommands(userRepo UserRepository) UserCommands {
	return &userCommandsImpl{userRepo: userRepo}
}

func (u *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error {
	found, err := u.findUser(ctx, userID)
	if err != nil {
		return err
	}

	name, err := user.NewName(params.Name)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	found.UpdateProfile(name, params.Phone, params.ProfileImage)

	if err := u.userRepo.Update(ctx, found); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userCommandsImpl) ChangeRole(ctx context.Context, userID uuid.UUID, role string) error {
	found, err := u.findUser(ctx, userID)
	if err != nil {
		return err
	}

	newRole, err := user.NewRole(role)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	updated := user.ReconstructUser(
		found.ID(),
		found.Email(),
		found.Username(),
		found.Name(),
		found.PasswordHash(),
		newRole,
		found.Phone(),
		found.ProfileImage(),
		found.KakaoID(),
		found.CreatedAt(),
		found.UpdatedAt(),
	)

	if err := u.userRepo.Update(ctx, updated); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userCommandsImpl) findUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	found, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return found, nil
}
