package commands

import (
	"context"
	"fmt"
	"log/slog"

	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/errs"
	"stagepass/internal/pkg/jwt"
	"stagepass/internal/pkg/password"

	"github.com/google/uuid"
)

type RegisterParams struct {
	Email    string
	Username string
	Name     string
	Password string
	Phone    *string
}

type LoginParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID uuid.UUID
	Role   user.Role
	Token  string
}

// KakaoProfile is the subset of the Kakao user payload the service needs.
type KakaoProfile struct {
	ID           int64
	Email        string
	Nickname     string
	ProfileImage *string
}

type KakaoClient interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*KakaoProfile, error)
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
	KakaoCallback(ctx context.Context, code string) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	kakao      KakaoClient
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, kakao KakaoClient, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		kakao:      kakao,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	name, err := user.NewName(params.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	newUser := user.NewUser(email, params.Username, name, hash, user.RoleUser, params.Phone)

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.issueToken(newUser.ID(), newUser.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	found, err := a.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(found.PasswordHash(), params.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issueToken(found.ID(), found.Role())
}

func (a *authCommandsImpl) KakaoCallback(ctx context.Context, code string) (*AuthResult, error) {
	accessToken, err := a.kakao.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errs.Mark(err, ErrKakaoAuthFailed)
	}

	profile, err := a.kakao.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, errs.Mark(err, ErrKakaoAuthFailed)
	}

	found, err := a.userRepo.FindByKakaoID(ctx, profile.ID)
	if err == nil {
		return a.issueToken(found.ID(), found.Role())
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	created, err := a.provisionKakaoUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	return a.issueToken(created.ID(), created.Role())
}

func (a *authCommandsImpl) provisionKakaoUser(ctx context.Context, profile *KakaoProfile) (*user.User, error) {
	rawEmail := profile.Email
	if rawEmail == "" {
		// Kakao accounts without a shared email get a synthetic address
		rawEmail = fmt.Sprintf("kakao_%d@kakao.local", profile.ID)
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrKakaoAuthFailed)
	}
	name, err := user.NewName(profile.Nickname)
	if err != nil {
		name, _ = user.NewName(fmt.Sprintf("kakao_%d", profile.ID))
	}

	newUser := user.NewKakaoUser(email, name, profile.ID, profile.ProfileImage)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Registered locally with the same email before linking Kakao
			existing, findErr := a.userRepo.FindByEmail(ctx, email.Value())
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			existing.LinkKakao(profile.ID, profile.ProfileImage)
			if updateErr := a.userRepo.Update(ctx, existing); updateErr != nil {
				return nil, errs.Mark(updateErr, ErrDatabaseOperationFailed)
			}
			slog.Info("linked kakao login to existing account", "user_id", existing.ID())
			return existing, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return newUser, nil
}

func (a *authCommandsImpl) issueToken(userID uuid.UUID, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		UserID: userID,
		Role:   role,
		Token:  token,
	}, nil
}
