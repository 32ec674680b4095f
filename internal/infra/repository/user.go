package repository

import (
	"context"
	"time"

	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, username, name, password_hash, role, phone, profile_image, kakao_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.Username(),
		u.Name().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.Phone(),
		u.ProfileImage(),
		u.KakaoID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findBy(ctx, "email = $1", email)
}

func (r *UserRepository) FindByKakaoID(ctx context.Context, kakaoID int64) (*user.User, error) {
	return r.findBy(ctx, "kakao_id = $1", kakaoID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET name = $2, role = $3, phone = $4, profile_image = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Name().Value(),
		u.Role().String(),
		u.Phone(),
		u.ProfileImage(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) findBy(ctx context.Context, where string, arg any) (*user.User, error) {
	query := `
		SELECT id, email, username, name, password_hash, role, phone, profile_image, kakao_id, created_at, updated_at
		FROM users
		WHERE ` + where

	var (
		id                  uuid.UUID
		email               string
		username            string
		name                string
		passwordHash        string
		role                string
		phone, profileImage *string
		kakaoID             *int64
		createdAt           time.Time
		updatedAt           time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &email, &username, &name, &passwordHash, &role,
		&phone, &profileImage, &kakaoID, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	emailVO, err := user.ReconstructEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored email", err)
	}
	nameVO, err := user.ReconstructName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored name", err)
	}

	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored role", err)
	}

	return user.ReconstructUser(
		id, emailVO, username, nameVO, passwordHash, roleVO,
		phone, profileImage, kakaoID, createdAt, updatedAt,
	), nil
}
