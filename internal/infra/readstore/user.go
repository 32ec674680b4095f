package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, username, name, role, phone, profile_image, created_at
		FROM users
		WHERE id = $1`

	view := &queries.UserView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Username, &view.Name, &view.Role,
		&view.Phone, &view.ProfileImage, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmailWithHash(ctx context.Context, email string) (*queries.UserView, string, error) {
	const query = `
		SELECT id, email, username, name, role, phone, profile_image, created_at, password_hash
		FROM users
		WHERE email = $1`

	view := &queries.UserView{}
	var passwordHash string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Username, &view.Name, &view.Role,
		&view.Phone, &view.ProfileImage, &view.CreatedAt, &passwordHash,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return view, passwordHash, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	const query = `
		SELECT id, email, username, name, role, phone, profile_image, created_at
		FROM users
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []*queries.UserView{}
	for rows.Next() {
		view := &queries.UserView{}
		if err := rows.Scan(
			&view.ID, &view.Email, &view.Username, &view.Name, &view.Role,
			&view.Phone, &view.ProfileImage, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return views, nil
}
