package readstore

import (
	"context"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type TeamReadStore struct {
	db db.DBTX
}

func NewTeamReadStore(db db.DBTX) *TeamReadStore {
	return &TeamReadStore{db: db}
}

const teamColumns = `
	id, name, owner_id, genre, description, image_url, sns_link, created_at`

func (r *TeamReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TeamView, error) {
	const query = `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE id = $1`

	view := &queries.TeamView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.OwnerID, &view.Genre,
		&view.Description, &view.ImageURL, &view.SNSLink, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("team not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find team", err)
	}
	return view, nil
}

func (r *TeamReadStore) List(ctx context.Context) ([]*queries.TeamView, error) {
	const query = `
		SELECT ` + teamColumns + `
		FROM teams
		ORDER BY name`

	return r.list(ctx, query)
}

func (r *TeamReadStore) Search(ctx context.Context, q string) ([]*queries.TeamView, error) {
	const query = `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name`

	return r.list(ctx, query, q)
}

func (r *TeamReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.TeamView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list teams", err)
	}
	defer rows.Close()

	views := []*queries.TeamView{}
	for rows.Next() {
		view := &queries.TeamView{}
		if err := rows.Scan(
			&view.ID, &view.Name, &view.OwnerID, &view.Genre,
			&view.Description, &view.ImageURL, &view.SNSLink, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan team", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate teams", err)
	}
	return views, nil
}
