package repository

import (
	"context"
	"time"

	"stagepass/internal/domain/team"
	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type TeamRepository struct {
	db db.DBTX
}

func NewTeamRepository(db db.DBTX) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	const query = `
		INSERT INTO teams (id, name, owner_id, genre, description, image_url, sns_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		t.ID(), t.Name(), t.OwnerID(), t.Genre(), t.Description(), t.ImageURL(), t.SNSLink(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create team", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t *team.Team) error {
	const query = `
		UPDATE teams
		SET name = $2, genre = $3, description = $4, image_url = $5, sns_link = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID(), t.Name(), t.Genre(), t.Description(), t.ImageURL(), t.SNSLink(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update team", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("team not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete team", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("team not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	const query = `
		SELECT id, name, owner_id, genre, description, image_url, sns_link, created_at
		FROM teams
		WHERE id = $1`

	t, err := scanTeam(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("team not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find team", err)
	}
	return t, nil
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]*team.Team, error) {
	const query = `
		SELECT id, name, owner_id, genre, description, image_url, sns_link, created_at
		FROM teams
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list teams", err)
	}
	defer rows.Close()

	var teams []*team.Team
	for rows.Next() {
		t, scanErr := scanTeam(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan team", scanErr)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate teams", err)
	}
	return teams, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*team.Team, error) {
	var (
		id                                  uuid.UUID
		name                                string
		ownerID                             uuid.UUID
		genre, description, imageURL, snsLink *string
		createdAt                           time.Time
	)
	if err := row.Scan(&id, &name, &ownerID, &genre, &description, &imageURL, &snsLink, &createdAt); err != nil {
		return nil, err
	}
	return team.ReconstructTeam(id, name, ownerID, genre, description, imageURL, snsLink, createdAt), nil
}
