package commands

import (
	"context"

	"stagepass/internal/domain/team"
	"stagepass/internal/domain/user"
	"stagepass/internal/infra"
	"stagepass/internal/pkg/errs"

	"github.com/google/uuid"
)

type TeamParams struct {
	Name        string
	Genre       *string
	Description *string
	ImageURL    *string
	SNSLink     *string
}

type TeamCommands interface {
	CreateTeam(ctx context.Context, params TeamParams, ownerID uuid.UUID) (uuid.UUID, error)
	UpdateTeam(ctx context.Context, teamID uuid.UUID, params TeamParams, actorID uuid.UUID, actorRole user.Role) error
	DeleteTeam(ctx context.Context, teamID, actorID uuid.UUID, actorRole user.Role) error
}

type teamCommandsImpl struct {
	teamRepo TeamRepository
}

func NewTeamCommands(teamRepo TeamRepository) TeamCommands {
	return &teamCommandsImpl{teamRepo: teamRepo}
}

func (t *teamCommandsImpl) CreateTeam(ctx context.Context, params TeamParams, ownerID uuid.UUID) (uuid.UUID, error) {
	entity, err := team.NewTeam(params.Name, ownerID, params.Genre, params.Description, params.ImageURL, params.SNSLink)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := t.teamRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrTeamNameTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (t *teamCommandsImpl) UpdateTeam(ctx context.Context, teamID uuid.UUID, params TeamParams, actorID uuid.UUID, actorRole user.Role) error {
	existing, err := t.findTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if actorRole != user.RoleAdmin && existing.OwnerID() != actorID {
		return ErrForbidden
	}

	replacement, err := team.NewTeam(params.Name, existing.OwnerID(), params.Genre, params.Description, params.ImageURL, params.SNSLink)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	updated := team.ReconstructTeam(
		existing.ID(),
		replacement.Name(),
		existing.OwnerID(),
		params.Genre,
		params.Description,
		params.ImageURL,
		params.SNSLink,
		existing.CreatedAt(),
	)

	if err := t.teamRepo.Update(ctx, updated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrTeamNameTaken
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (t *teamCommandsImpl) DeleteTeam(ctx context.Context, teamID, actorID uuid.UUID, actorRole user.Role) error {
	existing, err := t.findTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if actorRole != user.RoleAdmin && existing.OwnerID() != actorID {
		return ErrForbidden
	}

	if err := t.teamRepo.Delete(ctx, teamID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (t *teamCommandsImpl) findTeam(ctx context.Context, teamID uuid.UUID) (*team.Team, error) {
	existing, err := t.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return existing, nil
}
