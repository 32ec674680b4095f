//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stagepass/internal/domain/team"
	"stagepass/internal/domain/user"
	"stagepass/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTeam(t *testing.T, name string, ownerID uuid.UUID) *team.Team {
	t.Helper()
	tm, err := team.NewTeam(name, ownerID, nil, nil, nil, nil)
	require.NoError(t, err)
	return tm
}

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("creates with trimmed name", func(t *testing.T) {
		repo := newStubTeamRepo()
		cmds := commands.NewTeamCommands(repo)

		id, err := cmds.CreateTeam(ctx, commands.TeamParams{Name: "  밴드A  "}, ownerID)

		require.NoError(t, err)
		created, ok := repo.teams[id]
		require.True(t, ok)
		assert.Equal(t, "밴드A", created.Name())
		assert.Equal(t, ownerID, created.OwnerID())
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := newStubTeamRepo()
		repo.createErr = repoDuplicate("teams_name_key")
		cmds := commands.NewTeamCommands(repo)

		_, err := cmds.CreateTeam(ctx, commands.TeamParams{Name: "밴드A"}, ownerID)

		require.ErrorIs(t, err, commands.ErrTeamNameTaken)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		cmds := commands.NewTeamCommands(newStubTeamRepo())

		_, err := cmds.CreateTeam(ctx, commands.TeamParams{Name: "   "}, ownerID)

		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdateTeam(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner updates", func(t *testing.T) {
		existing := seedTeam(t, "밴드A", ownerID)
		repo := newStubTeamRepo(existing)
		cmds := commands.NewTeamCommands(repo)

		genre := "인디록"
		err := cmds.UpdateTeam(ctx, existing.ID(), commands.TeamParams{Name: "밴드A", Genre: &genre}, ownerID, user.RoleManager)

		require.NoError(t, err)
		require.Len(t, repo.updated, 1)
		require.NotNil(t, repo.updated[0].Genre())
		assert.Equal(t, genre, *repo.updated[0].Genre())
		assert.Equal(t, ownerID, repo.updated[0].OwnerID())
	})

	t.Run("admin updates someone else's team", func(t *testing.T) {
		existing := seedTeam(t, "밴드A", ownerID)
		repo := newStubTeamRepo(existing)
		cmds := commands.NewTeamCommands(repo)

		err := cmds.UpdateTeam(ctx, existing.ID(), commands.TeamParams{Name: "밴드A"}, uuid.New(), user.RoleAdmin)

		require.NoError(t, err)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		existing := seedTeam(t, "밴드A", ownerID)
		repo := newStubTeamRepo(existing)
		cmds := commands.NewTeamCommands(repo)

		err := cmds.UpdateTeam(ctx, existing.ID(), commands.TeamParams{Name: "밴드A"}, uuid.New(), user.RoleManager)

		require.ErrorIs(t, err, commands.ErrForbidden)
		assert.Empty(t, repo.updated)
	})

	t.Run("rename onto a taken name", func(t *testing.T) {
		existing := seedTeam(t, "밴드A", ownerID)
		repo := newStubTeamRepo(existing)
		repo.updateErr = repoDuplicate("teams_name_key")
		cmds := commands.NewTeamCommands(repo)

		err := cmds.UpdateTeam(ctx, existing.ID(), commands.TeamParams{Name: "밴드B"}, ownerID, user.RoleManager)

		require.ErrorIs(t, err, commands.ErrTeamNameTaken)
	})

	t.Run("unknown team", func(t *testing.T) {
		cmds := commands.NewTeamCommands(newStubTeamRepo())

		err := cmds.UpdateTeam(ctx, uuid.New(), commands.TeamParams{Name: "밴드A"}, ownerID, user.RoleManager)

		require.ErrorIs(t, err, commands.ErrTeamNotFound)
	})
}

func TestDeleteTeam(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		existing := seedTeam(t, "밴드A", ownerID)
		repo := newStubTeamRepo(existing)
		cmds := commands.NewTeamCommands(repo)

		err := cmds.DeleteTeam(ctx, existing.ID(), ownerID, user.RoleManager)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{existing.ID()}, repo.deleted)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		existing := seedTeam(t, "밴드A", ownerID)
		repo := newStubTeamRepo(existing)
		cmds := commands.NewTeamCommands(repo)

		err := cmds.DeleteTeam(ctx, existing.ID(), uuid.New(), user.RoleManager)

		require.ErrorIs(t, err, commands.ErrForbidden)
		assert.Empty(t, repo.deleted)
	})
}
