//go:build unit

package team_test

import (
	"testing"

	"stagepass/internal/domain/team"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeam(t *testing.T) {
	t.Run("name trimmed", func(t *testing.T) {
		created, err := team.NewTeam("  밴드A  ", uuid.New(), nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "밴드A", created.Name())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := team.NewTeam("   ", uuid.New(), nil, nil, nil, nil)
		require.ErrorIs(t, err, team.ErrEmptyName)
	})
}

func TestNameKey(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{name: "case-insensitive", a: "Band A", b: "band a", same: true},
		{name: "inner whitespace collapsed", a: "밴드  A", b: "밴드 A", same: true},
		{name: "different names differ", a: "밴드A", b: "밴드B", same: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.same {
				assert.Equal(t, team.NameKey(tc.a), team.NameKey(tc.b))
			} else {
				assert.NotEqual(t, team.NameKey(tc.a), team.NameKey(tc.b))
			}
		})
	}
}

func TestMatchesName(t *testing.T) {
	created, err := team.NewTeam("밴드A", uuid.New(), nil, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, created.MatchesName("밴드a"))
	assert.False(t, created.MatchesName("밴드B"))
}
