//go:build unit

package user_test

import (
	"testing"

	"stagepass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid address", input: "fan@example.com", want: "fan@example.com"},
		{name: "uppercase is lowered", input: "Fan@Example.COM", want: "fan@example.com"},
		{name: "surrounding spaces trimmed", input: "  fan@example.com  ", want: "fan@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "fanexample.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "fan@example", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "user ok", input: "USER"},
		{name: "manager ok", input: "MANAGER"},
		{name: "admin ok", input: "ADMIN"},
		{name: "lowercase rejected", input: "user", errIs: user.ErrInvalidRole},
		{name: "unknown rejected", input: "OWNER", errIs: user.ErrInvalidRole},
		{name: "empty rejected", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		})
	}
}

func TestNewName(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		name, err := user.NewName("  김하늘  ")
		require.NoError(t, err)
		assert.Equal(t, "김하늘", name.Value())
	})

	t.Run("rejects blank", func(t *testing.T) {
		_, err := user.NewName("   ")
		require.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("fan@example.com")
	require.NoError(t, err)
	name, err := user.NewName("김하늘")
	require.NoError(t, err)

	phone := "010-1234-5678"
	u := user.NewUser(email, "haneul", name, "hashed", user.RoleUser, &phone)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "fan@example.com", u.Email().Value())
	assert.Equal(t, "haneul", u.Username())
	assert.Equal(t, user.RoleUser, u.Role())
	require.NotNil(t, u.Phone())
	assert.Equal(t, phone, *u.Phone())
	assert.Nil(t, u.KakaoID())
}

func TestNewKakaoUser(t *testing.T) {
	email, err := user.NewEmail("kakao_12345@kakao.local")
	require.NoError(t, err)
	name, err := user.NewName("하늘")
	require.NoError(t, err)

	u := user.NewKakaoUser(email, name, 12345, nil)

	require.NotNil(t, u.KakaoID())
	assert.Equal(t, int64(12345), *u.KakaoID())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.Empty(t, u.PasswordHash())
	assert.Equal(t, email.Value(), u.Username())
}

func TestLinkKakao(t *testing.T) {
	email, _ := user.NewEmail("fan@example.com")
	name, _ := user.NewName("김하늘")

	t.Run("attaches kakao id and profile image", func(t *testing.T) {
		u := user.NewUser(email, "haneul", name, "hashed", user.RoleUser, nil)
		img := "https://k.kakaocdn.net/profile.jpg"

		u.LinkKakao(98765, &img)

		require.NotNil(t, u.KakaoID())
		assert.Equal(t, int64(98765), *u.KakaoID())
		require.NotNil(t, u.ProfileImage())
		assert.Equal(t, img, *u.ProfileImage())
	})

	t.Run("keeps an existing profile image", func(t *testing.T) {
		u := user.NewUser(email, "haneul", name, "hashed", user.RoleUser, nil)
		own := "https://cdn.stagepass.local/own.jpg"
		kakao := "https://k.kakaocdn.net/profile.jpg"
		u.UpdateProfile(name, nil, &own)

		u.LinkKakao(98765, &kakao)

		require.NotNil(t, u.ProfileImage())
		assert.Equal(t, own, *u.ProfileImage())
	})
}

func TestPromoteToManager(t *testing.T) {
	email, _ := user.NewEmail("fan@example.com")
	name, _ := user.NewName("김하늘")
	u := user.NewUser(email, "haneul", name, "hashed", user.RoleUser, nil)

	u.PromoteToManager()

	assert.Equal(t, user.RoleManager, u.Role())
}

func TestCanManageSchedule(t *testing.T) {
	email, _ := user.NewEmail("mgr@example.com")
	name, _ := user.NewName("매니저")
	manager := user.NewUser(email, "mgr", name, "hashed", user.RoleManager, nil)
	admin := user.NewUser(email, "adm", name, "hashed", user.RoleAdmin, nil)

	t.Run("manager manages own schedules only", func(t *testing.T) {
		assert.True(t, manager.CanManageSchedule(manager.ID()))
		assert.False(t, manager.CanManageSchedule(uuid.New()))
	})

	t.Run("admin manages any schedule", func(t *testing.T) {
		assert.True(t, admin.CanManageSchedule(uuid.New()))
	})
}

func TestUpdateProfile(t *testing.T) {
	email, _ := user.NewEmail("fan@example.com")
	name, _ := user.NewName("김하늘")
	u := user.NewUser(email, "haneul", name, "hashed", user.RoleUser, nil)

	newName, _ := user.NewName("박하늘")
	phone := "010-1234-5678"
	u.UpdateProfile(newName, &phone, nil)

	assert.Equal(t, "박하늘", u.Name().Value())
	require.NotNil(t, u.Phone())
	assert.Equal(t, phone, *u.Phone())
	assert.Nil(t, u.ProfileImage())
}
