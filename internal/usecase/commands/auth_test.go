//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stagepass/internal/domain/user"
	"stagepass/internal/pkg/jwt"
	"stagepass/internal/pkg/password"
	"stagepass/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands(userRepo *stubUserRepo, kakao *stubKakaoClient) commands.AuthCommands {
	if kakao == nil {
		kakao = &stubKakaoClient{}
	}
	return commands.NewAuthCommands(userRepo, kakao, jwt.NewService("test-secret", time.Hour))
}

func seedUser(t *testing.T, email, rawPassword string) *user.User {
	t.Helper()
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	name, err := user.NewName("김하늘")
	require.NoError(t, err)
	hash, err := password.HashPassword(rawPassword)
	require.NoError(t, err)
	return user.NewUser(addr, "haneul", name, hash, user.RoleUser, nil)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		repo := newStubUserRepo()
		auth := newAuthCommands(repo, nil)

		result, err := auth.Register(ctx, commands.RegisterParams{
			Email:    "fan@example.com",
			Username: "haneul",
			Name:     "김하늘",
			Password: "secret1234",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.RoleUser, result.Role)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "fan@example.com", repo.created[0].Email().Value())
	})

	t.Run("stores the registered phone number", func(t *testing.T) {
		repo := newStubUserRepo()
		auth := newAuthCommands(repo, nil)
		phone := "010-1234-5678"

		_, err := auth.Register(ctx, commands.RegisterParams{
			Email:    "fan@example.com",
			Username: "haneul",
			Name:     "김하늘",
			Password: "secret1234",
			Phone:    &phone,
		})

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		require.NotNil(t, repo.created[0].Phone())
		assert.Equal(t, phone, *repo.created[0].Phone())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newStubUserRepo()
		repo.createErr = repoDuplicate("users_email_key")
		auth := newAuthCommands(repo, nil)

		_, err := auth.Register(ctx, commands.RegisterParams{
			Email:    "fan@example.com",
			Username: "haneul",
			Name:     "김하늘",
			Password: "secret1234",
		})

		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		auth := newAuthCommands(newStubUserRepo(), nil)

		_, err := auth.Register(ctx, commands.RegisterParams{
			Email:    "not-an-email",
			Username: "haneul",
			Name:     "김하늘",
			Password: "secret1234",
		})

		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue token", func(t *testing.T) {
		existing := seedUser(t, "fan@example.com", "secret1234")
		auth := newAuthCommands(newStubUserRepo(existing), nil)

		result, err := auth.Login(ctx, commands.LoginParams{Email: "fan@example.com", Password: "secret1234"})

		require.NoError(t, err)
		assert.Equal(t, existing.ID(), result.UserID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		existing := seedUser(t, "fan@example.com", "secret1234")
		auth := newAuthCommands(newStubUserRepo(existing), nil)

		_, unknownErr := auth.Login(ctx, commands.LoginParams{Email: "ghost@example.com", Password: "secret1234"})
		_, wrongErr := auth.Login(ctx, commands.LoginParams{Email: "fan@example.com", Password: "wrong"})

		require.ErrorIs(t, unknownErr, commands.ErrInvalidCredentials)
		require.ErrorIs(t, wrongErr, commands.ErrInvalidCredentials)
	})
}

func TestKakaoCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("existing kakao user logs in", func(t *testing.T) {
		email, err := user.NewEmail("linked@example.com")
		require.NoError(t, err)
		name, err := user.NewName("하늘")
		require.NoError(t, err)
		existing := user.NewKakaoUser(email, name, 12345, nil)

		repo := newStubUserRepo(existing)
		auth := newAuthCommands(repo, &stubKakaoClient{profile: &commands.KakaoProfile{ID: 12345, Email: "linked@example.com", Nickname: "하늘"}})

		result, err := auth.KakaoCallback(ctx, "auth-code")

		require.NoError(t, err)
		assert.Equal(t, existing.ID(), result.UserID)
		assert.Empty(t, repo.created)
	})

	t.Run("first login provisions an account", func(t *testing.T) {
		repo := newStubUserRepo()
		auth := newAuthCommands(repo, &stubKakaoClient{profile: &commands.KakaoProfile{ID: 98765, Email: "new@example.com", Nickname: "하늘"}})

		result, err := auth.KakaoCallback(ctx, "auth-code")

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		created := repo.created[0]
		assert.Equal(t, created.ID(), result.UserID)
		require.NotNil(t, created.KakaoID())
		assert.Equal(t, int64(98765), *created.KakaoID())
		assert.Equal(t, user.RoleUser, created.Role())
	})

	t.Run("profile without email gets a synthetic address", func(t *testing.T) {
		repo := newStubUserRepo()
		auth := newAuthCommands(repo, &stubKakaoClient{profile: &commands.KakaoProfile{ID: 555, Nickname: "하늘"}})

		_, err := auth.KakaoCallback(ctx, "auth-code")

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "kakao_555@kakao.local", repo.created[0].Email().Value())
	})

	t.Run("email collision links the existing account", func(t *testing.T) {
		existing := seedUser(t, "fan@example.com", "secret1234")
		repo := newStubUserRepo(existing)
		repo.createErr = repoDuplicate("users_email_key")
		auth := newAuthCommands(repo, &stubKakaoClient{profile: &commands.KakaoProfile{ID: 777, Email: "fan@example.com", Nickname: "하늘"}})

		result, err := auth.KakaoCallback(ctx, "auth-code")

		require.NoError(t, err)
		assert.Equal(t, existing.ID(), result.UserID)
		require.NotNil(t, existing.KakaoID())
		assert.Equal(t, int64(777), *existing.KakaoID())
		require.Len(t, repo.updated, 1)
		assert.Equal(t, existing.ID(), repo.updated[0].ID())
	})

	t.Run("code exchange failure", func(t *testing.T) {
		auth := newAuthCommands(newStubUserRepo(), &stubKakaoClient{exchangeErr: assert.AnError})

		_, err := auth.KakaoCallback(ctx, "bad-code")

		require.ErrorIs(t, err, commands.ErrKakaoAuthFailed)
	})
}
