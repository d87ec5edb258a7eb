package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/user"
	"github.com/example/gostorefront/internal/repository/mysql"
)

func newUserService(t *testing.T) (*UserService, func() int64) {
	t.Helper()
	db := newTestDB(t)
	svc := NewUserService(mysql.NewUserRepository(db), &config.JWTConfig{Secret: "test-secret"})
	count := func() int64 {
		var n int64
		require.NoError(t, db.Model(&user.User{}).Count(&n).Error)
		return n
	}
	return svc, count
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Register(testCtx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.NotEqual(t, "secret123", u.PasswordHash, "plaintext must never be stored")

	got, token, err := svc.Login(testCtx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, count := newUserService(t)

	_, err := svc.Register(testCtx, "alice", "dup@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(testCtx, "bob", "dup@example.com", "other456")
	require.ErrorIs(t, err, ErrEmailTaken)
	require.EqualValues(t, 1, count(), "failed registration must not create a row")
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(testCtx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(testCtx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(testCtx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
