package session

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Venkatesh1410/smartbill/internal/client/storage"
	"github.com/Venkatesh1410/smartbill/internal/logging"

	_ "modernc.org/sqlite"
)

func setupManager(t *testing.T) (*Manager, storage.Repository) {
	t.Helper()
	db, err := storage.Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := storage.NewSQLiteRepository(db)
	m := NewManager(repo, logging.NewDefault("error"))
	require.NoError(t, m.Init(context.Background()))
	return m, repo
}

func TestCurrent_NoToken(t *testing.T) {
	m, _ := setupManager(t)
	s, expired := m.Current(context.Background())
	require.Nil(t, s)
	require.True(t, expired)
}

func TestLoginCurrent_ValidToken(t *testing.T) {
	m, repo := setupManager(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)
	token := signedToken(t, "a@b.com", "USER", time.Now(), exp)

	require.NoError(t, m.Login(ctx, token, exp.Unix()))

	s, expired := m.Current(ctx)
	require.False(t, expired)
	require.NotNil(t, s)
	require.Equal(t, "a@b.com", s.Subject)
	require.Equal(t, "USER", s.Role)

	stored, err := repo.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, token, stored)

	storedExp, err := repo.Get(ctx, storage.KeyTokenExpirationTime)
	require.NoError(t, err)
	require.NotEmpty(t, storedExp)
}

func TestLogin_DerivesExpiryFromClaim(t *testing.T) {
	m, repo := setupManager(t)
	ctx := context.Background()
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signedToken(t, "a@b.com", "USER", time.Now(), exp)

	require.NoError(t, m.Login(ctx, token, 0))

	storedExp, err := repo.Get(ctx, storage.KeyTokenExpirationTime)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(exp.Unix(), 10), storedExp)
}

func TestCurrent_ExpiredToken(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	token := signedToken(t, "a@b.com", "USER", time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))

	require.NoError(t, m.Login(ctx, token, 0))

	s, expired := m.Current(ctx)
	require.True(t, expired)
	require.NotNil(t, s, "claims remain readable even when expired")
}

func TestCurrent_MalformedStoredToken(t *testing.T) {
	m, repo := setupManager(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, storage.KeyToken, "garbage"))
	require.NoError(t, m.Init(ctx))

	s, expired := m.Current(ctx)
	require.Nil(t, s)
	require.True(t, expired)
}

func TestLogout_Idempotent(t *testing.T) {
	m, repo := setupManager(t)
	ctx := context.Background()
	token := signedToken(t, "a@b.com", "USER", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, m.Login(ctx, token, 0))

	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx), "second logout must not fail")

	stored, err := repo.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Empty(t, stored)

	require.Empty(t, m.BearerToken(ctx))
}

func TestExpireIfNeeded_TransitionForcesLogout(t *testing.T) {
	m, repo := setupManager(t)
	ctx := context.Background()
	token := signedToken(t, "a@b.com", "USER", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, m.Login(ctx, token, 0))

	// Not expired yet: nothing happens.
	require.False(t, m.expireIfNeeded(ctx))

	// Move the clock past exp.
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	require.True(t, m.expireIfNeeded(ctx))

	stored, err := repo.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Empty(t, stored, "expiry must clear durable storage")

	// Already logged out: no repeated transition.
	require.False(t, m.expireIfNeeded(ctx))
}
