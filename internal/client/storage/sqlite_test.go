package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestGet_MissingKeyReturnsEmpty(t *testing.T) {
	r := setupRepo(t)
	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSetGet_Upsert(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "tok-1"))
	require.NoError(t, r.Set(ctx, KeyToken, "tok-2"))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-2", v)
}

func TestSetMany_WritesAllPairs(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string]string{
		KeyToken:               "tok",
		KeyTokenExpirationTime: "1700000000",
	}))

	tok, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok", tok)

	exp, err := r.Get(ctx, KeyTokenExpirationTime)
	require.NoError(t, err)
	require.Equal(t, "1700000000", exp)
}

func TestDelete_AbsentKeysAreFine(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "tok"))
	require.NoError(t, r.Delete(ctx, KeyToken, KeyTokenExpirationTime))
	// Second delete of already-absent keys must not fail.
	require.NoError(t, r.Delete(ctx, KeyToken, KeyTokenExpirationTime))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestClear(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", "1"))
	require.NoError(t, r.Set(ctx, "b", "2"))
	require.NoError(t, r.Clear(ctx))

	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	require.Empty(t, v)
}
