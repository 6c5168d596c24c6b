package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

type fakeUserAPI struct {
	users      []models.User
	err        error
	fetchCalls int
	updatedID  string
	updated    models.UpdateUserRequest
}

func (f *fakeUserAPI) Users(context.Context) ([]models.User, error) {
	f.fetchCalls++
	return f.users, f.err
}

func (f *fakeUserAPI) UpdateUser(_ context.Context, userID string, req models.UpdateUserRequest) error {
	f.updatedID = userID
	f.updated = req
	return f.err
}

type fakeDashboardAPI struct {
	details    models.DashboardDetails
	fetchCalls int
}

func (f *fakeDashboardAPI) DashboardDetails(context.Context) (models.DashboardDetails, error) {
	f.fetchCalls++
	return f.details, nil
}

func TestUsers_CachedAfterFirstFetch(t *testing.T) {
	fake := &fakeUserAPI{users: []models.User{{UserID: 1, UserName: "Asha"}}}
	svc := NewUserService(fake, cache.New(), logging.NewDefault("error"))
	ctx := context.Background()

	_, err := svc.Users(ctx)
	require.NoError(t, err)
	_, err = svc.Users(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, fake.fetchCalls)
}

func TestSetStatus_SendsStringifiedBoolean(t *testing.T) {
	fake := &fakeUserAPI{}
	store := cache.New()
	store.Set(cache.KeyUsers, []models.User{})
	svc := NewUserService(fake, store, logging.NewDefault("error"))
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, "4", true))
	require.Equal(t, "4", fake.updatedID)
	require.Equal(t, "true", fake.updated.Status)

	_, ok := store.Get(cache.KeyUsers)
	require.False(t, ok)

	require.NoError(t, svc.SetStatus(ctx, "4", false))
	require.Equal(t, "false", fake.updated.Status)
}

func TestDashboardDetails_Cached(t *testing.T) {
	fake := &fakeDashboardAPI{details: models.DashboardDetails{Categories: 2, Products: 5, Bills: 9}}
	svc := NewDashboardService(fake, cache.New(), logging.NewDefault("error"))
	ctx := context.Background()

	d, err := svc.Details(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, d.Categories)

	_, err = svc.Details(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, fake.fetchCalls)
}
