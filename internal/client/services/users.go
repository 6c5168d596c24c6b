package services

import (
	"context"

	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

type userAPI interface {
	Users(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) error
}

// UserService lists accounts and toggles their active status. The backend
// exposes only non-admin accounts on the list endpoint; admin role checks
// happen at the command layer.
type UserService struct {
	api   userAPI
	cache *cache.Store
	log   logging.Logger
}

func NewUserService(api userAPI, cache *cache.Store, log logging.Logger) *UserService {
	return &UserService{api: api, cache: cache, log: log}
}

func (s *UserService) Users(ctx context.Context) ([]models.User, error) {
	if v, ok := s.cache.Get(cache.KeyUsers); ok {
		return v.([]models.User), nil
	}
	list, err := s.api.Users(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeyUsers, list)
	return list, nil
}

// SetStatus activates or deactivates the account. Status travels as a
// stringified boolean.
func (s *UserService) SetStatus(ctx context.Context, userID string, active bool) error {
	status := "false"
	if active {
		status = "true"
	}
	if err := s.api.UpdateUser(ctx, userID, models.UpdateUserRequest{Status: status}); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyUsers)
	return nil
}
