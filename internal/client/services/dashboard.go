package services

import (
	"context"

	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

type dashboardAPI interface {
	DashboardDetails(ctx context.Context) (models.DashboardDetails, error)
}

// DashboardService serves the landing counts.
type DashboardService struct {
	api   dashboardAPI
	cache *cache.Store
	log   logging.Logger
}

func NewDashboardService(api dashboardAPI, cache *cache.Store, log logging.Logger) *DashboardService {
	return &DashboardService{api: api, cache: cache, log: log}
}

func (s *DashboardService) Details(ctx context.Context) (models.DashboardDetails, error) {
	if v, ok := s.cache.Get(cache.KeyDashboard); ok {
		return v.(models.DashboardDetails), nil
	}
	details, err := s.api.DashboardDetails(ctx)
	if err != nil {
		return models.DashboardDetails{}, err
	}
	s.cache.Set(cache.KeyDashboard, details)
	return details, nil
}
