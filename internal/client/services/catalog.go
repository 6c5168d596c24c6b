package services

import (
	"context"

	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

type catalogAPI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, req models.AddCategoryRequest) error
	UpdateCategory(ctx context.Context, categoryID string, req models.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, categoryID string) error
	Products(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, req models.AddProductRequest) error
	UpdateProduct(ctx context.Context, productID string, req models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID string) error
}

// CatalogService serves category and product lists through the invalidate-
// and-refetch cache. Every mutation drops the affected list so the next
// read hits the backend.
type CatalogService struct {
	api   catalogAPI
	cache *cache.Store
	log   logging.Logger
}

func NewCatalogService(api catalogAPI, cache *cache.Store, log logging.Logger) *CatalogService {
	return &CatalogService{api: api, cache: cache, log: log}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	if v, ok := s.cache.Get(cache.KeyCategories); ok {
		return v.([]models.Category), nil
	}
	list, err := s.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeyCategories, list)
	return list, nil
}

func (s *CatalogService) AddCategory(ctx context.Context, form models.CategoryForm) error {
	if err := s.api.AddCategory(ctx, form.AddRequest()); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyCategories)
	return nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID string, form models.CategoryForm) error {
	if err := s.api.UpdateCategory(ctx, categoryID, form.UpdateRequest(categoryID)); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyCategories)
	return nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.api.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}
	// products embed their category; a stale product list would show it
	s.cache.Invalidate(cache.KeyCategories, cache.KeyProducts)
	return nil
}

func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	if v, ok := s.cache.Get(cache.KeyProducts); ok {
		return v.([]models.Product), nil
	}
	list, err := s.api.Products(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeyProducts, list)
	return list, nil
}

func (s *CatalogService) AddProduct(ctx context.Context, form models.ProductForm) error {
	if err := s.api.AddProduct(ctx, form.AddRequest()); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyProducts)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, form models.ProductForm) error {
	if err := s.api.UpdateProduct(ctx, productID, form.UpdateRequest(productID)); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyProducts)
	return nil
}

// SetProductStatus flips the availability flag on its own; the other
// fields are omitted from the payload.
func (s *CatalogService) SetProductStatus(ctx context.Context, productID, status string) error {
	req := models.UpdateProductRequest{ProductID: productID, Status: status}
	if err := s.api.UpdateProduct(ctx, productID, req); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyProducts)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyProducts)
	return nil
}
