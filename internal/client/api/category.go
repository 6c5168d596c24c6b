package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, call{method: http.MethodGet, path: "/category/get"}, &out)
	return out, err
}

func (c *Client) AddCategory(ctx context.Context, req models.AddCategoryRequest) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/category/add",
		body:   req,
	}, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID string, req models.UpdateCategoryRequest) error {
	return c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/category/update",
		query:    url.Values{"categoryId": {categoryID}},
		body:     req,
		fallback: msgMutateFailure,
	}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/category/delete",
		query:    url.Values{"categoryId": {categoryID}},
		fallback: msgMutateFailure,
	}, nil)
}
