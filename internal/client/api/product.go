package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, call{method: http.MethodGet, path: "/product/get"}, &out)
	return out, err
}

func (c *Client) AddProduct(ctx context.Context, req models.AddProductRequest) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/product/add",
		body:   req,
	}, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, req models.UpdateProductRequest) error {
	return c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/product/update",
		query:    url.Values{"productId": {productID}},
		body:     req,
		fallback: msgMutateFailure,
	}, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/product/delete",
		query:    url.Values{"productId": {productID}},
		fallback: msgMutateFailure,
	}, nil)
}
