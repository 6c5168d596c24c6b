package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

func (c *Client) Bills(ctx context.Context) ([]models.Bill, error) {
	var out []models.Bill
	err := c.do(ctx, call{method: http.MethodGet, path: "/bill/getBills"}, &out)
	return out, err
}

// GenerateReport submits a bill payload and returns the raw report body
// (the backend's PDF-generation receipt) for the caller to inspect.
func (c *Client) GenerateReport(ctx context.Context, req models.GenerateBillRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/bill/generateReport",
		body:     req,
		fallback: msgMutateFailure,
	}, &out)
	return out, err
}

// DeleteBill removes a bill. Unlike the other resources, the backend takes
// the id as a path segment here.
func (c *Client) DeleteBill(ctx context.Context, billID string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/bill/delete/" + billID,
		fallback: msgMutateFailure,
	}, nil)
}
