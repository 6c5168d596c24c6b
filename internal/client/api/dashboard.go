package api

import (
	"context"
	"net/http"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

func (c *Client) DashboardDetails(ctx context.Context) (models.DashboardDetails, error) {
	var out models.DashboardDetails
	err := c.do(ctx, call{method: http.MethodGet, path: "/dashboard/details"}, &out)
	return out, err
}
