package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/client/order"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

type billingAPI interface {
	Bills(ctx context.Context) ([]models.Bill, error)
	GenerateReport(ctx context.Context, req models.GenerateBillRequest) (json.RawMessage, error)
	DeleteBill(ctx context.Context, billID string) error
}

// BillingService submits order drafts and serves the bill history.
type BillingService struct {
	api   billingAPI
	cache *cache.Store
	log   logging.Logger
	now   func() time.Time
}

func NewBillingService(api billingAPI, cache *cache.Store, log logging.Logger) *BillingService {
	return &BillingService{api: api, cache: cache, log: log, now: time.Now}
}

func (s *BillingService) Bills(ctx context.Context) ([]models.Bill, error) {
	if v, ok := s.cache.Get(cache.KeyBills); ok {
		return v.([]models.Bill), nil
	}
	list, err := s.api.Bills(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeyBills, list)
	return list, nil
}

// Submit turns the draft into a generate-report call. The draft is reset
// whether the call succeeds or fails, so a retry starts from a blank order.
func (s *BillingService) Submit(ctx context.Context, draft *order.Draft) error {
	defer draft.Reset()

	details, err := draft.MarshalLines()
	if err != nil {
		return err
	}
	req := models.GenerateBillRequest{
		FileName:       "BILL-" + s.now().UTC().Format(time.RFC3339),
		CustomerName:   draft.Customer.Name,
		CustomerEmail:  draft.Customer.Email,
		ContactNumber:  draft.Customer.Phone,
		PaymentMethod:  draft.PaymentMethod,
		TotalAmount:    draft.Total().String(),
		ProductDetails: details,
		IsGenerated:    "true",
	}
	if _, err := s.api.GenerateReport(ctx, req); err != nil {
		return err
	}
	s.log.Info(ctx, "order submitted", "draft_id", draft.ID, "total", req.TotalAmount)
	s.cache.Invalidate(cache.KeyBills, cache.KeyDashboard)
	return nil
}

// Download re-generates the report for an already persisted bill. The
// payload mirrors the stored record with the uuid and generation marker
// blanked, so the backend produces a fresh document for the same data.
func (s *BillingService) Download(ctx context.Context, bill models.Bill) (json.RawMessage, error) {
	req := models.GenerateBillRequest{
		CustomerName:   bill.CustomerName,
		CustomerEmail:  bill.CustomerEmail,
		ContactNumber:  bill.ContactNumber,
		PaymentMethod:  bill.PaymentMethod,
		TotalAmount:    bill.TotalAmount,
		ProductDetails: bill.ProductDetails,
		IsGenerated:    "",
	}
	return s.api.GenerateReport(ctx, req)
}

func (s *BillingService) Delete(ctx context.Context, billID string) error {
	if err := s.api.DeleteBill(ctx, billID); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyBills, cache.KeyDashboard)
	return nil
}
