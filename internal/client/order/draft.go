// Package order implements client-side order composition: line items are
// accumulated in memory with a running total until the whole draft is
// submitted as one bill. All money arithmetic uses decimal values; repeated
// add/remove cycles must not drift.
package order

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

// Errors returned by draft operations.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrLineNotFound     = errors.New("line item not found")
	ErrEmptyDraft       = errors.New("order has no line items")
)

// LineItem is one product+quantity entry in an in-progress order. The JSON
// shape matches what the backend stores in a bill's productDetails string,
// so the bill-details view can parse it back.
type LineItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity string          `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// Customer holds the order form's customer fields.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Selection is one add-line input: the chosen category, product, and the
// quantity exactly as typed.
type Selection struct {
	CategoryID int
	ProductID  int
	Quantity   string
}

// Option is one entry of the cascading product dropdown.
type Option struct {
	ID   int
	Name string
}

// Draft is the full in-progress order, held only in memory until submit.
type Draft struct {
	ID            uuid.UUID
	Customer      Customer
	PaymentMethod string

	lines []LineItem
	total decimal.Decimal
}

func NewDraft() *Draft {
	return &Draft{ID: uuid.New()}
}

// AddLine validates the selection against the currently loaded category and
// product lists, computes the line total, and appends a new line item with
// the next sequence id. The running total grows by the line total. A product
// or category missing from the loaded lists is a lookup failure; no line is
// added.
func (d *Draft) AddLine(categories []models.Category, products []models.Product, sel Selection) (LineItem, error) {
	var product *models.Product
	for i := range products {
		if products[i].ProductID == sel.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return LineItem{}, ErrProductNotFound
	}

	var category *models.Category
	for i := range categories {
		if categories[i].CategoryID == sel.CategoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return LineItem{}, ErrCategoryNotFound
	}

	qty, err := strconv.Atoi(strings.TrimSpace(sel.Quantity))
	if err != nil || qty <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}

	lineTotal := product.ProductPrice.Mul(decimal.NewFromInt(int64(qty)))
	line := LineItem{
		ID:       d.nextID(),
		Name:     product.ProductName,
		Category: category.CategoryTitle,
		Quantity: strconv.Itoa(qty),
		Price:    product.ProductPrice,
		Total:    lineTotal,
	}

	d.lines = append(d.lines, line)
	d.total = d.total.Add(lineTotal)
	return line, nil
}

// RemoveLine deletes the matching line and shrinks the running total by that
// line's own stored price × quantity — never by whatever the selection form
// currently holds, which avoids stale-input drift.
func (d *Draft) RemoveLine(id int) error {
	for i, line := range d.lines {
		if line.ID != id {
			continue
		}
		qty, err := strconv.Atoi(line.Quantity)
		if err != nil {
			return ErrInvalidQuantity
		}
		d.total = d.total.Sub(line.Price.Mul(decimal.NewFromInt(int64(qty))))
		d.lines = append(d.lines[:i], d.lines[i+1:]...)
		return nil
	}
	return ErrLineNotFound
}

// Lines returns a copy of the accumulated line items in insertion order.
func (d *Draft) Lines() []LineItem {
	out := make([]LineItem, len(d.lines))
	copy(out, d.lines)
	return out
}

// Total is the current running total.
func (d *Draft) Total() decimal.Decimal {
	return d.total
}

func (d *Draft) Empty() bool {
	return len(d.lines) == 0
}

// Reset clears the customer form, the line items, and the running total.
func (d *Draft) Reset() {
	d.Customer = Customer{}
	d.PaymentMethod = ""
	d.lines = nil
	d.total = decimal.Decimal{}
}

// MarshalLines serializes the line items the way the bill payload embeds
// them: as a JSON string field.
func (d *Draft) MarshalLines() (string, error) {
	if len(d.lines) == 0 {
		return "", ErrEmptyDraft
	}
	b, err := json.Marshal(d.lines)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// nextID is max(existing ids)+1, or 1 for an empty draft. Ids therefore stay
// unique even after removals.
func (d *Draft) nextID() int {
	next := 1
	for _, line := range d.lines {
		if line.ID >= next {
			next = line.ID + 1
		}
	}
	return next
}

// CascadeFilter restricts the product options to those belonging to the
// chosen category. Recompute it whenever the source lists change.
func CascadeFilter(products []models.Product, categoryID int) []Option {
	var out []Option
	for _, p := range products {
		if p.Category.CategoryID == categoryID {
			out = append(out, Option{ID: p.ProductID, Name: p.ProductName})
		}
	}
	return out
}

// UnitPrice answers the price autofill for a selected product.
func UnitPrice(products []models.Product, productID int) (decimal.Decimal, bool) {
	for _, p := range products {
		if p.ProductID == productID {
			return p.ProductPrice, true
		}
	}
	return decimal.Decimal{}, false
}

// ParseLineItems decodes a bill's productDetails string back into line
// items, as the bill-details view does.
func ParseLineItems(serialized string) ([]LineItem, error) {
	var out []LineItem
	if err := json.Unmarshal([]byte(serialized), &out); err != nil {
		return nil, err
	}
	return out, nil
}
