package models

import "github.com/shopspring/decimal"

// Product statuses as serialized by the backend.
const (
	StatusActive   = "true"
	StatusInactive = "false"
)

// Product is a menu item belonging to one category. Prices travel as
// decimal strings on the wire; decimal.Decimal accepts both quoted and
// bare numbers and marshals back as a quoted string.
type Product struct {
	ProductID           int             `json:"productId"`
	ProductName         string          `json:"productName"`
	ProductDescription  string          `json:"productDescription"`
	ProductPic          string          `json:"productPic"`
	ProductPrice        decimal.Decimal `json:"productPrice"`
	ProductAvailability bool            `json:"productAvailability"`
	Status              string          `json:"status"`
	Category            Category        `json:"category"`
}

// AddProductRequest is the payload for POST /product/add.
type AddProductRequest struct {
	ProductName         string `json:"productName"`
	ProductDescription  string `json:"productDescription"`
	ProductPic          string `json:"productPic"`
	ProductPrice        string `json:"productPrice"`
	ProductAvailability string `json:"productAvailability"`
	Status              string `json:"status"`
	CategoryID          string `json:"categoryId"`
}

// UpdateProductRequest is the payload for PATCH /product/update.
type UpdateProductRequest struct {
	ProductID           string `json:"productId"`
	ProductName         string `json:"productName,omitempty"`
	ProductDescription  string `json:"productDescription,omitempty"`
	ProductPic          string `json:"productPic,omitempty"`
	ProductPrice        string `json:"productPrice,omitempty"`
	ProductAvailability string `json:"productAvailability,omitempty"`
	Status              string `json:"status,omitempty"`
	CategoryID          string `json:"categoryId,omitempty"`
}

// ProductForm is the shared form state behind the add and update product
// flows. The two request payloads differ only in the product id, so the
// form maps explicitly to each instead of mutating one loose object.
type ProductForm struct {
	Name         string
	Description  string
	PictureURL   string
	Price        string
	Availability string // "true" / "false"
	Status       string // "true" / "false"
	CategoryID   string
}

func (f ProductForm) AddRequest() AddProductRequest {
	return AddProductRequest{
		ProductName:         f.Name,
		ProductDescription:  f.Description,
		ProductPic:          f.PictureURL,
		ProductPrice:        f.Price,
		ProductAvailability: f.Availability,
		Status:              f.Status,
		CategoryID:          f.CategoryID,
	}
}

func (f ProductForm) UpdateRequest(productID string) UpdateProductRequest {
	return UpdateProductRequest{
		ProductID:           productID,
		ProductName:         f.Name,
		ProductDescription:  f.Description,
		ProductPic:          f.PictureURL,
		ProductPrice:        f.Price,
		ProductAvailability: f.Availability,
		Status:              f.Status,
		CategoryID:          f.CategoryID,
	}
}
