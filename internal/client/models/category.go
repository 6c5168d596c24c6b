// Package models defines the wire types exchanged with the Smart Bill
// backend. Field names follow the backend's JSON contract exactly.
package models

// Category groups products on the menu.
type Category struct {
	CategoryID          int    `json:"categoryId"`
	CategoryTitle       string `json:"categoryTitle"`
	CategoryDescription string `json:"categoryDescription"`
}

// AddCategoryRequest is the payload for POST /category/add.
type AddCategoryRequest struct {
	CategoryTitle       string `json:"categoryTitle"`
	CategoryDescription string `json:"categoryDescription"`
}

// UpdateCategoryRequest is the payload for PATCH /category/update.
// The target id travels both in the query string and in the body,
// as the backend expects.
type UpdateCategoryRequest struct {
	CategoryID          string `json:"categoryId"`
	CategoryTitle       string `json:"categoryTitle,omitempty"`
	CategoryDescription string `json:"categoryDescription,omitempty"`
}

// CategoryForm is the shared form state behind the add and update category
// flows. Each flow maps it to its own request type.
type CategoryForm struct {
	Title       string
	Description string
}

func (f CategoryForm) AddRequest() AddCategoryRequest {
	return AddCategoryRequest{CategoryTitle: f.Title, CategoryDescription: f.Description}
}

func (f CategoryForm) UpdateRequest(categoryID string) UpdateCategoryRequest {
	return UpdateCategoryRequest{
		CategoryID:          categoryID,
		CategoryTitle:       f.Title,
		CategoryDescription: f.Description,
	}
}
