package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

// Products lists the products page by page and, for admins, offers the
// add/update/status/delete actions.
func (a *App) Products(ctx context.Context) error {
	products, err := a.catalog.Products(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(products) == 0 {
		printlnFn("No products yet.")
	} else {
		size := choosePageSize(a.reader, os.Stdout)
		showPaged(a.reader, os.Stdout, len(products), size, func(from, to int) {
			for _, p := range products[from:to] {
				state := "active"
				if p.Status != models.StatusActive {
					state = "inactive"
				}
				fmt.Fprintf(os.Stdout, "%4d  %-24s %-16s %8s  %s\n",
					p.ProductID, p.ProductName, p.Category.CategoryTitle, p.ProductPrice.String(), state)
			}
		})
	}

	if !a.isAdmin() {
		return nil
	}

	action, err := getSimpleText(a.reader, "Action: add, update, status, delete (Enter to go back)", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "":
		return nil
	case "add":
		return a.addProduct(ctx)
	case "update":
		return a.updateProduct(ctx)
	case "status":
		return a.toggleProductStatus(ctx)
	case "delete":
		return a.deleteProduct(ctx)
	default:
		printlnFn("Unknown action:", action)
		return nil
	}
}

// productForm collects the product fields, offering a Cloudinary upload for
// the picture when a local path is entered.
func (a *App) productForm(ctx context.Context) (models.ProductForm, error) {
	var form models.ProductForm

	name, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return form, err
	}
	if name == "" {
		printlnFn("Product name is required.")
		return form, errRequiredField
	}
	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return form, err
	}
	price, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return form, err
	}
	if price == "" {
		printlnFn("Product price is required.")
		return form, errRequiredField
	}
	categoryID, err := getSimpleText(a.reader, "Enter category id", os.Stdout)
	if err != nil {
		return form, err
	}
	if categoryID == "" {
		printlnFn("Category is required.")
		return form, errRequiredField
	}

	picture, err := getSimpleText(a.reader, "Picture file path (Enter to skip)", os.Stdout)
	if err != nil {
		return form, err
	}
	if picture != "" {
		url, err := a.uploader.Upload(ctx, picture)
		if err != nil {
			printlnFn(err.Error())
			return form, err
		}
		form.PictureURL = url
	}

	form.Name = name
	form.Description = description
	form.Price = price
	form.CategoryID = categoryID
	form.Availability = "true"
	form.Status = models.StatusActive
	return form, nil
}

func (a *App) addProduct(ctx context.Context) error {
	form, err := a.productForm(ctx)
	if err != nil {
		return err
	}
	if err := a.catalog.AddProduct(ctx, form); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Product added.")
	return nil
}

func (a *App) updateProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}
	form, err := a.productForm(ctx)
	if err != nil {
		return err
	}
	if err := a.catalog.UpdateProduct(ctx, id, form); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Product updated.")
	return nil
}

func (a *App) toggleProductStatus(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "New status (active/inactive)", os.Stdout)
	if err != nil {
		return err
	}

	wire := models.StatusActive
	if status == "inactive" {
		wire = models.StatusInactive
	}
	if err := a.catalog.SetProductStatus(ctx, id, wire); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Product status updated.")
	return nil
}

func (a *App) deleteProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.catalog.DeleteProduct(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Product deleted.")
	return nil
}
