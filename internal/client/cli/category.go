package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

// Categories lists the categories page by page and, for admins, offers the
// add/update/delete actions.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(categories) == 0 {
		printlnFn("No categories yet.")
	} else {
		size := choosePageSize(a.reader, os.Stdout)
		showPaged(a.reader, os.Stdout, len(categories), size, func(from, to int) {
			for _, c := range categories[from:to] {
				fmt.Fprintf(os.Stdout, "%4d  %-24s %s\n", c.CategoryID, c.CategoryTitle, c.CategoryDescription)
			}
		})
	}

	if !a.isAdmin() {
		return nil
	}

	action, err := getSimpleText(a.reader, "Action: add, update, delete (Enter to go back)", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "":
		return nil
	case "add":
		return a.addCategory(ctx)
	case "update":
		return a.updateCategory(ctx)
	case "delete":
		return a.deleteCategory(ctx)
	default:
		printlnFn("Unknown action:", action)
		return nil
	}
}

func (a *App) categoryForm() (models.CategoryForm, error) {
	var form models.CategoryForm

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return form, err
	}
	if title == "" {
		printlnFn("Category title is required.")
		return form, errRequiredField
	}
	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return form, err
	}

	form.Title = title
	form.Description = description
	return form, nil
}

func (a *App) addCategory(ctx context.Context) error {
	form, err := a.categoryForm()
	if err != nil {
		return err
	}
	if err := a.catalog.AddCategory(ctx, form); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Category added.")
	return nil
}

func (a *App) updateCategory(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter category id", os.Stdout)
	if err != nil {
		return err
	}
	form, err := a.categoryForm()
	if err != nil {
		return err
	}
	if err := a.catalog.UpdateCategory(ctx, id, form); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Category updated.")
	return nil
}

func (a *App) deleteCategory(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter category id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.catalog.DeleteCategory(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Category deleted.")
	return nil
}
