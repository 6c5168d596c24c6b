package cli

import (
	"context"
	"fmt"
	"os"
)

// Dashboard prints the category, product, and bill counts.
func (a *App) Dashboard(ctx context.Context) error {
	details, err := a.dashboard.Details(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	fmt.Fprintf(os.Stdout, "Categories: %d\nProducts:   %d\nBills:      %d\n",
		details.Categories, details.Products, details.Bills)
	return nil
}
