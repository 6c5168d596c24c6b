package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/client/order"
)

// Order runs the order composition flow: customer details, a line editing
// loop with a running total, and the final submit that turns the draft into
// a bill. Cancelling or submitting always leaves the draft blank.
func (a *App) Order(ctx context.Context) error {
	draft := order.NewDraft()

	if err := a.orderCustomer(draft); err != nil {
		return err
	}

	for {
		action, err := getSimpleText(a.reader, "Order: add, remove, show, submit, cancel", os.Stdout)
		if err != nil {
			return err
		}

		switch action {
		case "add":
			if err := a.orderAddLine(ctx, draft); err != nil {
				continue
			}
			fmt.Fprintf(os.Stdout, "Total: %s\n", draft.Total().String())

		case "remove":
			id, err := getSimpleText(a.reader, "Enter line id to remove", os.Stdout)
			if err != nil {
				return err
			}
			lineID, err := strconv.Atoi(id)
			if err != nil {
				printlnFn("Invalid line id.")
				continue
			}
			if err := draft.RemoveLine(lineID); err != nil {
				printlnFn(err.Error())
				continue
			}
			fmt.Fprintf(os.Stdout, "Total: %s\n", draft.Total().String())

		case "show":
			a.orderShow(draft)

		case "submit":
			if draft.Empty() {
				printlnFn("Add at least one product before submitting.")
				continue
			}
			if err := a.billing.Submit(ctx, draft); err != nil {
				printlnFn(err.Error())
				return err
			}
			printlnFn("Bill generated.")
			return nil

		case "cancel":
			draft.Reset()
			printlnFn("Order cancelled.")
			return nil

		default:
			printlnFn("Unknown action:", action)
		}
	}
}

// orderCustomer collects the customer fields and the payment method, with
// each mandatory field rejected on the spot.
func (a *App) orderCustomer(draft *order.Draft) error {
	name, err := getSimpleText(a.reader, "Customer name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Customer name is required.")
		return errRequiredField
	}
	email, err := getSimpleText(a.reader, "Customer email", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		printlnFn("Customer email is required.")
		return errRequiredField
	}
	phone, err := getSimpleText(a.reader, "Contact number", os.Stdout)
	if err != nil {
		return err
	}
	if phone == "" {
		printlnFn("Contact number is required.")
		return errRequiredField
	}

	method, err := getSimpleText(a.reader, "Payment method (Cash, UPI, Card)", os.Stdout)
	if err != nil {
		return err
	}
	if !validPaymentMethod(method) {
		printlnFn("Payment method is required.")
		return errRequiredField
	}

	draft.Customer = order.Customer{Name: name, Email: email, Phone: phone}
	draft.PaymentMethod = method
	return nil
}

// orderAddLine walks the cascading category -> product -> quantity selection
// and appends the line. Errors are reported to the user and returned so the
// caller can skip the total print.
func (a *App) orderAddLine(ctx context.Context, draft *order.Draft) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	products, err := a.catalog.Products(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	for _, c := range categories {
		fmt.Fprintf(os.Stdout, "%4d  %s\n", c.CategoryID, c.CategoryTitle)
	}
	categoryID, err := a.promptInt("Enter category id")
	if err != nil {
		return err
	}

	options := order.CascadeFilter(products, categoryID)
	if len(options) == 0 {
		printlnFn("No products in this category.")
		return order.ErrCategoryNotFound
	}
	for _, o := range options {
		price, _ := order.UnitPrice(products, o.ID)
		fmt.Fprintf(os.Stdout, "%4d  %-24s %s\n", o.ID, o.Name, price.String())
	}
	productID, err := a.promptInt("Enter product id")
	if err != nil {
		return err
	}

	quantity, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
	if err != nil {
		return err
	}

	line, err := draft.AddLine(categories, products, order.Selection{
		CategoryID: categoryID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	fmt.Fprintf(os.Stdout, "Added %s x%s = %s\n", line.Name, line.Quantity, line.Total.String())
	return nil
}

func (a *App) orderShow(draft *order.Draft) {
	lines := draft.Lines()
	if len(lines) == 0 {
		printlnFn("Order is empty.")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(os.Stdout, "%4d  %-24s x%-4s %8s  %s\n",
			l.ID, l.Name, l.Quantity, l.Price.String(), l.Total.String())
	}
	fmt.Fprintf(os.Stdout, "Total: %s\n", draft.Total().String())
}

func (a *App) promptInt(prompt string) (int, error) {
	answer, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		printlnFn("Invalid id.")
		return 0, err
	}
	return n, nil
}

func validPaymentMethod(method string) bool {
	for _, m := range models.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
