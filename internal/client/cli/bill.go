package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/client/order"
	"github.com/Venkatesh1410/smartbill/internal/common"
)

// Bills lists the bill history page by page and offers the show, download,
// and delete actions.
func (a *App) Bills(ctx context.Context) error {
	bills, err := a.billing.Bills(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(bills) == 0 {
		printlnFn("No bills yet.")
		return nil
	}

	size := choosePageSize(a.reader, os.Stdout)
	showPaged(a.reader, os.Stdout, len(bills), size, func(from, to int) {
		for _, b := range bills[from:to] {
			fmt.Fprintf(os.Stdout, "%4d  %-24s %-12s %8s  %s\n",
				b.BillID, b.CustomerName, b.PaymentMethod, b.TotalAmount, b.BillUUID)
		}
	})

	action, err := getSimpleText(a.reader, "Action: show, download, delete (Enter to go back)", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "":
		return nil
	case "show":
		return a.showBill(bills)
	case "download":
		return a.downloadBill(ctx, bills)
	case "delete":
		return a.deleteBill(ctx)
	default:
		printlnFn("Unknown action:", action)
		return nil
	}
}

// showBill prints one bill's line items decoded from its embedded details.
func (a *App) showBill(bills []models.Bill) error {
	bill, err := a.pickBill(bills)
	if err != nil {
		return err
	}

	lines, err := order.ParseLineItems(bill.ProductDetails)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	fmt.Fprintf(os.Stdout, "%s <%s> %s, paid by %s\n",
		bill.CustomerName, bill.CustomerEmail, bill.ContactNumber, bill.PaymentMethod)
	for _, l := range lines {
		fmt.Fprintf(os.Stdout, "%4d  %-24s x%-4s %8s  %s\n",
			l.ID, l.Name, l.Quantity, l.Price.String(), l.Total.String())
	}
	fmt.Fprintf(os.Stdout, "Total: %s\n", bill.TotalAmount)
	return nil
}

// downloadBill re-generates the report for a stored bill.
func (a *App) downloadBill(ctx context.Context, bills []models.Bill) error {
	bill, err := a.pickBill(bills)
	if err != nil {
		return err
	}

	if _, err := a.billing.Download(ctx, bill); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Report generated:", bill.BillUUID)
	return nil
}

func (a *App) deleteBill(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter bill id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.billing.Delete(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Bill deleted.")
	return nil
}

func (a *App) pickBill(bills []models.Bill) (models.Bill, error) {
	answer, err := getSimpleText(a.reader, "Enter bill id", os.Stdout)
	if err != nil {
		return models.Bill{}, err
	}
	id, err := strconv.Atoi(answer)
	if err != nil {
		printlnFn("Invalid bill id.")
		return models.Bill{}, err
	}
	for _, b := range bills {
		if b.BillID == id {
			return b, nil
		}
	}
	printlnFn("Bill not found:", answer)
	return models.Bill{}, common.ErrNotFound
}
