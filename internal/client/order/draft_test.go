package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

func fixtureCatalog() ([]models.Category, []models.Product) {
	c1 := models.Category{CategoryID: 1, CategoryTitle: "Coffee"}
	c2 := models.Category{CategoryID: 2, CategoryTitle: "Snacks"}
	p1 := models.Product{
		ProductID: 10, ProductName: "Latte",
		ProductPrice: decimal.NewFromInt(50), Category: c1,
	}
	p2 := models.Product{
		ProductID: 20, ProductName: "Muffin",
		ProductPrice: decimal.NewFromInt(30), Category: c2,
	}
	return []models.Category{c1, c2}, []models.Product{p1, p2}
}

func TestAddRemove_RunningTotal(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()

	l1, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 10, Quantity: "2"})
	require.NoError(t, err)
	require.Equal(t, 1, l1.ID)
	require.Equal(t, "100", l1.Total.String())

	l2, err := d.AddLine(cats, prods, Selection{CategoryID: 2, ProductID: 20, Quantity: "1"})
	require.NoError(t, err)
	require.Equal(t, 2, l2.ID)

	require.Equal(t, "130", d.Total().String())

	require.NoError(t, d.RemoveLine(l1.ID))
	require.Equal(t, "30", d.Total().String())
	require.Len(t, d.Lines(), 1)
}

func TestAddLine_UnknownProduct(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()

	_, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 999, Quantity: "1"})
	require.ErrorIs(t, err, ErrProductNotFound)
	require.True(t, d.Empty(), "failed lookup must not add a line")
	require.True(t, d.Total().IsZero())
}

func TestAddLine_UnknownCategory(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()

	_, err := d.AddLine(cats, prods, Selection{CategoryID: 999, ProductID: 10, Quantity: "1"})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestAddLine_QuantityValidation(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()

	for _, qty := range []string{"", "0", "-1", "two", "1.5"} {
		_, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 10, Quantity: qty})
		require.ErrorIs(t, err, ErrInvalidQuantity, "quantity %q", qty)
	}
}

func TestLineIDs_MonotonicAfterRemoval(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()

	a, _ := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 10, Quantity: "1"})
	b, _ := d.AddLine(cats, prods, Selection{CategoryID: 2, ProductID: 20, Quantity: "1"})
	require.NoError(t, d.RemoveLine(a.ID))

	c, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 10, Quantity: "1"})
	require.NoError(t, err)
	require.Greater(t, c.ID, b.ID, "ids must not be reused after removal")
}

func TestRemoveLine_NotFound(t *testing.T) {
	d := NewDraft()
	require.ErrorIs(t, d.RemoveLine(1), ErrLineNotFound)
}

func TestRepeatedAddRemove_NoDrift(t *testing.T) {
	cats := []models.Category{{CategoryID: 1, CategoryTitle: "Coffee"}}
	price, err := decimal.NewFromString("3.10")
	require.NoError(t, err)
	prods := []models.Product{{ProductID: 1, ProductName: "Espresso", ProductPrice: price, Category: cats[0]}}

	d := NewDraft()
	for i := 0; i < 100; i++ {
		l, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 1, Quantity: "3"})
		require.NoError(t, err)
		require.NoError(t, d.RemoveLine(l.ID))
	}
	require.True(t, d.Total().IsZero(), "total drifted to %s", d.Total())
}

func TestMarshalLines_RoundTrip(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()
	_, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 10, Quantity: "2"})
	require.NoError(t, err)
	_, err = d.AddLine(cats, prods, Selection{CategoryID: 2, ProductID: 20, Quantity: "1"})
	require.NoError(t, err)

	serialized, err := d.MarshalLines()
	require.NoError(t, err)

	parsed, err := ParseLineItems(serialized)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	for i, want := range d.Lines() {
		require.Equal(t, want.ID, parsed[i].ID)
		require.Equal(t, want.Name, parsed[i].Name)
		require.Equal(t, want.Category, parsed[i].Category)
		require.Equal(t, want.Quantity, parsed[i].Quantity)
		require.True(t, want.Price.Equal(parsed[i].Price))
		require.True(t, want.Total.Equal(parsed[i].Total))
	}
}

func TestMarshalLines_EmptyDraft(t *testing.T) {
	d := NewDraft()
	_, err := d.MarshalLines()
	require.ErrorIs(t, err, ErrEmptyDraft)
}

func TestCascadeFilter(t *testing.T) {
	cats, prods := fixtureCatalog()
	_ = cats

	got := CascadeFilter(prods, 1)
	require.Equal(t, []Option{{ID: 10, Name: "Latte"}}, got)

	require.Empty(t, CascadeFilter(prods, 3))
}

func TestUnitPrice(t *testing.T) {
	_, prods := fixtureCatalog()

	price, ok := UnitPrice(prods, 20)
	require.True(t, ok)
	require.Equal(t, "30", price.String())

	_, ok = UnitPrice(prods, 999)
	require.False(t, ok)
}

func TestReset(t *testing.T) {
	cats, prods := fixtureCatalog()
	d := NewDraft()
	d.Customer = Customer{Name: "Jo", Email: "jo@x.com", Phone: "123"}
	d.PaymentMethod = "Cash"
	_, err := d.AddLine(cats, prods, Selection{CategoryID: 1, ProductID: 10, Quantity: "1"})
	require.NoError(t, err)

	d.Reset()
	require.True(t, d.Empty())
	require.True(t, d.Total().IsZero())
	require.Equal(t, Customer{}, d.Customer)
	require.Empty(t, d.PaymentMethod)
}
