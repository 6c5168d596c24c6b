package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/client/order"
	"github.com/Venkatesh1410/smartbill/internal/client/session"
)

// stubInputs replaces the interactive input seams with canned answers,
// consumed in order. The password seam returns pw for every prompt.
func stubInputs(t *testing.T, answers []string, pw string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", errors.New("no more input")
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(io.Writer) (string, error) {
		return pw, nil
	}
}

type stubAuth struct {
	session *session.Session
	err     error

	loginEmail  string
	loginPass   string
	signupReq   models.SignupRequest
	forgotEmail string
	loggedOut   bool
}

func (s *stubAuth) Login(_ context.Context, email, password string) error {
	s.loginEmail, s.loginPass = email, password
	return s.err
}

func (s *stubAuth) Signup(_ context.Context, req models.SignupRequest) error {
	s.signupReq = req
	return s.err
}

func (s *stubAuth) ForgotPassword(_ context.Context, email string) error {
	s.forgotEmail = email
	return s.err
}

func (s *stubAuth) Logout(context.Context) error {
	s.loggedOut = true
	return s.err
}

func (s *stubAuth) Current(context.Context) (*session.Session, bool) {
	return s.session, s.session == nil
}

type stubCatalog struct {
	categories []models.Category
	products   []models.Product
	err        error
}

func (s *stubCatalog) Categories(context.Context) ([]models.Category, error) {
	return s.categories, s.err
}
func (s *stubCatalog) AddCategory(context.Context, models.CategoryForm) error { return s.err }
func (s *stubCatalog) UpdateCategory(context.Context, string, models.CategoryForm) error {
	return s.err
}
func (s *stubCatalog) DeleteCategory(context.Context, string) error { return s.err }
func (s *stubCatalog) Products(context.Context) ([]models.Product, error) {
	return s.products, s.err
}
func (s *stubCatalog) AddProduct(context.Context, models.ProductForm) error { return s.err }
func (s *stubCatalog) UpdateProduct(context.Context, string, models.ProductForm) error {
	return s.err
}
func (s *stubCatalog) SetProductStatus(context.Context, string, string) error { return s.err }
func (s *stubCatalog) DeleteProduct(context.Context, string) error            { return s.err }

type stubBilling struct {
	bills     []models.Bill
	err       error
	submitted *order.Draft
}

func (s *stubBilling) Bills(context.Context) ([]models.Bill, error) { return s.bills, s.err }
func (s *stubBilling) Submit(_ context.Context, d *order.Draft) error {
	s.submitted = d
	if s.err != nil {
		d.Reset()
		return s.err
	}
	d.Reset()
	return nil
}
func (s *stubBilling) Download(context.Context, models.Bill) (json.RawMessage, error) {
	return json.RawMessage(`{}`), s.err
}
func (s *stubBilling) Delete(context.Context, string) error { return s.err }

func testApp(auth *stubAuth, catalog *stubCatalog, billing *stubBilling) *App {
	return &App{
		auth:    auth,
		catalog: catalog,
		billing: billing,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestLoginCommand_PassesCredentials(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"a@b.com"}, "secret")

	auth := &stubAuth{}
	app := testApp(auth, &stubCatalog{}, &stubBilling{})

	require.NoError(t, app.Login(context.Background()))
	require.Equal(t, "a@b.com", auth.loginEmail)
	require.Equal(t, "secret", auth.loginPass)
}

func TestLoginCommand_SurfacesBackendMessage(t *testing.T) {
	var printed []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	stubInputs(t, []string{"a@b.com"}, "wrong")

	auth := &stubAuth{err: errors.New("Invalid credentials")}
	app := testApp(auth, &stubCatalog{}, &stubBilling{})

	require.Error(t, app.Login(context.Background()))
	require.Contains(t, printed, "Invalid credentials")
}

func TestSignupCommand_BuildsRequest(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"Asha", "a@b.com", "999"}, "secret")

	auth := &stubAuth{}
	app := testApp(auth, &stubCatalog{}, &stubBilling{})

	require.NoError(t, app.Signup(context.Background()))
	require.Equal(t, models.SignupRequest{
		UserName:    "Asha",
		UserEmail:   "a@b.com",
		Password:    "secret",
		UserPhoneNo: "999",
	}, auth.signupReq)
}

func orderFixtures() (*stubCatalog, *stubBilling) {
	categories := []models.Category{{CategoryID: 1, CategoryTitle: "Coffee"}}
	products := []models.Product{{
		ProductID:    10,
		ProductName:  "Latte",
		ProductPrice: decimal.RequireFromString("50"),
		Category:     categories[0],
	}}
	return &stubCatalog{categories: categories, products: products}, &stubBilling{}
}

func TestOrderCommand_AddAndSubmit(t *testing.T) {
	silencePrintln(t)
	catalog, billing := orderFixtures()

	stubInputs(t, []string{
		"Asha", "a@b.com", "999", "Cash", // customer
		"add", "1", "10", "2", // line: category, product, quantity
		"submit",
	}, "")

	app := testApp(&stubAuth{}, catalog, billing)

	require.NoError(t, app.Order(context.Background()))
	require.NotNil(t, billing.submitted)
	require.True(t, billing.submitted.Empty(), "submit resets the draft")
}

func TestOrderCommand_RequiredCustomerName(t *testing.T) {
	var printed []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	catalog, billing := orderFixtures()
	stubInputs(t, []string{""}, "")

	app := testApp(&stubAuth{}, catalog, billing)

	require.ErrorIs(t, app.Order(context.Background()), errRequiredField)
	require.Contains(t, printed, "Customer name is required.")
	require.Nil(t, billing.submitted)
}

func TestOrderCommand_InvalidPaymentMethod(t *testing.T) {
	silencePrintln(t)
	catalog, billing := orderFixtures()
	stubInputs(t, []string{"Asha", "a@b.com", "999", "Cheque"}, "")

	app := testApp(&stubAuth{}, catalog, billing)

	require.ErrorIs(t, app.Order(context.Background()), errRequiredField)
}

func TestOrderCommand_SubmitEmptyRejected(t *testing.T) {
	silencePrintln(t)
	catalog, billing := orderFixtures()
	stubInputs(t, []string{"Asha", "a@b.com", "999", "Cash", "submit", "cancel"}, "")

	app := testApp(&stubAuth{}, catalog, billing)

	require.NoError(t, app.Order(context.Background()))
	require.Nil(t, billing.submitted, "empty draft must not reach the backend")
}
