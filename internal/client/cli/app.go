package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"os"

	"github.com/Venkatesh1410/smartbill/internal/client/api"
	"github.com/Venkatesh1410/smartbill/internal/client/cache"
	"github.com/Venkatesh1410/smartbill/internal/client/config"
	"github.com/Venkatesh1410/smartbill/internal/client/models"
	"github.com/Venkatesh1410/smartbill/internal/client/order"
	"github.com/Venkatesh1410/smartbill/internal/client/services"
	"github.com/Venkatesh1410/smartbill/internal/client/session"
	"github.com/Venkatesh1410/smartbill/internal/client/storage"
	"github.com/Venkatesh1410/smartbill/internal/client/upload"
	"github.com/Venkatesh1410/smartbill/internal/logging"

	_ "modernc.org/sqlite"
)

// Service interfaces consumed by the views. The concrete services satisfy
// them; tests provide stubs.
type authSvc interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, req models.SignupRequest) error
	ForgotPassword(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, bool)
}

type catalogSvc interface {
	Categories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, form models.CategoryForm) error
	UpdateCategory(ctx context.Context, categoryID string, form models.CategoryForm) error
	DeleteCategory(ctx context.Context, categoryID string) error
	Products(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, form models.ProductForm) error
	UpdateProduct(ctx context.Context, productID string, form models.ProductForm) error
	SetProductStatus(ctx context.Context, productID, status string) error
	DeleteProduct(ctx context.Context, productID string) error
}

type billingSvc interface {
	Bills(ctx context.Context) ([]models.Bill, error)
	Submit(ctx context.Context, draft *order.Draft) error
	Download(ctx context.Context, bill models.Bill) (json.RawMessage, error)
	Delete(ctx context.Context, billID string) error
}

type userSvc interface {
	Users(ctx context.Context) ([]models.User, error)
	SetStatus(ctx context.Context, userID string, active bool) error
}

type dashboardSvc interface {
	Details(ctx context.Context) (models.DashboardDetails, error)
}

type uploaderSvc interface {
	Upload(ctx context.Context, path string) (string, error)
}

// App is the interactive client: it owns the wired services, the open
// session, and the reader the views prompt through.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Manager

	auth      authSvc
	catalog   catalogSvc
	billing   billingSvc
	users     userSvc
	dashboard dashboardSvc
	uploader  uploaderSvc

	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	repo := storage.NewSQLiteRepository(db)
	sessions := session.NewManager(repo, log)
	if err := sessions.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient := api.New(c.BaseURL, sessions, log)
	store := cache.New()

	return &App{
		config:    c,
		log:       log,
		db:        db,
		sessions:  sessions,
		auth:      services.NewAuthService(apiClient, sessions, store, log),
		catalog:   services.NewCatalogService(apiClient, store, log),
		billing:   services.NewBillingService(apiClient, store, log),
		users:     services.NewUserService(apiClient, store, log),
		dashboard: services.NewDashboardService(apiClient, store, log),
		uploader:  upload.New(c.CloudinaryCloud, c.CloudinaryPreset),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the expiry watcher and the REPL, blocking until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	go a.sessions.Watch(ctx, a.config.SessionCheckInterval, func() {
		printlnFn("Session expired, please log in again.")
	})

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, expired := a.auth.Current(context.Background())
	return !expired
}

func (a *App) isAdmin() bool {
	s, expired := a.auth.Current(context.Background())
	return !expired && s.IsAdmin()
}
