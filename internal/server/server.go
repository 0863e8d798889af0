package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"prayernotebook/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
)

// CategoryStore is the category data access the handlers depend on.
// Write operations report affected-row counts; zero means no row
// matched the owner scope and is mapped to a 404 here, not in the store.
type CategoryStore interface {
	Categories(ctx context.Context, userID int64) ([]*types.Category, error)
	CategoryByID(ctx context.Context, id, userID int64) (*types.Category, error)
	CreateCategory(ctx context.Context, category types.NewCategory) (int64, error)
	UpdateCategory(ctx context.Context, category types.CategoryUpdate) (int64, error)
	DeleteCategory(ctx context.Context, id, userID int64) (int64, error)
}

// PrayerStore is the prayer data access the handlers depend on.
type PrayerStore interface {
	Prayers(ctx context.Context, userID int64) ([]*types.Prayer, error)
	PrayerByID(ctx context.Context, id, userID int64) (*types.Prayer, error)
	PrayersByCategory(ctx context.Context, categoryID, userID int64) ([]*types.Prayer, error)
	AnsweredPrayers(ctx context.Context, userID int64) ([]*types.Prayer, error)
	SearchPrayers(ctx context.Context, userID int64, keyword string) ([]*types.Prayer, error)
	CreatePrayer(ctx context.Context, prayer types.NewPrayer) (int64, error)
	UpdatePrayer(ctx context.Context, prayer types.PrayerUpdate) (int64, error)
	MarkPrayerAnswered(ctx context.Context, id, userID int64, notes *string) (int64, error)
	DeletePrayer(ctx context.Context, id, userID int64) (int64, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	logger     *logrus.Logger
	config     *types.Config
	db         Pinger
	categories CategoryStore
	prayers    PrayerStore

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	db Pinger,
	categories CategoryStore,
	prayers PrayerStore,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:     logger,
		config:     config,
		db:         db,
		categories: categories,
		prayers:    prayers,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router exposes the handler tree for tests.
func (s *Service) Router() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/", s.handleWelcome, http.MethodGet)
	r.HandleFunc("/health", s.handleHealth, http.MethodGet)

	// Static segments must be registered before :id so that
	// /api/prayers/answered is not captured as an id.
	r.HandleFunc("/api/prayers", s.handleListPrayers, http.MethodGet)
	r.HandleFunc("/api/prayers", s.handleCreatePrayer, http.MethodPost)
	r.HandleFunc("/api/prayers/answered", s.handleListAnsweredPrayers, http.MethodGet)
	r.HandleFunc("/api/prayers/search", s.handleSearchPrayers, http.MethodGet)
	r.HandleFunc("/api/prayers/category/:categoryId", s.handleListPrayersByCategory, http.MethodGet)
	r.HandleFunc("/api/prayers/:id/answer", s.handleMarkPrayerAnswered, http.MethodPut)
	r.HandleFunc("/api/prayers/:id", s.handleGetPrayer, http.MethodGet)
	r.HandleFunc("/api/prayers/:id", s.handleUpdatePrayer, http.MethodPut)
	r.HandleFunc("/api/prayers/:id", s.handleDeletePrayer, http.MethodDelete)

	r.HandleFunc("/api/categories", s.handleListCategories, http.MethodGet)
	r.HandleFunc("/api/categories", s.handleCreateCategory, http.MethodPost)
	r.HandleFunc("/api/categories/:id", s.handleGetCategory, http.MethodGet)
	r.HandleFunc("/api/categories/:id", s.handleUpdateCategory, http.MethodPut)
	r.HandleFunc("/api/categories/:id", s.handleDeleteCategory, http.MethodDelete)
}

func (s *Service) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":    "Welcome to Prayer Notebook API",
		"prayers":    "/api/prayers",
		"categories": "/api/categories",
	})
}

func (s *Service) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusNotFound, map[string]string{
		"error":  "Route not found",
		"path":   r.URL.Path,
		"method": r.Method,
	})
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error":  "Method not allowed",
		"path":   r.URL.Path,
		"method": r.Method,
	})
}
