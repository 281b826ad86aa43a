// internal/wire/wire.go
package wire

import (
	"net/http"

	"event-booking/internal/adaptor"
	"event-booking/internal/cms"
	"event-booking/internal/data/repository"
	"event-booking/internal/gateway"
	"event-booking/internal/notifier"
	"event-booking/internal/storage"
	"event-booking/internal/usecase"
	"event-booking/pkg/middleware"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the built dependency graph
type App struct {
	Router *chi.Mux
}

// External collects the outbound clients the services need. Cache may be
// nil, in which case catalog caching is disabled.
type External struct {
	Gateway gateway.Client
	Events  cms.Client
	Mailer  notifier.Notifier
	Files   storage.FileStore
	Cache   usecase.CatalogCache
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, ext *External, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, ext.Gateway, ext.Events, ext.Mailer, ext.Files, ext.Cache, logger)
	handler := adaptor.NewHandler(service, ext.Files, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking, handler.Upload)
	wirePayment(r, handler.Payment)
	wireOTP(r, handler.OTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
