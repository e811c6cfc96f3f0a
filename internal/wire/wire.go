package wire

import (
	"context"
	"net/http"
	"time"

	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/middleware"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// Per-IP budget for /api routes.
const (
	apiRateLimit  = 100
	apiRateWindow = 15 * time.Minute
)

// Pinger is the slice of the database the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, db Pinger, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, db, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, db Pinger, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(chimw.Timeout(15 * time.Second))

	r.Group(func(r chi.Router) {
		r.Use(httprate.Limit(apiRateLimit, apiRateWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				utils.ResponseTooManyRequests(w, "Too many requests from this IP, please try again later")
			}),
		))
		wireBooking(r, handler.Booking)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "database unavailable")
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
