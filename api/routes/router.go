package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mesabook/mesabook-backend/api/controllers"
	"github.com/mesabook/mesabook-backend/api/middleware"
	availabilitysvc "github.com/mesabook/mesabook-backend/internal/availability"
	bookingsvc "github.com/mesabook/mesabook-backend/internal/bookings"
	catalogsvc "github.com/mesabook/mesabook-backend/internal/catalog"
	pricingsvc "github.com/mesabook/mesabook-backend/internal/pricing"
	"github.com/mesabook/mesabook-backend/pkg/config"
	"github.com/mesabook/mesabook-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	cachePinger controllers.Pinger,
	catalogService catalogsvc.Service,
	pricingService pricingsvc.Service,
	availabilityService availabilitysvc.Service,
	bookingService bookingsvc.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbPinger, cachePinger, logg))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", controllers.ListCategories(catalogService, logg))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.ListItems(catalogService, logg))
			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", controllers.GetItem(catalogService, logg))
				r.Get("/price", controllers.GetItemPrice(pricingService, logg))
				r.Get("/availability", controllers.GetItemAvailability(availabilityService, logg))
				r.Get("/bookings", controllers.ListItemBookings(bookingService, logg))
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", controllers.CreateBooking(bookingService, logg))
			r.Patch("/{bookingID}/status", controllers.UpdateBookingStatus(bookingService, logg))
		})
	})

	return r
}
