package http

import (
	"net/http"

	"farmrent-backend/internal/catalog"
	"farmrent-backend/internal/security"
	"farmrent-backend/internal/service"
	"farmrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Dependencies are the services the HTTP API exposes.
type Dependencies struct {
	Locations    service.LocationService
	Quotes       service.QuoteService
	Bookings     service.BookingService
	Listings     service.ListingService
	Stats        service.StatsService
	Catalog      *catalog.Catalog
	Images       storage.ImageStorage
	TokenManager security.TokenManager
}

// NewRouter wires every route. Only /health and /images are reachable without a token.
func NewRouter(deps Dependencies) *mux.Router {
	h := &Handler{
		locations: deps.Locations,
		quotes:    deps.Quotes,
		bookings:  deps.Bookings,
		listings:  deps.Listings,
		stats:     deps.Stats,
		catalog:   deps.Catalog,
	}

	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if deps.Images != nil {
		RegisterImageRoutes(router, deps.Images)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(deps.TokenManager))

	api.HandleFunc("/locations/resolve", h.ResolveLocation).Methods(http.MethodPost)

	api.HandleFunc("/quotes", h.CreateQuote).Methods(http.MethodPost)
	api.HandleFunc("/quotes/{id}", h.GetQuote).Methods(http.MethodGet)

	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/renter/{accountId}", h.ListRenterBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/owner/{accountId}", h.ListOwnerBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", h.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/status", h.SetBookingStatus).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{id}/accept", h.AcceptBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/reject", h.RejectBooking).Methods(http.MethodPost)

	api.HandleFunc("/catalog", h.ListCatalog).Methods(http.MethodGet)

	api.HandleFunc("/listings", h.CreateListing).Methods(http.MethodPost)
	api.HandleFunc("/listings/others", h.ListOtherListings).Methods(http.MethodGet)
	api.HandleFunc("/listings/owner/{accountId}", h.ListOwnerListings).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id}", h.GetListing).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id}", h.UpdateListing).Methods(http.MethodPut)
	api.HandleFunc("/listings/{id}", h.DeleteListing).Methods(http.MethodDelete)
	api.HandleFunc("/listings/{id}/image", h.UploadListingImage).Methods(http.MethodPut)

	api.HandleFunc("/owners/{accountId}/stats", h.GetOwnerStats).Methods(http.MethodGet)
	api.HandleFunc("/owners/{accountId}/stats/snapshot", h.GetLatestStatsSnapshot).Methods(http.MethodGet)

	return router
}
