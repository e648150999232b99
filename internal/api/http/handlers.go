package http

import (
	"fmt"
	"net/http"

	"farmrent-backend/internal/catalog"
	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/location"
	"farmrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	locations service.LocationService
	quotes    service.QuoteService
	bookings  service.BookingService
	listings  service.ListingService
	stats     service.StatsService
	catalog   *catalog.Catalog
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// caller returns the authenticated account. The auth middleware guarantees one is present.
func caller(r *http.Request) domain.AccountID {
	id, _ := AccountFromContext(r.Context())
	return id
}

// callerMatches rejects requests for another account's collection.
func callerMatches(w http.ResponseWriter, r *http.Request) (domain.AccountID, bool) {
	account := caller(r)
	if requested := mux.Vars(r)["accountId"]; domain.AccountID(requested) != account {
		writeError(w, r, fmt.Errorf("account %s: %w", requested, domain.ErrForbidden))
		return "", false
	}
	return account, true
}

func (h *Handler) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	var req resolveLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	device := location.ReportedPosition{DeviceError: req.DeviceError}
	if req.Latitude != nil && req.Longitude != nil {
		device.Coordinates = &location.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}
	text, err := h.locations.Resolve(r.Context(), location.Request{Device: device, ClientIP: clientIP(r)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, locationResponse{Location: text})
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req bookingInputRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	quote, err := h.quotes.IssueQuote(r.Context(), service.QuoteRequest{
		EquipmentRef: req.EquipmentRef,
		StartDate:    req.StartDate,
		Hours:        parseHours(req.Hours),
		Location:     req.Location,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(quote))
}

func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.GetQuote(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(quote))
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingInputRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	var (
		booking *domain.Booking
		err     error
	)
	if req.QuoteID != "" {
		booking, err = h.bookings.CreateFromQuoteID(r.Context(), req.QuoteID, caller(r))
	} else {
		booking, err = h.bookings.CreateFromRequest(r.Context(), service.QuoteRequest{
			EquipmentRef: req.EquipmentRef,
			StartDate:    req.StartDate,
			Hours:        parseHours(req.Hours),
			Location:     req.Location,
		}, caller(r))
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.Get(r.Context(), caller(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *Handler) SetBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	booking, err := h.bookings.SetStatus(r.Context(), caller(r), mux.Vars(r)["id"], domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.Accept(r.Context(), caller(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *Handler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.Reject(r.Context(), caller(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *Handler) ListRenterBookings(w http.ResponseWriter, r *http.Request) {
	account, ok := callerMatches(w, r)
	if !ok {
		return
	}
	bookings, err := h.bookings.ListForRenter(r.Context(), account)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListOwnerBookings(w http.ResponseWriter, r *http.Request) {
	account, ok := callerMatches(w, r)
	if !ok {
		return
	}
	bookings, err := h.bookings.ListForOwner(r.Context(), account)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List())
}

func (h *Handler) GetOwnerStats(w http.ResponseWriter, r *http.Request) {
	account := caller(r)
	stats, err := h.stats.GetOwnerStats(r.Context(), account, domain.AccountID(mux.Vars(r)["accountId"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetLatestStatsSnapshot(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetLatestSnapshot(r.Context(), caller(r), domain.AccountID(mux.Vars(r)["accountId"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
