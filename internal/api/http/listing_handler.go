package http

import (
	"net/http"
	"path"

	"farmrent-backend/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var input service.ListingInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	listing, err := h.listings.Create(r.Context(), caller(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, listing)
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listings.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) ListOwnerListings(w http.ResponseWriter, r *http.Request) {
	account, ok := callerMatches(w, r)
	if !ok {
		return
	}
	listings, err := h.listings.ListByOwner(r.Context(), account)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *Handler) ListOtherListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.ListOthers(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var input service.ListingInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	listing, err := h.listings.Update(r.Context(), caller(r), mux.Vars(r)["id"], input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.listings.Delete(r.Context(), caller(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadListingImage takes the raw image as the request body, typed by Content-Type.
func (h *Handler) UploadListingImage(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	filename := path.Base(r.URL.Query().Get("filename"))
	listing, err := h.listings.AttachImage(r.Context(), caller(r), mux.Vars(r)["id"], filename, contentType, r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
