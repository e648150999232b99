package http

import (
	"errors"
	"io"
	"net/http"

	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// ImageHandler serves stored listing images.
type ImageHandler struct {
	images storage.ImageStorage
}

func NewImageHandler(images storage.ImageStorage) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, contentType, err := h.images.Open(r.Context(), key)
	if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidKey) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to open image", "key", key, "error", err)
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, file); err != nil {
		logger.Warn("Failed to stream image", "key", key, "error", err)
	}
}

// RegisterImageRoutes exposes GET /images/{key}. Keys contain slashes.
func RegisterImageRoutes(router *mux.Router, images storage.ImageStorage) {
	handler := NewImageHandler(images)
	router.HandleFunc("/images/{key:.+}", handler.HandleDownload).Methods(http.MethodGet)
}
