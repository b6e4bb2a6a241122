package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/orcahelper/orcahelper/internal/logger"
	"github.com/orcahelper/orcahelper/internal/service"
)

// Pinger is what the health endpoint needs from storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth     service.AuthService
	users    service.UserService
	products service.ProductService
	storage  Pinger
}

func New(auth service.AuthService, users service.UserService, products service.ProductService, storage Pinger) *Handler {
	return &Handler{auth, users, products, storage}
}

// Root serves the service banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"OrcaHelper": "Tracks your wishlist and warns you when a product is close to its expiry date",
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
