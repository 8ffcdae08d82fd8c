package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jcmexdev/restaurant-pos/internal/api-gateway/core/ports"
	catalogdomain "github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
)

// Handler serves the floor, station, cashier and admin screens.
type Handler struct {
	orders  ports.OrderService
	catalog ports.Catalog
}

func NewHandler(orders ports.OrderService, catalog ports.Catalog) *Handler {
	return &Handler{orders: orders, catalog: catalog}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

// actor is the staff member named by the X-Employee header, if any.
func actor(r *http.Request) string {
	name, _ := r.Context().Value(constants.ContextKeyEmployee).(string)
	return name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

// writeServiceError maps order and catalog errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrOrderClosed):
		writeError(w, http.StatusConflict, "order_closed", err.Error())
	case errors.Is(err, domain.ErrOrderNotReady):
		writeError(w, http.StatusConflict, "order_not_ready", err.Error())
	case errors.Is(err, domain.ErrSubmissionInProgress):
		writeError(w, http.StatusConflict, "submission_in_progress", err.Error())
	case errors.Is(err, catalogdomain.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, catalogdomain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, domain.ErrInvalidTable),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, catalogdomain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
