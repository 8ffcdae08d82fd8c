package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogservice "github.com/jcmexdev/restaurant-pos/internal/catalog-service"
	"github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	orderdomain "github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}

	emp, err := h.catalog.Authenticate(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapEmployee(emp))
}

// --- Products ---

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapAll(h.catalog.Products(), mapProduct))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.catalog.AddProduct(req.Name, req.Price, orderdomain.Category(req.Category), req.Image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Employees ---

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapAll(h.catalog.Employees(), mapEmployee))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.catalog.Employee(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapEmployee(e))
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.catalog.AddEmployee(catalogservice.NewEmployee{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Shift:    req.Shift,
		Active:   req.Active,
		Photo:    req.Photo,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapEmployee(e))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteEmployee(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.catalog.ToggleEmployee(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapEmployee(e))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.catalog.UpdateProfile(chi.URLParam(r, "id"), domain.ProfileUpdate{
		Name:     req.Name,
		Photo:    req.Photo,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapEmployee(e))
}

// --- Suppliers ---

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapAll(h.catalog.Suppliers(), mapSupplier))
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if !decode(w, r, &req) {
		return
	}

	s, err := h.catalog.AddSupplier(req.Name, req.Contact, req.Category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapSupplier(s))
}

func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteSupplier(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Reclamations ---

func (h *Handler) ListReclamations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapAll(h.catalog.Reclamations(), mapReclamation))
}

func (h *Handler) CreateReclamation(w http.ResponseWriter, r *http.Request) {
	var req ReclamationRequest
	if !decode(w, r, &req) {
		return
	}

	rec, err := h.catalog.AddReclamation(req.EmployeeID, req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapReclamation(rec))
}

func (h *Handler) ResolveReclamation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.catalog.ResolveReclamation(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReclamation(rec))
}

func (h *Handler) ReplyToReclamation(w http.ResponseWriter, r *http.Request) {
	var req ReplyRequest
	if !decode(w, r, &req) {
		return
	}

	rec, err := h.catalog.ReplyToReclamation(chi.URLParam(r, "id"), req.AuthorID, req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReclamation(rec))
}
