package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/jcmexdev/restaurant-pos/internal/api-gateway/infra/httpx/middlewares"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
)

func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", constants.HeaderXRequestId, constants.HeaderXIdempotencyKey, constants.HeaderXEmployee},
		ExposedHeaders: []string{constants.HeaderXRequestId},
	}).Handler)
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachTracingMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/auth/login", handler.Login)

	r.Get("/tables", handler.ListTables)
	r.Post("/tables/{table}/orders", handler.SubmitCart)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", handler.ListOrders)
		r.Get("/{id}", handler.GetOrderByID)
		r.Get("/{id}/history", handler.GetOrderHistory)
		r.Post("/{id}/items", handler.AddItems)
		r.Patch("/{id}/items/{itemID}/status", handler.UpdateItemStatus)
		r.Patch("/{id}/status", handler.UpdateOrderStatus)
		r.Post("/{id}/payment", handler.PayOrder)
	})

	r.Get("/stations/{category}/tickets", handler.StationTickets)
	r.Get("/reports/summary", handler.SummaryReport)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.ListProducts)
		r.Post("/", handler.CreateProduct)
		r.Delete("/{id}", handler.DeleteProduct)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", handler.ListEmployees)
		r.Post("/", handler.CreateEmployee)
		r.Get("/{id}", handler.GetEmployee)
		r.Delete("/{id}", handler.DeleteEmployee)
		r.Post("/{id}/toggle", handler.ToggleEmployee)
		r.Patch("/{id}/profile", handler.UpdateProfile)
	})
	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", handler.ListSuppliers)
		r.Post("/", handler.CreateSupplier)
		r.Delete("/{id}", handler.DeleteSupplier)
	})
	r.Route("/reclamations", func(r chi.Router) {
		r.Get("/", handler.ListReclamations)
		r.Post("/", handler.CreateReclamation)
		r.Post("/{id}/resolve", handler.ResolveReclamation)
		r.Post("/{id}/replies", handler.ReplyToReclamation)
	})
	return r
}
