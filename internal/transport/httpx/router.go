package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает маршруты API поверх chi.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Post("/product", handler.CreateProduct)
		r.Post("/product/{id}", handler.UpdateProduct)
		r.Post("/order", handler.CreateOrder)
	})

	return r
}
