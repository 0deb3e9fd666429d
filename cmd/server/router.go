package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wingslabs/inventory-api/internal/api"
	apiMiddleware "github.com/wingslabs/inventory-api/internal/api/middleware"
	"github.com/wingslabs/inventory-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	productHandler := api.NewProductHandler(app.productService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Post("/products", productHandler.CreateProduct)
		r.Put("/products/{id}", productHandler.UpdateProduct)
		r.Delete("/products/{id}", productHandler.DeleteProduct)

		// Stock adjustment endpoints
		r.Post("/products/{id}/add-stock", productHandler.AddStock)
		r.Post("/products/{id}/deduct-stock", productHandler.DeductStock)

		// User endpoints
		r.Get("/users", userHandler.ListUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Unknown routes get a structured 404 naming the offending request.
	r.NotFound(routeNotFoundHandler)
	r.MethodNotAllowed(routeNotFoundHandler)

	return r
}

func routeNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, map[string]string{
		"error":  "Route not found",
		"method": r.Method,
		"url":    r.URL.Path,
	})
}
