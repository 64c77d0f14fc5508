package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	// recoverer sits inside the logging wrapper so panics still produce
	// a logged 500
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.hello)
		r.Post("/token", h.token)
		r.Post("/signup/", h.signup)
	})

	// routes behind the bearer-token guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.usersMe)
		r.Get("/items/", h.listItems)
		r.Post("/items/", h.createItem)
		r.Get("/items/{itemID}", h.getItem)
		r.Patch("/items/{itemID}", h.updateItem)
		r.Delete("/items/{itemID}", h.deleteItem)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, "Not Found", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return router
}
