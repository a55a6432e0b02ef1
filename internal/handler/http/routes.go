package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/version", h.getServerVersion)

	// demo endpoints
	router.Get("/example/list", h.exampleList)
	router.Get("/example/id/{item_id}", h.exampleByID)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Get("/auth/verify-token", h.verifyToken)
		r.Post("/auth/register", h.register)

		if h.debugRoutes {
			r.Post("/auth/hash-password", h.hashPassword)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/list", h.listUsers)
		r.Get("/users/list/", h.listUsersByCity)
		r.Get("/users/id/{user_id}", h.getUser)
		r.Post("/users/create", h.createUser)
		r.Put("/users/edit/{user_id}", h.editUser)
		r.Delete("/users/delete/{user_id}", h.deleteUser)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
