package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/contacts-api/internal/api/middleware"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Users     *UserHandler
	Contacts  *ContactHandler
	Addresses *AddressHandler
}

// RegisterRoutes mounts the /api routes on r. Every route except
// registration and login runs behind authMiddleware.
func RegisterRoutes(r chi.Router, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	contactPath := fmt.Sprintf("/{%s}", ContactIDParam)
	addressPath := fmt.Sprintf("/{%s}", AddressIDParam)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", h.Users.Register)
		r.Post("/users/login", h.Users.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/users/current", func(r chi.Router) {
				r.Get("/", h.Users.Get)
				r.Patch("/", h.Users.Update)
				r.Delete("/", h.Users.Logout)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Post("/", h.Contacts.Create)
				r.Get("/", h.Contacts.Search)

				r.Route(contactPath, func(r chi.Router) {
					r.Get("/", h.Contacts.Get)
					r.Put("/", h.Contacts.Update)
					r.Delete("/", h.Contacts.Remove)

					r.Route("/addresses", func(r chi.Router) {
						r.Post("/", h.Addresses.Create)
						r.Get("/", h.Addresses.List)
						r.Get(addressPath, h.Addresses.Get)
						r.Put(addressPath, h.Addresses.Update)
						r.Delete(addressPath, h.Addresses.Remove)
					})
				})
			})
		})
	})
}
