package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/handlers"
	authmw "github.com/dfspolti/agenda-voluntarios/internal/transport/http/middleware"
)

func New(
	ah *handlers.AuthHandler,
	eh *handlers.EventsHandler,
	vh *handlers.VolunteersHandler,
	ph *handlers.ProtectedHandler,
	zh *handlers.HealthHandler,
	auth *authmw.AuthMiddleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(authmw.RequestID)
	r.Use(authmw.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(authmw.AccessLog)

	r.Get("/healthz", zh.Healthz)
	r.Get("/", zh.Home)

	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	// public reads
	r.Get("/events", eh.List)
	r.Get("/events/{id}", eh.Get)

	r.Route("/protected", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Get("/dashboard", ph.Dashboard)
		r.Get("/volunteers", vh.List)
		r.Get("/volunteers/{id}", vh.Get)

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireRole(domain.RoleAdmin))

			r.Get("/admin", ph.Admin)

			r.Post("/events", eh.Create)
			r.Put("/events/{id}", eh.Update)
			r.Delete("/events/{id}", eh.Delete)

			r.Post("/volunteers", vh.Create)
			r.Put("/volunteers/{id}", vh.Update)
			r.Delete("/volunteers/{id}", vh.Delete)
		})
	})

	return r
}
