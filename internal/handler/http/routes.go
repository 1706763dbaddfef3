package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Get("/languages", h.getLanguages)

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.listCards)
			r.With(limitBody, h.verifySignature).Post("/", h.createCard)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getCard)
				r.With(limitBody, h.verifySignature).Put("/", h.updateCard)
				r.Delete("/", h.deleteCard)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) { writeNotFound(w) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
