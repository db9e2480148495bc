package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet_market/pkg/httpx/reply"
)

// PolledPaths are the endpoints a renderer calls on every clock tick.
func PolledPaths() []string {
	return []string{"/v1/view", "/v1/countdown"}
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/view", handler(s.getV1View))
		r.Get("/options", handler(s.getV1Options))
		r.Get("/countdown", handler(s.getV1Countdown))

		r.Post("/analyze", handler(s.postV1Analyze))
		r.Post("/search", handler(s.postV1Search))
		r.Post("/copy", handler(s.postV1Copy))

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", handler(s.getV1Preferences))
			r.Patch("/", handler(s.patchV1Preferences))
			r.Post("/rarities/{rarity}/toggle", handler(s.postV1ToggleRarity))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
