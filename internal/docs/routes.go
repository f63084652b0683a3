package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta Swagger UI y el YAML de OpenAPI bajo /docs.
func RegisterRoutes(r chi.Router) {
	// /docs sin slash redirige a /docs/ para que los assets relativos resuelvan.
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/", http.StatusMovedPermanently)
	})

	r.Route("/docs", func(r chi.Router) {
		r.Get("/", SwaggerUIHandler())
		r.Get("/openapi.yaml", OpenAPIHandler())
	})
}
