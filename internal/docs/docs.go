package docs

import (
	"embed"
	"net/http"
)

//go:embed openapi.yaml swagger.html
var fs embed.FS

// serveEmbedded sirve un archivo embebido con su content type.
func serveEmbedded(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := fs.ReadFile(name)
		if err != nil {
			http.Error(w, name+" not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

func OpenAPIHandler() http.HandlerFunc {
	return serveEmbedded("openapi.yaml", "application/yaml; charset=utf-8")
}

func SwaggerUIHandler() http.HandlerFunc {
	return serveEmbedded("swagger.html", "text/html; charset=utf-8")
}
