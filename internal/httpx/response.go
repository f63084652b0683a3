package httpx

import (
	"encoding/json"
	"net/http"
)

// errorBody es la forma de todo error que devuelve la API: { "error": mensaje }.
// No exponer detalles internos (SQL, stacktrace, etc.); eso se loguea del lado servidor.
type errorBody struct {
	Error string `json:"error"`
}

// JSON escribe una respuesta JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(payload); err != nil {
		// Último recurso: no se pudo serializar JSON.
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
	}
}

// Fail devuelve el payload de error estándar con el mensaje para humanos.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}
