package items

import "encoding/json"

// Item representa un registro persistido en DB.
// Description es puntero para poder serializar NULL explícito (nunca string vacío).
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
}

// ItemInput representa el payload para crear o reemplazar un item.
// Quantity es json.Number para distinguir "no vino" de "vino mal formado"
// y rechazar fraccionarios con mensaje propio en vez de un error de decode.
type ItemInput struct {
	Name        string       `json:"name"`
	Quantity    *json.Number `json:"quantity"`
	Description *string      `json:"description"`
}
