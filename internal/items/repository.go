package items

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database define el subconjunto de pgxpool.Pool que usa el repositorio.
// Permite testear con un fake sin levantar PostgreSQL.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository accede a la tabla items.
// Contiene SQL y mapeo DB → modelo. Solo statements parametrizados.
type Repository struct {
	database Database
}

// NewRepository crea un repositorio de items.
func NewRepository(database Database) *Repository {
	return &Repository{database: database}
}

// List devuelve items ordenados por nombre. Con search no vacío filtra por
// substring (case-insensitive) sobre name o description.
func (repository *Repository) List(ctx context.Context, search string) ([]Item, error) {
	const listQuery = `
		SELECT id, name, quantity, description
		FROM items
		ORDER BY name ASC;
	`
	const searchQuery = `
		SELECT id, name, quantity, description
		FROM items
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY name ASC;
	`

	var rows pgx.Rows
	var err error
	if search == "" {
		rows, err = repository.database.Query(ctx, listQuery)
	} else {
		rows, err = repository.database.Query(ctx, searchQuery, escapeLike(search))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Slice vacío (no nil) para que la respuesta JSON sea [] y no null.
	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapa los metacaracteres de LIKE para que el término de
// búsqueda se matchee literal; ILIKE solo aporta el case-folding.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// Insert crea un item y devuelve el id asignado por DB.
// Usamos RETURNING para obtener el id generado sin segunda query.
func (repository *Repository) Insert(ctx context.Context, name string, quantity int, description *string) (int64, error) {
	const query = `
		INSERT INTO items (name, quantity, description)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	var id int64
	if err := repository.database.QueryRow(ctx, query, name, quantity, description).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Update reemplaza los tres campos mutables en un solo statement.
// Cero filas afectadas significa que el id no existe.
func (repository *Repository) Update(ctx context.Context, id int64, name string, quantity int, description *string) error {
	const query = `
		UPDATE items
		SET name = $1, quantity = $2, description = $3
		WHERE id = $4;
	`

	tag, err := repository.database.Exec(ctx, query, name, quantity, description, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrorNotFound
	}

	return nil
}

// Delete elimina por id. El conteo de filas afectadas es el chequeo de
// existencia: no se consulta antes de borrar.
func (repository *Repository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM items
		WHERE id = $1;
	`

	tag, err := repository.database.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrorNotFound
	}

	return nil
}
