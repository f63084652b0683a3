package items

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 255
)

// ValidationError describe un rechazo de datos de entrada.
// Reason es el mensaje que ve el cliente; el handler lo traduce a 400.
type ValidationError struct {
	Reason string
}

func (validationError *ValidationError) Error() string {
	return validationError.Reason
}

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorMissingFields      = &ValidationError{Reason: "missing required fields: name and quantity"}
	ErrorInvalidQuantity    = &ValidationError{Reason: "quantity must be a non-negative integer"}
	ErrorNameTooLong        = &ValidationError{Reason: "name must be 100 characters or less"}
	ErrorDescriptionTooLong = &ValidationError{Reason: "description must be 255 characters or less"}
	ErrorInvalidID          = &ValidationError{Reason: "invalid item id"}
	ErrorNotFound           = errors.New("item not found")
)

// IsValidationError indica si err proviene de una regla de validación.
func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// itemFields es el triple (name, quantity, description) ya normalizado.
type itemFields struct {
	name        string
	quantity    int
	description *string
}

// validateFields aplica las reglas en orden; la primera que falla corta.
// Normaliza: name con trim, description vacía o ausente queda en NULL,
// quantity se coerciona a entero.
func validateFields(input ItemInput) (itemFields, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Quantity == nil {
		return itemFields{}, ErrorMissingFields
	}

	// Acepta 5 y 5.0 pero rechaza 5.5, negativos y valores que no entran
	// en la columna INTEGER (int4): el rechazo es de validación, no un 500.
	quantityValue, err := input.Quantity.Float64()
	if err != nil || quantityValue != math.Trunc(quantityValue) || quantityValue < 0 || quantityValue > math.MaxInt32 {
		return itemFields{}, ErrorInvalidQuantity
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		return itemFields{}, ErrorNameTooLong
	}

	description := input.Description
	if description != nil {
		if utf8.RuneCountInString(*description) > maxDescriptionLength {
			return itemFields{}, ErrorDescriptionTooLong
		}
		if *description == "" {
			description = nil
		}
	}

	return itemFields{
		name:        name,
		quantity:    int(quantityValue),
		description: description,
	}, nil
}

// RepositoryAPI define lo que el service necesita de la capa de datos.
// Permite testear el service con fakes sin tocar DB.
type RepositoryAPI interface {
	List(ctx context.Context, search string) ([]Item, error)
	Insert(ctx context.Context, name string, quantity int, description *string) (int64, error)
	Update(ctx context.Context, id int64, name string, quantity int, description *string) error
	Delete(ctx context.Context, id int64) error
}

// Service contiene reglas de negocio de items.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de items.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// List devuelve todos los items ordenados por nombre. Si search viene con
// contenido, restringe a items cuyo name o description contengan el término.
func (service *Service) List(ctx context.Context, search string) ([]Item, error) {
	return service.repository.List(ctx, strings.TrimSpace(search))
}

// Create valida reglas y crea el item en DB.
// Devuelve el item construido desde la entrada normalizada más el id asignado.
func (service *Service) Create(ctx context.Context, input ItemInput) (Item, error) {
	fields, err := validateFields(input)
	if err != nil {
		return Item{}, err
	}

	id, err := service.repository.Insert(ctx, fields.name, fields.quantity, fields.description)
	if err != nil {
		return Item{}, err
	}

	return Item{
		ID:          id,
		Name:        fields.name,
		Quantity:    fields.quantity,
		Description: fields.description,
	}, nil
}

// Update valida reglas y reemplaza los tres campos mutables de una sola vez.
// No relee la fila: el resultado se arma desde la entrada ya validada,
// que es el nuevo estado exacto (no hay defaults ni triggers en la tabla).
func (service *Service) Update(ctx context.Context, id int64, input ItemInput) (Item, error) {
	fields, err := validateFields(input)
	if err != nil {
		return Item{}, err
	}

	if err := service.repository.Update(ctx, id, fields.name, fields.quantity, fields.description); err != nil {
		return Item{}, err
	}

	return Item{
		ID:          id,
		Name:        fields.name,
		Quantity:    fields.quantity,
		Description: fields.description,
	}, nil
}

// Delete elimina un item por ID. La existencia la verifica el repo
// mirando filas afectadas; un segundo delete del mismo id da ErrorNotFound.
func (service *Service) Delete(ctx context.Context, id int64) error {
	return service.repository.Delete(ctx, id)
}
