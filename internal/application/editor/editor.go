package editor

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/internal/domain/entity"
)

// Campos editables de una línea, con los nombres del formato de red.
const (
	FieldProduct   = "producto"
	FieldQuantity  = "cantidad"
	FieldUnitPrice = "precio_unitario"
)

// Tokens consulta de sesión; lo implementa session.Session.
type Tokens interface {
	Token() (string, bool)
}

// ProductIndex snapshot de productos cargados, para la comprobación de stock.
// Lo implementa collection.Store[entity.Product].
type ProductIndex interface {
	ByID(id int) (entity.Product, bool)
}

// document estado compartido del editor de ventas y compras: la contraparte,
// la fecha y la lista mutable de líneas de un documento en curso.
//
// Dos estados: creación (id == 0) y edición (id precargado con Fetch). No hay
// promoción de uno a otro; editar exige construir el editor sobre el documento
// existente.
type document struct {
	id             int
	counterpartyID int
	date           string // YYYY-MM-DD
	lines          []entity.LineItem
}

// Editing indica si el editor trabaja sobre un documento existente.
func (d *document) Editing() bool { return d.id != 0 }

// SetCounterparty fija el cliente o proveedor del documento.
func (d *document) SetCounterparty(id int) { d.counterpartyID = id }

// SetDate fija la fecha del documento (YYYY-MM-DD).
func (d *document) SetDate(date string) { d.date = date }

// Date devuelve la fecha actual del documento.
func (d *document) Date() string { return d.date }

// Counterparty devuelve la contraparte actual.
func (d *document) Counterparty() int { return d.counterpartyID }

// Lines snapshot de las líneas actuales.
func (d *document) Lines() []entity.LineItem {
	out := make([]entity.LineItem, len(d.lines))
	copy(out, d.lines)
	return out
}

// AddLine añade una línea en blanco: cantidad 1, precio 0, producto sin elegir.
// Mutación puramente local; nunca falla.
func (d *document) AddLine() {
	d.lines = append(d.lines, entity.LineItem{Quantity: 1, UnitPrice: decimal.Zero})
}

// RemoveLine elimina la línea en esa posición. Un índice fuera de rango se
// rechaza como error de validación en lugar de ignorarse en silencio.
func (d *document) RemoveLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("%w: línea %d fuera de rango", domain.ErrValidation, i)
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

// UpdateLine modifica un campo de la línea i. Los valores llegan como texto
// (flags de CLI, celdas de formulario) y se coercionan al tipo del campo; un
// valor no numérico se rechaza en lugar de guardar NaN. No se validan rangos
// hasta Submit.
func (d *document) UpdateLine(i int, field, value string) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("%w: línea %d fuera de rango", domain.ErrValidation, i)
	}
	switch field {
	case FieldProduct:
		id, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: producto inválido: %q", domain.ErrValidation, value)
		}
		d.lines[i].ProductID = id
	case FieldQuantity:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: cantidad inválida: %q", domain.ErrValidation, value)
		}
		d.lines[i].Quantity = n
	case FieldUnitPrice:
		price, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%w: precio inválido: %q", domain.ErrValidation, value)
		}
		d.lines[i].UnitPrice = price
	default:
		return fmt.Errorf("%w: campo desconocido: %q", domain.ErrValidation, field)
	}
	return nil
}

// Subtotal cantidad × precio unitario de la línea i.
func (d *document) Subtotal(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(d.lines) {
		return decimal.Zero, fmt.Errorf("%w: línea %d fuera de rango", domain.ErrValidation, i)
	}
	return d.lines[i].Subtotal(), nil
}

// Total suma de subtotales. Se recalcula en cada llamada sobre las líneas
// vigentes; nunca se cachea. Solo se congela en el payload al enviar.
func (d *document) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range d.lines {
		total = total.Add(li.Subtotal())
	}
	return total
}

// validate comprobaciones locales previas al envío. Un error aquí garantiza
// que no se emitirá ninguna petición.
func (d *document) validate(tokens Tokens) error {
	if _, ok := tokens.Token(); !ok {
		return fmt.Errorf("%w para continuar", domain.ErrAuthentication)
	}
	if d.counterpartyID == 0 || d.date == "" || len(d.lines) == 0 {
		return fmt.Errorf("%w: completa todos los campos", domain.ErrValidation)
	}
	for i, li := range d.lines {
		if li.ProductID == 0 || li.Quantity <= 0 || li.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: revisa cantidad y precio de la línea %d", domain.ErrValidation, i)
		}
	}
	return nil
}

// reset vuelve al estado inicial de creación; se invoca tras un envío exitoso
// solo cuando el editor estaba creando (al editar se conserva lo enviado).
func (d *document) reset() {
	d.counterpartyID = 0
	d.date = ""
	d.lines = nil
}
