package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/suministros-cli/internal/domain"
)

// Product representa un producto del inventario.
// Stock es el último snapshot leído del backend; el decremento por ventas
// lo aplica el servidor, aquí nunca se simula.
type Product struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}

// EntityID identificador para la colección en memoria.
func (p Product) EntityID() int { return p.ID }

// Validate reglas locales previas al envío: nombre obligatorio, precio > 0, stock >= 0.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if p.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", domain.ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrValidation)
	}
	return nil
}
