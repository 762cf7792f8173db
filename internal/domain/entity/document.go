package entity

import (
	"github.com/shopspring/decimal"
)

// LineItem representa una línea (producto, cantidad, precio unitario) dentro
// de una venta o compra. No se persiste por separado: viaja anidada en el
// documento bajo la clave detalles.
type LineItem struct {
	ProductID int             `json:"producto"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// Subtotal cantidad × precio unitario.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Sale representa una venta a un cliente, con sus líneas de detalle.
// Total siempre se recalcula desde las líneas antes de enviar; nunca se
// introduce a mano.
type Sale struct {
	ID         int             `json:"id,omitempty"`
	CustomerID int             `json:"cliente"`
	Date       string          `json:"fecha"` // YYYY-MM-DD
	Total      decimal.Decimal `json:"total"`
	Lines      []LineItem      `json:"detalles"`
}

// EntityID identificador para la colección en memoria.
func (s Sale) EntityID() int { return s.ID }

// Purchase representa una compra a un proveedor, con sus líneas de detalle.
type Purchase struct {
	ID         int             `json:"id,omitempty"`
	SupplierID int             `json:"proveedor"`
	Date       string          `json:"fecha"` // YYYY-MM-DD
	Total      decimal.Decimal `json:"total"`
	Lines      []LineItem      `json:"detalles"`
}

// EntityID identificador para la colección en memoria.
func (p Purchase) EntityID() int { return p.ID }
