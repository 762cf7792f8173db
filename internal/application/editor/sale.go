package editor

import (
	"context"
	"fmt"

	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/internal/domain/entity"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/api"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// SaleEditor editor de una venta en curso. Además de las reglas comunes,
// comprueba el stock conocido de cada producto antes de enviar.
type SaleEditor struct {
	document
	client   *api.Client
	tokens   Tokens
	products ProductIndex
	log      *logger.Logger
}

// NewSale construye un editor en estado de creación.
func NewSale(client *api.Client, tokens Tokens, products ProductIndex, log *logger.Logger) *SaleEditor {
	return &SaleEditor{client: client, tokens: tokens, products: products, log: log}
}

// EditSale construye un editor precargado con una venta existente
// (normalmente obtenida con Store.Fetch, que trae las líneas anidadas).
func EditSale(client *api.Client, tokens Tokens, products ProductIndex, sale entity.Sale, log *logger.Logger) *SaleEditor {
	e := NewSale(client, tokens, products, log)
	e.id = sale.ID
	e.counterpartyID = sale.CustomerID
	e.date = truncateDate(sale.Date)
	e.lines = append([]entity.LineItem(nil), sale.Lines...)
	return e
}

// StockSufficient comprueba cada línea contra el snapshot de productos
// cargado. Falso si algún producto no está en el snapshot o la cantidad
// supera su stock conocido. Es un predicado puro sobre una lectura puntual:
// otra sesión concurrente puede consumir el stock entre la comprobación y el
// envío, y el backend es quien revalida con autoridad.
func (e *SaleEditor) StockSufficient() bool {
	for _, li := range e.lines {
		prod, ok := e.products.ByID(li.ProductID)
		if !ok || li.Quantity > prod.Stock {
			return false
		}
	}
	return true
}

// Submit valida y envía la venta. POST al crear, PUT sobre el id al editar.
// Ninguna validación fallida llega a la red. Con éxito devuelve el registro
// canónico del servidor y, si se estaba creando, el editor queda limpio para
// la siguiente venta; ante fallo el estado no se toca para corregir y
// reintentar.
func (e *SaleEditor) Submit(ctx context.Context) (entity.Sale, error) {
	var zero entity.Sale
	if err := e.validate(e.tokens); err != nil {
		return zero, err
	}
	if !e.StockSufficient() {
		return zero, fmt.Errorf("%w: uno o más productos no tienen suficiente stock", domain.ErrValidation)
	}

	payload := entity.Sale{
		ID:         e.id,
		CustomerID: e.counterpartyID,
		Date:       e.date,
		Total:      e.Total(),
		Lines:      e.Lines(),
	}

	var canon entity.Sale
	var err error
	if e.Editing() {
		err = e.client.Put(ctx, e.client.ItemURL("ventas", e.id), payload, &canon)
	} else {
		err = e.client.Post(ctx, e.client.CollectionURL("ventas"), payload, &canon)
	}
	if err != nil {
		return zero, err
	}

	e.log.Info().Int("venta", canon.ID).Str("total", canon.Total.String()).Msg("venta guardada")
	if !e.Editing() {
		e.reset()
	}
	return canon, nil
}

// truncateDate recorta un datetime ISO al día (la venta viaja como fecha).
func truncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
