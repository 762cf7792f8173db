package editor

import (
	"context"

	"github.com/jhoicas/suministros-cli/internal/domain/entity"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/api"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// PurchaseEditor editor de una compra en curso. Comportamiento paralelo al de
// ventas, sin comprobación de stock: una compra lo incrementa, no lo consume.
type PurchaseEditor struct {
	document
	client *api.Client
	tokens Tokens
	log    *logger.Logger
}

// NewPurchase construye un editor en estado de creación.
func NewPurchase(client *api.Client, tokens Tokens, log *logger.Logger) *PurchaseEditor {
	return &PurchaseEditor{client: client, tokens: tokens, log: log}
}

// EditPurchase construye un editor precargado con una compra existente.
func EditPurchase(client *api.Client, tokens Tokens, purchase entity.Purchase, log *logger.Logger) *PurchaseEditor {
	e := NewPurchase(client, tokens, log)
	e.id = purchase.ID
	e.counterpartyID = purchase.SupplierID
	e.date = truncateDate(purchase.Date)
	e.lines = append([]entity.LineItem(nil), purchase.Lines...)
	return e
}

// Submit valida y envía la compra. POST al crear, PUT sobre el id al editar.
// Mismas garantías que en ventas: ninguna validación fallida llega a la red y
// ante fallo remoto el estado queda intacto.
func (e *PurchaseEditor) Submit(ctx context.Context) (entity.Purchase, error) {
	var zero entity.Purchase
	if err := e.validate(e.tokens); err != nil {
		return zero, err
	}

	payload := entity.Purchase{
		ID:         e.id,
		SupplierID: e.counterpartyID,
		Date:       e.date,
		Total:      e.Total(),
		Lines:      e.Lines(),
	}

	var canon entity.Purchase
	var err error
	if e.Editing() {
		err = e.client.Put(ctx, e.client.ItemURL("compras", e.id), payload, &canon)
	} else {
		err = e.client.Post(ctx, e.client.CollectionURL("compras"), payload, &canon)
	}
	if err != nil {
		return zero, err
	}

	e.log.Info().Int("compra", canon.ID).Str("total", canon.Total.String()).Msg("compra guardada")
	if !e.Editing() {
		e.reset()
	}
	return canon, nil
}
