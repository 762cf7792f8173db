package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/suministros-cli/internal/domain"
)

// Customer representa un cliente al que se le registran ventas.
type Customer struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion,omitempty"`
}

// EntityID identificador para la colección en memoria.
func (c Customer) EntityID() int { return c.ID }

// Validate reglas locales previas al envío: nombre y email obligatorios,
// teléfono de 9–10 dígitos si se indica.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: introduce un email válido", domain.ErrValidation)
	}
	if err := ValidatePhone(c.Phone); err != nil {
		return err
	}
	return nil
}
