package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/suministros-cli/internal/domain"
)

// Supplier representa un proveedor al que se le registran compras.
type Supplier struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto,omitempty"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
}

// EntityID identificador para la colección en memoria.
func (s Supplier) EntityID() int { return s.ID }

// Validate reglas locales previas al envío. A diferencia del cliente,
// el email del proveedor es opcional, pero se valida si se indica.
func (s Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if s.Email != "" && !strings.Contains(s.Email, "@") {
		return fmt.Errorf("%w: introduce un email válido", domain.ErrValidation)
	}
	if err := ValidatePhone(s.Phone); err != nil {
		return err
	}
	return nil
}
