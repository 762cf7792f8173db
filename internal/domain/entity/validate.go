package entity

import (
	"fmt"
	"regexp"

	"github.com/jhoicas/suministros-cli/internal/domain"
)

// phoneRe teléfono nacional: 9 o 10 dígitos, sin prefijos ni separadores.
var phoneRe = regexp.MustCompile(`^\d{9,10}$`)

// ValidatePhone acepta vacío (campo opcional) o 9–10 dígitos numéricos.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(phone) {
		return fmt.Errorf("%w: teléfono: 9–10 dígitos numéricos", domain.ErrValidation)
	}
	return nil
}
