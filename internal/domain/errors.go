package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrAuthentication = errors.New("debes iniciar sesión")
	ErrValidation     = errors.New("datos inválidos")
	ErrPrecondition   = errors.New("precondición incumplida")
	ErrRemote         = errors.New("el servidor rechazó la operación")
	ErrNetwork        = errors.New("no se pudo conectar con el servidor")
	ErrNotFound       = errors.New("recurso no encontrado")
)

// RemoteError respuesta no exitosa del backend, con el detail del servidor si lo envió.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Is permite errors.Is(err, ErrRemote), y ErrNotFound para 404.
func (e *RemoteError) Is(target error) bool {
	if target == ErrRemote {
		return true
	}
	return target == ErrNotFound && e.Status == 404
}

// NetworkError la petición no llegó a completarse (DNS, conexión, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fallo de red: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrNetwork).
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
