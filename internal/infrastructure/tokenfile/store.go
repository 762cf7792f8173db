package tokenfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persiste el token de acceso en un archivo plano dentro del perfil
// del usuario, de modo que la sesión sobrevive reinicios del proceso.
type Store struct {
	path string
}

// New construye el store. El archivo se crea al primer Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Load devuelve el token guardado, o "" si no hay ninguno.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenfile: leer %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save escribe el token. Modo 0600: el token es una credencial.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("tokenfile: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("tokenfile: escribir %s: %w", s.path, err)
	}
	return nil
}

// Clear elimina el token; es idempotente.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenfile: eliminar %s: %w", s.path, err)
	}
	return nil
}
