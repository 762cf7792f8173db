package tokenfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/suministros-cli/internal/infrastructure/tokenfile"
)

func TestStore_CicloCompleto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suministros", "token")
	s := tokenfile.New(path)

	// Vacío al principio.
	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Guardar y releer.
	require.NoError(t, s.Save("jwt-abc"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	// El archivo es una credencial: solo el dueño puede leerlo.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Clear es idempotente.
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_SobrescribeTokenAnterior(t *testing.T) {
	s := tokenfile.New(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, s.Save("viejo"))
	require.NoError(t, s.Save("nuevo"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "nuevo", token)
}
