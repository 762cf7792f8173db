package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/suministros-cli/pkg/jwt"
)

// tokenConExp genera un JWT firmado con una clave cualquiera; la inspección
// no valida firmas, solo lee claims.
func tokenConExp(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(exp)}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("cualquiera"))
	require.NoError(t, err)
	return tok
}

func TestExpiresAt_LeeElClaimSinValidarFirma(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	got, err := pkgjwt.ExpiresAt(tokenConExp(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got), "esperaba %s, fue %s", exp, got)
}

func TestExpiresAt_TokenIlegible(t *testing.T) {
	_, err := pkgjwt.ExpiresAt("no-es-un-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, pkgjwt.Expired(tokenConExp(t, now.Add(-time.Minute)), now))
	assert.False(t, pkgjwt.Expired(tokenConExp(t, now.Add(time.Minute)), now))
	// Un token opaco no se da por expirado: decide el backend.
	assert.False(t, pkgjwt.Expired("token-opaco", now))
}
