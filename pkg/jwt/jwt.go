package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// El cliente nunca valida firmas: el token lo emite y verifica el backend.
// Aquí solo se inspeccionan claims para diagnóstico (expiración, subject).

// Claims claims estándar del token de acceso emitido por el backend.
type Claims struct {
	jwt.RegisteredClaims
	UserID interface{} `json:"user_id,omitempty"`
}

// ExpiresAt devuelve la expiración del token sin validar la firma.
// Retorna zero time si el token no es un JWT o no trae claim exp.
func ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := inspect(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("jwt: el token no incluye claim exp")
	}
	return claims.ExpiresAt.Time, nil
}

// Expired indica si el token ya venció según su claim exp.
// Un token ilegible o sin exp se reporta como no expirado: la autoridad
// es el backend, que responderá 401 si procede.
func Expired(tokenString string, now time.Time) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return exp.Before(now)
}

func inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	return claims, nil
}
