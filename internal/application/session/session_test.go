package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/suministros-cli/internal/application/session"
	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/api"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore TokenStore en memoria; evita tocar disco en los tests.
type memStore struct {
	token string
}

func (m *memStore) Load() (string, error)   { return m.token, nil }
func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Clear() error            { m.token = ""; return nil }

func newSession(t *testing.T, baseURL string, store *memStore) *session.Session {
	t.Helper()
	sess := session.New(store, logger.Nop())
	client := api.New(baseURL, 5*time.Second, sess, logger.Nop())
	sess.SetAPI(client)
	return sess
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoGuardaYPersisteElToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/token/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access": "jwt-abc"}`))
	}))
	t.Cleanup(srv.Close)

	store := &memStore{}
	sess := newSession(t, srv.URL, store)

	require.NoError(t, sess.Login(context.Background(), "ana", "secreta"))

	token, ok := sess.Token()
	require.True(t, ok)
	assert.Equal(t, "jwt-abc", token)
	assert.Equal(t, "jwt-abc", store.token, "el token debe persistirse en el store")
}

// El backend antiguo responde {"token": ...} en vez de {"access": ...}.
func TestLogin_AceptaClaveTokenAlternativa(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "jwt-alt"}`))
	}))
	t.Cleanup(srv.Close)

	sess := newSession(t, srv.URL, &memStore{})
	require.NoError(t, sess.Login(context.Background(), "ana", "secreta"))
	token, _ := sess.Token()
	assert.Equal(t, "jwt-alt", token)
}

// Credenciales inválidas: 401 con detail → ErrAuthentication con el mensaje
// del servidor, y el token sigue ausente.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))
	t.Cleanup(srv.Close)

	store := &memStore{}
	sess := newSession(t, srv.URL, store)

	err := sess.Login(context.Background(), "a", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
	assert.Contains(t, err.Error(), "Invalid credentials", "debe llevar el detail del servidor")

	_, ok := sess.Token()
	assert.False(t, ok, "el token queda ausente tras un login fallido")
	assert.Empty(t, store.token)
}

// Sin detail en la respuesta se usa el mensaje genérico.
func TestLogin_FalloSinDetalleUsaMensajeGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	sess := newSession(t, srv.URL, &memStore{})
	err := sess.Login(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales inválidas")
}

// Un fallo de red no es un problema de credenciales.
func TestLogin_CaidaDeRedNoEsErrorDeAutenticacion(t *testing.T) {
	sess := newSession(t, "http://127.0.0.1:1", &memStore{})
	err := sess.Login(context.Background(), "a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.NotErrorIs(t, err, domain.ErrAuthentication)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout y ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_BorraTokenVaciaColeccionesYEsIdempotente(t *testing.T) {
	store := &memStore{token: "jwt-persistido"}
	sess := newSession(t, "http://127.0.0.1:1", store)

	vaciadas := 0
	sess.OnClear(func() { vaciadas++ })

	_, ok := sess.Token()
	require.True(t, ok, "el token persistido se recupera al construir la sesión")

	sess.Logout()
	_, ok = sess.Token()
	assert.False(t, ok)
	assert.Empty(t, store.token)
	assert.Equal(t, 1, vaciadas, "las colecciones registradas se vacían")

	sess.Logout()
	assert.Equal(t, 2, vaciadas, "logout es idempotente y puede repetirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate (sonda de arranque, fail-closed)
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_TokenAceptadoMantieneLaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/productos/", r.URL.Path, "la sonda usa un endpoint protegido")
		require.Equal(t, "Bearer jwt-ok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [], "next": null, "previous": null}`))
	}))
	t.Cleanup(srv.Close)

	sess := newSession(t, srv.URL, &memStore{token: "jwt-ok"})
	assert.True(t, sess.Validate(context.Background()))
	_, ok := sess.Token()
	assert.True(t, ok)
}

func TestValidate_TokenRechazadoCierraLaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	store := &memStore{token: "jwt-caducado"}
	sess := newSession(t, srv.URL, store)

	assert.False(t, sess.Validate(context.Background()))
	_, ok := sess.Token()
	assert.False(t, ok, "un 401 en la sonda destruye la sesión")
	assert.Empty(t, store.token, "también el token persistido")
}

// Fail-closed: si la sonda ni siquiera llega al backend, tampoco se continúa
// con un token dudoso.
func TestValidate_BackendInaccesibleTambienCierra(t *testing.T) {
	store := &memStore{token: "jwt-dudoso"}
	sess := newSession(t, "http://127.0.0.1:1", store)

	assert.False(t, sess.Validate(context.Background()))
	_, ok := sess.Token()
	assert.False(t, ok)
}

func TestValidate_SinTokenNoSondea(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("sin token no debe emitirse ninguna sonda")
	}))
	t.Cleanup(srv.Close)

	sess := newSession(t, srv.URL, &memStore{})
	assert.False(t, sess.Validate(context.Background()))
}
