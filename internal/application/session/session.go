package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/pkg/jwt"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// TokenStore persistencia del token entre ejecuciones (archivo, memoria en tests).
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// API subconjunto del cliente HTTP que necesita la sesión.
// La dependencia es circular en el armado (el cliente pide el token a la
// sesión), así que se inyecta después de construir con SetAPI.
type API interface {
	CollectionURL(resource string) string
	Get(ctx context.Context, url string, out interface{}) error
	Post(ctx context.Context, url string, body, out interface{}) error
}

// Session sostiene el token de acceso vigente del proceso. Lo leen todas las
// llamadas de red; lo escribe Login y lo destruyen Logout o un Validate fallido.
type Session struct {
	mu      sync.RWMutex
	token   string
	store   TokenStore
	api     API
	onClear []func()
	log     *logger.Logger
}

// New construye la sesión recuperando el token persistido, si existe.
func New(store TokenStore, log *logger.Logger) *Session {
	s := &Session{store: store, log: log}
	if token, err := store.Load(); err == nil {
		s.token = token
	} else {
		log.Warn().Err(err).Msg("no se pudo recuperar el token persistido")
	}
	return s
}

// SetAPI inyecta el cliente HTTP una vez construido.
func (s *Session) SetAPI(api API) { s.api = api }

// OnClear registra un callback que se ejecuta al cerrar sesión
// (las colecciones en memoria se vacían ahí).
func (s *Session) OnClear(fn func()) {
	s.onClear = append(s.onClear, fn)
}

// Token devuelve el token vigente. Implementa api.TokenSource.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// ExpiresAt expiración del token según su claim exp, sin validar firma.
// Solo diagnóstico: la autoridad es el backend.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}
	exp, err := jwt.ExpiresAt(token)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}

// credentials cuerpo de POST /api/token/.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse el backend responde {"access": ...} (SimpleJWT) o {"token": ...}.
type tokenResponse struct {
	Access string `json:"access"`
	Token  string `json:"token"`
}

// Login intercambia credenciales por un token y lo persiste. Una respuesta no
// exitosa se traduce a ErrAuthentication con el detail del servidor, o un
// mensaje genérico si no lo hay; el token queda ausente.
func (s *Session) Login(ctx context.Context, username, password string) error {
	url := s.api.CollectionURL("token")
	var resp tokenResponse
	err := s.api.Post(ctx, url, credentials{Username: username, Password: password}, &resp)
	if err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) {
			detail := remote.Detail
			if detail == "" {
				detail = "credenciales inválidas"
			}
			return fmt.Errorf("%w: %s", domain.ErrAuthentication, detail)
		}
		return err
	}

	token := resp.Access
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return fmt.Errorf("%w: el servidor no devolvió token", domain.ErrAuthentication)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		// La sesión sigue siendo válida en memoria; solo falla la persistencia.
		s.log.Warn().Err(err).Msg("no se pudo persistir el token")
	}
	s.log.Info().Str("usuario", username).Msg("sesión iniciada")
	return nil
}

// Logout borra el token (memoria y store) y vacía las colecciones registradas.
// Es idempotente.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo borrar el token persistido")
	}
	for _, fn := range s.onClear {
		fn()
	}
}

// Validate comprueba el token persistido con una sonda autenticada al arrancar.
// Cualquier fallo (401, 500 o red caída) cierra la sesión: nunca se continúa
// con un token dudoso. Devuelve true si la sesión sigue siendo válida.
func (s *Session) Validate(ctx context.Context) bool {
	if _, ok := s.Token(); !ok {
		return false
	}
	probe := s.api.CollectionURL("productos")
	if err := s.api.Get(ctx, probe, nil); err != nil {
		s.log.Info().Err(err).Msg("token inválido o backend inaccesible; cerrando sesión")
		s.Logout()
		return false
	}
	return true
}
