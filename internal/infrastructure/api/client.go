package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// maxBodySize límite de lectura del cuerpo de respuesta (las páginas del
// backend son pequeñas; esto protege contra respuestas anómalas).
const maxBodySize = 1 << 20

// TokenSource entrega el token de acceso vigente, si lo hay.
// Lo implementa session.Session; el cliente HTTP no guarda el token.
type TokenSource interface {
	Token() (string, bool)
}

// Client cliente HTTP del backend de suministros. Adjunta el header
// Authorization: Bearer en cada petición si hay token, y traduce las
// respuestas no exitosas a errores de dominio (RemoteError / NetworkError).
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *logger.Logger
}

// New construye el cliente. baseURL sin barra final, ej. http://localhost:8000.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// CollectionURL URL de la colección de un recurso: /api/{recurso}/.
func (c *Client) CollectionURL(resource string) string {
	return fmt.Sprintf("%s/api/%s/", c.baseURL, resource)
}

// ItemURL URL de un elemento: /api/{recurso}/{id}/.
func (c *Client) ItemURL(resource string, id int) string {
	return fmt.Sprintf("%s/api/%s/%d/", c.baseURL, resource, id)
}

// Resolve normaliza una URL de paginación (next/previous). El backend las
// devuelve absolutas; si llegara una relativa se resuelve contra baseURL.
func (c *Client) Resolve(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.IsAbs() {
		return pageURL
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return pageURL
	}
	return base.ResolveReference(u).String()
}

// errorBody forma del cuerpo de error de DRF: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// Do ejecuta una petición JSON y decodifica la respuesta en out (si out != nil
// y hay cuerpo). body se serializa como JSON si no es nil.
//
// Mapeo de errores:
//   - fallo de transporte -> *domain.NetworkError
//   - estado no 2xx       -> *domain.RemoteError con el detail del servidor
func (c *Client) Do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	c.log.Debug().
		Str("req_id", reqID).
		Str("method", method).
		Str("url", rawURL).
		Msg("petición al backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Str("req_id", reqID).Err(err).Msg("fallo de transporte")
		return &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &domain.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := &domain.RemoteError{Status: resp.StatusCode}
		var eb errorBody
		if jsonErr := json.Unmarshal(rawBody, &eb); jsonErr == nil {
			remote.Detail = eb.Detail
		}
		c.log.Warn().
			Str("req_id", reqID).
			Int("status", resp.StatusCode).
			Str("detail", remote.Detail).
			Msg("respuesta no exitosa")
		return remote
	}

	if out == nil || len(rawBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("api: deserializar respuesta: %w", err)
	}
	return nil
}

// Get, Post, Put, Delete atajos sobre Do.
func (c *Client) Get(ctx context.Context, url string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) Post(ctx context.Context, url string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, url, body, out)
}

func (c *Client) Put(ctx context.Context, url string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, url, body, out)
}

func (c *Client) Delete(ctx context.Context, url string) error {
	return c.Do(ctx, http.MethodDelete, url, nil, nil)
}
