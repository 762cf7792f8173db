package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/internal/domain/entity"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/api"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

type fakeTokens struct {
	token string
}

func (f *fakeTokens) Token() (string, bool) { return f.token, f.token != "" }

func TestDo_AdjuntaBearerSoloConToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	conToken := api.New(srv.URL, time.Second, &fakeTokens{token: "abc"}, logger.Nop())
	require.NoError(t, conToken.Get(context.Background(), srv.URL+"/api/productos/", nil))
	assert.Equal(t, "Bearer abc", got)

	sinToken := api.New(srv.URL, time.Second, &fakeTokens{}, logger.Nop())
	require.NoError(t, sinToken.Get(context.Background(), srv.URL+"/api/token/", nil))
	assert.Empty(t, got, "sin sesión no se envía el header Authorization")
}

func TestDo_MapeaRespuestaNoExitosaARemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "Acceso denegado"}`))
	}))
	t.Cleanup(srv.Close)

	c := api.New(srv.URL, time.Second, &fakeTokens{token: "x"}, logger.Nop())
	err := c.Get(context.Background(), srv.URL+"/api/productos/", nil)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusForbidden, remote.Status)
	assert.Equal(t, "Acceso denegado", remote.Detail)
	assert.ErrorIs(t, err, domain.ErrRemote)
}

func TestDo_404TambienEsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	c := api.New(srv.URL, time.Second, &fakeTokens{token: "x"}, logger.Nop())
	err := c.Get(context.Background(), srv.URL+"/api/productos/99/", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrRemote)
}

func TestDo_FalloDeTransporteEsNetworkError(t *testing.T) {
	c := api.New("http://127.0.0.1:1", time.Second, &fakeTokens{}, logger.Nop())
	err := c.Get(context.Background(), "http://127.0.0.1:1/api/productos/", nil)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestURLs(t *testing.T) {
	c := api.New("http://localhost:8000/", time.Second, &fakeTokens{}, logger.Nop())
	assert.Equal(t, "http://localhost:8000/api/ventas/", c.CollectionURL("ventas"))
	assert.Equal(t, "http://localhost:8000/api/ventas/7/", c.ItemURL("ventas", 7))
	assert.Equal(t, "http://localhost:8000/api/ventas/?page=2", c.Resolve("/api/ventas/?page=2"),
		"una URL relativa se resuelve contra la base")
	assert.Equal(t, "http://otro:9000/api/ventas/?page=2", c.Resolve("http://otro:9000/api/ventas/?page=2"),
		"una URL absoluta se respeta tal cual")
}

func TestFetchPage_SobreDePaginacion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{"id": 1, "nombre": "Tornillos", "precio": "2.50", "stock": 10}],
			"next": "http://x/api/productos/?page=2",
			"previous": null
		}`))
	}))
	t.Cleanup(srv.Close)

	c := api.New(srv.URL, time.Second, &fakeTokens{token: "x"}, logger.Nop())
	page, err := api.FetchPage[entity.Product](context.Background(), c, srv.URL+"/api/productos/")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Tornillos", page.Results[0].Name)
	require.NotNil(t, page.Next)
	assert.Nil(t, page.Previous)
}

// Algunos despliegues sin paginación devuelven el array plano.
func TestFetchPage_ArrayPlano(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "nombre": "Tuercas", "precio": "1.00", "stock": 5}]`))
	}))
	t.Cleanup(srv.Close)

	c := api.New(srv.URL, time.Second, &fakeTokens{token: "x"}, logger.Nop())
	page, err := api.FetchPage[entity.Product](context.Background(), c, srv.URL+"/api/productos/")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Nil(t, page.Next)
}
