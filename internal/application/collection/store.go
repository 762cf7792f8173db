package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/suministros-cli/internal/domain"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/api"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// Tokens consulta de sesión; lo implementa session.Session.
type Tokens interface {
	Token() (string, bool)
}

// Store colección en memoria de un tipo de entidad (productos, clientes,
// proveedores, ventas o compras), sincronizada con el backend por páginas.
// Una instancia por recurso.
type Store[T Entity] struct {
	mu       sync.Mutex
	client   *api.Client
	tokens   Tokens
	resource string
	log      *logger.Logger

	items   []T
	next    *string
	prev    *string
	lastErr error

	// seq numera las peticiones List; una respuesta que llega después de
	// haberse emitido otra petición más nueva se descarta sin renderizar.
	seq uint64
}

// New construye el store de un recurso, ej. "productos".
func New[T Entity](client *api.Client, tokens Tokens, resource string, log *logger.Logger) *Store[T] {
	return &Store[T]{
		client:   client,
		tokens:   tokens,
		resource: resource,
		log:      log,
	}
}

// Items snapshot de la colección cargada.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ByID busca en el snapshot cargado.
func (s *Store[T]) ByID(id int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Err último error de carga; nil si la última List fue exitosa.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Next y Previous cursores de paginación de la última página cargada.
func (s *Store[T]) Next() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next == nil {
		return "", false
	}
	return *s.next, true
}

func (s *Store[T]) Previous() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prev == nil {
		return "", false
	}
	return *s.prev, true
}

// Reset vacía la colección; se registra en Session.OnClear.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.next = nil
	s.prev = nil
	s.lastErr = nil
}

// List carga una página y reemplaza la colección con sus resultados.
// pageURL vacío carga la primera página. Sin token es un no-op silencioso.
// Ante cualquier fallo la colección queda vacía con el error registrado en
// Err(); List nunca propaga el fallo de red al llamador.
func (s *Store[T]) List(ctx context.Context, pageURL string) {
	if _, ok := s.tokens.Token(); !ok {
		return
	}
	if pageURL == "" {
		pageURL = s.client.CollectionURL(s.resource)
	} else {
		pageURL = s.client.Resolve(pageURL)
	}

	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	s.mu.Unlock()

	page, err := api.FetchPage[T](ctx, s.client, pageURL)

	s.mu.Lock()
	defer s.mu.Unlock()
	if mySeq != s.seq {
		// Llegó después de emitirse una petición más reciente.
		s.log.Debug().Str("url", pageURL).Msg("página obsoleta descartada")
		return
	}
	if err != nil {
		s.log.Warn().Str("recurso", s.resource).Err(err).Msg("error al cargar la colección")
		s.items = nil
		s.next = nil
		s.prev = nil
		s.lastErr = err
		return
	}
	s.items = page.Results
	s.next = page.Next
	s.prev = page.Previous
	s.lastErr = nil
}

// Save crea (id == 0, POST) o actualiza (PUT) el registro. Con éxito el
// registro canónico del servidor se incorpora a la colección por id; ante
// fallo la colección no se toca y se devuelve el detail del servidor.
func (s *Store[T]) Save(ctx context.Context, item T) (T, error) {
	var zero T
	if _, ok := s.tokens.Token(); !ok {
		return zero, domain.ErrAuthentication
	}
	if v, ok := any(item).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}

	var canon T
	var err error
	if item.EntityID() == 0 {
		err = s.client.Post(ctx, s.client.CollectionURL(s.resource), item, &canon)
	} else {
		err = s.client.Put(ctx, s.client.ItemURL(s.resource, item.EntityID()), item, &canon)
	}
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	s.items = mergeByID(s.items, canon)
	s.mu.Unlock()
	return canon, nil
}

// Remove elimina el registro remoto y localmente. Sin token o con id cero es
// una violación de contrato del llamador (ErrPrecondition), no se emite
// ninguna petición.
func (s *Store[T]) Remove(ctx context.Context, id int) error {
	if _, ok := s.tokens.Token(); !ok {
		return fmt.Errorf("%w: no hay sesión activa", domain.ErrPrecondition)
	}
	if id == 0 {
		return fmt.Errorf("%w: id no definido", domain.ErrPrecondition)
	}
	if err := s.client.Delete(ctx, s.client.ItemURL(s.resource, id)); err != nil {
		return err
	}
	s.mu.Lock()
	s.items = removeByID(s.items, id)
	s.mu.Unlock()
	return nil
}

// Fetch descarga un registro con todo su detalle anidado; se usa para
// precargar el editor de ventas y compras antes de editar.
func (s *Store[T]) Fetch(ctx context.Context, id int) (T, error) {
	var item T
	if _, ok := s.tokens.Token(); !ok {
		return item, domain.ErrAuthentication
	}
	if err := s.client.Get(ctx, s.client.ItemURL(s.resource, id), &item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}
