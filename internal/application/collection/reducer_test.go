package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/suministros-cli/internal/domain/entity"
)

// Tests de caja blanca del reducer puro, independientes de la red.

func TestMergeByID_ReemplazaPreservandoOrden(t *testing.T) {
	items := []entity.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}

	out := mergeByID(items, entity.Product{ID: 2, Name: "B"})

	require.Len(t, out, 3)
	assert.Equal(t, []int{1, 2, 3}, ids(out), "el orden relativo no cambia")
	assert.Equal(t, "B", out[1].Name)
	assert.Equal(t, "b", items[1].Name, "el snapshot de entrada no se muta")
}

func TestMergeByID_AnadeAlFinalSiNoExiste(t *testing.T) {
	items := []entity.Product{{ID: 1}}
	out := mergeByID(items, entity.Product{ID: 9})
	assert.Equal(t, []int{1, 9}, ids(out))
}

func TestMergeByID_SobreColeccionVacia(t *testing.T) {
	out := mergeByID(nil, entity.Product{ID: 1})
	assert.Equal(t, []int{1}, ids(out))
}

func TestRemoveByID_PreservaOrdenYToleraAusentes(t *testing.T) {
	items := []entity.Product{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Equal(t, []int{1, 3}, ids(removeByID(items, 2)))
	assert.Equal(t, []int{1, 2, 3}, ids(removeByID(items, 99)), "id ausente: copia sin cambios")
	assert.Len(t, items, 3, "el snapshot de entrada no se muta")
}

func ids(items []entity.Product) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
