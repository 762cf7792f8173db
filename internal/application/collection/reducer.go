package collection

// Entity cualquier registro con identificador de servidor.
type Entity interface {
	EntityID() int
}

// mergeByID incorpora el registro canónico devuelto por el backend:
// reemplaza en su posición si el id ya existe, si no lo añade al final.
// Función pura sobre un snapshot; no toca el slice de entrada.
func mergeByID[T Entity](items []T, canon T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	for i, it := range out {
		if it.EntityID() == canon.EntityID() {
			out[i] = canon
			return out
		}
	}
	return append(out, canon)
}

// removeByID elimina el registro con ese id preservando el orden relativo.
// Si el id no está, devuelve una copia sin cambios.
func removeByID[T Entity](items []T, id int) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.EntityID() != id {
			out = append(out, it)
		}
	}
	return out
}
