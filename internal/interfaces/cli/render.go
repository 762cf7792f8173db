package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/suministros-cli/internal/application/collection"
	"github.com/jhoicas/suministros-cli/internal/domain/entity"
)

// table imprime filas alineadas con cabecera.
func table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// pageFooter indica si hay más páginas hacia delante o atrás.
func pageFooter[T collection.Entity](w io.Writer, s *collection.Store[T]) {
	var parts []string
	if _, ok := s.Previous(); ok {
		parts = append(parts, "anterior disponible (--pagina)")
	}
	if _, ok := s.Next(); ok {
		parts = append(parts, "siguiente disponible (--pagina)")
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, strings.Join(parts, " · "))
	}
}

// parseLine interpreta una línea producto:cantidad:precio de la CLI.
func parseLine(raw string) (producto, cantidad, precio string, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("línea %q: formato esperado producto:cantidad:precio", raw)
	}
	return parts[0], parts[1], parts[2], nil
}

// lineEditor operaciones del editor que necesita la CLI para volcar líneas.
type lineEditor interface {
	AddLine()
	UpdateLine(i int, field, value string) error
}

// applyLines añade cada --linea al editor campo a campo.
func applyLines(ed lineEditor, raw []string) error {
	for i, l := range raw {
		producto, cantidad, precio, err := parseLine(l)
		if err != nil {
			return err
		}
		ed.AddLine()
		if err := ed.UpdateLine(i, "producto", producto); err != nil {
			return err
		}
		if err := ed.UpdateLine(i, "cantidad", cantidad); err != nil {
			return err
		}
		if err := ed.UpdateLine(i, "precio_unitario", precio); err != nil {
			return err
		}
	}
	return nil
}

// renderLines imprime las líneas de un documento con subtotal por línea.
func renderLines(w io.Writer, lines []entity.LineItem) {
	rows := make([][]string, 0, len(lines))
	for _, li := range lines {
		rows = append(rows, []string{
			fmt.Sprint(li.ProductID),
			fmt.Sprint(li.Quantity),
			li.UnitPrice.StringFixed(2),
			li.Subtotal().StringFixed(2),
		})
	}
	table(w, []string{"PRODUCTO", "CANTIDAD", "PRECIO", "SUBTOTAL"}, rows)
}
