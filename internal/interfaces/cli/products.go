package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/suministros-cli/internal/domain/entity"
)

func (a *App) productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "productos",
		Usage: "gestión de productos",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista una página de productos",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pagina", Usage: "URL de página (next/previous)"},
				},
				Action: func(c *cli.Context) error {
					a.products.List(c.Context, c.String("pagina"))
					if err := a.products.Err(); err != nil {
						fmt.Fprintln(c.App.Writer, "Error al cargar productos.")
						return nil
					}
					rows := [][]string{}
					for _, p := range a.products.Items() {
						rows = append(rows, []string{
							fmt.Sprint(p.ID), p.Name, p.Description,
							p.Price.StringFixed(2), fmt.Sprint(p.Stock),
						})
					}
					table(c.App.Writer, []string{"ID", "NOMBRE", "DESCRIPCIÓN", "PRECIO", "STOCK"}, rows)
					pageFooter(c.App.Writer, a.products)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "crea un producto",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nombre", Required: true},
					&cli.StringFlag{Name: "descripcion"},
					&cli.StringFlag{Name: "precio", Required: true},
					&cli.IntFlag{Name: "stock"},
				},
				Action: func(c *cli.Context) error {
					return a.saveProduct(c, 0)
				},
			},
			{
				Name:  "update",
				Usage: "actualiza un producto existente",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "nombre", Required: true},
					&cli.StringFlag{Name: "descripcion"},
					&cli.StringFlag{Name: "precio", Required: true},
					&cli.IntFlag{Name: "stock"},
				},
				Action: func(c *cli.Context) error {
					return a.saveProduct(c, c.Int("id"))
				},
			},
			{
				Name:  "delete",
				Usage: "elimina un producto",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.products.Remove(c.Context, c.Int("id")); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Producto eliminado.")
					return nil
				},
			},
		},
	}
}

func (a *App) saveProduct(c *cli.Context, id int) error {
	precio, err := decimal.NewFromString(c.String("precio"))
	if err != nil {
		return fmt.Errorf("precio inválido: %q", c.String("precio"))
	}
	p := entity.Product{
		ID:          id,
		Name:        c.String("nombre"),
		Description: c.String("descripcion"),
		Price:       precio,
		Stock:       c.Int("stock"),
	}
	canon, err := a.products.Save(c.Context, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Producto #%d guardado.\n", canon.ID)
	return nil
}
