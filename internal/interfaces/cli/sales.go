package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/suministros-cli/internal/application/editor"
)

func (a *App) salesCommand() *cli.Command {
	return &cli.Command{
		Name:  "ventas",
		Usage: "gestión de ventas",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista una página de ventas",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pagina", Usage: "URL de página (next/previous)"},
				},
				Action: func(c *cli.Context) error {
					a.sales.List(c.Context, c.String("pagina"))
					if err := a.sales.Err(); err != nil {
						fmt.Fprintln(c.App.Writer, "Error al cargar ventas.")
						return nil
					}
					rows := [][]string{}
					for _, v := range a.sales.Items() {
						rows = append(rows, []string{
							fmt.Sprint(v.ID), fmt.Sprint(v.CustomerID), v.Date, v.Total.StringFixed(2),
						})
					}
					table(c.App.Writer, []string{"ID", "CLIENTE", "FECHA", "TOTAL"}, rows)
					pageFooter(c.App.Writer, a.sales)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "muestra una venta con sus líneas",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					venta, err := a.sales.Fetch(c.Context, c.Int("id"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Venta #%d · cliente %d · %s · total %s\n",
						venta.ID, venta.CustomerID, venta.Date, venta.Total.StringFixed(2))
					renderLines(c.App.Writer, venta.Lines)
					return nil
				},
			},
			{
				Name:  "new",
				Usage: "registra una venta nueva",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "cliente", Required: true},
					&cli.StringFlag{Name: "fecha", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringSliceFlag{Name: "linea", Required: true, Usage: "producto:cantidad:precio (repetible)"},
				},
				Action: func(c *cli.Context) error {
					// El snapshot de productos alimenta la comprobación de stock.
					a.products.List(c.Context, "")
					ed := editor.NewSale(a.client, a.sess, a.products, a.log)
					return a.submitSale(c, ed)
				},
			},
			{
				Name:  "edit",
				Usage: "reemplaza una venta existente",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
					&cli.IntFlag{Name: "cliente", Required: true},
					&cli.StringFlag{Name: "fecha", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringSliceFlag{Name: "linea", Required: true, Usage: "producto:cantidad:precio (repetible)"},
				},
				Action: func(c *cli.Context) error {
					venta, err := a.sales.Fetch(c.Context, c.Int("id"))
					if err != nil {
						return err
					}
					a.products.List(c.Context, "")
					ed := editor.EditSale(a.client, a.sess, a.products, venta, a.log)
					// Las líneas de la CLI sustituyen a las precargadas.
					for range ed.Lines() {
						if err := ed.RemoveLine(0); err != nil {
							return err
						}
					}
					return a.submitSale(c, ed)
				},
			},
			{
				Name:  "delete",
				Usage: "elimina una venta",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.sales.Remove(c.Context, c.Int("id")); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Venta eliminada.")
					return nil
				},
			},
		},
	}
}

func (a *App) submitSale(c *cli.Context, ed *editor.SaleEditor) error {
	ed.SetCounterparty(c.Int("cliente"))
	ed.SetDate(c.String("fecha"))
	if err := applyLines(ed, c.StringSlice("linea")); err != nil {
		return err
	}
	canon, err := ed.Submit(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Venta #%d guardada · total %s\n", canon.ID, canon.Total.StringFixed(2))
	return nil
}
