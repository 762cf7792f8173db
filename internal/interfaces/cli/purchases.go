package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/suministros-cli/internal/application/editor"
)

func (a *App) purchasesCommand() *cli.Command {
	return &cli.Command{
		Name:  "compras",
		Usage: "gestión de compras",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista una página de compras",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pagina", Usage: "URL de página (next/previous)"},
				},
				Action: func(c *cli.Context) error {
					a.purchases.List(c.Context, c.String("pagina"))
					if err := a.purchases.Err(); err != nil {
						fmt.Fprintln(c.App.Writer, "Error al cargar compras.")
						return nil
					}
					rows := [][]string{}
					for _, compra := range a.purchases.Items() {
						rows = append(rows, []string{
							fmt.Sprint(compra.ID), fmt.Sprint(compra.SupplierID), compra.Date, compra.Total.StringFixed(2),
						})
					}
					table(c.App.Writer, []string{"ID", "PROVEEDOR", "FECHA", "TOTAL"}, rows)
					pageFooter(c.App.Writer, a.purchases)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "muestra una compra con sus líneas",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					compra, err := a.purchases.Fetch(c.Context, c.Int("id"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Compra #%d · proveedor %d · %s · total %s\n",
						compra.ID, compra.SupplierID, compra.Date, compra.Total.StringFixed(2))
					renderLines(c.App.Writer, compra.Lines)
					return nil
				},
			},
			{
				Name:  "new",
				Usage: "registra una compra nueva",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "proveedor", Required: true},
					&cli.StringFlag{Name: "fecha", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringSliceFlag{Name: "linea", Required: true, Usage: "producto:cantidad:precio (repetible)"},
				},
				Action: func(c *cli.Context) error {
					ed := editor.NewPurchase(a.client, a.sess, a.log)
					return a.submitPurchase(c, ed)
				},
			},
			{
				Name:  "edit",
				Usage: "reemplaza una compra existente",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
					&cli.IntFlag{Name: "proveedor", Required: true},
					&cli.StringFlag{Name: "fecha", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringSliceFlag{Name: "linea", Required: true, Usage: "producto:cantidad:precio (repetible)"},
				},
				Action: func(c *cli.Context) error {
					compra, err := a.purchases.Fetch(c.Context, c.Int("id"))
					if err != nil {
						return err
					}
					ed := editor.EditPurchase(a.client, a.sess, compra, a.log)
					for range ed.Lines() {
						if err := ed.RemoveLine(0); err != nil {
							return err
						}
					}
					return a.submitPurchase(c, ed)
				},
			},
			{
				Name:  "delete",
				Usage: "elimina una compra",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.purchases.Remove(c.Context, c.Int("id")); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Compra eliminada.")
					return nil
				},
			},
		},
	}
}

func (a *App) submitPurchase(c *cli.Context, ed *editor.PurchaseEditor) error {
	ed.SetCounterparty(c.Int("proveedor"))
	ed.SetDate(c.String("fecha"))
	if err := applyLines(ed, c.StringSlice("linea")); err != nil {
		return err
	}
	canon, err := ed.Submit(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Compra #%d guardada · total %s\n", canon.ID, canon.Total.StringFixed(2))
	return nil
}
