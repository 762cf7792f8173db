package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/suministros-cli/internal/domain/entity"
)

func (a *App) suppliersCommand() *cli.Command {
	return &cli.Command{
		Name:  "proveedores",
		Usage: "gestión de proveedores",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista una página de proveedores",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pagina", Usage: "URL de página (next/previous)"},
				},
				Action: func(c *cli.Context) error {
					a.suppliers.List(c.Context, c.String("pagina"))
					if err := a.suppliers.Err(); err != nil {
						fmt.Fprintln(c.App.Writer, "Error al cargar proveedores.")
						return nil
					}
					rows := [][]string{}
					for _, s := range a.suppliers.Items() {
						rows = append(rows, []string{fmt.Sprint(s.ID), s.Name, s.Contact, s.Phone, s.Email})
					}
					table(c.App.Writer, []string{"ID", "NOMBRE", "CONTACTO", "TELÉFONO", "EMAIL"}, rows)
					pageFooter(c.App.Writer, a.suppliers)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "crea un proveedor",
				Flags: supplierFlags(false),
				Action: func(c *cli.Context) error {
					return a.saveSupplier(c, 0)
				},
			},
			{
				Name:  "update",
				Usage: "actualiza un proveedor existente",
				Flags: supplierFlags(true),
				Action: func(c *cli.Context) error {
					return a.saveSupplier(c, c.Int("id"))
				},
			},
			{
				Name:  "delete",
				Usage: "elimina un proveedor",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.suppliers.Remove(c.Context, c.Int("id")); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Proveedor eliminado.")
					return nil
				},
			},
		},
	}
}

func supplierFlags(withID bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "nombre", Required: true},
		&cli.StringFlag{Name: "contacto"},
		&cli.StringFlag{Name: "telefono"},
		&cli.StringFlag{Name: "email"},
	}
	if withID {
		flags = append([]cli.Flag{&cli.IntFlag{Name: "id", Required: true}}, flags...)
	}
	return flags
}

func (a *App) saveSupplier(c *cli.Context, id int) error {
	s := entity.Supplier{
		ID:      id,
		Name:    c.String("nombre"),
		Contact: c.String("contacto"),
		Phone:   c.String("telefono"),
		Email:   c.String("email"),
	}
	canon, err := a.suppliers.Save(c.Context, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Proveedor #%d guardado.\n", canon.ID)
	return nil
}
