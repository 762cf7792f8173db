package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/suministros-cli/internal/domain/entity"
)

func (a *App) customersCommand() *cli.Command {
	return &cli.Command{
		Name:  "clientes",
		Usage: "gestión de clientes",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista una página de clientes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pagina", Usage: "URL de página (next/previous)"},
				},
				Action: func(c *cli.Context) error {
					a.customers.List(c.Context, c.String("pagina"))
					if err := a.customers.Err(); err != nil {
						fmt.Fprintln(c.App.Writer, "Error al cargar clientes.")
						return nil
					}
					rows := [][]string{}
					for _, cl := range a.customers.Items() {
						rows = append(rows, []string{fmt.Sprint(cl.ID), cl.Name, cl.Email, cl.Phone})
					}
					table(c.App.Writer, []string{"ID", "NOMBRE", "EMAIL", "TELÉFONO"}, rows)
					pageFooter(c.App.Writer, a.customers)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "crea un cliente",
				Flags: customerFlags(false),
				Action: func(c *cli.Context) error {
					return a.saveCustomer(c, 0)
				},
			},
			{
				Name:  "update",
				Usage: "actualiza un cliente existente",
				Flags: customerFlags(true),
				Action: func(c *cli.Context) error {
					return a.saveCustomer(c, c.Int("id"))
				},
			},
			{
				Name:  "delete",
				Usage: "elimina un cliente",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Required: true},
				},
				Action: func(c *cli.Context) error {
					if err := a.customers.Remove(c.Context, c.Int("id")); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Cliente eliminado.")
					return nil
				},
			},
		},
	}
}

func customerFlags(withID bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "nombre", Required: true},
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "telefono"},
		&cli.StringFlag{Name: "direccion"},
	}
	if withID {
		flags = append([]cli.Flag{&cli.IntFlag{Name: "id", Required: true}}, flags...)
	}
	return flags
}

func (a *App) saveCustomer(c *cli.Context, id int) error {
	cl := entity.Customer{
		ID:      id,
		Name:    c.String("nombre"),
		Email:   c.String("email"),
		Phone:   c.String("telefono"),
		Address: c.String("direccion"),
	}
	canon, err := a.customers.Save(c.Context, cl)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Cliente #%d guardado.\n", canon.ID)
	return nil
}
