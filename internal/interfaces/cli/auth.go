package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (a *App) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "inicia sesión y guarda el token de acceso",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "usuario", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "contrasena", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			if err := a.sess.Login(c.Context, c.String("usuario"), c.String("contrasena")); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Sesión iniciada.")
			return nil
		},
	}
}

func (a *App) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "cierra la sesión y borra el token guardado",
		Action: func(c *cli.Context) error {
			a.sess.Logout()
			fmt.Fprintln(c.App.Writer, "Sesión cerrada.")
			return nil
		},
	}
}

func (a *App) statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "estado",
		Usage: "muestra el estado de la sesión",
		Action: func(c *cli.Context) error {
			if _, ok := a.sess.Token(); !ok {
				fmt.Fprintln(c.App.Writer, "Sin sesión activa.")
				return nil
			}
			if exp, ok := a.sess.ExpiresAt(); ok {
				fmt.Fprintf(c.App.Writer, "Sesión activa; el token expira el %s.\n", exp.Format("2006-01-02 15:04"))
			} else {
				fmt.Fprintln(c.App.Writer, "Sesión activa.")
			}
			return nil
		},
	}
}
