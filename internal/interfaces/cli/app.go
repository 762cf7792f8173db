package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/suministros-cli/internal/application/collection"
	"github.com/jhoicas/suministros-cli/internal/application/session"
	"github.com/jhoicas/suministros-cli/internal/domain/entity"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/api"
	"github.com/jhoicas/suministros-cli/internal/infrastructure/tokenfile"
	"github.com/jhoicas/suministros-cli/pkg/config"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

// App agrupa la sesión, el cliente HTTP y las colecciones por entidad que
// comparten todos los comandos.
type App struct {
	cfg *config.Config
	log *logger.Logger

	sess   *session.Session
	client *api.Client

	products  *collection.Store[entity.Product]
	customers *collection.Store[entity.Customer]
	suppliers *collection.Store[entity.Supplier]
	sales     *collection.Store[entity.Sale]
	purchases *collection.Store[entity.Purchase]
}

// New arma el grafo de dependencias: token persistido -> sesión -> cliente
// HTTP -> colecciones. La sesión vacía las colecciones al cerrar.
func New(cfg *config.Config, log *logger.Logger) *App {
	sess := session.New(tokenfile.New(cfg.API.TokenPath), log)
	client := api.New(cfg.API.BaseURL, cfg.API.HTTPTimeout(), sess, log)
	sess.SetAPI(client)

	a := &App{
		cfg:       cfg,
		log:       log,
		sess:      sess,
		client:    client,
		products:  collection.New[entity.Product](client, sess, "productos", log),
		customers: collection.New[entity.Customer](client, sess, "clientes", log),
		suppliers: collection.New[entity.Supplier](client, sess, "proveedores", log),
		sales:     collection.New[entity.Sale](client, sess, "ventas", log),
		purchases: collection.New[entity.Purchase](client, sess, "compras", log),
	}
	sess.OnClear(a.products.Reset)
	sess.OnClear(a.customers.Reset)
	sess.OnClear(a.suppliers.Reset)
	sess.OnClear(a.sales.Reset)
	sess.OnClear(a.purchases.Reset)
	return a
}

// Root construye la aplicación de línea de comandos.
func (a *App) Root() *cli.App {
	return &cli.App{
		Name:  a.cfg.App.Name,
		Usage: "gestión de inventario y ventas contra el backend de suministros",
		Before: func(c *cli.Context) error {
			// Sonda de arranque: un token persistido que el backend ya no
			// acepta (o un backend inaccesible) cierra la sesión. Los
			// comandos de autenticación no la necesitan.
			if c.Args().First() != "login" && c.Args().First() != "logout" {
				a.sess.Validate(c.Context)
			}
			return nil
		},
		Commands: []*cli.Command{
			a.loginCommand(),
			a.logoutCommand(),
			a.statusCommand(),
			a.productsCommand(),
			a.customersCommand(),
			a.suppliersCommand(),
			a.salesCommand(),
			a.purchasesCommand(),
		},
	}
}
