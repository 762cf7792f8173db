package main

import (
	"os"

	"github.com/joho/godotenv"

	clifc "github.com/jhoicas/suministros-cli/internal/interfaces/cli"
	"github.com/jhoicas/suministros-cli/pkg/config"
	"github.com/jhoicas/suministros-cli/pkg/logger"
)

func main() {
	// .env opcional en el directorio de trabajo; las env vars tienen prioridad.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	app := clifc.New(cfg, log)
	if err := app.Root().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}
