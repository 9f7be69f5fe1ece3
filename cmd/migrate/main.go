package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/logger"
	"github.com/jhoicas/mercado-api/pkg/migrate"
)

func main() {
	cmd := flag.String("cmd", "up", "comando: up|down|status|redo|reset|version|validate")
	version := flag.String("version", "", "versión destino (YYYYMMDDHHMMSS) para -cmd=version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Info().Str("cmd", *cmd).Msg("migrate")

	if *cmd == "validate" {
		if err := migrate.Validate(migrate.FS); err != nil {
			log.Fatal().Err(err).Msg("validación de migraciones")
		}
		fmt.Println("migraciones válidas")
		return
	}

	db, err := migrate.Open(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer db.Close()

	ctx := context.Background()
	switch *cmd {
	case "up", "down", "status", "redo", "reset":
		err = migrate.Run(ctx, db, *cmd)
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "falta -version")
			os.Exit(1)
		}
		err = migrate.MigrateToVersion(ctx, db, *version)
	default:
		fmt.Fprintln(os.Stderr, "valor de -cmd desconocido:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg("migrate")
		os.Exit(1)
	}
	log.Info().Msg("migrate finalizado")
}
