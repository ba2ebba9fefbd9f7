package main

import (
	"tempwork-backend/internal/config"
	"tempwork-backend/internal/database"
	"tempwork-backend/internal/logging"
	"tempwork-backend/internal/server"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.AppEnv)

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open database")
	}

	app := server.New(cfg, db)

	log.Info().Str("port", cfg.HTTPPort).Msg("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
