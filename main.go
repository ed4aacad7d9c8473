// @title Recruiter Hub API
// @version 1.0
// @description Backend for the recruiting enablement hub: content library, learning paths, Q&A, kudos and AI copilot.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"recruiter_hub_backend/internal/app"
	"recruiter_hub_backend/internal/config"
	"recruiter_hub_backend/pkg/configwatcher"
	"recruiter_hub_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration complete, exiting")
		return
	}

	// Hot-reload AI settings without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(c interface{}) {
		if newCfg, ok := c.(*config.Config); ok {
			application.ApplyConfig(newCfg)
		}
	})

	application.Run()
}
