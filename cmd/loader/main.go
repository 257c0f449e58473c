// Command loader replaces the warehouse tables in PostgreSQL from the CSV
// files produced by a simulation run.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cashsight/simulator/internal/config"
	"github.com/cashsight/simulator/internal/database"
	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/pipeline"
	"github.com/cashsight/simulator/internal/warehouse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Starting warehouse loader", map[string]interface{}{
		"source": cfg.Simulation.OutputDir,
		"host":   cfg.Database.Host,
		"name":   cfg.Database.Name,
	})

	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	loader := warehouse.NewLoader(db, log)
	if err := loader.LoadDir(ctx, cfg.Simulation.OutputDir, pipeline.AllTables); err != nil {
		log.Fatal("Load failed", err, map[string]interface{}{
			"source": cfg.Simulation.OutputDir,
		})
	}

	log.Info("All tables loaded", map[string]interface{}{
		"tables": len(pipeline.AllTables),
	})
}
