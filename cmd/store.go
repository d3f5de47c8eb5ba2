package cmd

import (
	"fmt"
	"log"

	"github.com/Eursukkul/restaurant-reservation/config"
	"github.com/Eursukkul/restaurant-reservation/internal/repository"
	"github.com/Eursukkul/restaurant-reservation/pkg/database"
)

// openStore returns the configured backend and a func that releases it.
func openStore(cfg *config.Config) (repository.Store, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Println("[Storage] using in-memory store, data is lost on exit")
		return repository.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}
	log.Printf("[Storage] connected to postgres %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	return repository.NewStore(db), func() { sqlDB.Close() }, nil
}
