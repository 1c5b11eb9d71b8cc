// Command migrate runs schema operations for the backend.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/soremkrs/Twex/internal/config"
	"github.com/soremkrs/Twex/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <auto|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "auto":
		if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
			return fmt.Errorf("automigration failed: %w", err)
		}
		log.Println("automigrations applied")
	case "status":
		migrator := db.Migrator()
		for _, model := range database.PersistentModels() {
			state := "missing"
			if migrator.HasTable(model) {
				state = "present"
			}
			log.Printf("%T: %s", model, state)
		}
	default:
		return usage()
	}

	return nil
}
