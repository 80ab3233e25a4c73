package main

import (
	"context"
	"flag"
	"log"
	"time"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/config"
	"trackmycareer/internal/database/postgres"
	"trackmycareer/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	rolesPath := flag.String("roles", "data/roles.json", "path to the role database JSON file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Database.Configured() {
		log.Fatalf("DB_HOST is not set; nothing to seed")
	}

	cat, err := catalog.LoadFile(*rolesPath)
	if err != nil {
		log.Fatalf("failed to load roles: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	r := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.SchemaSeeder{},
		seeder.RoleSeeder{Catalog: cat},
	}}
	if err := r.Run(ctx, db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seeded %d roles from %s", cat.Len(), *rolesPath)
}
