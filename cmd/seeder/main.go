package main

import (
	"log"

	"hod-management-backend/config"
	"hod-management-backend/internal/database"
)

func main() {
	log.Println("Seeding database...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	err = database.SeedAll(db, database.AdminSeed{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding finished")
}
