package main

import (
	"log"

	"brandstudio/adapters/postgres"
	"brandstudio/internal/config"
	"brandstudio/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig.Database.URL == "" {
		log.Fatal("DATABASE_URL is required for the reports app")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	app := ui.NewApp(postgres.NewReportRepository(db))
	if err := app.Run(appConfig.Server.ReportsPort); err != nil {
		log.Fatalf("Reports app failed: %v", err)
	}
}
