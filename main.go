package main

import (
	"context"
	"log"

	"brandstudio/adapters/postgres"
	"brandstudio/ai"
	"brandstudio/internal/config"
	"brandstudio/internal/errors"
	"brandstudio/internal/migration"
	studioproc "brandstudio/internal/studio"
	"brandstudio/ports"
	"brandstudio/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL connection and runs migrations
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	// Report persistence is optional; without DATABASE_URL the dashboard
	// runs stateless.
	var reports ports.ReportRepository
	if appConfig.Database.URL != "" {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		reports = postgres.NewReportRepository(db)
		log.Printf("[main] Report persistence enabled")
	} else {
		log.Printf("[main] DATABASE_URL not set - running without report history")
	}

	// The AI analyst is optional; without a key the dashboard skips
	// narrative generation.
	var analyst ports.Analyst
	if appConfig.AI.OpenAIKey != "" {
		analyst = ai.NewMarketAnalyst(ai.ClientConfig{
			APIKey:      appConfig.AI.OpenAIKey,
			Model:       appConfig.AI.OpenAIModel,
			Temperature: appConfig.AI.Temperature,
			MaxTokens:   appConfig.AI.MaxTokens,
		})
		log.Printf("[main] AI analyst enabled with model %s", appConfig.AI.OpenAIModel)
	} else {
		log.Printf("[main] OPENAI_API_KEY not set - narratives disabled")
	}

	storage := studioproc.NewLocalFileStorage(appConfig.Storage.BasePath)
	processor := studioproc.NewProcessor(storage, reports, analyst, appConfig.Engine(), appConfig.Data.MaxUploadBytes)

	server := ui.NewServer(processor, reports, appConfig.Data.MaxUploadBytes)
	if err := server.Run(appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
