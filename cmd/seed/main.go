package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/config"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/repository/mongodb"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/service"
	serviceAuth "github.com/yhsunny176/curee-restaurant-management-server-side/internal/service/auth"
)

func main() {
	// Parse command-line flags
	clearData := flag.Bool("clear", false, "Drop the foods and orders collections before seeding")
	fixturesPath := flag.String("fixtures", "", "YAML fixture file (defaults to the embedded fixtures)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *clearData {
		log.Fatalf("BLOCKED: refusing to run -clear in the production environment")
	}

	logger, closeLog, err := config.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer closeLog()

	data := defaultFixtures
	if *fixturesPath != "" {
		data, err = os.ReadFile(*fixturesPath)
		if err != nil {
			log.Fatalf("Failed to read fixtures: %v", err)
		}
	}
	fixtures, err := parseFixtures(data)
	if err != nil {
		log.Fatalf("Invalid fixtures: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())

	repoConfig := &mongodb.RepositoryConfig{
		DB:          client.Database(cfg.DatabaseName),
		Collections: mongodb.NewCollectionNames(cfg.CollectionPrefix),
		Logger:      logger,
	}

	logger.Info("seeding database",
		"environment", cfg.Environment,
		"database", cfg.DatabaseName,
		"collection_prefix", cfg.CollectionPrefix,
		"fixtures", len(fixtures),
	)

	if *clearData {
		if err := mongodb.DropCollections(ctx, repoConfig); err != nil {
			log.Fatalf("Failed to drop collections: %v", err)
		}
		logger.Info("collections dropped")
	}

	if err := mongodb.EnsureIndexes(ctx, repoConfig); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	authorizer := serviceAuth.NewOwnerBasedAuthorizer(mongodb.NewOrderRepository(repoConfig))
	foodService := service.NewFoodService(mongodb.NewFoodRepository(repoConfig), authorizer, logger)
	created, err := seedFoods(ctx, foodService, fixtures)
	if err != nil {
		log.Fatalf("Seeding stopped after %d foods: %v", created, err)
	}

	logger.Info("seeding complete", "foods_created", created)
}
