package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting exercises seed ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	csvPath := flag.String("csv", "", "exercises CSV file path (defaults to the config value)")
	drop := flag.Bool("drop", false, "drop the whole database before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if mongoURI := os.Getenv("FITTRACK_MONGO_URI"); mongoURI != "" {
		cfg.MongoURI = mongoURI
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		LogToStdout: true,
	})

	if *csvPath == "" {
		*csvPath = cfg.ExercisesCsvPath
	}
	if *csvPath == "" {
		log.Fatalln("exercises csv path not specified")
	}
	if exists, err := pkg.PathExists(*csvPath, false); err != nil || !exists {
		log.Fatalf("exercises csv [%s] not found: %v", *csvPath, err)
	}

	if err := run(context.Background(), cfg, *csvPath, *drop); err != nil {
		log.Fatalf("seed failed: %s", err)
	}
	log.Println("done seeding database")
}

func run(ctx context.Context, cfg *config.Config, csvPath string, drop bool) error {
	csvFile, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open exercises csv: %w", err)
	}
	defer func() {
		if err := csvFile.Close(); err != nil {
			log.Warnf("close exercises csv file: %s", err)
		}
	}()

	mongoClient, database, err := db.NewMongoDB(ctx, db.NewMongoClientParams{
		URI:            cfg.MongoURI,
		DBName:         cfg.MongoDBName,
		ConnectTimeout: time.Duration(cfg.MongoConnectTimeout) * time.Second,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Errorf("disconnect mongo: %s", err)
		}
	}()

	if drop {
		log.Warnf("dropping database [%s] ...", cfg.MongoDBName)
		if err := database.Drop(ctx); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
		if err := db.EnsureIndexes(ctx, database); err != nil {
			return fmt.Errorf("recreate indexes: %w", err)
		}
	}

	service := exercises.NewService(exercises.NewRepo(database))
	added, err := exercises.Seed(ctx, service, csv.NewReader(csvFile))
	if err != nil {
		return err
	}

	log.Printf("seeded %d exercises into [%s]", added, cfg.MongoDBName)
	return nil
}
