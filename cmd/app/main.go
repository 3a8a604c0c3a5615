package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"marketplace/cmd"
	adapterhttp "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/docstore"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderThreshold = 30 * time.Minute

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateGetStaleOrdersQueryHandler(),
		configs.StaleOrderThreshold,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		StaleOrderThreshold: staleOrderThreshold(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func staleOrderThreshold() time.Duration {
	raw := goDotEnvVariable("STALE_ORDER_THRESHOLD")
	if raw == "" {
		return defaultStaleOrderThreshold
	}

	threshold, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid STALE_ORDER_THRESHOLD %q: %v", raw, err)
	}
	return threshold
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&docstore.DocumentDTO{}, &docstore.ChildDocumentDTO{}); err != nil {
		log.Fatalf("Failed to migrate document store schema: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	updateHandler, err := root.CreateUpdateOrderStatusCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create status update handler: %v", err)
	}

	cancelHandler, err := root.CreateCancelOrderCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create cancel handler: %v", err)
	}

	server := adapterhttp.NewServer(
		updateHandler,
		cancelHandler,
		root.CreateGetOrderStatusHistoryQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
