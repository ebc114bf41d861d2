package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"foodibot/cmd"
	httpin "foodibot/internal/adapters/in/http"
	"foodibot/internal/adapters/out/postgres/cartrepo"
	"foodibot/internal/adapters/out/postgres/catalogrepo"
	"foodibot/internal/adapters/out/postgres/contactrepo"
	"foodibot/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment")
	}

	config := cmd.Config{
		HTTPPort:           envOr("HTTP_PORT", "8080"),
		DBHost:             envOr("DB_HOST", "localhost"),
		DBPort:             envOr("DB_PORT", "5432"),
		DBUser:             envOr("DB_USER", "postgres"),
		DBPassword:         envOr("DB_PASSWORD", "postgres"),
		DBName:             envOr("DB_NAME", "foodibot"),
		DBSslMode:          envOr("DB_SSLMODE", "disable"),
		MSG91AuthKey:       os.Getenv("MSG91_AUTH_KEY"),
		MSG91TemplateID:    os.Getenv("MSG91_TEMPLATE_ID"),
		MSG91SenderID:      envOr("MSG91_SENDER_ID", "FOODIB"),
		WhatsAppToken:      os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppPhoneID:    os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		GreenAPIInstanceID: os.Getenv("GREEN_API_INSTANCE_ID"),
		GreenAPIToken:      os.Getenv("GREEN_API_TOKEN"),
		EmailUser:          os.Getenv("EMAIL_USER"),
		EmailPassword:      os.Getenv("EMAIL_PASSWORD"),
		DefaultCountryCode: envOr("DEFAULT_COUNTRY_CODE", "92"),
		CartTTL:            envDurationOr("CART_TTL", 30*time.Minute),
	}
	return config
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&catalogrepo.FoodItemDTO{},
		&cartrepo.CartDTO{},
		&contactrepo.ContactDTO{},
		&orderrepo.OrderHistoryDTO{},
		&orderrepo.OrderTrackingDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateAddItemsCommandHandler(),
		app.CreateRemoveItemsCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCollectPhoneCommandHandler(),
		app.CreateCollectEmailCommandHandler(),
		app.CreateSendNotificationsCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetCartSummaryQueryHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
