package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bossnaboss212/dernier-occase/cmd"
	apphttp "github.com/bossnaboss212/dernier-occase/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	if err := app.MigrateAndSeed(context.Background()); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		OwnerIDs:               goDotEnvVariable("OWNER_IDS"),
		DispatchWebhookURL:     goDotEnvVariable("DISPATCH_WEBHOOK_URL"),
		SessionTTLMinutes:      goDotEnvVariable("SESSION_TTL_MINUTES"),
		DiscountGlobalActive:   goDotEnvVariable("DISCOUNT_GLOBAL_ACTIVE"),
		DiscountGlobalAmount:   goDotEnvVariable("DISCOUNT_GLOBAL_AMOUNT"),
		DiscountPromoCode:      goDotEnvVariable("DISCOUNT_PROMO_CODE"),
		DiscountPromoAmount:    goDotEnvVariable("DISCOUNT_PROMO_AMOUNT"),
		DiscountLoyaltyEnabled: goDotEnvVariable("DISCOUNT_LOYALTY_ENABLED"),
		DiscountLoyaltyEvery:   goDotEnvVariable("DISCOUNT_LOYALTY_EVERY"),
		DiscountLoyaltyAmount:  goDotEnvVariable("DISCOUNT_LOYALTY_AMOUNT"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBPort,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := apphttp.NewServer(app.RoleDirectory(), app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
