package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/disputerepo"
	"marketplace/internal/adapters/out/postgres/listingrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	configs := getConfigs()

	db := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&listingrepo.ListingDTO{}, &orderrepo.OrderDTO{}, &disputerepo.DisputeDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	slog.Info("database ready", "host", configs.DBHost, "name", configs.DBName)

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateMarkPaymentSentCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateMarkAsShippedCommandHandler(),
		app.CreateMarkAsDeliveredCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateOpenDisputeCommandHandler(),
		app.CreateStartDisputeInvestigationCommandHandler(),
		app.CreateAddDisputeMessageCommandHandler(),
		app.CreateResolveDisputeCommandHandler(),
		app.CreateCloseDisputeCommandHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetPendingConfirmationOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetOpenDisputesQueryHandler(),
		app.CreateGetResolvedDisputesQueryHandler(),
		app.CreateGetDisputeByIDQueryHandler(),
	)
	server.RegisterRoutes(e)

	slog.Info("starting http server", "port", port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
