package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"hireboard/cmd"
	"hireboard/internal/adapters/in/ws"
	"hireboard/internal/adapters/out/postgres/jobrepo"
	"hireboard/internal/adapters/out/postgres/routerepo"
	"hireboard/internal/core/application/board"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	hub := ws.NewHub(logger)
	defer hub.Close()

	store := board.NewStore(app.CreateCalendarService(), logger)
	loadInitialRange(store, logger)

	jobManager := jobs.NewJobManager(store, configs.BoardRefreshSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, hub, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		BoardRefreshSchedule: goDotEnvVariable("BOARD_REFRESH_SCHEDULE"),
	}
	if config.BoardRefreshSchedule == "" {
		config.BoardRefreshSchedule = "@every 1m"
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&jobrepo.JobDTO{}, &routerepo.RouteDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

// loadInitialRange warms the board with the week around today. A failure is
// not fatal: the refresh job retries on its schedule.
func loadInitialRange(store *board.Store, logger *slog.Logger) {
	ctx := context.Background()

	rng, err := kernel.WeekView.RangeContaining(kernel.Today())
	if err != nil {
		log.Fatalf("Failed to compute initial range: %v", err)
	}
	if err := store.LoadRange(ctx, rng); err != nil {
		logger.ErrorContext(ctx, "Initial board load failed", "range", rng, "error", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, hub *ws.Hub, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/ws", hub.Handle)

	server := app.CreateHTTPServer(hub)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
