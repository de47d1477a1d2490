package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gescom/cmd"
	httpadapter "gescom/internal/adapters/in/http"
	"gescom/internal/adapters/out/postgres/articlerepo"
	"gescom/internal/adapters/out/postgres/clientrepo"
	"gescom/internal/adapters/out/postgres/deliveryrepo"
	"gescom/internal/adapters/out/postgres/historyrepo"
	"gescom/internal/adapters/out/postgres/orderrepo"
	"gescom/internal/adapters/out/postgres/positionrepo"
	"gescom/internal/adapters/out/postgres/staffrepo"
	"gescom/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	sessionTTL, err := time.ParseDuration(configs.SessionTTL)
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL %q: %v", configs.SessionTTL, err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, sessionTTL)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateArchiveCancelledOrdersCommandHandler(),
		configs.ArchiveSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:       goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:   goDotEnvVariable("REDIS_PASSWORD"),
		SessionTTL:      goDotEnvVariable("SESSION_TTL"),
		ArchiveSchedule: goDotEnvVariable("ARCHIVE_SCHEDULE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver-level unique violations into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&clientrepo.ClientDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&articlerepo.ArticleDTO{},
		&positionrepo.PositionDTO{},
		&staffrepo.StaffDTO{},
		&historyrepo.CancelledOrderDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		ScheduleDelivery:  app.CreateScheduleDeliveryCommandHandler(),
		CompleteDelivery:  app.CreateCompleteDeliveryCommandHandler(),
		CancelDelivery:    app.CreateCancelDeliveryCommandHandler(),
		CreateArticle:     app.CreateCreateArticleCommandHandler(),
		CreateClient:      app.CreateCreateClientCommandHandler(),
		CreateStaff:       app.CreateCreateStaffCommandHandler(),
		CreatePosition:    app.CreateCreatePositionCommandHandler(),
		DeletePosition:    app.CreateDeletePositionCommandHandler(),
		OpenSession:       app.CreateOpenSessionCommandHandler(),
		CloseSession:      app.CreateCloseSessionCommandHandler(),

		GetOrders:       app.CreateGetOrdersQueryHandler(),
		GetOrder:        app.CreateGetOrderQueryHandler(),
		GetReadyOrders:  app.CreateGetReadyOrdersQueryHandler(),
		GetDeliveries:   app.CreateGetDeliveriesQueryHandler(),
		GetAllArticles:  app.CreateGetAllArticlesQueryHandler(),
		GetAllClients:   app.CreateGetAllClientsQueryHandler(),
		GetAllStaff:     app.CreateGetAllStaffQueryHandler(),
		GetAllPositions: app.CreateGetAllPositionsQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
