package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fathima-sithara/campus-connect/internal/auth"
	"github.com/fathima-sithara/campus-connect/internal/cache"
	"github.com/fathima-sithara/campus-connect/internal/config"
	"github.com/fathima-sithara/campus-connect/internal/events"
	"github.com/fathima-sithara/campus-connect/internal/handlers"
	"github.com/fathima-sithara/campus-connect/internal/logger"
	"github.com/fathima-sithara/campus-connect/internal/metrics"
	"github.com/fathima-sithara/campus-connect/internal/middleware"
	"github.com/fathima-sithara/campus-connect/internal/repository"
	"github.com/fathima-sithara/campus-connect/internal/routes"
	"github.com/fathima-sithara/campus-connect/internal/service"
	"github.com/fathima-sithara/campus-connect/internal/ws"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env == "development")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	db, mc, err := repository.Connect(cfg.Mongo.URI, cfg.Mongo.Database, zlog)
	if err != nil {
		zlog.Fatalf("mongo init: %v", err)
	}
	defer func() { _ = mc.Disconnect(context.Background()) }()

	// Redis is optional: without it match results are recomputed per request
	// and the API runs unthrottled.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	studentRepo := repository.NewStudentRepo(db)
	chatRepo := repository.NewChatRepo(db)
	eventRepo := repository.NewEventRepo(db)
	groupRepo := repository.NewStudyGroupRepo(db)
	newsRepo := repository.NewNewsRepo(db)
	meetupRepo := repository.NewMeetupRepo(db)
	connRepo := repository.NewConnectionRepo(db)

	var matchCache service.MatchCache
	if rdb != nil {
		matchCache = cache.NewMatchCache(rdb, cfg.Redis.Prefix, cfg.MatchCacheTTL)
	}
	matchSvc := service.NewMatchService(studentRepo, matchCache, zlog)

	var producer *events.Producer
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicMessageSent, zlog)
		defer producer.Close()
		publisher = producer
	}

	hub := ws.NewHub(zlog)
	chatSvc := service.NewChatService(chatRepo, hub, publisher, zlog)
	wsrv := ws.NewServer(hub, chatSvc, zlog, cfg.PingInterval, cfg.WriteDeadline, cfg.WS.MaxMessageSizeBytes)

	deps := routes.Deps{
		Students:    handlers.NewStudentHandler(studentRepo, matchSvc, zlog),
		Matches:     handlers.NewMatchHandler(matchSvc, connRepo, zlog),
		ChatRooms:   handlers.NewChatRoomHandler(chatRepo, studentRepo, zlog),
		Messages:    handlers.NewMessageHandler(chatSvc, zlog),
		Events:      handlers.NewEventHandler(eventRepo, zlog),
		StudyGroups: handlers.NewStudyGroupHandler(groupRepo, zlog),
		News:        handlers.NewNewsHandler(newsRepo, zlog),
		Meetups:     handlers.NewMeetupHandler(meetupRepo, zlog),
		WS:          wsrv,
	}
	if cfg.App.JWTSecret != "" {
		deps.Validator = auth.NewValidator(cfg.App.JWTSecret)
	}
	if rdb != nil {
		deps.Limiter = middleware.NewRateLimiter(rdb, cfg.Redis.Prefix, cfg.RateLimit.Limit, cfg.RateWindow)
	}

	app := fiber.New(fiber.Config{AppName: "campus-connect"})
	routes.Setup(app, deps)

	go func() {
		if err := metrics.Serve(cfg.Metrics.Addr); err != nil {
			zlog.Warnf("metrics listener: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			zlog.Fatalf("server listen: %v", err)
		}
	}()
	zlog.Infow("campus-connect started", "port", cfg.App.Port, "env", cfg.App.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	zlog.Info("campus-connect stopped")
}
