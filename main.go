// @title AkasaWings Blog API
// @version 1.0
// @description Users, posts and comments of the AkasaWings blog.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/ZeltraX007/AkasaWingsBlog/config"
	"github.com/ZeltraX007/AkasaWingsBlog/database"
	_ "github.com/ZeltraX007/AkasaWingsBlog/docs"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/controllers"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/routes"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/services"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/uploads"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	initLogger(cfg)
	slog.Info("Starting blog API", "env", cfg.Env, "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.DisconnectMongo(client)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		slog.Error("ensure indexes failed", "error", err)
		os.Exit(1)
	}

	store := repository.NewMongo(client, db, cfg.DBTimeout, cfg.MongoTransaction)
	st := services.Stores{
		Users:    store.Users,
		Posts:    store.Posts,
		Comments: store.Comments,
		Tx:       store.Tx,
	}

	revocations, closeRevocations, err := newRevocations(ctx, cfg)
	if err != nil {
		slog.Error("Unable to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer closeRevocations()

	authn := auth.NewAuthenticator(auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL), revocations, store.Users)
	images := uploads.NewDisk(cfg.UploadDir)

	app := fiber.New(fiber.Config{
		AppName:      "akasawings-blog",
		ErrorHandler: controllers.ErrorHandler,
		BodyLimit:    cfg.BodyLimit,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/images", filepath.Join(images.Root(), "images"))
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Setup(app, routes.Deps{
		Authn:    authn,
		Users:    services.NewUserService(st, authn, images, cfg.BcryptCost),
		Posts:    services.NewPostService(st, images),
		Comments: services.NewCommentService(st),
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Failed to serve", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Signal received, shutting down", "signal", sig)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Warn("forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

func initLogger(cfg config.Config) {
	var handler slog.Handler
	if cfg.Env == "local" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

// newRevocations uses Redis when REDIS_ADDR is set and an in-process list
// otherwise.
func newRevocations(ctx context.Context, cfg config.Config) (auth.Revocations, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("REDIS_ADDR not set, keeping revoked tokens in memory")
		return auth.NewMemoryRevocations(), func() {}, nil
	}

	r := auth.NewRedisRevocations(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		_ = r.Close()
		return nil, nil, err
	}
	slog.Info("Connected to Redis", "addr", cfg.RedisAddr)
	return r, func() {
		if err := r.Close(); err != nil {
			slog.Error("redis close", "error", err)
		}
	}, nil
}
