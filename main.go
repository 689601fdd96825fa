package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"ggem_backend/internals/configs"
	database "ggem_backend/internals/databases"
	curriculumService "ggem_backend/internals/features/academy/curriculum/service"
	middlewares "ggem_backend/internals/middlewares"
	routes "ggem_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	// modo seed: popula os programas mínimos e encerra (uso: ./ggem_backend seed)
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		db := database.ConnectDB()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ Falha ao migrar schema: %v", err)
		}
		criados, err := curriculumService.SeedProgramasMinimos(context.Background(), db)
		if err != nil {
			log.Fatalf("❌ Seed dos programas mínimos falhou: %v", err)
		}
		log.Printf("✅ Seed concluído: %d programas mínimos criados.", criados)
		return
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// middleware base + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing (observabilidade leve)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// timeout HTTP alinhado com o statement_timeout do banco
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + warm-up
	db := database.ConnectDB()
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Falha ao migrar schema: %v", err)
	}
	database.WarmUp(db)

	routes.SetupRoutes(app, db)

	// Keep-Alive e timeouts do servidor
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ GGEM ouvindo em :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// shutdown gracioso + fechamento do pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
