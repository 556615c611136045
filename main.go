package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tesouraria_backend/internals/configs"
	database "tesouraria_backend/internals/databases"
	"tesouraria_backend/internals/helpers/timex"
	"tesouraria_backend/internals/middlewares"
	"tesouraria_backend/internals/route"
	"tesouraria_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	timex.Init(configs.OperatingTZ)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnv("RUN_SEEDS", "false") == "true" {
		seeds.RunAllSeeds(database.DB)
	}

	app := fiber.New(fiber.Config{
		AppName:      "tesouraria_backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    10 * 1024 * 1024, // CSV and photo uploads are fully buffered
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second, // export generation blocks the request
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	app.Static("/public", configs.PublicDir)

	route.SetupRoutes(app, database.DB)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Encerrando servidor...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 Servidor ouvindo na porta %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Servidor finalizado com erro: %v", err)
	}
}
