package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/speakgrade/speakgrade/internal/config"
	"github.com/speakgrade/speakgrade/internal/handlers"
	"github.com/speakgrade/speakgrade/internal/notify"
	"github.com/speakgrade/speakgrade/internal/report"
	"github.com/speakgrade/speakgrade/internal/services"
)

func main() {
	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	cfg := config.Load()

	engine := html.New("./static", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(logger.New())

	hub := notify.NewHub(zlog)
	client := services.NewScoringClient(cfg.ScoringServiceURL, cfg.SampleURL, cfg.RequestTimeout)
	evaluator := services.NewEvaluator(client, hub, zlog)
	synthesizer := report.NewSynthesizer(engine, cfg.PrintReadyDelay)
	h := handlers.NewHandler(evaluator, synthesizer, cfg)
	ws := handlers.NewNotifyHandler(hub)

	app.Get("/", h.IndexPage)
	app.Post("/evaluate", h.Evaluate)
	app.Get("/sample", h.Sample)
	app.Get("/results", h.Results)
	app.Get("/export/json", h.ExportJSON)
	app.Get("/report", h.Report)
	app.Get("/export/summary", h.Summary)
	app.Get("/ws/notifications", ws.WebSocketMiddleware, websocket.New(ws.HandleNotifications))

	zlog.Info("🚀 evaluation web app listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
