package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewApp(handler SchedulerHandler, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Get("/samples", handler.Samples)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return app
}
