package controller

import (
	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/internal/pkg/serverutils"
	"bail-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMonitoringController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Stats(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type monitoringController struct {
	monitoringService service.IMonitoringService
	logger            logger.ILogger
}

func NewMonitoringController(monitoringService service.IMonitoringService, log logger.ILogger) IMonitoringController {
	return &monitoringController{
		monitoringService: monitoringService,
		logger:            log,
	}
}

func (c *monitoringController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/monitoring/v1")
	h.Use(guard)
	h.Get("stats", c.Stats)
	h.Get("logs", c.Logs)
}

func (c *monitoringController) Stats(ctx *fiber.Ctx) error {
	res, err := c.monitoringService.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show stats", res))
}

func (c *monitoringController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show logs", logs))
}
