package controller

import (
	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/serverutils"
	"bail-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Markdown(ctx *fiber.Ctx) error
	HTML(ctx *fiber.Ctx) error
	Email(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/export/v1")
	h.Use(guard)
	h.Get(":sessionId/markdown", c.Markdown)
	h.Get(":sessionId/html", c.HTML)
	h.Post(":sessionId/email", c.Email)
}

func (c *exportController) Markdown(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	md, err := c.exportService.ExportMarkdown(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return ctx.SendString(md)
}

func (c *exportController) HTML(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	html, err := c.exportService.ExportHTML(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(html)
}

func (c *exportController) Email(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	var req dto.EmailExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.exportService.EmailDocument(ctx.Context(), sessionID, req.To, req.Subject); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success email document", nil))
}
