package controller

import (
	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/serverutils"
	"bail-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Append(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Sessions(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
}

func NewConversationController(conversationService service.IConversationService) IConversationController {
	return &conversationController{
		conversationService: conversationService,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/conversation/v1")
	h.Use(guard)
	h.Get("sessions", c.Sessions)
	h.Post(":sessionId/messages", c.Append)
	h.Get(":sessionId/messages", c.History)
	h.Delete(":sessionId/messages", c.Clear)
}

func (c *conversationController) Append(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	var req dto.AppendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.AppendMessage(ctx.Context(), sessionID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success append message", res))
}

func (c *conversationController) History(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	role := ctx.Query("role")

	res, err := c.conversationService.GetHistory(ctx.Context(), sessionID, page, limit, role)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *conversationController) Sessions(ctx *fiber.Ctx) error {
	res, err := c.conversationService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *conversationController) Clear(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	if err := c.conversationService.ClearSession(ctx.Context(), sessionID); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear history", nil))
}
