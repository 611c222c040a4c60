package controller

import (
	"strings"

	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/serverutils"
	"bail-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Progress(ctx *fiber.Ctx) error
	MissingFields(ctx *fiber.Ctx) error
	Paths(ctx *fiber.Ctx) error
	SetValues(ctx *fiber.Ctx) error
	ListInfo(ctx *fiber.Ctx) error
	AddListItem(ctx *fiber.Ctx) error
	RemoveListItem(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/document/v1")
	h.Use(guard)
	h.Get("paths", c.Paths)
	h.Get(":sessionId", c.Show)
	h.Get(":sessionId/progress", c.Progress)
	h.Get(":sessionId/missing", c.MissingFields)
	h.Post(":sessionId/values", c.SetValues)
	h.Get(":sessionId/list", c.ListInfo)
	h.Post(":sessionId/list", c.AddListItem)
	h.Delete(":sessionId/list", c.RemoveListItem)
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	tree, err := c.documentService.GetTree(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show document", tree))
}

func (c *documentController) Progress(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	res, err := c.documentService.GetProgress(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show progress", res))
}

func (c *documentController) MissingFields(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	raw := ctx.Query("categories")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "categories query parameter is required")
	}
	categories := strings.Split(raw, ",")

	res, err := c.documentService.GetMissingFields(ctx.Context(), sessionID, categories)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list missing fields", res))
}

func (c *documentController) Paths(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list paths", c.documentService.AllPaths()))
}

func (c *documentController) SetValues(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	var req dto.SetValuesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.SetValues(ctx.Context(), sessionID, req.Updates)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update values", res))
}

func (c *documentController) ListInfo(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	path := ctx.Query("path")
	if path == "" {
		return fiber.NewError(fiber.StatusBadRequest, "path query parameter is required")
	}

	res, err := c.documentService.GetListInfo(ctx.Context(), sessionID, path)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show list", res))
}

func (c *documentController) AddListItem(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	var req dto.AddListItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	index, err := c.documentService.AddListItem(ctx.Context(), sessionID, req.Path)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add list item", dto.AddListItemResponse{Index: index}))
}

func (c *documentController) RemoveListItem(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")

	var req dto.RemoveListItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.documentService.RemoveListItem(ctx.Context(), sessionID, req.Path, *req.Index); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove list item", nil))
}
