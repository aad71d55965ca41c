package handlers

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/internal/api/presenters"
	"canteen-queue-optimizer/pkg/menu"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenu(c *fiber.Ctx) error
		GetMenuByCategory(c *fiber.Ctx) error
		AddMenuItem(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetMenu(c *fiber.Ctx) error {
	items, err := h.menuService.GetMenu(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) GetMenuByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	items, err := h.menuService.GetMenuByCategory(c.Context(), category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenu, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) AddMenuItem(c *fiber.Ctx) error {
	req := new(domain.AddMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMenuItem, err)
	}

	res, err := h.menuService.AddMenuItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMenuItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMenuItem)
}
