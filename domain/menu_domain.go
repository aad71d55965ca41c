package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetMenu     = "menu items retrieved successfully"
	MessageSuccessAddMenuItem = "menu item added successfully"

	MessageFailedGetMenu     = "failed to retrieve menu items"
	MessageFailedAddMenuItem = "failed to add menu item"

	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMenuItemNameTaken  = errors.New("menu item name already exists")
	ErrInvalidCategory    = errors.New("invalid menu category")
	ErrInvalidPrepTime    = errors.New("preparation time must be positive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrUploadImageFailed  = errors.New("failed to upload menu item image")
)

var MenuCategories = []string{"main", "side", "drink", "dessert", "salad"}

type (
	AddMenuItemRequest struct {
		Name        string                `json:"name" form:"name" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required,oneof=main side drink dessert salad"`
		PrepTime    int                   `json:"prep_time" form:"prep_time" validate:"required,min=1"`
		Price       float64               `json:"price" form:"price" validate:"min=0"`
		Image       *multipart.FileHeader `json:"-" form:"image"`
	}

	MenuItemResponse struct {
		ID              uint    `json:"id"`
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		Category        string  `json:"category"`
		PrepTime        int     `json:"prep_time"`
		Price           float64 `json:"price"`
		PopularityScore float64 `json:"popularity_score"`
		IsAvailable     bool    `json:"is_available"`
		Image           string  `json:"image"`
	}
)
