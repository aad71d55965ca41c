package menu

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/entities"
	"canteen-queue-optimizer/internal/utils/storage"
	"context"
	"errors"
	"gorm.io/gorm"
)

// categoryFallbackImages keeps the menu presentable when an item was
// created without an image.
var categoryFallbackImages = map[string]string{
	"main":    "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=300&fit=crop",
	"side":    "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400&h=300&fit=crop",
	"drink":   "https://images.unsplash.com/photo-1437418747212-8d9709afab22?w=400&h=300&fit=crop",
	"dessert": "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop",
	"salad":   "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&h=300&fit=crop",
}

func FallbackImage(category string) string {
	if url, ok := categoryFallbackImages[category]; ok {
		return url
	}
	return categoryFallbackImages["main"]
}

type (
	MenuService interface {
		GetMenu(ctx context.Context) ([]domain.MenuItemResponse, error)
		GetMenuByCategory(ctx context.Context, category string) ([]domain.MenuItemResponse, error)
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) GetMenu(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetAvailableItems(ctx)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponses(items), nil
}

func (s *menuService) GetMenuByCategory(ctx context.Context, category string) ([]domain.MenuItemResponse, error) {
	if !isValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}

	items, err := s.menuRepository.GetAvailableItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponses(items), nil
}

func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error) {
	if req.PrepTime <= 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrepTime
	}
	if req.Price < 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrice
	}
	if !isValidCategory(req.Category) {
		return domain.MenuItemResponse{}, domain.ErrInvalidCategory
	}

	if _, err := s.menuRepository.GetItemByName(ctx, req.Name); err == nil {
		return domain.MenuItemResponse{}, domain.ErrMenuItemNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MenuItemResponse{}, err
	}

	imageURL := ""
	if req.Image != nil {
		url, err := s.s3.UploadFile(ctx, req.Image, "menu-items")
		if err != nil {
			return domain.MenuItemResponse{}, domain.ErrUploadImageFailed
		}
		imageURL = url
	}

	item := &entities.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PrepTime:    req.PrepTime,
		Price:       req.Price,
		IsAvailable: true,
		ImageURL:    imageURL,
	}

	if err := s.menuRepository.AddMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(item), nil
}

func isValidCategory(category string) bool {
	for _, c := range domain.MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	image := item.ImageURL
	if image == "" {
		image = FallbackImage(item.Category)
	}
	return domain.MenuItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		PrepTime:        item.PrepTime,
		Price:           item.Price,
		PopularityScore: item.PopularityScore,
		IsAvailable:     item.IsAvailable,
		Image:           image,
	}
}

func toMenuItemResponses(items []*entities.MenuItem) []domain.MenuItemResponse {
	result := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toMenuItemResponse(item))
	}
	return result
}
