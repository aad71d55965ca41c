package menu

import (
	"canteen-queue-optimizer/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		AddMenuItem(ctx context.Context, item *entities.MenuItem) error
		GetAvailableItems(ctx context.Context) ([]*entities.MenuItem, error)
		GetAvailableItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error)
		GetItemsByIDs(ctx context.Context, ids []uint) ([]*entities.MenuItem, error)
		GetItemByName(ctx context.Context, name string) (*entities.MenuItem, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetAvailableItems(ctx context.Context) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("category asc, name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetAvailableItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("category = ? AND is_available = ?", category, true).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetItemsByIDs(ctx context.Context, ids []uint) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetItemByName(ctx context.Context, name string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}
