package cache

import (
	"canteen-queue-optimizer/entities"
	"canteen-queue-optimizer/pkg/menu"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	menuAllKey         = "menu:available"
	menuCategoryKeyFmt = "menu:category:%s"
)

// CachedMenuRepository is a read-through cache in front of the catalog
// store. The menu is read on every page load and changes rarely, so a
// short TTL keeps it off the database without going stale for long.
type CachedMenuRepository struct {
	realRepo menu.MenuRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewCachedMenuRepository(realRepo menu.MenuRepository, redis *redis.Client) *CachedMenuRepository {
	return &CachedMenuRepository{
		realRepo: realRepo,
		redis:    redis,
		ttl:      5 * time.Minute,
	}
}

func (c *CachedMenuRepository) GetAvailableItems(ctx context.Context) ([]*entities.MenuItem, error) {
	data, err := c.redis.Get(ctx, menuAllKey).Bytes()
	if err == nil {
		var items []*entities.MenuItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		log.Printf("Failed to unmarshal cached menu (continuing with DB): %v", err)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Redis error (continuing with DB): %v", err)
	}

	items, err := c.realRepo.GetAvailableItems(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, menuAllKey, items)
	return items, nil
}

func (c *CachedMenuRepository) GetAvailableItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error) {
	key := fmt.Sprintf(menuCategoryKeyFmt, category)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var items []*entities.MenuItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		log.Printf("Failed to unmarshal cached menu category (continuing with DB): %v", err)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Redis error (continuing with DB): %v", err)
	}

	items, err := c.realRepo.GetAvailableItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, items)
	return items, nil
}

// AddMenuItem writes through and drops the affected listings.
func (c *CachedMenuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	if err := c.realRepo.AddMenuItem(ctx, item); err != nil {
		return err
	}

	if err := c.redis.Del(ctx, menuAllKey).Err(); err != nil {
		log.Printf("Failed to delete menu cache: %v", err)
	}
	if item.Category != "" {
		key := fmt.Sprintf(menuCategoryKeyFmt, item.Category)
		if err := c.redis.Del(ctx, key).Err(); err != nil {
			log.Printf("Failed to delete menu category cache %s: %v", key, err)
		}
	}
	return nil
}

// Point lookups skip the cache, they feed order creation and must see
// the store as it is.
func (c *CachedMenuRepository) GetItemsByIDs(ctx context.Context, ids []uint) ([]*entities.MenuItem, error) {
	return c.realRepo.GetItemsByIDs(ctx, ids)
}

func (c *CachedMenuRepository) GetItemByName(ctx context.Context, name string) (*entities.MenuItem, error) {
	return c.realRepo.GetItemByName(ctx, name)
}

func (c *CachedMenuRepository) store(ctx context.Context, key string, items []*entities.MenuItem) {
	jsonData, err := json.Marshal(items)
	if err != nil {
		log.Printf("Failed to marshal menu items: %v", err)
		return
	}
	if err := c.redis.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache menu items: %v", err)
	}
}
