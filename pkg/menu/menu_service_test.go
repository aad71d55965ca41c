package menu

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/entities"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMenuRepository struct {
	items  map[uint]*entities.MenuItem
	nextID uint
}

func newStubMenuRepository(items ...*entities.MenuItem) *stubMenuRepository {
	repo := &stubMenuRepository{items: map[uint]*entities.MenuItem{}, nextID: 1}
	for _, item := range items {
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
		repo.items[item.ID] = item
	}
	return repo
}

func (r *stubMenuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *stubMenuRepository) GetAvailableItems(ctx context.Context) ([]*entities.MenuItem, error) {
	var result []*entities.MenuItem
	for _, item := range r.items {
		if item.IsAvailable {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *stubMenuRepository) GetAvailableItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error) {
	var result []*entities.MenuItem
	for _, item := range r.items {
		if item.IsAvailable && item.Category == category {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *stubMenuRepository) GetItemsByIDs(ctx context.Context, ids []uint) ([]*entities.MenuItem, error) {
	var result []*entities.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *stubMenuRepository) GetItemByName(ctx context.Context, name string) (*entities.MenuItem, error) {
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubS3 struct{}

func (s stubS3) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	return "https://bucket.example.com/" + folder + "/" + file.Filename, nil
}

func TestGetMenuByCategoryValidatesCategory(t *testing.T) {
	repo := newStubMenuRepository(
		&entities.MenuItem{ID: 1, Name: "Coffee", Category: "drink", PrepTime: 2, Price: 2.50, IsAvailable: true},
	)
	svc := NewMenuService(repo, stubS3{})

	items, err := svc.GetMenuByCategory(context.Background(), "drink")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Name)

	_, err = svc.GetMenuByCategory(context.Background(), "sushi")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetMenuAppliesFallbackImage(t *testing.T) {
	repo := newStubMenuRepository(
		&entities.MenuItem{ID: 1, Name: "Coffee", Category: "drink", PrepTime: 2, Price: 2.50, IsAvailable: true},
		&entities.MenuItem{ID: 2, Name: "Onion Rings", Category: "side", PrepTime: 5, Price: 4.25, IsAvailable: true, ImageURL: "https://example.com/rings.jpg"},
	)
	svc := NewMenuService(repo, stubS3{})

	items, err := svc.GetMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]string{}
	for _, item := range items {
		byName[item.Name] = item.Image
	}
	assert.Equal(t, FallbackImage("drink"), byName["Coffee"])
	assert.Equal(t, "https://example.com/rings.jpg", byName["Onion Rings"])
}

func TestAddMenuItemValidation(t *testing.T) {
	repo := newStubMenuRepository(
		&entities.MenuItem{ID: 1, Name: "Coffee", Category: "drink", PrepTime: 2, Price: 2.50, IsAvailable: true},
	)
	svc := NewMenuService(repo, stubS3{})

	_, err := svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{Name: "Tea", Category: "drink", PrepTime: 0, Price: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidPrepTime)

	_, err = svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{Name: "Tea", Category: "drink", PrepTime: 2, Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{Name: "Tea", Category: "sushi", PrepTime: 2, Price: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{Name: "Coffee", Category: "drink", PrepTime: 2, Price: 2})
	assert.ErrorIs(t, err, domain.ErrMenuItemNameTaken)
}

func TestAddMenuItemCreatesAvailableItem(t *testing.T) {
	repo := newStubMenuRepository()
	svc := NewMenuService(repo, stubS3{})

	created, err := svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{
		Name:        "Iced Tea",
		Description: "House-brewed, lightly sweetened",
		Category:    "drink",
		PrepTime:    2,
		Price:       2.75,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, FallbackImage("drink"), created.Image)

	stored, err := repo.GetItemByName(context.Background(), "Iced Tea")
	require.NoError(t, err)
	assert.True(t, stored.IsAvailable)
}
