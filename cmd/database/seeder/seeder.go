package seeder

import (
	"canteen-queue-optimizer/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

var menuItems = []entities.MenuItem{
	{
		Name:            "Classic Cheeseburger",
		Description:     "Beef patty with cheese, lettuce, and special sauce",
		Category:        "main",
		PrepTime:        8,
		Price:           5.99,
		PopularityScore: 0.9,
		IsAvailable:     true,
		ImageURL:        "https://plus.unsplash.com/premium_photo-1683619761492-639240d29bb5?w=400&h=300&fit=crop",
	},
	{
		Name:            "Veggie Burger",
		Description:     "Plant-based patty with fresh vegetables",
		Category:        "main",
		PrepTime:        6,
		Price:           4.99,
		PopularityScore: 0.7,
		IsAvailable:     true,
		ImageURL:        "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400&h=300&fit=crop",
	},
	{
		Name:            "Grilled Chicken Sandwich",
		Description:     "Tender chicken breast with mayo and lettuce",
		Category:        "main",
		PrepTime:        7,
		Price:           6.49,
		PopularityScore: 0.8,
		IsAvailable:     true,
	},
	{
		Name:            "Caesar Salad",
		Description:     "Fresh romaine lettuce with caesar dressing and croutons",
		Category:        "salad",
		PrepTime:        4,
		Price:           7.99,
		PopularityScore: 0.6,
		IsAvailable:     true,
		ImageURL:        "https://plus.unsplash.com/premium_photo-1700089483464-4f76cc3d360b?w=400&h=300&fit=crop",
	},
	{
		Name:            "French Fries",
		Description:     "Crispy golden fries with salt",
		Category:        "side",
		PrepTime:        3,
		Price:           2.99,
		PopularityScore: 0.95,
		IsAvailable:     true,
		ImageURL:        "https://images.unsplash.com/photo-1630431341973-02e1b662ec35?w=400&h=300&fit=crop",
	},
	{
		Name:            "Onion Rings",
		Description:     "Beer-battered onion rings",
		Category:        "side",
		PrepTime:        5,
		Price:           3.49,
		PopularityScore: 0.5,
		IsAvailable:     true,
		ImageURL:        "https://plus.unsplash.com/premium_photo-1683121324272-90f4b4084ac9?w=400&h=300&fit=crop",
	},
	{
		Name:            "Coca Cola",
		Description:     "Regular Coca Cola 500ml",
		Category:        "drink",
		PrepTime:        1,
		Price:           1.99,
		PopularityScore: 0.85,
		IsAvailable:     true,
		ImageURL:        "https://images.unsplash.com/photo-1667204651371-5d4a65b8b5a9?w=400&h=300&fit=crop",
	},
	{
		Name:            "Coffee",
		Description:     "Freshly brewed coffee",
		Category:        "drink",
		PrepTime:        2,
		Price:           2.49,
		PopularityScore: 0.75,
		IsAvailable:     true,
		ImageURL:        "https://plus.unsplash.com/premium_photo-1675435644687-562e8042b9db?w=400&h=300&fit=crop",
	},
}

// Seed installs the demo catalog on an empty database. Existing items
// are left alone so local edits survive restarts.
func Seed(db *gorm.DB) error {
	for _, item := range menuItems {
		var existing entities.MenuItem
		err := db.Where("name = ?", item.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&item).Error; err != nil {
			log.Printf("Error seeding menu item %q: %v", item.Name, err)
			return err
		}
	}

	fmt.Println("Menu seeding complete")
	return nil
}
