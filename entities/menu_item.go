package entities

type MenuItem struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"uniqueIndex" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	Category        string  `json:"category"` // "main", "side", "drink", "dessert", "salad"
	PrepTime        int     `json:"prep_time"` // minutes
	Price           float64 `json:"price"`
	PopularityScore float64 `gorm:"default:0" json:"popularity_score"`
	IsAvailable     bool    `gorm:"default:true" json:"is_available"`
	ImageURL        string  `json:"image,omitempty"`

	Timestamp
}
