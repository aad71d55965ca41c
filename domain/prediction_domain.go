package domain

import (
	"errors"
)

var (
	MessageSuccessGetStatus          = "prediction system status retrieved successfully"
	MessageSuccessPredictVolume      = "order volume predicted successfully"
	MessageSuccessPredictPeakHours   = "peak hours predicted successfully"
	MessageSuccessPredictWaitTime    = "wait time predicted successfully"
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"
	MessageSuccessGetInsights        = "insights retrieved successfully"
	MessageSuccessOptimizeQueue      = "queue optimization analyzed successfully"

	MessageFailedPredictVolume      = "failed to predict order volume"
	MessageFailedPredictPeakHours   = "failed to predict peak hours"
	MessageFailedPredictWaitTime    = "failed to predict wait time"
	MessageFailedGetRecommendations = "failed to retrieve recommendations"
	MessageFailedGetInsights        = "failed to retrieve insights"
	MessageFailedOptimizeQueue      = "failed to analyze queue optimization"

	ErrInvalidHorizon   = errors.New("hours ahead must be between 1 and 168")
	ErrNoPopularityData = errors.New("no popularity data available")
)

type (
	WaitTimeItemRequest struct {
		ItemID   uint `json:"item_id,omitempty"`
		PrepTime int  `json:"prep_time"`
	}

	PredictWaitTimeRequest struct {
		Items              []WaitTimeItemRequest `json:"items" validate:"required,min=1"`
		CurrentQueueLength *int                  `json:"current_queue_length,omitempty"`
	}

	PredictWaitTimeResponse struct {
		PredictedWaitMinutes int    `json:"predicted_wait_minutes"`
		Breakdown            struct {
			PreparationTime int `json:"preparation_time"`
			QueueImpact     int `json:"queue_impact"`
			TotalItems      int `json:"total_items"`
		} `json:"breakdown"`
		QueueInfo struct {
			CurrentQueueLength     int `json:"current_queue_length"`
			EstimatedQueuePosition int `json:"estimated_queue_position"`
		} `json:"queue_info"`
		Recommendation string `json:"recommendation"`
	}

	PredictVolumeResponse struct {
		Timestamp            string `json:"timestamp"`
		PredictedOrderVolume int    `json:"predicted_order_volume"`
		TimePeriod           string `json:"time_period"`
		Message              string `json:"message"`
	}

	HourlyPrediction struct {
		Hour            string `json:"hour"`
		Date            string `json:"date"`
		PredictedVolume int    `json:"predicted_volume"`
		Intensity       string `json:"intensity"` // "high", "medium", "low"
		Description     string `json:"description"`
		IsPeak          bool   `json:"is_peak"`
	}

	PeakHoursResponse struct {
		PeakHours   []string           `json:"peak_hours"`
		Predictions []HourlyPrediction `json:"predictions"`
		Summary     struct {
			TotalHoursPredicted int      `json:"total_hours_predicted"`
			PeakHoursCount      int      `json:"peak_hours_count"`
			PeakHoursFound      []string `json:"peak_hours_found"`
		} `json:"summary"`
		GeneratedAt string `json:"generated_at"`
	}

	Recommendation struct {
		Name            string  `json:"name"`
		PopularityScore float64 `json:"popularity_score"`
		OrderCount      int     `json:"order_count"`
		Category        string  `json:"category"`
		PrepTime        int     `json:"prep_time"`
		Description     string  `json:"description"`
		Image           string  `json:"image,omitempty"`
	}

	RecommendationsResponse struct {
		Recommendations []Recommendation `json:"recommendations"`
		FiltersApplied  struct {
			Category string `json:"category,omitempty"`
			Limit    int    `json:"limit"`
		} `json:"filters_applied"`
		TotalRecommendations int             `json:"total_recommendations"`
		MostPopular          *Recommendation `json:"most_popular,omitempty"`
	}

	QuickMealsResponse struct {
		QuickMeals      []Recommendation `json:"quick_meals"`
		Criteria        string           `json:"criteria"`
		AveragePrepTime float64          `json:"average_prep_time"`
	}

	InsightsDataAnalysis struct {
		TotalOrdersAnalyzed    int     `json:"total_orders_analyzed"`
		UniqueItemsAnalyzed    int     `json:"unique_items_analyzed"`
		MostPopularItem        string  `json:"most_popular_item"`
		MostPopularScore       float64 `json:"most_popular_score"`
		AveragePreparationTime float64 `json:"average_preparation_time"`
	}

	InsightsModelPerformance struct {
		OrderVolumeMAE string `json:"order_volume_mae"`
		OrderVolumeR2  string `json:"order_volume_r2"`
		WaitTimeMAE    string `json:"wait_time_mae"`
		WaitTimeR2     string `json:"wait_time_r2"`
	}

	InsightsBusiness struct {
		RecommendedPeakStaffing  []string `json:"recommended_peak_staffing"`
		FastestPreparingCategory string   `json:"fastest_preparing_category"`
		MostProfitableHours      string   `json:"most_profitable_hours"`
		IdentifiedPeakHours      []string `json:"identified_peak_hours"`
	}

	InsightsResponse struct {
		DataAnalysis     InsightsDataAnalysis     `json:"data_analysis"`
		ModelPerformance InsightsModelPerformance `json:"model_performance"`
		BusinessInsights InsightsBusiness         `json:"business_insights"`
	}

	OptimizeQueueRequest struct {
		CurrentQueue  []uint             `json:"current_queue"`
		PendingOrders []PendingOrderInfo `json:"pending_orders"`
	}

	PendingOrderInfo struct {
		OrderID  uint `json:"order_id,omitempty"`
		PrepTime int  `json:"prep_time"`
	}

	QueueOptimizationResponse struct {
		QueueMetrics struct {
			TotalPendingOrders int     `json:"total_pending_orders"`
			AveragePrepTime    float64 `json:"average_prep_time"`
		} `json:"queue_metrics"`
		OptimizationSuggestions []string `json:"optimization_suggestions"`
	}
)
