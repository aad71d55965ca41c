package handlers

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/internal/api/presenters"
	"canteen-queue-optimizer/pkg/menu"
	"canteen-queue-optimizer/pkg/order"
	"canteen-queue-optimizer/pkg/prediction"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PredictionHandler interface {
		GetStatus(c *fiber.Ctx) error
		PredictVolume(c *fiber.Ctx) error
		PredictPeakHours(c *fiber.Ctx) error
		PredictWaitTime(c *fiber.Ctx) error
		GetPopularRecommendations(c *fiber.Ctx) error
		GetQuickMealRecommendations(c *fiber.Ctx) error
		GetInsights(c *fiber.Ctx) error
		GetDemoPredictions(c *fiber.Ctx) error
		OptimizeQueue(c *fiber.Ctx) error
	}

	predictionHandler struct {
		predictionService prediction.PredictionService
		orderRepository   order.OrderRepository
		menuRepository    menu.MenuRepository
		validator         *validator.Validate
	}
)

func NewPredictionHandler(
	predictionService prediction.PredictionService,
	orderRepository order.OrderRepository,
	menuRepository menu.MenuRepository,
	validator *validator.Validate,
) PredictionHandler {
	return &predictionHandler{
		predictionService: predictionService,
		orderRepository:   orderRepository,
		menuRepository:    menuRepository,
		validator:         validator,
	}
}

func (h *predictionHandler) GetStatus(c *fiber.Ctx) error {
	insights, err := h.predictionService.Insights()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInsights, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"system_status": "active",
		"models_loaded": fiber.Map{
			"order_volume_predictor": true,
			"wait_time_estimator":    true,
			"popularity_analyzer":    insights.DataAnalysis.UniqueItemsAnalyzed > 0,
		},
		"training_data": fiber.Map{
			"total_orders": prediction.OrderVolumeModelMetadata.TrainedSamples,
			"data_period":  "30_days_historical",
		},
		"model_metadata": fiber.Map{
			"order_volume_model": prediction.OrderVolumeModelMetadata,
			"wait_time_model":    prediction.WaitTimeModelMetadata,
		},
		"model_performance": insights.ModelPerformance,
		"data_insights":     insights.DataAnalysis,
	}, fiber.StatusOK, domain.MessageSuccessGetStatus)
}

func (h *predictionHandler) PredictVolume(c *fiber.Ctx) error {
	now := time.Now()
	volume := h.predictionService.PredictOrderVolume(now)

	res := domain.PredictVolumeResponse{
		Timestamp:            now.Format(time.RFC3339),
		PredictedOrderVolume: volume,
		TimePeriod:           prediction.TimePeriodLabel(now),
		Message:              fmt.Sprintf("Expected %d orders per hour based on historical patterns", volume),
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictVolume)
}

func (h *predictionHandler) PredictPeakHours(c *fiber.Ctx) error {
	hours, err := strconv.Atoi(c.Query("hours", "12"))
	if err != nil {
		hours = 12
	}

	now := time.Now()
	predictions, err := h.predictionService.PredictPeakHours(hours, now)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictPeakHours, err)
	}

	res := domain.PeakHoursResponse{
		Predictions: predictions,
		GeneratedAt: now.Format(time.RFC3339),
	}

	seen := map[string]bool{}
	for _, pred := range predictions {
		if !pred.IsPeak {
			continue
		}
		res.Summary.PeakHoursCount++
		res.Summary.PeakHoursFound = append(res.Summary.PeakHoursFound, pred.Hour)

		hour, _ := strconv.Atoi(pred.Hour[:2])
		peakRange := fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24)
		if !seen[peakRange] {
			seen[peakRange] = true
			res.PeakHours = append(res.PeakHours, peakRange)
		}
	}
	res.Summary.TotalHoursPredicted = hours

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictPeakHours)
}

func (h *predictionHandler) PredictWaitTime(c *fiber.Ctx) error {
	req := new(domain.PredictWaitTimeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictWaitTime, err)
	}

	totalPrepTime := 0
	for _, item := range req.Items {
		prepTime := item.PrepTime
		if prepTime <= 0 {
			prepTime = prediction.DefaultItemPrepTime
		}
		totalPrepTime += prepTime
	}

	queueLength := 0
	if req.CurrentQueueLength != nil {
		queueLength = *req.CurrentQueueLength
	} else {
		active, err := h.orderRepository.CountActiveOrders(c.Context())
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPredictWaitTime, err)
		}
		queueLength = int(active)
	}

	now := time.Now()
	predictedWait := h.predictionService.PredictWaitTime(totalPrepTime, queueLength, now)

	queueImpact := predictedWait - totalPrepTime
	if queueImpact < 0 {
		queueImpact = 0
	}

	var recommendation string
	switch {
	case predictedWait < 8:
		recommendation = "Order now for fastest service"
	case predictedWait < 15:
		recommendation = "Good time to order"
	default:
		recommendation = "Consider pre-ordering"
	}

	res := domain.PredictWaitTimeResponse{
		PredictedWaitMinutes: predictedWait,
		Recommendation:       recommendation,
	}
	res.Breakdown.PreparationTime = totalPrepTime
	res.Breakdown.QueueImpact = queueImpact
	res.Breakdown.TotalItems = len(req.Items)
	res.QueueInfo.CurrentQueueLength = queueLength
	res.QueueInfo.EstimatedQueuePosition = queueLength + 1

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictWaitTime)
}

func (h *predictionHandler) GetPopularRecommendations(c *fiber.Ctx) error {
	category := c.Query("category")
	limit, err := strconv.Atoi(c.Query("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	recommendations, err := h.predictionService.PopularRecommendations(c.Context(), limit, category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecommendations, err)
	}

	h.attachImages(c, recommendations)

	res := domain.RecommendationsResponse{
		Recommendations:      recommendations,
		TotalRecommendations: len(recommendations),
	}
	res.FiltersApplied.Category = category
	res.FiltersApplied.Limit = limit
	if len(recommendations) > 0 {
		res.MostPopular = &recommendations[0]
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *predictionHandler) GetQuickMealRecommendations(c *fiber.Ctx) error {
	res, err := h.predictionService.QuickMealRecommendations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecommendations, err)
	}

	h.attachImages(c, res.QuickMeals)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *predictionHandler) GetInsights(c *fiber.Ctx) error {
	insights, err := h.predictionService.Insights()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInsights, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"business_intelligence": insights,
		"generated_at":          time.Now().Format(time.RFC3339),
		"analysis_period":       "30_days_historical_data",
		"data_points_analyzed":  prediction.OrderVolumeModelMetadata.TrainedSamples,
	}, fiber.StatusOK, domain.MessageSuccessGetInsights)
}

func (h *predictionHandler) GetDemoPredictions(c *fiber.Ctx) error {
	now := time.Now()
	volume := h.predictionService.PredictOrderVolume(now)

	peakPredictions, err := h.predictionService.PredictPeakHours(12, now)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPredictPeakHours, err)
	}
	var nextPeaks []domain.HourlyPrediction
	for _, pred := range peakPredictions {
		if pred.IsPeak {
			nextPeaks = append(nextPeaks, pred)
		}
	}

	popular, err := h.predictionService.PopularRecommendations(c.Context(), 5, "")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecommendations, err)
	}

	sampleWait := h.predictionService.PredictWaitTime(15, 3, now)

	topRecommendation := "No data"
	if len(popular) > 0 {
		topRecommendation = popular[0].Name
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"demo_predictions": fiber.Map{
			"current_volume":     fmt.Sprintf("%d orders/hour", volume),
			"sample_wait_time":   fmt.Sprintf("%d minutes for a burger with 3 orders in queue", sampleWait),
			"top_recommendation": topRecommendation,
			"next_peak_hours":    nextPeaks,
		},
		"capabilities": []string{
			"Order volume forecasting",
			"Wait time estimation",
			"Popular item recommendations",
			"Peak hour analysis",
			"Queue optimization suggestions",
		},
	}, fiber.StatusOK, domain.MessageSuccessGetStatus)
}

func (h *predictionHandler) OptimizeQueue(c *fiber.Ctx) error {
	req := new(domain.OptimizeQueueRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	analysis := h.predictionService.OptimizeQueue(*req)

	return presenters.SuccessResponse(c, fiber.Map{
		"optimization_analysis": analysis,
		"analyzed_at":           time.Now().Format(time.RFC3339),
		"queue_snapshot": fiber.Map{
			"current_queue_length": len(req.CurrentQueue),
			"pending_orders_count": len(req.PendingOrders),
		},
	}, fiber.StatusOK, domain.MessageSuccessOptimizeQueue)
}

// attachImages resolves catalog images for recommendation payloads, the
// popularity table itself carries no image references.
func (h *predictionHandler) attachImages(c *fiber.Ctx, recommendations []domain.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	items, err := h.menuRepository.GetAvailableItems(c.Context())
	if err != nil {
		log.Printf("failed to resolve recommendation images: %v", err)
		return
	}

	images := make(map[string]string, len(items))
	for _, item := range items {
		if item.ImageURL != "" {
			images[item.Name] = item.ImageURL
		}
	}

	for i := range recommendations {
		if url, ok := images[recommendations[i].Name]; ok {
			recommendations[i].Image = url
		} else {
			recommendations[i].Image = menu.FallbackImage(recommendations[i].Category)
		}
	}
}
