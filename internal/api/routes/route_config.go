package routes

import (
	"canteen-queue-optimizer/internal/api/handlers"
	"canteen-queue-optimizer/internal/middleware"
	"canteen-queue-optimizer/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	MenuHandler       handlers.MenuHandler
	OrderHandler      handlers.OrderHandler
	PredictionHandler handlers.PredictionHandler
	PaymentHandler    handlers.PaymentHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Root()
	c.Auth()
	c.Menu()
	c.Orders()
	c.Predictions()
	c.Payments()
	c.Queue()
}

func (c *Config) Root() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Canteen Queue Optimizer API",
			"status":  "running",
			"endpoints": fiber.Map{
				"health": "/health",
				"menu":   "/menu",
				"orders": "/orders",
				"ml":     "/ml/status",
			},
		})
	})

	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "canteen-queue-optimizer",
		})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/signup", c.UserHandler.Signup)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/menu")
	{
		menu.Get("", c.MenuHandler.GetMenu)
		menu.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.AddMenuItem)
		menu.Get("/:category", c.MenuHandler.GetMenuByCategory)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/orders")
	{
		orders.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.CreateOrder)
		orders.Get("/user/:id", c.OrderHandler.GetUserOrders)
		orders.Get("/:id", c.OrderHandler.GetOrder)
		orders.Patch("/:id/status", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.UpdateOrderStatus)
	}
}

func (c *Config) Predictions() {
	ml := c.App.Group("/ml")
	{
		ml.Get("/status", c.PredictionHandler.GetStatus)
		ml.Get("/predict/volume", c.PredictionHandler.PredictVolume)
		ml.Get("/predict/peak-hours", c.PredictionHandler.PredictPeakHours)
		ml.Post("/predict/wait-time", c.PredictionHandler.PredictWaitTime)
		ml.Get("/recommendations/popular", c.PredictionHandler.GetPopularRecommendations)
		ml.Get("/recommendations/quick-meals", c.PredictionHandler.GetQuickMealRecommendations)
		ml.Get("/insights", c.PredictionHandler.GetInsights)
		ml.Get("/demo-predictions", c.PredictionHandler.GetDemoPredictions)
		ml.Post("/optimize-queue", c.PredictionHandler.OptimizeQueue)
	}
}

func (c *Config) Payments() {
	payment := c.App.Group("/payment")
	{
		payment.Post("/create-intent", c.PaymentHandler.CreatePaymentIntent)
	}
}

func (c *Config) Queue() {
	queue := c.App.Group("/queue")
	{
		queue.Get("/current", c.OrderHandler.GetCurrentQueue)
	}
}
