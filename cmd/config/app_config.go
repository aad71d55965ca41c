package config

import (
	"canteen-queue-optimizer/internal/api/handlers"
	"canteen-queue-optimizer/internal/api/routes"
	"canteen-queue-optimizer/internal/cache"
	"canteen-queue-optimizer/internal/middleware"
	"canteen-queue-optimizer/internal/utils"
	"canteen-queue-optimizer/internal/utils/storage"
	"canteen-queue-optimizer/pkg/jwt"
	"canteen-queue-optimizer/pkg/menu"
	"canteen-queue-optimizer/pkg/order"
	"canteen-queue-optimizer/pkg/payment"
	"canteen-queue-optimizer/pkg/prediction"
	"canteen-queue-optimizer/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	orderRepository := order.NewOrderRepository(db)
	menuRepository := menu.NewMenuRepository(db)

	// menu reads go through redis when it is configured
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		rdb, err := cache.ConnectRedis(addr, utils.GetConfig("REDIS_PASSWORD"), utils.GetRedisDB())
		if err != nil {
			log.Warnf("redis unavailable, menu cache disabled: %v", err)
		} else {
			menuRepository = cache.NewCachedMenuRepository(menuRepository, rdb)
		}
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3)
	predictionService := prediction.NewPredictionService(prediction.DefaultPopularityTable, time.Now().UnixNano())
	orderService := order.NewOrderService(orderRepository, menuRepository, predictionService)
	paymentService := payment.NewPaymentService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	predictionHandler := handlers.NewPredictionHandler(predictionService, orderRepository, menuRepository, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		MenuHandler:       menuHandler,
		OrderHandler:      orderHandler,
		PredictionHandler: predictionHandler,
		PaymentHandler:    paymentHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
