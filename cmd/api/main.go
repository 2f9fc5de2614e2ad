package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/learnhub-app/learnhub-backend/internal/config"
	"github.com/learnhub-app/learnhub-backend/internal/handler"
	"github.com/learnhub-app/learnhub-backend/internal/middleware"
	"github.com/learnhub-app/learnhub-backend/internal/repository"
	"github.com/learnhub-app/learnhub-backend/internal/service"
	"github.com/learnhub-app/learnhub-backend/pkg/database"
	"github.com/learnhub-app/learnhub-backend/pkg/email"
	"github.com/learnhub-app/learnhub-backend/pkg/logger"
	"github.com/learnhub-app/learnhub-backend/pkg/payment"
	"github.com/learnhub-app/learnhub-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db := database.NewDatabase(cfg.DatabaseURL)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if err := database.SeedCourses(db); err != nil {
		log.Fatal("Failed to seed courses:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	// Stripe gateway (checkout + webhook verification)
	stripeService := payment.NewStripeService(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.FrontendURL,
	)

	// Email service
	emailService := email.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		zapLogger,
	)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	userService := service.NewUserService(userRepo, courseRepo)
	courseService := service.NewCourseService(courseRepo)
	paymentService := service.NewPaymentService(
		stripeService,
		purchaseRepo,
		courseRepo,
		userRepo,
		emailService,
		zapLogger,
	)
	accessService := service.NewAccessService(purchaseRepo, courseRepo, userRepo, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService)
	paymentHandler := handler.NewPaymentHandler(paymentService, accessService, stripeService, validator, zapLogger)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Get("/courses", courseHandler.GetCourses)
	api.Get("/courses/:id", courseHandler.GetCourse)

	// Stripe webhook (public, raw body, must stay before auth middleware)
	api.Post("/purchase/webhook", paymentHandler.HandleStripeWebhook)

	// Protected routes
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)
		user.Get("/my-learning", userHandler.GetMyLearning)

		purchase := api.Group("/purchase")
		purchase.Post("/checkout/create-session", paymentHandler.CreateCheckoutSession)
		purchase.Get("/payment-status", paymentHandler.CheckPaymentStatus)
		purchase.Get("/history", paymentHandler.GetPurchaseHistory)
		purchase.Get("/course/:courseId/access-status", paymentHandler.GetAccessStatus)
		purchase.Get("/course/:courseId/detail-with-status", paymentHandler.GetCourseDetailWithStatus)
		purchase.Get("/", paymentHandler.GetPurchases)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
