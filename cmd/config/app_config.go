package config

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/internal/api/handlers"
	"restaurant-inventory/internal/api/routes"
	"restaurant-inventory/internal/metrics"
	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/internal/utils"
	"restaurant-inventory/internal/utils/logger"
	"restaurant-inventory/internal/utils/mailing"
	"restaurant-inventory/internal/utils/storage"
	"restaurant-inventory/pkg/cascade"
	"restaurant-inventory/pkg/crud"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/jwt"
	"restaurant-inventory/pkg/recipe"
	"restaurant-inventory/pkg/registry"
	"restaurant-inventory/pkg/report"
	"restaurant-inventory/pkg/stock"
)

func newResourceHandler[T any, I crud.Input[T], P crud.Patch](
	manager *database.Manager,
	desc registry.Descriptor,
	validator *validator.Validate,
) handlers.ResourceHandler {
	service := crud.NewService[T, I, P](crud.NewRepository[T](manager, desc), desc)
	return handlers.NewResourceHandler[T, I, P](service, validator)
}

// reportSinks returns the configured upload and mail targets. Unconfigured
// sinks stay nil and the matching report routes answer with a clear error.
func reportSinks(cfg utils.Config) (report.Uploader, report.Mailer) {
	log := logger.GetLogger()

	var uploader report.Uploader
	if cfg.AWSS3Bucket != "" {
		s3, err := storage.NewAwsS3(context.Background(), storage.S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
		if err != nil {
			log.Warn("report upload disabled", zap.Error(err))
		} else {
			uploader = s3
		}
	}

	var mailer report.Mailer
	if cfg.SMTPHost != "" {
		m, err := mailing.NewMailer(mailing.MailConfig{
			SMTPHost:     cfg.SMTPHost,
			SMTPPort:     cfg.SMTPPort,
			SMTPSender:   cfg.SMTPSenderName,
			SMTPEmail:    cfg.SMTPAuthEmail,
			SMTPPassword: cfg.SMTPAuthPassword,
		})
		if err != nil {
			log.Warn("report mail disabled", zap.Error(err))
		} else {
			mailer = m
		}
	}

	return uploader, mailer
}

func NewApp(manager *database.Manager, cfg utils.Config, appMetrics *metrics.Metrics) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "restaurant-inventory",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}

	app.Use(recover.New())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(logger.Middleware(logger.GetLogger()))
	if appMetrics != nil {
		app.Use(appMetrics.Middleware())
	}
	app.Use(middlewares.CORSMiddleware())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit(),
		Expiration: 1 * time.Second,
	}))

	var recorder cascade.Recorder
	var metricsHandler fiber.Handler
	if appMetrics != nil {
		recorder = appMetrics
		metricsHandler = appMetrics.Handler()
	}

	var jwtService jwt.JWTService
	if cfg.JWTSecret != "" {
		jwtService = jwt.NewJWTService(cfg.JWTSecret)
	}

	uploader, mailer := reportSinks(cfg)

	// Repository
	stockDesc := reg.MustLookup(registry.StockIngredients)
	recipeDesc := reg.MustLookup(registry.Recipes)
	stockRepository := stock.NewStockRepository(manager, stockDesc)
	recipeRepository := recipe.NewRecipeRepository(manager, recipeDesc)
	reportRepository := report.NewReportRepository(manager)

	// Service
	stockService := stock.NewStockService(stockRepository, stockDesc)
	recipeService := recipe.NewRecipeService(recipeRepository, recipeDesc)
	cascadeService := cascade.NewCascadeService(manager, reg, recorder)
	reportService := report.NewReportService(reportRepository, uploader, mailer)

	// Handler
	resourceHandlers := map[string]handlers.ResourceHandler{
		registry.Category: newResourceHandler[entities.Category, domain.CategoryRequest, domain.CategoryPatch](
			manager, reg.MustLookup(registry.Category), validator),
		registry.Ingredients: newResourceHandler[entities.Ingredient, domain.IngredientRequest, domain.IngredientPatch](
			manager, reg.MustLookup(registry.Ingredients), validator),
		registry.MenuItems: newResourceHandler[entities.MenuItem, domain.MenuItemRequest, domain.MenuItemPatch](
			manager, reg.MustLookup(registry.MenuItems), validator),
		registry.Orders: newResourceHandler[entities.Order, domain.OrderRequest, domain.OrderPatch](
			manager, reg.MustLookup(registry.Orders), validator),
		registry.Recipes: handlers.NewResourceHandler[entities.Recipe, domain.RecipeRequest, domain.RecipePatch](
			recipeService, validator),
	}
	stockHandler := handlers.NewStockHandler(stockService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	cascadeHandler := handlers.NewCascadeHandler(cascadeService)
	reportHandler := handlers.NewReportHandler(reportService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ResourceHandlers: resourceHandlers,
		StockHandler:     stockHandler,
		RecipeHandler:    recipeHandler,
		CascadeHandler:   cascadeHandler,
		ReportHandler:    reportHandler,
		Registry:         reg,
		Middleware:       middlewares,
		JWTService:       jwtService,
		MetricsHandler:   metricsHandler,
	}
	routesConfig.Setup()
	return app, nil
}
