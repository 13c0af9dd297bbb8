package routes

import (
	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/handlers"
	"restaurant-inventory/internal/api/presenters"
	"restaurant-inventory/internal/middleware"
	"restaurant-inventory/pkg/jwt"
	"restaurant-inventory/pkg/registry"
	"restaurant-inventory/pkg/report"
)

type Config struct {
	App              *fiber.App
	ResourceHandlers map[string]handlers.ResourceHandler
	StockHandler     handlers.StockHandler
	RecipeHandler    handlers.RecipeHandler
	CascadeHandler   handlers.CascadeHandler
	ReportHandler    handlers.ReportHandler
	Registry         *registry.Registry
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
	MetricsHandler   fiber.Handler
}

func (c *Config) Setup() {
	c.GuestRoute()
	api := c.App.Group("/api", c.Middleware.AuthMiddleware(c.JWTService))
	c.Stock(api)
	c.Recipes(api)
	c.Resources(api)
	c.Views(api)
	c.Reports(api)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
	if c.MetricsHandler != nil {
		c.App.Get("/metrics", c.MetricsHandler)
	}
}

// Resources mounts the generic CRUD routes, plus the cascade retry path for
// resources whose delete can be blocked by dependents.
func (c *Config) Resources(api fiber.Router) {
	for _, desc := range c.Registry.Simple() {
		h, ok := c.ResourceHandlers[desc.Name]
		if !ok {
			continue
		}
		group := api.Group("/" + desc.Name)
		group.Get("", h.List)
		group.Post("", h.Create)
		group.Get("/:id", h.Get)
		group.Put("/:id", h.Update)
		group.Delete("/:id", h.Delete)
		if desc.Cascade {
			group.Delete("/:id/cascade", c.CascadeHandler.Delete(desc.Name))
		}
	}
}

func (c *Config) Stock(api fiber.Router) {
	stock := api.Group("/" + registry.StockIngredients)
	stock.Get("", c.StockHandler.List)
	stock.Post("", c.StockHandler.Create)
	stock.Get("/:id", c.StockHandler.Get)
	stock.Delete("/:stockId/:ingredientId", c.StockHandler.Delete)
}

func (c *Config) Recipes(api fiber.Router) {
	recipes := api.Group("/" + registry.Recipes)
	recipes.Get("", c.RecipeHandler.ListWithNames)

	if h, ok := c.ResourceHandlers[registry.Recipes]; ok {
		recipes.Post("", h.Create)
		recipes.Get("/:id", h.Get)
		recipes.Put("/:id", h.Update)
		recipes.Delete("/:id", h.Delete)
	}
}

func (c *Config) Views(api fiber.Router) {
	api.Get("/"+report.ViewTotalStock, c.ReportHandler.View(report.TotalStock))
	api.Get("/"+report.ViewIngredientsUsed, c.ReportHandler.View(report.IngredientsUsed))
	api.Get("/"+report.ViewRemaining, c.ReportHandler.View(report.Remaining))
}

func (c *Config) Reports(api fiber.Router) {
	reports := api.Group("/reports")
	reports.Get("/:view", c.ReportHandler.Download)
	reports.Post("/:view/publish", c.ReportHandler.Publish)
	reports.Post("/:view/mail", c.ReportHandler.Mail)
}
