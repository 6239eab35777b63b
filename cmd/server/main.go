package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"steelworks-backend/internal/audit"
	"steelworks-backend/internal/auth"
	"steelworks-backend/internal/cache"
	"steelworks-backend/internal/catalog"
	"steelworks-backend/internal/config"
	"steelworks-backend/internal/contact"
	"steelworks-backend/internal/content"
	"steelworks-backend/internal/database"
	"steelworks-backend/internal/logger"
	"steelworks-backend/internal/models"
	"steelworks-backend/internal/projects"
	"steelworks-backend/internal/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg)
	database.Init(cfg)

	qc := cache.New()
	if err := qc.OnInvalidate(func(entity string) {
		zap.S().Debugw("query cache invalidated", "entity", entity)
	}); err != nil {
		zap.S().Warnw("cache invalidation subscription failed", "error", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: storage.MaxImageSize + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zap.S().Errorw("unexpected error", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Uploaded images are publicly reachable under /assets.
	app.Static(storage.PublicPrefix, cfg.UploadDir)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Public storefront queries
	api.Get("/products", catalog.ListPublicProductsHandler(qc))
	api.Get("/products/:id", catalog.GetPublicProductHandler())
	api.Get("/slider-products", catalog.SliderProductsHandler(qc))
	api.Get("/featured-categories", catalog.FeaturedCategoriesHandler(qc))
	api.Get("/projects", projects.ListPublicProjectsHandler(qc))
	api.Get("/content", content.ListPublicSectionsHandler(qc))

	// Contact
	api.Post("/contact", contact.SubmitContactHandler(cfg))
	api.Get("/contact/links", contact.LinksHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Product management
	adminRoutes.Get("/products", catalog.ListProductsHandler())
	adminRoutes.Post("/products", catalog.CreateProductHandler(qc))
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler(qc))
	adminRoutes.Patch("/products/:id/slider", catalog.ToggleSliderHandler(qc))
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler(qc))

	// Project management
	adminRoutes.Get("/projects", projects.ListProjectsHandler())
	adminRoutes.Post("/projects", projects.CreateProjectHandler(qc))
	adminRoutes.Put("/projects/:id", projects.UpdateProjectHandler(qc))
	adminRoutes.Delete("/projects/:id", projects.DeleteProjectHandler(qc))

	// Homepage content
	adminRoutes.Get("/content", content.ListSectionsHandler())
	adminRoutes.Post("/content", content.CreateSectionHandler(qc))
	adminRoutes.Put("/content/:id", content.UpdateSectionHandler(qc))
	adminRoutes.Delete("/content/:id", content.DeleteSectionHandler(qc))

	// Image uploads
	adminRoutes.Post("/uploads", storage.UploadImageHandler(cfg))
	adminRoutes.Delete("/uploads", storage.DeleteImageHandler(cfg))

	// Audit log
	adminRoutes.Get("/audit", audit.ListAuditEntriesHandler())

	zap.S().Infof("Server running on port %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zap.S().Fatal(err)
	}
}
