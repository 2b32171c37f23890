package api

import (
	"fintrack/docs"
	"fintrack/internal/api/handlers"
	"fintrack/pkg/auth"
	"fintrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	aiHandler *handlers.AIHandler,
	reviewHandler *handlers.ReviewHandler,
	txHandler *handlers.TransactionHandler,
	categoryHandler *handlers.CategoryHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger docs are registered by the docs package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	ai := protected.Group("/ai")
	ai.Post("/analyze", aiHandler.Analyze)
	ai.Post("/extract-transactions", aiHandler.ExtractTransactions)
	ai.Post("/import", aiHandler.Import)

	review := ai.Group("/review")
	review.Post("", reviewHandler.Create)
	review.Get("/:id", reviewHandler.Get)
	review.Delete("/:id", reviewHandler.Clear)
	review.Patch("/:id/select", reviewHandler.ToggleSelect)
	review.Patch("/:id/select-all", reviewHandler.ToggleSelectAll)
	review.Put("/:id/transactions/:index", reviewHandler.Edit)

	income := protected.Group("/income")
	income.Post("", txHandler.AddIncome)
	income.Get("", txHandler.ListIncome)
	income.Get("/download", txHandler.DownloadIncome)
	income.Put("/:id", txHandler.UpdateIncome)
	income.Delete("/:id", txHandler.DeleteIncome)

	expense := protected.Group("/expense")
	expense.Post("", txHandler.AddExpense)
	expense.Get("", txHandler.ListExpense)
	expense.Get("/download", txHandler.DownloadExpense)
	expense.Put("/:id", txHandler.UpdateExpense)
	expense.Delete("/:id", txHandler.DeleteExpense)

	categories := protected.Group("/categories")
	categories.Get("/:kind", categoryHandler.List)
	categories.Post("/:kind", categoryHandler.Add)
	categories.Delete("/:kind/:id", categoryHandler.Delete)

	protected.Get("/dashboard", txHandler.Dashboard)

	return app
}
