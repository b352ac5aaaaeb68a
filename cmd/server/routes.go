package main

import (
	"nextpdv/internal/analytics"
	"nextpdv/internal/audit"
	"nextpdv/internal/auth"
	"nextpdv/internal/catalog"
	"nextpdv/internal/config"
	"nextpdv/internal/customer"
	"nextpdv/internal/dashboard"
	"nextpdv/internal/database"
	"nextpdv/internal/goals"
	"nextpdv/internal/logger"
	"nextpdv/internal/models"
	"nextpdv/internal/orders"
	"nextpdv/internal/report"
	"nextpdv/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func registerRoutes(app *fiber.App, cfg *config.Config, log *zap.Logger) {
	app.Use(recover.New())
	app.Use(logger.Middleware(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOriginList(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Static("/uploads", cfg.UploadPath)

	store := database.Store{DB: database.DB}
	agg := analytics.NewAggregator(cfg.DeliveryTag)
	stock := analytics.NewStockPolicy(cfg.ReferenceCapacity)
	salesSvc := sales.NewService(database.DB, cfg.DeliveryTag)
	ordersSvc := orders.NewService(database.DB, salesSvc)

	// Públicas
	app.Post("/auth/register-admin", auth.RegisterAdminHandler())
	app.Post("/auth/login", auth.LoginHandler(cfg))

	api := app.Group("", auth.JWTMiddleware(cfg))
	adminOnly := auth.RequireRole(cfg, models.RoleAdmin)

	api.Get("/auth/me", auth.MeHandler(cfg))
	api.Post("/auth/usuarios", adminOnly, auth.CreateUserHandler())

	// Produtos e variações
	api.Get("/produtos", catalog.ListProductsHandler(cfg))
	api.Post("/produtos", adminOnly, catalog.CreateProductHandler(cfg))
	api.Post("/produtos/upload", adminOnly, catalog.UploadImageHandler(cfg))
	api.Post("/produtos/estoque/importar", adminOnly, catalog.ImportStockHandler())
	api.Put("/produtos/:id", adminOnly, catalog.UpdateProductHandler(cfg))
	api.Delete("/produtos/:id", adminOnly, catalog.DeleteProductHandler())
	api.Post("/produtos/:id/variacoes", adminOnly, catalog.AddVariantHandler())
	api.Patch("/produtos/variacoes/:id", catalog.UpdateVariantStockHandler())
	api.Delete("/produtos/variacoes/:id", adminOnly, catalog.DeleteVariantHandler())

	// Clientes
	api.Get("/clientes", customer.ListCustomersHandler())
	api.Post("/clientes", customer.CreateCustomerHandler())
	api.Put("/clientes/:id", customer.UpdateCustomerHandler())

	// Vendas
	api.Get("/vendas", sales.ListSalesHandler(salesSvc))
	api.Get("/vendas/exportar", report.ExportSalesHandler(store, agg))
	api.Post("/vendas", sales.CreateSaleHandler(salesSvc))
	api.Post("/vendas/troca", sales.ExchangeHandler(salesSvc))
	api.Delete("/vendas/:id", adminOnly, sales.DeleteSaleHandler(salesSvc))

	// Pedidos agendados
	api.Get("/pedidos", orders.ListOrdersHandler(ordersSvc))
	api.Post("/pedidos", orders.CreateOrderHandler(ordersSvc))
	api.Get("/pedidos/:id", orders.GetOrderHandler(ordersSvc))
	api.Put("/pedidos/:id/status", orders.UpdateStatusHandler(ordersSvc))

	// Metas
	api.Get("/metas", goals.ListGoalsHandler(store, agg))
	api.Post("/metas", adminOnly, goals.CreateGoalHandler(store))
	api.Delete("/metas/:id", adminOnly, goals.DeleteGoalHandler(store))

	api.Get("/dashboard", dashboard.Handler(store, agg, stock))
	api.Get("/audit-logs", adminOnly, audit.ListAuditLogsHandler())
}
