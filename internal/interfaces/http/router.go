package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/auth"
	"github.com/gestorcell/gestor-api/internal/application/purchase"
	"github.com/gestorcell/gestor-api/internal/application/sale"
	"github.com/gestorcell/gestor-api/internal/application/serviceorder"
	"github.com/gestorcell/gestor-api/internal/application/usecase"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	ServiceUC      *usecase.ServiceUseCase
	CustomerUC     *usecase.CustomerUseCase
	SupplierUC     *usecase.SupplierUseCase
	PurchaseUC     *purchase.UseCase
	SaleUC         *sale.UseCase
	ServiceOrderUC *serviceorder.UseCase
	TransactionUC  *usecase.TransactionUseCase
	SettingsUC     *usecase.SettingsUseCase
	InsightsUC     *usecase.InsightsUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login e setup são públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/system-status", authHandler.SystemStatus)

	// Setup do primeiro dono: público por definição, só funciona com o
	// sistema vazio
	api.Post("/users/setup-owner", authHandler.SetupOwner)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	ownerOnly := RequireRole(entity.RoleOwner)
	finance := RequireRole(entity.RoleOwner, entity.RoleManager)

	// Users (somente dono; o perfil próprio é de qualquer autenticado)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Post("/", ownerOnly, userHandler.Create)
	users.Get("/", ownerOnly, userHandler.List)
	users.Put("/:id", ownerOnly, userHandler.Update)
	users.Delete("/:id", ownerOnly, userHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Services (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Purchases (dono e gerente)
	purchases := protected.Group("/purchases", finance)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Sales: registrar é liberado para qualquer autenticado; listar e
	// excluir são de dono e gerente
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", finance, saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", finance, saleHandler.Delete)

	// Service orders (qualquer autenticado; técnico tem restrições por status
	// aplicadas no caso de uso)
	orders := protected.Group("/service-orders")
	orderHandler := NewServiceOrderHandler(deps.ServiceOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.Sheet)
	orders.Put("/:id", orderHandler.Update)
	orders.Post("/:id/toggle-status", orderHandler.ToggleStatus)
	orders.Delete("/:id", orderHandler.Delete)

	// Cash transactions (dono e gerente)
	transactions := protected.Group("/transactions", finance)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Store settings (protegido; escrita restrita a dono e gerente)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", finance, settingsHandler.Put)

	// AI insights (dono e gerente)
	insights := protected.Group("/insights", finance)
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	insights.Post("/", insightsHandler.Generate)
}
