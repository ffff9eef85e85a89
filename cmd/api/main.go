package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestorcell/gestor-api/internal/application/auth"
	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/ledger"
	"github.com/gestorcell/gestor-api/internal/application/purchase"
	"github.com/gestorcell/gestor-api/internal/application/sale"
	"github.com/gestorcell/gestor-api/internal/application/sequence"
	"github.com/gestorcell/gestor-api/internal/application/serviceorder"
	"github.com/gestorcell/gestor-api/internal/application/usecase"
	infraai "github.com/gestorcell/gestor-api/internal/infrastructure/ai"
	infrapdf "github.com/gestorcell/gestor-api/internal/infrastructure/pdf"
	"github.com/gestorcell/gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorcell/gestor-api/internal/interfaces/http"
	"github.com/gestorcell/gestor-api/pkg/config"
	"github.com/gestorcell/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	saleRepo := postgres.NewTicketSaleRepository(pool)
	orderRepo := postgres.NewServiceOrderRepository(pool)
	transactionRepo := postgres.NewCashTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewStoreConfigRepository(pool)
	sequenceRepo := postgres.NewSequenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dir := directory.New(customerRepo, supplierRepo)
	ledgerSync := ledger.NewSynchronizer(transactionRepo)
	sequences := sequence.NewGenerator(sequenceRepo)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, dir)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, dir)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	purchaseUC := purchase.NewUseCase(purchaseRepo, productRepo, dir, ledgerSync, sequences)
	saleUC := sale.NewUseCase(saleRepo, productRepo, dir, ledgerSync, sequences, txRunner)

	sheetGenerator := infrapdf.NewMarotoSheetGenerator()
	serviceOrderUC := serviceorder.NewUseCase(orderRepo, settingsRepo, dir, ledgerSync, sequences, sheetGenerator)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model, cfg.AI.FallbackModel)
	insightsUC := usecase.NewInsightsUseCase(geminiSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GestorCell API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		ProductUC:      productUC,
		ServiceUC:      serviceUC,
		CustomerUC:     customerUC,
		SupplierUC:     supplierUC,
		PurchaseUC:     purchaseUC,
		SaleUC:         saleUC,
		ServiceOrderUC: serviceOrderUC,
		TransactionUC:  transactionUC,
		SettingsUC:     settingsUC,
		InsightsUC:     insightsUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
