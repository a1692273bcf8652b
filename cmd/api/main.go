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
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/Cotizador-api/docs"
	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/Cotizador-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/restclient"
	httpRouter "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/Cotizador-api/pkg/config"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
	"github.com/jhoicas/Cotizador-api/pkg/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.BaseURL).
		Msg("iniciando aplicación")

	// El store espera montos como números JSON.
	decimal.MarshalJSONWithoutQuotes = true

	client := restclient.New(cfg.Store.BaseURL, cfg.Store.Timeout, log)
	customerRepo := restclient.NewCustomerRepository(client)
	quotationRepo := restclient.NewQuotationRepository(client)

	issuer, err := infrapdf.IssuerFromConfig(cfg.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("imágenes del emisor")
	}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(issuer)
	policy := retry.Policy{MaxAttempts: cfg.Retry.MaxAttempts, Delay: cfg.Retry.Delay}

	customerUC := billing.NewCustomerUseCase(customerRepo)
	quotationUC := billing.NewQuotationUseCase(quotationRepo, customerRepo, infraexcel.QuotationRegister{}, policy, log)
	pdfUC := billing.NewPDFUseCase(quotationRepo, customerRepo, pdfGenerator, log)
	authUC := auth.NewAuthUseCase(restclient.NewAuthClient(client))
	leadUC := usecase.NewLeadUseCase(restclient.NewLeadRepository(client))
	expenseUC := usecase.NewExpenseUseCase(restclient.NewExpenseRepository(client))
	paymentUC := usecase.NewPaymentUseCase(restclient.NewPaymentRepository(client))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cotizador API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		QuotationUC: quotationUC,
		PDFUC:       pdfUC,
		LeadUC:      leadUC,
		ExpenseUC:   expenseUC,
		PaymentUC:   paymentUC,
		StoreURL:    cfg.Store.BaseURL,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
