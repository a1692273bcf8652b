package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *billing.CustomerUseCase
	QuotationUC *billing.QuotationUseCase
	PDFUC       *billing.PDFUseCase
	LeadUC      *usecase.RecordUseCase[entity.Lead]
	ExpenseUC   *usecase.RecordUseCase[entity.Expense]
	PaymentUC   *usecase.PaymentUseCase
	StoreURL    string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Store: deps.StoreURL})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token; el token se reenvía al store)
	protected := api.Group("/", AuthMiddleware(deps.Log))

	NewRecordHandler[entity.Customer](deps.CustomerUC).Mount(protected.Group("/customers"))
	NewRecordHandler[entity.Lead](deps.LeadUC).Mount(protected.Group("/leads"))
	NewRecordHandler[entity.Expense](deps.ExpenseUC).Mount(protected.Group("/expenses"))

	// Payments: rutas derivadas antes de /:id
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/customers", paymentHandler.CustomerNames)
	payments.Get("/quotations/:name", paymentHandler.QuotationsByCustomer)
	payments.Get("/customer/:name", paymentHandler.PaymentsByCustomer)
	NewRecordHandler[entity.Payment](deps.PaymentUC).Mount(payments)

	// Quotations
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.PDFUC)
	quotations.Get("/register.xlsx", quotationHandler.Register)
	quotations.Post("/preview", quotationHandler.Preview)
	quotations.Post("/validate", quotationHandler.Validate)
	quotations.Post("/items", quotationHandler.EditItems)
	quotations.Get("/", quotationHandler.List)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/:id/pdf", quotationHandler.PDF)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationHandler.Delete)
}
