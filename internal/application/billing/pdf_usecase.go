package billing

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// PDFUseCase genera la representación gráfica (PDF) de una cotización.
type PDFUseCase struct {
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
	generator     QuotationPDFGenerator
	log           *logger.Logger
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	quotationRepo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	generator QuotationPDFGenerator,
	log *logger.Logger,
) *PDFUseCase {
	return &PDFUseCase{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		generator:     generator,
		log:           log.Component("pdf"),
	}
}

// DownloadQuotationPDF recupera la cotización y el cliente (en paralelo) y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien; filename = quotation_{número o N/A}.pdf.
//   - domain.ErrNotFound         si la cotización no existe.
//   - domain.ErrUnauthorized     si la sesión no es válida.
//
// Si la lista de clientes no se puede leer, el PDF sale igual con los marcadores del cliente.
func (uc *PDFUseCase) DownloadQuotationPDF(
	ctx context.Context,
	quotationID string,
) (pdfBytes []byte, filename string, err error) {
	q, client, err := uc.Load(ctx, quotationID)
	if err != nil {
		return nil, "", err
	}
	return uc.Render(ctx, q, client)
}

// Load obtiene la cotización y resuelve su cliente. client es nil si no hay
// coincidencia o si la lista de clientes no está disponible.
func (uc *PDFUseCase) Load(ctx context.Context, quotationID string) (*entity.Quotation, *entity.Customer, error) {
	var (
		q         *entity.Quotation
		customers []entity.Customer
	)

	// ── 1. Cotización y clientes en paralelo ──────────────────────────────────
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		q, err = uc.quotationRepo.GetByID(gctx, quotationID)
		if err != nil {
			return fmt.Errorf("pdf: obtener cotización: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		list, err := uc.customerRepo.List(gctx)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return err
			}
			uc.log.Warn().Err(err).Str("quotation", quotationID).Msg("pdf: clientes no disponibles, se usan marcadores")
			return nil
		}
		customers = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if q == nil {
		return nil, nil, domain.ErrNotFound
	}

	// ── 2. Totales derivados de las líneas ────────────────────────────────────
	if err := quotation.CheckConsistency(q); err != nil {
		uc.log.Warn().Err(err).Str("quotation", quotationID).Msg("pdf: totales del store recalculados")
	}
	quotation.Stamp(q)

	// ── 3. Resolver cliente ───────────────────────────────────────────────────
	return q, quotation.ResolveClient(customers, q.ClientID, q.ClientName), nil
}

// Render genera el PDF de una cotización ya cargada (p. ej. desde la CLI).
func (uc *PDFUseCase) Render(ctx context.Context, q *entity.Quotation, client *entity.Customer) ([]byte, string, error) {
	pdfBytes, err := uc.generator.GenerateQuotationPDF(ctx, q, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, quotation.ExportFilename(q.Number), nil
}
