package billing

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// QuotationPDFGenerator dibuja el PDF de una cotización. client puede ser nil
// cuando el nombre no coincide con ningún cliente.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, q *entity.Quotation, client *entity.Customer) ([]byte, error)
}

// QuotationRegisterGenerator genera el registro tabular (.xlsx) de cotizaciones.
type QuotationRegisterGenerator interface {
	GenerateRegister(quotations []entity.Quotation) ([]byte, error)
}
