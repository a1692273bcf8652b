package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// QuotationRepository define el puerto de persistencia de cotizaciones.
type QuotationRepository interface {
	RecordRepository[entity.Quotation]
}
