package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// CustomerRepository define el puerto de consulta y mantenimiento de clientes.
type CustomerRepository interface {
	RecordRepository[entity.Customer]
}
