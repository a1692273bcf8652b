package usecase

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// RecordUseCase CRUD delegado al store con una validación local previa a cada escritura.
type RecordUseCase[T any] struct {
	repo     repository.RecordRepository[T]
	validate func(*T) error
}

// NewRecordUseCase construye el caso de uso. validate puede ser nil.
func NewRecordUseCase[T any](repo repository.RecordRepository[T], validate func(*T) error) *RecordUseCase[T] {
	if validate == nil {
		validate = func(*T) error { return nil }
	}
	return &RecordUseCase[T]{repo: repo, validate: validate}
}

// List lista los registros.
func (uc *RecordUseCase[T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un registro.
func (uc *RecordUseCase[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida y crea.
func (uc *RecordUseCase[T]) Create(ctx context.Context, in T) (*T, error) {
	if err := uc.validate(&in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, &in)
}

// Update valida y actualiza.
func (uc *RecordUseCase[T]) Update(ctx context.Context, id string, in T) (*T, error) {
	if err := uc.validate(&in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, &in)
}

// Delete elimina.
func (uc *RecordUseCase[T]) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
