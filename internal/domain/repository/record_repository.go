package repository

import "context"

// RecordRepository puerto CRUD uniforme sobre una colección del store remoto
// (GET/POST /api/{resource}, GET/PUT/DELETE /api/{resource}/{id}).
// La credencial viaja en ctx (ver session.NewContext).
type RecordRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) (*T, error)
	Update(ctx context.Context, id string, record *T) (*T, error)
	Delete(ctx context.Context, id string) error
}
