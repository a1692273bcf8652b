package billing_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// memRepo store en memoria con las mismas reglas de error que el cliente REST.
type memRepo[T any] struct {
	mu      sync.Mutex
	items   []T
	idOf    func(T) string
	setID   func(*T, string)
	listErr error
	lists   int
	// emptyLists cuántas lecturas devuelven vacío antes de mostrar los datos.
	emptyLists int
}

func (r *memRepo[T]) List(context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	if r.listErr != nil {
		return nil, r.listErr
	}
	if r.lists <= r.emptyLists {
		return []T{}, nil
	}
	return append([]T(nil), r.items...), nil
}

func (r *memRepo[T]) GetByID(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.idOf(r.items[i]) == id {
			v := r.items[i]
			return &v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo[T]) Create(_ context.Context, rec *T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := *rec
	r.setID(&v, fmt.Sprintf("id-%d", len(r.items)+1))
	r.items = append(r.items, v)
	return &v, nil
}

func (r *memRepo[T]) Update(_ context.Context, id string, rec *T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.idOf(r.items[i]) == id {
			r.items[i] = *rec
			v := *rec
			return &v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.idOf(r.items[i]) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newQuotationRepo(items ...entity.Quotation) *memRepo[entity.Quotation] {
	return &memRepo[entity.Quotation]{
		items: items,
		idOf:  func(q entity.Quotation) string { return q.ID },
		setID: func(q *entity.Quotation, id string) { q.ID = id },
	}
}

func newCustomerRepo(items ...entity.Customer) *memRepo[entity.Customer] {
	return &memRepo[entity.Customer]{
		items: items,
		idOf:  func(c entity.Customer) string { return c.ID },
		setID: func(c *entity.Customer, id string) { c.ID = id },
	}
}

type fakePDF struct {
	gotQuotation *entity.Quotation
	gotClient    *entity.Customer
	err          error
}

func (f *fakePDF) GenerateQuotationPDF(_ context.Context, q *entity.Quotation, c *entity.Customer) ([]byte, error) {
	f.gotQuotation, f.gotClient = q, c
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type fakeRegister struct{ got []entity.Quotation }

func (f *fakeRegister) GenerateRegister(qs []entity.Quotation) ([]byte, error) {
	f.got = qs
	return []byte("xlsx"), nil
}
