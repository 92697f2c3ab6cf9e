package borrowermock

import (
	"context"

	domain "prestanet-backend/internal/domain/borrower"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, b *domain.Borrower) error
	GetByBorrowerIDFn          func(ctx context.Context, borrowerID string) (*domain.Borrower, error)
	GetByBorrowerIDForUpdateFn func(ctx context.Context, borrowerID string) (*domain.Borrower, error)
	GetByNationalIDFn          func(ctx context.Context, nationalID string) (*domain.Borrower, error)
	SaveFn                     func(ctx context.Context, b *domain.Borrower) error
	ListFn                     func(ctx context.Context) ([]domain.Borrower, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByBorrowerIDForUpdate(ctx context.Context, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDForUpdateFn != nil {
		return m.GetByBorrowerIDForUpdateFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Borrower, error) {
	if m.GetByNationalIDFn != nil {
		return m.GetByNationalIDFn(ctx, nationalID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, b *domain.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
func (m *Repo) List(ctx context.Context) ([]domain.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
