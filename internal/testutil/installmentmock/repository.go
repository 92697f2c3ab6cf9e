package installmentmock

import (
	"context"
	"time"

	domain "prestanet-backend/internal/domain/installment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn                    func(ctx context.Context, items []domain.Installment) error
	GetByInstallmentIDFn             func(ctx context.Context, installmentID string) (*domain.Installment, error)
	GetByInstallmentIDForUpdateFn    func(ctx context.Context, installmentID string) (*domain.Installment, error)
	SaveFn                           func(ctx context.Context, i *domain.Installment) error
	DeleteByLoanFn                   func(ctx context.Context, loanID uint64) error
	ListByLoanFn                     func(ctx context.Context, loanID uint64) ([]domain.Installment, error)
	ListByBorrowerFn                 func(ctx context.Context, borrowerID string) ([]domain.Installment, error)
	ListByStateFn                    func(ctx context.Context, state domain.State) ([]domain.Installment, error)
	ListFn                           func(ctx context.Context) ([]domain.Installment, error)
	ListOverdueByBorrowerForUpdateFn func(ctx context.Context, borrowerID string) ([]domain.Installment, error)
	CountByBorrowerFn                func(ctx context.Context, borrowerID string) (int64, error)
	CountOverdueByBorrowerFn         func(ctx context.Context, borrowerID string) (int64, error)
	CountUnpaidByLoanFn              func(ctx context.Context, loanID uint64) (int64, error)
	MarkOverdueFn                    func(ctx context.Context, now time.Time) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateBatch(ctx context.Context, items []domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, items)
	}
	return nil
}
func (m *Repo) GetByInstallmentID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDFn != nil {
		return m.GetByInstallmentIDFn(ctx, installmentID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDForUpdateFn != nil {
		return m.GetByInstallmentIDForUpdateFn(ctx, installmentID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, i *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}
func (m *Repo) DeleteByLoan(ctx context.Context, loanID uint64) error {
	if m.DeleteByLoanFn != nil {
		return m.DeleteByLoanFn(ctx, loanID)
	}
	return nil
}
func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Installment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}
func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Installment, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}
func (m *Repo) ListByState(ctx context.Context, state domain.State) ([]domain.Installment, error) {
	if m.ListByStateFn != nil {
		return m.ListByStateFn(ctx, state)
	}
	return nil, nil
}
func (m *Repo) List(ctx context.Context) ([]domain.Installment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListOverdueByBorrowerForUpdate(ctx context.Context, borrowerID string) ([]domain.Installment, error) {
	if m.ListOverdueByBorrowerForUpdateFn != nil {
		return m.ListOverdueByBorrowerForUpdateFn(ctx, borrowerID)
	}
	return nil, nil
}
func (m *Repo) CountByBorrower(ctx context.Context, borrowerID string) (int64, error) {
	if m.CountByBorrowerFn != nil {
		return m.CountByBorrowerFn(ctx, borrowerID)
	}
	return 0, nil
}
func (m *Repo) CountOverdueByBorrower(ctx context.Context, borrowerID string) (int64, error) {
	if m.CountOverdueByBorrowerFn != nil {
		return m.CountOverdueByBorrowerFn(ctx, borrowerID)
	}
	return 0, nil
}
func (m *Repo) CountUnpaidByLoan(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountUnpaidByLoanFn != nil {
		return m.CountUnpaidByLoanFn(ctx, loanID)
	}
	return 0, nil
}
func (m *Repo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	if m.MarkOverdueFn != nil {
		return m.MarkOverdueFn(ctx, now)
	}
	return 0, nil
}
