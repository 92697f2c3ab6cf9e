package installment

import (
	"context"
	"time"
)

type Repository interface {
	CreateBatch(ctx context.Context, items []Installment) error
	GetByInstallmentID(ctx context.Context, installmentID string) (*Installment, error)
	// Locked read (SELECT ... FOR UPDATE); only meaningful inside a transaction.
	GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*Installment, error)
	Save(ctx context.Context, i *Installment) error
	// DeleteByLoan removes a loan's whole installment set (refinancing regeneration).
	DeleteByLoan(ctx context.Context, loanID uint64) error

	ListByLoan(ctx context.Context, loanID uint64) ([]Installment, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Installment, error)
	ListByState(ctx context.Context, state State) ([]Installment, error)
	List(ctx context.Context) ([]Installment, error)
	// Overdue unpaid installments of one borrower, locked for penalty application.
	ListOverdueByBorrowerForUpdate(ctx context.Context, borrowerID string) ([]Installment, error)

	CountByBorrower(ctx context.Context, borrowerID string) (int64, error)
	CountOverdueByBorrower(ctx context.Context, borrowerID string) (int64, error)
	CountUnpaidByLoan(ctx context.Context, loanID uint64) (int64, error)

	// MarkOverdue transitions every PENDING installment due before now to
	// OVERDUE and reports how many rows changed. Idempotent.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
