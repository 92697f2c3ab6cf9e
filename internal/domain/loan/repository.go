package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Locked read (SELECT ... FOR UPDATE); only meaningful inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	CountActiveByBorrower(ctx context.Context, borrowerID string) (int64, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Loan, error)
	List(ctx context.Context) ([]Loan, error)
}
