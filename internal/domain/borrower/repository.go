package borrower

import "context"

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Borrower, error)
	// Locked read: used inside transactions to serialize the active-loan count
	// against concurrent loan creations for the same borrower.
	GetByBorrowerIDForUpdate(ctx context.Context, borrowerID string) (*Borrower, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Borrower, error)
	Save(ctx context.Context, b *Borrower) error
	List(ctx context.Context) ([]Borrower, error)
}
