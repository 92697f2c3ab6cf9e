package request

import "context"

// Filter narrows request listings; zero values mean "any".
type Filter struct {
	State      State
	BorrowerID string
}

type LoanRequestRepository interface {
	Create(ctx context.Context, r *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	// Locked read (SELECT ... FOR UPDATE); only meaningful inside a transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LoanRequest, error)
	Save(ctx context.Context, r *LoanRequest) error
	List(ctx context.Context, f Filter) ([]LoanRequest, error)
}

type RefinancingRepository interface {
	Create(ctx context.Context, r *RefinancingRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*RefinancingRequest, error)
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*RefinancingRequest, error)
	Save(ctx context.Context, r *RefinancingRequest) error
	List(ctx context.Context, f Filter) ([]RefinancingRequest, error)
}
