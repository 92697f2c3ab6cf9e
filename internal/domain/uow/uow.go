package uow

import (
	"context"

	"prestanet-backend/internal/domain/borrower"
	"prestanet-backend/internal/domain/installment"
	"prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/domain/request"
)

type Repos struct {
	Borrowers    borrower.Repository
	Loans        loan.Repository
	Installments installment.Repository
	LoanRequests request.LoanRequestRepository
	Refinancings request.RefinancingRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
