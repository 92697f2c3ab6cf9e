package installment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	instDomain "prestanet-backend/internal/domain/installment"
	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/domain/uow"
)

// Usecase is the installment ledger: payment registration, the overdue
// sweep, and the read projections over a borrower's schedule.
type Usecase struct {
	repo  instDomain.Repository
	loans loanDomain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(repo instDomain.Repository, loans loanDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, loans: loans, uow: tx}
}

func (u *Usecase) RegisterPayment(ctx context.Context, installmentID string, paymentDate time.Time) (*PaymentResult, error) {
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}
	var result *PaymentResult

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inst, err := r.Installments.GetByInstallmentIDForUpdate(ctx, installmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return instDomain.ErrNotFound
			}
			return err
		}
		// Re-registering a payment is rejected rather than re-applied: a second
		// registration with no guard would double-collect.
		if inst.State == instDomain.StatePaid {
			return instDomain.ErrAlreadyPaid
		}

		paid := paymentDate.UTC()
		inst.State = instDomain.StatePaid
		inst.PaidAt = &paid
		if err := r.Installments.Save(ctx, inst); err != nil {
			return err
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, inst.LoanID)
		if err != nil {
			return fmt.Errorf("loading parent loan: %w", err)
		}

		unpaid, err := r.Installments.CountUnpaidByLoan(ctx, inst.LoanID)
		if err != nil {
			return err
		}
		if unpaid == 0 && l.State == loanDomain.StateActive {
			l.State = loanDomain.StateCompleted
			l.StateUpdatedAt = time.Now().UTC()
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		result = &PaymentResult{
			Installment: toDTO(*inst),
			Loan: LoanSnapshot{
				LoanID:           l.LoanID,
				BorrowerID:       l.BorrowerID,
				Total:            l.Total,
				InstallmentCount: l.InstallmentCount,
				State:            string(l.State),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkOverdue sweeps PENDING installments whose due date has passed.
// Safe to run repeatedly; returns the number of rows transitioned.
func (u *Usecase) MarkOverdue(ctx context.Context) (int64, error) {
	return u.repo.MarkOverdue(ctx, time.Now().UTC())
}

func (u *Usecase) CountOverdueUnpaid(ctx context.Context, borrowerID string) (int64, error) {
	return u.repo.CountOverdueByBorrower(ctx, borrowerID)
}

func (u *Usecase) Get(ctx context.Context, installmentID string) (*InstallmentDTO, error) {
	inst, err := u.repo.GetByInstallmentID(ctx, installmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, instDomain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(*inst)
	return &dto, nil
}

func (u *Usecase) Summary(ctx context.Context, borrowerID string) ([]InstallmentDTO, error) {
	items, err := u.repo.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(items), nil
}

func (u *Usecase) Pending(ctx context.Context) ([]InstallmentDTO, error) {
	items, err := u.repo.ListByState(ctx, instDomain.StatePending)
	if err != nil {
		return nil, err
	}
	return toDTOs(items), nil
}

func (u *Usecase) Overdue(ctx context.Context) ([]InstallmentDTO, error) {
	items, err := u.repo.ListByState(ctx, instDomain.StateOverdue)
	if err != nil {
		return nil, err
	}
	return toDTOs(items), nil
}

func (u *Usecase) ByLoan(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	items, err := u.repo.ListByLoan(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return toDTOs(items), nil
}

func (u *Usecase) All(ctx context.Context) ([]InstallmentDTO, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(items), nil
}
