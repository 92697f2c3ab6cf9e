package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/domain/uow"
	"prestanet-backend/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	instRepo := NewInstallmentRepository(db)

	loanID := id.NewID32()
	borrowerID := id.NewID32()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, borrowerID, loanDomain.StateActive)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.ID == 0 {
			t.Fatal("loan auto ID not set")
		}
		seedSchedule(t, r.Installments.(*InstallmentRepository), l.ID, borrowerID, 3, time.Now().UTC())
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx commit: %v", err)
	}

	got, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	sched, err := instRepo.ListByLoan(ctx, got.ID)
	if err != nil {
		t.Fatalf("ListByLoan: %v", err)
	}
	if len(sched) != 3 {
		t.Fatalf("schedule = %d rows, want 3", len(sched))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	loanID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(loanID, id.NewID32(), loanDomain.StateActive)); err != nil {
			return err
		}
		return sentinel
	})

	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected loan absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_PassesLockedLoan(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	loanID := id.NewID32()
	if err := loanRepo.Create(ctx, makeLoan(loanID, id.NewID32(), loanDomain.StateActive)); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	if err := guow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l == nil || l.LoanID != loanID || l.State != loanDomain.StateActive {
			t.Fatalf("unexpected loan passed to fn: %+v", l)
		}
		l.State = loanDomain.StateCancelled
		l.StateUpdatedAt = time.Now().UTC()
		return r.Loans.Save(ctx, l)
	}); err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}

	got, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.State != loanDomain.StateCancelled {
		t.Fatalf("state = %s, want CANCELLED", got.State)
	}
}

func TestGormUoW_WithinLoanTx_LoanNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), id.NewID32(), func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatal("fn must not run for a missing loan")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
