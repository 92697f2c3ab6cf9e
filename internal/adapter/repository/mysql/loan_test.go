package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/pkg/id"
)

func makeLoan(loanID, borrowerID string, state loanDomain.State) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:           loanID,
		BorrowerID:       borrowerID,
		Principal:        1000,
		Interest:         50,
		Total:            1050,
		Tier:             loanDomain.TierLow,
		InstallmentCount: 12,
		IssuedAt:         time.Now().UTC(),
		DueAt:            time.Now().UTC().AddDate(1, 0, 0),
		State:            state,
		StateUpdatedAt:   time.Now().UTC(),
	}
}

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	borrowerID := id.NewID32()

	l := makeLoan(loanID, borrowerID, loanDomain.StateActive)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.BorrowerID != borrowerID || got.Total != 1050 {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestLoanSaveUpdatesState(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := makeLoan(loanID, id.NewID32(), loanDomain.StateActive)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.State = loanDomain.StateCompleted
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.State != loanDomain.StateCompleted {
		t.Errorf("state = %s, want COMPLETED", got.State)
	}
}

func TestLoanCountActiveByBorrower(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	borrowerID := id.NewID32()
	for _, state := range []loanDomain.State{loanDomain.StateActive, loanDomain.StateActive, loanDomain.StateCompleted, loanDomain.StateCancelled} {
		if err := repo.Create(ctx, makeLoan(id.NewID32(), borrowerID, state)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	// Another borrower's loan must not count.
	if err := repo.Create(ctx, makeLoan(id.NewID32(), id.NewID32(), loanDomain.StateActive)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := repo.CountActiveByBorrower(ctx, borrowerID)
	if err != nil {
		t.Fatalf("CountActiveByBorrower: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestLoanGetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
