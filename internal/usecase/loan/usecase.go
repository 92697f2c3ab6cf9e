package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	borrowerDomain "prestanet-backend/internal/domain/borrower"
	instDomain "prestanet-backend/internal/domain/installment"
	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/domain/uow"
	"prestanet-backend/pkg/id"
)

// Usecase is the loan record manager: creation with the active-loan cap,
// lifecycle transitions, and listings joined with borrower display fields.
type Usecase struct {
	loans     loanDomain.Repository
	borrowers borrowerDomain.Repository
	repo      instDomain.Repository
	uow       uow.UnitOfWork
	cadence   instDomain.Cadence
}

func NewUsecase(loans loanDomain.Repository, borrowers borrowerDomain.Repository, installments instDomain.Repository, tx uow.UnitOfWork, cad instDomain.Cadence) *Usecase {
	return &Usecase{loans: loans, borrowers: borrowers, repo: installments, uow: tx, cadence: cad}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.Principal <= 0 {
		return nil, loanDomain.ErrInvalidAmount
	}
	if in.InstallmentCount <= 0 {
		return nil, fmt.Errorf("%w: %d", instDomain.ErrInvalidTerm, in.InstallmentCount)
	}
	tier := in.Tier
	if tier == "" {
		tier = loanDomain.InferTier(in.InstallmentCount)
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Lock the borrower row so the active-loan count cannot race with a
		// concurrent creation for the same borrower.
		if _, err := r.Borrowers.GetByBorrowerIDForUpdate(ctx, in.BorrowerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return borrowerDomain.ErrNotFound
			}
			return err
		}
		active, err := r.Loans.CountActiveByBorrower(ctx, in.BorrowerID)
		if err != nil {
			return err
		}
		if active >= loanDomain.MaxActiveLoans {
			return loanDomain.ErrLimitExceeded
		}

		l, sched, err := NewLoanWithSchedule(in.BorrowerID, nil, in.Principal, in.InstallmentCount, tier, u.cadence)
		if err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		// BuildSchedule needs the numeric PK assigned by the insert.
		for i := range sched {
			sched[i].LoanID = l.ID
		}
		if err := r.Installments.CreateBatch(ctx, sched); err != nil {
			return err
		}

		d := toDTO(*l)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// NewLoanWithSchedule assembles a loan and its installment schedule. The schedule's
// numeric loan FK must be filled in after the loan row is inserted.
func NewLoanWithSchedule(borrowerID string, requestID *uint64, principal float64, count int, tier loanDomain.Tier, cad instDomain.Cadence) (*loanDomain.Loan, []instDomain.Installment, error) {
	interest := loanDomain.InterestFor(principal, tier)
	total := decimal.NewFromFloat(principal).
		Add(decimal.NewFromFloat(interest)).
		Round(2).
		InexactFloat64()
	now := time.Now().UTC()

	l := &loanDomain.Loan{
		LoanID:           id.NewID32(),
		BorrowerID:       borrowerID,
		RequestID:        requestID,
		Principal:        principal,
		Interest:         interest,
		Total:            total,
		Tier:             tier,
		InstallmentCount: count,
		IssuedAt:         now,
		DueAt:            cad.Add(now, count),
		State:            loanDomain.StateActive,
		StateUpdatedAt:   now,
	}
	sched, err := instDomain.BuildSchedule(0, borrowerID, total, count, now, cad)
	if err != nil {
		return nil, nil, err
	}
	return l, sched, nil
}

func (u *Usecase) Cancel(ctx context.Context, loanID string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, loanDomain.StateCancelled)
}

func (u *Usecase) UpdateState(ctx context.Context, loanID string, newState loanDomain.State) (*LoanDTO, error) {
	switch newState {
	case loanDomain.StateActive, loanDomain.StateCancelled, loanDomain.StateCompleted, loanDomain.StateRefinanced:
	default:
		return nil, fmt.Errorf("%w: %q", loanDomain.ErrInvalidState, newState)
	}
	return u.transition(ctx, loanID, newState)
}

func (u *Usecase) transition(ctx context.Context, loanID string, to loanDomain.State) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if !loanDomain.CanTransition(l.State, to) {
			return fmt.Errorf("%w: %s -> %s", loanDomain.ErrInvalidState, l.State, to)
		}
		l.State = to
		l.StateUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		d := toDTO(*l)
		dto = &d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	d := toDTO(*l)
	return &d, nil
}

// ListByBorrower returns the borrower's loans plus a per-installment summary,
// mirroring the portfolio view a borrower sees.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) (*BorrowerLoansDTO, error) {
	b, err := u.borrowers.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}
	loans, err := u.loans.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	publicID := make(map[uint64]string, len(loans))
	for _, l := range loans {
		publicID[l.ID] = l.LoanID
	}

	out := &BorrowerLoansDTO{
		BorrowerID:   b.BorrowerID,
		NationalID:   b.NationalID,
		FullName:     b.FirstName + " " + b.LastName,
		Loans:        make([]LoanDTO, 0, len(loans)),
		Installments: make([]ScheduleRow, 0, len(items)),
	}
	for _, l := range loans {
		out.Loans = append(out.Loans, toDTO(l))
	}
	for _, i := range items {
		out.Installments = append(out.Installments, ScheduleRow{
			LoanID:        publicID[i.LoanID],
			InstallmentID: i.InstallmentID,
			Seq:           i.Seq,
			Amount:        i.Amount,
			DueDate:       i.DueDate,
			State:         string(i.State),
		})
	}
	return out, nil
}

// List returns all loans with borrower display fields joined in.
func (u *Usecase) List(ctx context.Context) ([]LoanListItem, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	borrowers, err := u.borrowers.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(borrowers))
	for _, b := range borrowers {
		names[b.BorrowerID] = b.FirstName + " " + b.LastName
	}

	out := make([]LoanListItem, 0, len(loans))
	for _, l := range loans {
		out = append(out, LoanListItem{
			LoanDTO:      toDTO(l),
			BorrowerName: names[l.BorrowerID],
		})
	}
	return out, nil
}
