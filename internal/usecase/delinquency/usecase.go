package delinquency

import (
	"context"

	"github.com/shopspring/decimal"

	instDomain "prestanet-backend/internal/domain/installment"
	"prestanet-backend/internal/domain/uow"
)

// Threshold is the overdue-installment count at which a borrower is
// considered delinquent.
const Threshold = 2

const (
	StatusActive     = "ACTIVE"
	StatusDelinquent = "DELINQUENT"
)

type StatusDTO struct {
	BorrowerID   string `json:"borrower_id"`
	OverdueCount int64  `json:"overdue_count"`
	Status       string `json:"status"`
}

type PenaltyDTO struct {
	BorrowerID string `json:"borrower_id"`
	Applied    int    `json:"applied"`
}

// Usecase derives borrower risk state from the ledger and applies the
// penalty surcharge to overdue installments.
type Usecase struct {
	repo        instDomain.Repository
	uow         uow.UnitOfWork
	penaltyRate float64
}

func NewUsecase(repo instDomain.Repository, tx uow.UnitOfWork, penaltyRate float64) *Usecase {
	return &Usecase{repo: repo, uow: tx, penaltyRate: penaltyRate}
}

// Status recomputes the borrower's risk state on demand; nothing is cached.
func (u *Usecase) Status(ctx context.Context, borrowerID string) (*StatusDTO, error) {
	n, err := u.repo.CountOverdueByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	status := StatusActive
	if n >= Threshold {
		status = StatusDelinquent
	}
	return &StatusDTO{BorrowerID: borrowerID, OverdueCount: n, Status: status}, nil
}

// ApplyPenalty raises each of the borrower's overdue installments by the
// configured surcharge rate, rounded to 2 places.
func (u *Usecase) ApplyPenalty(ctx context.Context, borrowerID string) (*PenaltyDTO, error) {
	factor := decimal.NewFromFloat(1).Add(decimal.NewFromFloat(u.penaltyRate))
	var applied int

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		total, err := r.Installments.CountByBorrower(ctx, borrowerID)
		if err != nil {
			return err
		}
		if total == 0 {
			return instDomain.ErrNotFound
		}

		overdue, err := r.Installments.ListOverdueByBorrowerForUpdate(ctx, borrowerID)
		if err != nil {
			return err
		}
		for i := range overdue {
			item := &overdue[i]
			item.Amount = decimal.NewFromFloat(item.Amount).
				Mul(factor).
				Round(2).
				InexactFloat64()
			if err := r.Installments.Save(ctx, item); err != nil {
				return err
			}
		}
		applied = len(overdue)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &PenaltyDTO{BorrowerID: borrowerID, Applied: applied}, nil
}
