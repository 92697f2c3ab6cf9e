package loan

import (
	"time"

	loanDomain "prestanet-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	BorrowerID       string          `json:"borrower_id"`
	Principal        float64         `json:"principal"`
	InstallmentCount int             `json:"installment_count"`
	// Optional; inferred from the installment count when empty.
	Tier loanDomain.Tier `json:"tier,omitempty"`
}

type LoanDTO struct {
	LoanID           string    `json:"loan_id"`
	BorrowerID       string    `json:"borrower_id"`
	Principal        float64   `json:"principal"`
	Interest         float64   `json:"interest"`
	Total            float64   `json:"total"`
	Tier             string    `json:"tier"`
	InstallmentCount int       `json:"installment_count"`
	IssuedAt         time.Time `json:"issued_at"`
	DueAt            time.Time `json:"due_at"`
	State            string    `json:"state"`
}

type LoanListItem struct {
	LoanDTO
	BorrowerName string `json:"borrower_name"`
}

type ScheduleRow struct {
	LoanID        string    `json:"loan_id"`
	InstallmentID string    `json:"installment_id"`
	Seq           int       `json:"seq"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	State         string    `json:"state"`
}

type BorrowerLoansDTO struct {
	BorrowerID   string        `json:"borrower_id"`
	NationalID   string        `json:"national_id"`
	FullName     string        `json:"full_name"`
	Loans        []LoanDTO     `json:"loans"`
	Installments []ScheduleRow `json:"installments"`
}

func toDTO(l loanDomain.Loan) LoanDTO {
	return LoanDTO{
		LoanID:           l.LoanID,
		BorrowerID:       l.BorrowerID,
		Principal:        l.Principal,
		Interest:         l.Interest,
		Total:            l.Total,
		Tier:             string(l.Tier),
		InstallmentCount: l.InstallmentCount,
		IssuedAt:         l.IssuedAt,
		DueAt:            l.DueAt,
		State:            string(l.State),
	}
}
