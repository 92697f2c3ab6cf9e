package installment

import (
	"time"

	instDomain "prestanet-backend/internal/domain/installment"
)

type InstallmentDTO struct {
	InstallmentID string     `json:"installment_id"`
	BorrowerID    string     `json:"borrower_id"`
	Seq           int        `json:"seq"`
	Amount        float64    `json:"amount"`
	DueDate       time.Time  `json:"due_date"`
	State         string     `json:"state"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// LoanSnapshot is the parent-loan view returned alongside a payment.
type LoanSnapshot struct {
	LoanID           string  `json:"loan_id"`
	BorrowerID       string  `json:"borrower_id"`
	Total            float64 `json:"total"`
	InstallmentCount int     `json:"installment_count"`
	State            string  `json:"state"`
}

type PaymentResult struct {
	Installment InstallmentDTO `json:"installment"`
	Loan        LoanSnapshot   `json:"loan"`
}

func toDTO(i instDomain.Installment) InstallmentDTO {
	return InstallmentDTO{
		InstallmentID: i.InstallmentID,
		BorrowerID:    i.BorrowerID,
		Seq:           i.Seq,
		Amount:        i.Amount,
		DueDate:       i.DueDate,
		State:         string(i.State),
		PaidAt:        i.PaidAt,
	}
}

func toDTOs(items []instDomain.Installment) []InstallmentDTO {
	out := make([]InstallmentDTO, 0, len(items))
	for _, i := range items {
		out = append(out, toDTO(i))
	}
	return out
}
