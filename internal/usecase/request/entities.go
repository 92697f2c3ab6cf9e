package request

import (
	"time"

	requestDomain "prestanet-backend/internal/domain/request"
)

type SubmitLoanInput struct {
	BorrowerID       string  `json:"borrower_id"`
	Amount           float64 `json:"amount"`
	InstallmentCount int     `json:"installment_count"`
	// Employee filing on the borrower's behalf, if any.
	SubmittedBy *string `json:"submitted_by,omitempty"`
}

type SubmitRefinancingInput struct {
	LoanID           string `json:"loan_id"`
	BorrowerID       string `json:"borrower_id"`
	InstallmentCount int    `json:"installment_count"`
}

type LoanRequestDTO struct {
	RequestID        string     `json:"request_id"`
	BorrowerID       string     `json:"borrower_id"`
	Amount           float64    `json:"amount"`
	InstallmentCount int        `json:"installment_count"`
	SubmittedBy      *string    `json:"submitted_by,omitempty"`
	DecidedBy        *string    `json:"decided_by,omitempty"`
	RejectReason     *string    `json:"reject_reason,omitempty"`
	State            string     `json:"state"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
}

type RefinancingDTO struct {
	RequestID        string     `json:"request_id"`
	LoanID           string     `json:"loan_id,omitempty"`
	BorrowerID       string     `json:"borrower_id"`
	InstallmentCount int        `json:"installment_count"`
	State            string     `json:"state"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
}

// LoanRef is the loan view embedded in a decision result.
type LoanRef struct {
	LoanID           string  `json:"loan_id"`
	Total            float64 `json:"total"`
	InstallmentCount int     `json:"installment_count"`
	State            string  `json:"state"`
}

type LoanDecisionDTO struct {
	Request LoanRequestDTO `json:"request"`
	Loan    *LoanRef       `json:"loan,omitempty"`
}

type RefinancingDecisionDTO struct {
	Request RefinancingDTO `json:"request"`
	Loan    *LoanRef       `json:"loan,omitempty"`
}

func toLoanRequestDTO(r requestDomain.LoanRequest) LoanRequestDTO {
	return LoanRequestDTO{
		RequestID:        r.RequestID,
		BorrowerID:       r.BorrowerID,
		Amount:           r.Amount,
		InstallmentCount: r.InstallmentCount,
		SubmittedBy:      r.SubmittedBy,
		DecidedBy:        r.DecidedBy,
		RejectReason:     r.RejectReason,
		State:            string(r.State),
		SubmittedAt:      r.SubmittedAt,
		DecidedAt:        r.DecidedAt,
	}
}

func toRefinancingDTO(r requestDomain.RefinancingRequest, loanID string) RefinancingDTO {
	return RefinancingDTO{
		RequestID:        r.RequestID,
		LoanID:           loanID,
		BorrowerID:       r.BorrowerID,
		InstallmentCount: r.InstallmentCount,
		State:            string(r.State),
		SubmittedAt:      r.SubmittedAt,
		DecidedAt:        r.DecidedAt,
	}
}
