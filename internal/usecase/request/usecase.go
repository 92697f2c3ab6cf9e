package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"prestanet-backend/internal/domain/audit"
	borrowerDomain "prestanet-backend/internal/domain/borrower"
	instDomain "prestanet-backend/internal/domain/installment"
	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/domain/notification"
	requestDomain "prestanet-backend/internal/domain/request"
	"prestanet-backend/internal/domain/uow"
	loanuc "prestanet-backend/internal/usecase/loan"
	"prestanet-backend/pkg/id"
)

// Params bundles the workflow's collaborators.
type Params struct {
	UoW          uow.UnitOfWork
	LoanRequests requestDomain.LoanRequestRepository
	Refinancings requestDomain.RefinancingRepository
	Loans        loanDomain.Repository
	Notifier     notification.Sink
	Auditor      audit.Sink
	Cadence      instDomain.Cadence
	// Loan state applied after an accepted refinancing (deployment policy).
	RefinanceState loanDomain.State
}

// Usecase drives the PENDING -> ACCEPTED/REJECTED state machines for loan
// and refinancing requests. Every acceptance runs in one transaction;
// notifications and audit records fire only after commit.
type Usecase struct {
	uow            uow.UnitOfWork
	loanReqs       requestDomain.LoanRequestRepository
	refiReqs       requestDomain.RefinancingRepository
	loans          loanDomain.Repository
	notifier       notification.Sink
	auditor        audit.Sink
	cadence        instDomain.Cadence
	refinanceState loanDomain.State
}

func NewUsecase(p Params) *Usecase {
	state := p.RefinanceState
	if state == "" {
		state = loanDomain.StateActive
	}
	cad := p.Cadence
	if cad.Unit == "" {
		cad = instDomain.DefaultCadence()
	}
	return &Usecase{
		uow:            p.UoW,
		loanReqs:       p.LoanRequests,
		refiReqs:       p.Refinancings,
		loans:          p.Loans,
		notifier:       p.Notifier,
		auditor:        p.Auditor,
		cadence:        cad,
		refinanceState: state,
	}
}

func (u *Usecase) SubmitLoan(ctx context.Context, in SubmitLoanInput) (*LoanRequestDTO, error) {
	if in.Amount <= 0 {
		return nil, loanDomain.ErrInvalidAmount
	}
	if in.InstallmentCount <= 0 {
		return nil, fmt.Errorf("%w: %d", instDomain.ErrInvalidTerm, in.InstallmentCount)
	}

	r := &requestDomain.LoanRequest{
		RequestID:        id.NewID32(),
		BorrowerID:       in.BorrowerID,
		Amount:           in.Amount,
		InstallmentCount: in.InstallmentCount,
		SubmittedBy:      in.SubmittedBy,
		State:            requestDomain.StatePending,
		SubmittedAt:      time.Now().UTC(),
	}
	if err := u.loanReqs.Create(ctx, r); err != nil {
		return nil, err
	}
	dto := toLoanRequestDTO(*r)
	return &dto, nil
}

func (u *Usecase) AcceptLoan(ctx context.Context, requestID, employeeID string) (*LoanDecisionDTO, error) {
	var dto *LoanDecisionDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return requestDomain.ErrNotFound
			}
			return err
		}
		if req.State != requestDomain.StatePending {
			return fmt.Errorf("%w: request is %s", requestDomain.ErrInvalidTransition, req.State)
		}

		// Serialize the active-loan count against concurrent acceptances.
		if _, err := r.Borrowers.GetByBorrowerIDForUpdate(ctx, req.BorrowerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return borrowerDomain.ErrNotFound
			}
			return err
		}
		active, err := r.Loans.CountActiveByBorrower(ctx, req.BorrowerID)
		if err != nil {
			return err
		}
		if active >= loanDomain.MaxActiveLoans {
			return loanDomain.ErrLimitExceeded
		}

		now := time.Now().UTC()
		req.State = requestDomain.StateAccepted
		req.DecidedBy = &employeeID
		req.DecidedAt = &now
		if err := r.LoanRequests.Save(ctx, req); err != nil {
			return err
		}

		tier := loanDomain.InferTier(req.InstallmentCount)
		l, sched, err := loanuc.NewLoanWithSchedule(req.BorrowerID, &req.ID, req.Amount, req.InstallmentCount, tier, u.cadence)
		if err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		for i := range sched {
			sched[i].LoanID = l.ID
		}
		if err := r.Installments.CreateBatch(ctx, sched); err != nil {
			return err
		}

		dto = &LoanDecisionDTO{
			Request: toLoanRequestDTO(*req),
			Loan: &LoanRef{
				LoanID:           l.LoanID,
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

	u.notifier.Notify(dto.Request.BorrowerID, notification.KindLoanApproved,
		fmt.Sprintf("Your loan request for %.2f was approved (%d installments).", dto.Request.Amount, dto.Request.InstallmentCount))
	u.auditor.Record(employeeID, "loan_requests", "UPDATE", "accepted loan request "+requestID)
	return dto, nil
}

func (u *Usecase) RejectLoan(ctx context.Context, requestID, reason, employeeID string) (*LoanRequestDTO, error) {
	var dto *LoanRequestDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return requestDomain.ErrNotFound
			}
			return err
		}
		if req.State != requestDomain.StatePending {
			return fmt.Errorf("%w: request is %s", requestDomain.ErrInvalidTransition, req.State)
		}

		now := time.Now().UTC()
		req.State = requestDomain.StateRejected
		req.DecidedBy = &employeeID
		req.DecidedAt = &now
		if reason != "" {
			req.RejectReason = &reason
		}
		if err := r.LoanRequests.Save(ctx, req); err != nil {
			return err
		}
		d := toLoanRequestDTO(*req)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(dto.BorrowerID, notification.KindLoanRejected,
		"Your loan request was rejected. "+reason)
	u.auditor.Record(employeeID, "loan_requests", "UPDATE", "rejected loan request "+requestID)
	return dto, nil
}

func (u *Usecase) SubmitRefinancing(ctx context.Context, in SubmitRefinancingInput) (*RefinancingDTO, error) {
	if in.InstallmentCount <= 0 {
		return nil, fmt.Errorf("%w: %d", instDomain.ErrInvalidTerm, in.InstallmentCount)
	}
	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	if l.BorrowerID != in.BorrowerID {
		return nil, requestDomain.ErrNotOwner
	}
	if l.State != loanDomain.StateActive {
		return nil, loanDomain.ErrNotActive
	}

	r := &requestDomain.RefinancingRequest{
		RequestID:        id.NewID32(),
		LoanID:           l.ID,
		BorrowerID:       in.BorrowerID,
		InstallmentCount: in.InstallmentCount,
		State:            requestDomain.StatePending,
		SubmittedAt:      time.Now().UTC(),
	}
	if err := u.refiReqs.Create(ctx, r); err != nil {
		return nil, err
	}
	dto := toRefinancingDTO(*r, in.LoanID)
	return &dto, nil
}

func (u *Usecase) AcceptRefinancing(ctx context.Context, requestID string) (*RefinancingDecisionDTO, error) {
	var dto *RefinancingDecisionDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Refinancings.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return requestDomain.ErrNotFound
			}
			return err
		}
		if req.State != requestDomain.StatePending {
			return fmt.Errorf("%w: request is %s", requestDomain.ErrInvalidTransition, req.State)
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, req.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if l.State != loanDomain.StateActive {
			return loanDomain.ErrNotActive
		}

		// Regenerate the schedule from the loan's unchanged total.
		if err := r.Installments.DeleteByLoan(ctx, l.ID); err != nil {
			return err
		}
		now := time.Now().UTC()
		sched, err := instDomain.BuildSchedule(l.ID, l.BorrowerID, l.Total, req.InstallmentCount, now, u.cadence)
		if err != nil {
			return err
		}
		if err := r.Installments.CreateBatch(ctx, sched); err != nil {
			return err
		}

		l.InstallmentCount = req.InstallmentCount
		l.DueAt = u.cadence.Add(now, req.InstallmentCount)
		if u.refinanceState != loanDomain.StateActive {
			l.State = u.refinanceState
			l.StateUpdatedAt = now
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		req.State = requestDomain.StateAccepted
		req.DecidedAt = &now
		if err := r.Refinancings.Save(ctx, req); err != nil {
			return err
		}

		dto = &RefinancingDecisionDTO{
			Request: toRefinancingDTO(*req, l.LoanID),
			Loan: &LoanRef{
				LoanID:           l.LoanID,
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

	u.notifier.Notify(dto.Request.BorrowerID, notification.KindRefinancingApproved,
		fmt.Sprintf("Your refinancing was approved: %d installments.", dto.Loan.InstallmentCount))
	u.auditor.Record("system", "refinancing_requests", "UPDATE", "accepted refinancing request "+requestID)
	return dto, nil
}

func (u *Usecase) RejectRefinancing(ctx context.Context, requestID string) (*RefinancingDTO, error) {
	var dto *RefinancingDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Refinancings.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return requestDomain.ErrNotFound
			}
			return err
		}
		if req.State != requestDomain.StatePending {
			return fmt.Errorf("%w: request is %s", requestDomain.ErrInvalidTransition, req.State)
		}

		now := time.Now().UTC()
		req.State = requestDomain.StateRejected
		req.DecidedAt = &now
		if err := r.Refinancings.Save(ctx, req); err != nil {
			return err
		}
		d := toRefinancingDTO(*req, "")
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(dto.BorrowerID, notification.KindRefinancingRejected,
		"Your refinancing request was rejected.")
	u.auditor.Record("system", "refinancing_requests", "UPDATE", "rejected refinancing request "+requestID)
	return dto, nil
}

func (u *Usecase) ListLoanRequests(ctx context.Context, f requestDomain.Filter) ([]LoanRequestDTO, error) {
	items, err := u.loanReqs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LoanRequestDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toLoanRequestDTO(it))
	}
	return out, nil
}

func (u *Usecase) ListRefinancings(ctx context.Context, f requestDomain.Filter) ([]RefinancingDTO, error) {
	items, err := u.refiReqs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	publicID := make(map[uint64]string, len(loans))
	for _, l := range loans {
		publicID[l.ID] = l.LoanID
	}
	out := make([]RefinancingDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toRefinancingDTO(it, publicID[it.LoanID]))
	}
	return out, nil
}
