package requestmock

import (
	"context"

	domain "prestanet-backend/internal/domain/request"
)

// LoanRequestRepo is a function-backed mock for domain.LoanRequestRepository.
type LoanRequestRepo struct {
	CreateFn                  func(ctx context.Context, r *domain.LoanRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	SaveFn                    func(ctx context.Context, r *domain.LoanRequest) error
	ListFn                    func(ctx context.Context, f domain.Filter) ([]domain.LoanRequest, error)
}

var _ domain.LoanRequestRepository = (*LoanRequestRepo)(nil)

func (m *LoanRequestRepo) Create(ctx context.Context, r *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *LoanRequestRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *LoanRequestRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *LoanRequestRepo) Save(ctx context.Context, r *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *LoanRequestRepo) List(ctx context.Context, f domain.Filter) ([]domain.LoanRequest, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

// RefinancingRepo is a function-backed mock for domain.RefinancingRepository.
type RefinancingRepo struct {
	CreateFn                  func(ctx context.Context, r *domain.RefinancingRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.RefinancingRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.RefinancingRequest, error)
	SaveFn                    func(ctx context.Context, r *domain.RefinancingRequest) error
	ListFn                    func(ctx context.Context, f domain.Filter) ([]domain.RefinancingRequest, error)
}

var _ domain.RefinancingRepository = (*RefinancingRepo)(nil)

func (m *RefinancingRepo) Create(ctx context.Context, r *domain.RefinancingRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *RefinancingRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.RefinancingRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *RefinancingRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.RefinancingRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *RefinancingRepo) Save(ctx context.Context, r *domain.RefinancingRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *RefinancingRepo) List(ctx context.Context, f domain.Filter) ([]domain.RefinancingRequest, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
