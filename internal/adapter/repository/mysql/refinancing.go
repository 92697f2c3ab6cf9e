package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	requestDomain "prestanet-backend/internal/domain/request"
)

type RefinancingRepository struct{ db *gorm.DB }

func NewRefinancingRepository(db *gorm.DB) *RefinancingRepository {
	return &RefinancingRepository{db: db}
}

func (r *RefinancingRepository) Create(ctx context.Context, rr *requestDomain.RefinancingRequest) error {
	return r.db.WithContext(ctx).Create(rr).Error
}

func (r *RefinancingRepository) Save(ctx context.Context, rr *requestDomain.RefinancingRequest) error {
	return r.db.WithContext(ctx).Save(rr).Error
}

func (r *RefinancingRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.RefinancingRequest, error) {
	var out requestDomain.RefinancingRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RefinancingRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.RefinancingRequest, error) {
	var out requestDomain.RefinancingRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *RefinancingRepository) List(ctx context.Context, f requestDomain.Filter) ([]requestDomain.RefinancingRequest, error) {
	q := r.db.WithContext(ctx).Model(&requestDomain.RefinancingRequest{})
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.BorrowerID != "" {
		q = q.Where("borrower_id = ?", f.BorrowerID)
	}
	var out []requestDomain.RefinancingRequest
	res := q.Order("id DESC").Find(&out)
	return out, res.Error
}
