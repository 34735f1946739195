package mysql

import (
	"context"

	claimDomain "weldtrack-backend/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) GetByClaimID(ctx context.Context, claimID string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) GetByClaimIDForUpdate(ctx context.Context, claimID string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("claim_id = ?", claimID).
		First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) List(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Order("submit_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListByWorkstation(ctx context.Context, workstation string) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("workstation = ?", workstation).
		Order("submit_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) CountByStatus(ctx context.Context, s claimDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("status = ?", s).
		Count(&n)
	return n, res.Error
}

func (r *ClaimRepository) CountRejectedByApplicant(ctx context.Context, applicantName string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("applicant_name = ? AND status = ?", applicantName, claimDomain.StatusRejected).
		Count(&n)
	return n, res.Error
}
