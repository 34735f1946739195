package claimmock

import (
	"context"

	domain "weldtrack-backend/internal/domain/claim"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones fall back to
// harmless defaults.
type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Claim) error
	SaveFn                     func(ctx context.Context, c *domain.Claim) error
	GetByClaimIDFn             func(ctx context.Context, claimID string) (*domain.Claim, error)
	GetByClaimIDForUpdateFn    func(ctx context.Context, claimID string) (*domain.Claim, error)
	ListFn                     func(ctx context.Context) ([]domain.Claim, error)
	ListByWorkstationFn        func(ctx context.Context, workstation string) ([]domain.Claim, error)
	CountByStatusFn            func(ctx context.Context, s domain.Status) (int64, error)
	CountRejectedByApplicantFn func(ctx context.Context, applicantName string) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClaimID(ctx context.Context, claimID string) (*domain.Claim, error) {
	if m.GetByClaimIDFn != nil {
		return m.GetByClaimIDFn(ctx, claimID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByClaimIDForUpdate(ctx context.Context, claimID string) (*domain.Claim, error) {
	if m.GetByClaimIDForUpdateFn != nil {
		return m.GetByClaimIDForUpdateFn(ctx, claimID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Claim, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByWorkstation(ctx context.Context, workstation string) ([]domain.Claim, error) {
	if m.ListByWorkstationFn != nil {
		return m.ListByWorkstationFn(ctx, workstation)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}

func (m *Repo) CountRejectedByApplicant(ctx context.Context, applicantName string) (int64, error) {
	if m.CountRejectedByApplicantFn != nil {
		return m.CountRejectedByApplicantFn(ctx, applicantName)
	}
	return 0, nil
}
