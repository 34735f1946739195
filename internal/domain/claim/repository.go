package claim

import "context"

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	Save(ctx context.Context, c *Claim) error
	GetByClaimID(ctx context.Context, claimID string) (*Claim, error)
	// GetByClaimIDForUpdate locks the row for the rest of the transaction.
	GetByClaimIDForUpdate(ctx context.Context, claimID string) (*Claim, error)
	List(ctx context.Context) ([]Claim, error)
	ListByWorkstation(ctx context.Context, workstation string) ([]Claim, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
	CountRejectedByApplicant(ctx context.Context, applicantName string) (int64, error)
}
