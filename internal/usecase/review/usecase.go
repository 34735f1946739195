package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/uow"
	"weldtrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	claims claim.Repository
	users  user.Repository
	uow    uow.UnitOfWork
	now    func() time.Time
}

func NewUsecase(claims claim.Repository, users user.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{claims: claims, users: users, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// Approve moves a PENDING claim to APPROVED. A non-empty comment is
// persisted alongside; any other current state refuses the transition.
func (u *Usecase) Approve(ctx context.Context, claimID, comment string) (*claim.Claim, error) {
	return u.transition(ctx, claimID, claim.StatusApproved, comment)
}

// Reject moves a PENDING claim to REJECTED. The comment is mandatory;
// an empty one refuses the transition and leaves the claim untouched.
func (u *Usecase) Reject(ctx context.Context, claimID, comment string) (*claim.Claim, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, claim.ErrEmptyComment
	}
	return u.transition(ctx, claimID, claim.StatusRejected, comment)
}

// Reset returns an APPROVED or REJECTED claim to PENDING. The stored
// comment is left untouched.
func (u *Usecase) Reset(ctx context.Context, claimID string) (*claim.Claim, error) {
	return u.transition(ctx, claimID, claim.StatusPending, "")
}

func (u *Usecase) transition(ctx context.Context, claimID string, to claim.Status, comment string) (*claim.Claim, error) {
	var out *claim.Claim
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		if !allowed(c.Status, to) {
			return claim.ErrInvalidTransition
		}
		c.Status = to
		c.StatusUpdatedAt = u.now()
		if strings.TrimSpace(comment) != "" {
			c.AdminComment = comment
		}
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// allowed encodes the review state machine: everything starts PENDING,
// approval and rejection only apply to PENDING claims, and the only way
// between APPROVED and REJECTED is a reset back through PENDING.
func allowed(from, to claim.Status) bool {
	switch to {
	case claim.StatusApproved, claim.StatusRejected:
		return from == claim.StatusPending
	case claim.StatusPending:
		return true
	}
	return false
}

// SaveComment persists an admin note without touching the status.
// Saving the same comment twice is a no-op the second time.
func (u *Usecase) SaveComment(ctx context.Context, claimID, comment string) (*claim.Claim, error) {
	var out *claim.Claim
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		if c.AdminComment == comment {
			out = c
			return nil
		}
		c.AdminComment = comment
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// ApproveUser activates a PENDING registration. A user that no longer
// exists is a no-op, not an error.
func (u *Usecase) ApproveUser(ctx context.Context, userID string) error {
	rec, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return err
	}
	if rec.Status == user.StatusActive {
		return nil
	}
	rec.Status = user.StatusActive
	return u.users.Save(ctx, rec)
}

type NotificationCounts struct {
	AdminCount  int64 `json:"admin_count"`
	WorkerCount int64 `json:"worker_count"`
}

// CountNotifications backs the UI shell's polling badge: admins see
// pending claims plus pending registrations, workers see their own
// rejected claims. Best-effort snapshot with no ordering guarantee
// against in-flight writes.
func (u *Usecase) CountNotifications(ctx context.Context, requester *user.User) (NotificationCounts, error) {
	var out NotificationCounts
	if requester.Role == user.RoleAdmin {
		pendingClaims, err := u.claims.CountByStatus(ctx, claim.StatusPending)
		if err != nil {
			return out, err
		}
		pendingUsers, err := u.users.CountByStatus(ctx, user.StatusPending)
		if err != nil {
			return out, err
		}
		out.AdminCount = pendingClaims + pendingUsers
		return out, nil
	}
	rejected, err := u.claims.CountRejectedByApplicant(ctx, requester.Name)
	if err != nil {
		return out, err
	}
	out.WorkerCount = rejected
	return out, nil
}
