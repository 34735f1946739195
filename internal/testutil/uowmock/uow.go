package uowmock

import (
	"context"
	"errors"

	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinClaimTxFn func(ctx context.Context, claimID string, fn func(r uow.Repos, c *claim.Claim) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW that runs callbacks directly against the
// given repos with no transaction, which is what most usecase tests
// want.
func Passthrough(r uow.Repos, claims map[string]*claim.Claim) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinClaimTxFn: func(ctx context.Context, claimID string, fn func(uow.Repos, *claim.Claim) error) error {
			c, ok := claims[claimID]
			if !ok {
				return claim.ErrNotFound
			}
			return fn(r, c)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinClaimTx(ctx context.Context, claimID string, fn func(r uow.Repos, c *claim.Claim) error) error {
	if m.WithinClaimTxFn != nil {
		return m.WithinClaimTxFn(ctx, claimID, fn)
	}
	return errUnimplemented
}
