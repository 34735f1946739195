package mysql

import (
	"context"

	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Claims: &ClaimRepository{db: tx},
			Users:  &UserRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinClaimTx(ctx context.Context, claimID string, fn func(r uow.Repos, c *claim.Claim) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Claims: &ClaimRepository{db: tx},
			Users:  &UserRepository{db: tx},
		}
		// lock the claim row up-front to prevent races
		c, err := r.Claims.GetByClaimIDForUpdate(ctx, claimID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
