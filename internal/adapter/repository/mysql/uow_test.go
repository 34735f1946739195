package mysql

import (
	"context"
	"errors"
	"testing"

	claimDomain "weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/uow"
	"weldtrack-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates both tables, so the UoW can orchestrate both repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&claimSQLite{}, &userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	claimRepo := NewClaimRepository(db)
	userRepo := NewUserRepository(db)

	claimID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Claims.Create(ctx, makeClaim(claimID, "Y1")); err != nil {
			return err
		}
		return r.Users.Create(ctx, makeUser("w2001"))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	if _, err := claimRepo.GetByClaimID(ctx, claimID); err != nil {
		t.Fatalf("claim not visible after commit: %v", err)
	}
	if _, err := userRepo.GetByUserID(ctx, "w2001"); err != nil {
		t.Fatalf("user not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	claimRepo := NewClaimRepository(db)

	claimID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Claims.Create(ctx, makeClaim(claimID, "Y1")); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := claimRepo.GetByClaimID(ctx, claimID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected claim not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinClaimTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	claimRepo := NewClaimRepository(db)

	claimID := id.NewID32()
	if err := claimRepo.Create(ctx, makeClaim(claimID, "Y1")); err != nil {
		t.Fatalf("seed claim: %v", err)
	}

	if err := guow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claimDomain.Claim) error {
		if c == nil || c.ClaimID != claimID || c.Status != claimDomain.StatusPending {
			t.Fatalf("unexpected claim passed to fn: %+v", c)
		}
		c.Status = claimDomain.StatusApproved
		c.AdminComment = "looks complete"
		return r.Claims.Save(ctx, c)
	}); err != nil {
		t.Fatalf("WithinClaimTx commit err: %v", err)
	}

	got, err := claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("GetByClaimID post-commit: %v", err)
	}
	if got.Status != claimDomain.StatusApproved || got.AdminComment != "looks complete" {
		t.Fatalf("claim not updated: %+v", got)
	}
}

func TestGormUoW_WithinClaimTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	claimRepo := NewClaimRepository(db)

	claimID := id.NewID32()
	if err := claimRepo.Create(ctx, makeClaim(claimID, "Y1")); err != nil {
		t.Fatalf("seed claim: %v", err)
	}

	sentinel := errors.New("stop")
	_ = guow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claimDomain.Claim) error {
		c.Status = claimDomain.StatusApproved
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("post-rollback GetByClaimID: %v", err)
	}
	if got.Status != claimDomain.StatusPending {
		t.Fatalf("expected PENDING after rollback, got %s", got.Status)
	}
}

func TestGormUoW_WithinClaimTx_ClaimNotFound(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)

	err := guow.WithinClaimTx(ctx, "ffffffffffffffffffffffffffffffff", func(r uow.Repos, c *claimDomain.Claim) error {
		t.Fatalf("callback should not be called when claim missing")
		return nil
	})
	if err == nil {
		t.Fatalf("expected error when claim not found")
	}
}
