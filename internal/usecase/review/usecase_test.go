package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/uow"
	"weldtrack-backend/internal/domain/user"
	"weldtrack-backend/internal/testutil/claimmock"
	"weldtrack-backend/internal/testutil/uowmock"
	"weldtrack-backend/internal/testutil/usermock"
)

func newUsecase(claims *claimmock.Repo, users *usermock.Repo, stored map[string]*claim.Claim) *Usecase {
	u := NewUsecase(claims, users, uowmock.Passthrough(uow.Repos{Claims: claims, Users: users}, stored))
	u.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return u
}

func pendingClaim() *claim.Claim {
	return &claim.Claim{ClaimID: "c1", SheetNo: "24Y1TP01", Status: claim.StatusPending}
}

func TestApprove(t *testing.T) {
	c := pendingClaim()
	var saved *claim.Claim
	claims := &claimmock.Repo{SaveFn: func(ctx context.Context, c *claim.Claim) error {
		saved = c
		return nil
	}}
	u := newUsecase(claims, &usermock.Repo{}, map[string]*claim.Claim{"c1": c})

	got, err := u.Approve(context.Background(), "c1", "looks complete")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != claim.StatusApproved {
		t.Errorf("status = %q, want APPROVED", got.Status)
	}
	if got.AdminComment != "looks complete" {
		t.Errorf("comment = %q", got.AdminComment)
	}
	if saved == nil {
		t.Fatal("claim was not saved")
	}
}

func TestReject_RequiresComment(t *testing.T) {
	c := pendingClaim()
	claims := &claimmock.Repo{SaveFn: func(ctx context.Context, c *claim.Claim) error {
		t.Fatal("claim must not be saved when the comment is empty")
		return nil
	}}
	u := newUsecase(claims, &usermock.Repo{}, map[string]*claim.Claim{"c1": c})

	for _, comment := range []string{"", "   ", "\t\n"} {
		if _, err := u.Reject(context.Background(), "c1", comment); !errors.Is(err, claim.ErrEmptyComment) {
			t.Fatalf("Reject(%q) err = %v, want ErrEmptyComment", comment, err)
		}
	}
	if c.Status != claim.StatusPending {
		t.Errorf("claim state changed on refused reject: %q", c.Status)
	}
}

func TestReject_PersistsComment(t *testing.T) {
	c := pendingClaim()
	claims := &claimmock.Repo{SaveFn: func(ctx context.Context, c *claim.Claim) error { return nil }}
	u := newUsecase(claims, &usermock.Repo{}, map[string]*claim.Claim{"c1": c})

	got, err := u.Reject(context.Background(), "c1", "missing UT record")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if got.Status != claim.StatusRejected {
		t.Errorf("status = %q, want REJECTED", got.Status)
	}
	if got.AdminComment != "missing UT record" {
		t.Errorf("comment = %q, want missing UT record", got.AdminComment)
	}
}

func TestReset_ReturnsToPending(t *testing.T) {
	c := &claim.Claim{ClaimID: "c1", Status: claim.StatusRejected, AdminComment: "missing UT record"}
	claims := &claimmock.Repo{SaveFn: func(ctx context.Context, c *claim.Claim) error { return nil }}
	u := newUsecase(claims, &usermock.Repo{}, map[string]*claim.Claim{"c1": c})

	got, err := u.Reset(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got.Status != claim.StatusPending {
		t.Errorf("status = %q, want PENDING", got.Status)
	}
	if got.AdminComment != "missing UT record" {
		t.Errorf("reset must keep the stored comment, got %q", got.AdminComment)
	}
}

func TestTransition_RefusedFromTerminalStates(t *testing.T) {
	cases := []struct {
		name string
		from claim.Status
		call func(u *Usecase) error
	}{
		{"approve rejected", claim.StatusRejected, func(u *Usecase) error {
			_, err := u.Approve(context.Background(), "c1", "x")
			return err
		}},
		{"approve approved", claim.StatusApproved, func(u *Usecase) error {
			_, err := u.Approve(context.Background(), "c1", "x")
			return err
		}},
		{"reject approved", claim.StatusApproved, func(u *Usecase) error {
			_, err := u.Reject(context.Background(), "c1", "x")
			return err
		}},
		{"reject rejected", claim.StatusRejected, func(u *Usecase) error {
			_, err := u.Reject(context.Background(), "c1", "x")
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &claim.Claim{ClaimID: "c1", Status: tc.from}
			claims := &claimmock.Repo{}
			u := newUsecase(claims, &usermock.Repo{}, map[string]*claim.Claim{"c1": c})
			if err := tc.call(u); !errors.Is(err, claim.ErrInvalidTransition) {
				t.Fatalf("err = %v, want ErrInvalidTransition", err)
			}
			if c.Status != tc.from {
				t.Errorf("status changed to %q on refused transition", c.Status)
			}
		})
	}
}

func TestTransition_MissingClaim(t *testing.T) {
	u := newUsecase(&claimmock.Repo{}, &usermock.Repo{}, nil)
	if _, err := u.Approve(context.Background(), "nope", "x"); !errors.Is(err, claim.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveComment(t *testing.T) {
	c := pendingClaim()
	saves := 0
	claims := &claimmock.Repo{SaveFn: func(ctx context.Context, c *claim.Claim) error {
		saves++
		return nil
	}}
	u := newUsecase(claims, &usermock.Repo{}, map[string]*claim.Claim{"c1": c})

	got, err := u.SaveComment(context.Background(), "c1", "check serial 003")
	if err != nil {
		t.Fatalf("SaveComment: %v", err)
	}
	if got.AdminComment != "check serial 003" {
		t.Errorf("comment = %q", got.AdminComment)
	}
	if got.Status != claim.StatusPending {
		t.Errorf("SaveComment must not touch status, got %q", got.Status)
	}
	if saves != 1 {
		t.Fatalf("saves = %d, want 1", saves)
	}

	// same comment again is a no-op
	if _, err := u.SaveComment(context.Background(), "c1", "check serial 003"); err != nil {
		t.Fatalf("SaveComment (repeat): %v", err)
	}
	if saves != 1 {
		t.Errorf("repeat save of identical comment hit the store, saves = %d", saves)
	}
}

func TestApproveUser(t *testing.T) {
	rec := &user.User{UserID: "u1", Status: user.StatusPending}
	saves := 0
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, id string) (*user.User, error) {
			if id == "u1" {
				return rec, nil
			}
			return nil, user.ErrNotFound
		},
		SaveFn: func(ctx context.Context, u *user.User) error {
			saves++
			return nil
		},
	}
	u := newUsecase(&claimmock.Repo{}, users, nil)

	if err := u.ApproveUser(context.Background(), "u1"); err != nil {
		t.Fatalf("ApproveUser: %v", err)
	}
	if rec.Status != user.StatusActive {
		t.Errorf("status = %q, want ACTIVE", rec.Status)
	}
	if saves != 1 {
		t.Fatalf("saves = %d, want 1", saves)
	}

	// already active: no second save
	if err := u.ApproveUser(context.Background(), "u1"); err != nil {
		t.Fatalf("ApproveUser (repeat): %v", err)
	}
	if saves != 1 {
		t.Errorf("repeat approval hit the store, saves = %d", saves)
	}

	// missing user is a no-op
	if err := u.ApproveUser(context.Background(), "ghost"); err != nil {
		t.Fatalf("ApproveUser (missing): %v", err)
	}
}

func TestCountNotifications(t *testing.T) {
	claims := &claimmock.Repo{
		CountByStatusFn: func(ctx context.Context, s claim.Status) (int64, error) {
			if s != claim.StatusPending {
				t.Fatalf("unexpected status %q", s)
			}
			return 3, nil
		},
		CountRejectedByApplicantFn: func(ctx context.Context, name string) (int64, error) {
			if name == "張小明" {
				return 2, nil
			}
			return 0, nil
		},
	}
	users := &usermock.Repo{
		CountByStatusFn: func(ctx context.Context, s user.Status) (int64, error) {
			if s != user.StatusPending {
				t.Fatalf("unexpected status %q", s)
			}
			return 4, nil
		},
	}
	u := newUsecase(claims, users, nil)

	admin := &user.User{UserID: "admin", Role: user.RoleAdmin}
	got, err := u.CountNotifications(context.Background(), admin)
	if err != nil {
		t.Fatalf("CountNotifications(admin): %v", err)
	}
	if got.AdminCount != 7 || got.WorkerCount != 0 {
		t.Errorf("admin counts = %+v, want AdminCount 7", got)
	}

	worker := &user.User{UserID: "u1", Name: "張小明", Role: user.RoleWorker}
	got, err = u.CountNotifications(context.Background(), worker)
	if err != nil {
		t.Fatalf("CountNotifications(worker): %v", err)
	}
	if got.WorkerCount != 2 || got.AdminCount != 0 {
		t.Errorf("worker counts = %+v, want WorkerCount 2", got)
	}
}
