package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM, no FOR UPDATE) ---

type claimSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ClaimID         string         `gorm:"size:32;uniqueIndex;column:claim_id"`
	SheetNo         string         `gorm:"size:16;column:sheet_no"`
	Workstation     string         `gorm:"size:8;column:workstation"`
	ApplicantName   string         `gorm:"size:64;column:applicant_name"`
	SubmitDate      string         `gorm:"size:10;column:submit_date"`
	MasterItemID    string         `gorm:"size:16;column:master_item_id"`
	Items           string         `gorm:"type:text;column:items"`
	Allocations     string         `gorm:"type:text;column:allocations"`
	Status          string         `gorm:"type:text;column:status"` // ← no enum
	AdminComment    string         `gorm:"type:text;column:admin_comment"`
	SummaryDate     string         `gorm:"size:10;column:summary_date"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (claimSQLite) TableName() string { return "claims" }

// openClaimTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema. TranslateError is enabled so the repository's
// duplicate-key mapping is exercised the same way as on MySQL.
func openClaimTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&claimSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeClaim(claimID, workstation string) *domain.Claim {
	return &domain.Claim{
		ClaimID:       claimID,
		SheetNo:       "24Y1TP01",
		Workstation:   workstation,
		ApplicantName: "張小明",
		SubmitDate:    "2024-02-10",
		MasterItemID:  "7",
		Items: []domain.LineItem{
			{SpecID: "7-01", DrawingNo: "CWP08G-TP-8SM303.002", WeldNo: "W01", ItemSerial: "001", Weight: 538},
		},
		Allocations: []domain.Allocation{
			{WorkerID: "w1", WorkerName: "王大同", Role: domain.RoleWelder, Amount: 3600},
		},
		Status:          domain.StatusPending,
		SummaryDate:     "2024-04-15",
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestClaimCreateAndGetByClaimID(t *testing.T) {
	db := openClaimTestDB(t)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	claimID := id.NewID32()
	c := makeClaim(claimID, "Y1")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("GetByClaimID: %v", err)
	}
	if got.ClaimID != claimID || got.SheetNo != "24Y1TP01" {
		t.Errorf("unexpected claim: %+v", got)
	}
	// nested fields survive the JSON round-trip
	if len(got.Items) != 1 || got.Items[0].WeldNo != "W01" || got.Items[0].Weight != 538 {
		t.Errorf("items not restored: %+v", got.Items)
	}
	if len(got.Allocations) != 1 || got.Allocations[0].WorkerName != "王大同" || got.Allocations[0].Role != domain.RoleWelder {
		t.Errorf("allocations not restored: %+v", got.Allocations)
	}
}

func TestClaimSaveUpdates(t *testing.T) {
	db := openClaimTestDB(t)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	claimID := id.NewID32()
	c := makeClaim(claimID, "Y1")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.Status = domain.StatusRejected
	c.AdminComment = "missing UT record"
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("GetByClaimID: %v", err)
	}
	if got.Status != domain.StatusRejected || got.AdminComment != "missing UT record" {
		t.Errorf("update not persisted: status=%q comment=%q", got.Status, got.AdminComment)
	}
}

func TestClaimGetByClaimID_NotFound(t *testing.T) {
	db := openClaimTestDB(t)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	_, err := repo.GetByClaimID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestClaimListOrderAndWorkstationFilter(t *testing.T) {
	db := openClaimTestDB(t)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	older := makeClaim(id.NewID32(), "Y1")
	older.SubmitDate = "2024-01-05"
	newer := makeClaim(id.NewID32(), "Y1")
	newer.SubmitDate = "2024-02-10"
	other := makeClaim(id.NewID32(), "Y2")
	other.SubmitDate = "2024-03-01"

	for _, c := range []*domain.Claim{older, newer, other} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d claims, want 3", len(all))
	}
	// newest submit date first
	if all[0].ClaimID != other.ClaimID || all[1].ClaimID != newer.ClaimID || all[2].ClaimID != older.ClaimID {
		t.Errorf("unexpected order: %s %s %s", all[0].ClaimID, all[1].ClaimID, all[2].ClaimID)
	}

	y1, err := repo.ListByWorkstation(ctx, "Y1")
	if err != nil {
		t.Fatalf("ListByWorkstation: %v", err)
	}
	if len(y1) != 2 {
		t.Fatalf("ListByWorkstation returned %d claims, want 2", len(y1))
	}
	for _, c := range y1 {
		if c.Workstation != "Y1" {
			t.Errorf("claim %s from workstation %q leaked into Y1 listing", c.ClaimID, c.Workstation)
		}
	}
}

func TestClaimCounts(t *testing.T) {
	db := openClaimTestDB(t)
	repo := NewClaimRepository(db)
	ctx := context.Background()

	a := makeClaim(id.NewID32(), "Y1")
	b := makeClaim(id.NewID32(), "Y1")
	b.Status = domain.StatusRejected
	c := makeClaim(id.NewID32(), "Y2")
	c.Status = domain.StatusRejected
	c.ApplicantName = "李阿水"

	for _, cl := range []*domain.Claim{a, b, c} {
		if err := repo.Create(ctx, cl); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	pending, err := repo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if pending != 1 {
		t.Errorf("pending = %d, want 1", pending)
	}

	rejected, err := repo.CountRejectedByApplicant(ctx, "張小明")
	if err != nil {
		t.Fatalf("CountRejectedByApplicant: %v", err)
	}
	if rejected != 1 {
		t.Errorf("rejected for 張小明 = %d, want 1", rejected)
	}
}
