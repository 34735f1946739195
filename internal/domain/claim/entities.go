package claim

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Role of one person on the allocation roster.
type Role string

const (
	RoleWelder  Role = "WELDER"
	RoleForeman Role = "FOREMAN"
)

// LineItem is one weld actually being claimed. Serial and UTDate stay
// editable until the owning claim leaves PENDING.
type LineItem struct {
	SpecID     string  `json:"spec_id"`
	DrawingNo  string  `json:"drawing_no"`
	WeldNo     string  `json:"weld_no"`
	ItemSerial string  `json:"item_serial"`
	Weight     float64 `json:"weight"`
	Price      float64 `json:"price"`
	UTDate     string  `json:"ut_date,omitempty"`
}

// Allocation is a bonus share assigned to one person.
type Allocation struct {
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	Role       Role    `json:"role"`
	Amount     float64 `json:"amount"`
}

// Claim is one submitted bonus application. SheetNo is generated once
// at submission and immutable for the life of the claim. Dates are
// stored as YYYY-MM-DD strings, matching the record contract.
type Claim struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	ClaimID         string         `gorm:"size:32;uniqueIndex:ux_claims_claim_id_active" json:"claim_id"`
	SheetNo         string         `gorm:"size:16;index:idx_claims_sheet_no" json:"sheet_no"`
	Workstation     string         `gorm:"size:8;index:idx_claims_workstation" json:"workstation"`
	ApplicantName   string         `gorm:"size:64" json:"applicant_name"`
	SubmitDate      string         `gorm:"size:10" json:"submit_date"`
	MasterItemID    string         `gorm:"size:16" json:"master_item_id"`
	Items           []LineItem     `gorm:"serializer:json;type:json" json:"items"`
	Allocations     []Allocation   `gorm:"serializer:json;type:json" json:"allocations"`
	Status          Status         `gorm:"type:enum('PENDING','APPROVED','REJECTED');default:'PENDING'" json:"status"`
	AdminComment    string         `gorm:"type:text" json:"admin_comment,omitempty"`
	SummaryDate     string         `gorm:"size:10" json:"summary_date,omitempty"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Claim) TableName() string { return "claims" }
