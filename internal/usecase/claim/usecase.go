package claim

import (
	"context"
	"strings"
	"time"

	"weldtrack-backend/internal/domain/catalog"
	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/uow"
	"weldtrack-backend/pkg/id"
)

type Usecase struct {
	repo claim.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r claim.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

type SubmitInput struct {
	Workstation   string             `json:"workstation"`
	ApplicantName string             `json:"applicant_name"`
	SubmitDate    string             `json:"submit_date"`
	MasterItemID  string             `json:"master_item_id"`
	Items         []claim.LineItem   `json:"items"`
	Allocations   []claim.Allocation `json:"allocations"`
}

type SubmitResult struct {
	ClaimID     string `json:"claim_id"`
	SheetNo     string `json:"sheet_no"`
	Status      string `json:"status"`
	SummaryDate string `json:"summary_date"`
}

// Submit validates the claim against the catalog ceilings, generates
// its sheet number and persists it as PENDING. Sheet-number generation
// and the insert share one transaction so two concurrent submitters
// cannot read the same existing-claims snapshot.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	item, err := catalog.ItemByID(in.MasterItemID)
	if err != nil {
		return nil, err
	}
	if err := checkSubmittable(in.Items, in.Allocations, item); err != nil {
		return nil, err
	}
	summary, err := SummaryDate(in.SubmitDate)
	if err != nil {
		return nil, err
	}

	var out *SubmitResult
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		existing, err := r.Claims.List(ctx)
		if err != nil {
			return err
		}
		sheetNos := make([]string, 0, len(existing))
		for _, c := range existing {
			sheetNos = append(sheetNos, c.SheetNo)
		}

		c := &claim.Claim{
			ClaimID:         id.NewID32(),
			SheetNo:         GenerateSheetNo(in.Workstation, item.Category, sheetNos, u.now()),
			Workstation:     in.Workstation,
			ApplicantName:   in.ApplicantName,
			SubmitDate:      in.SubmitDate,
			MasterItemID:    in.MasterItemID,
			Items:           in.Items,
			Allocations:     in.Allocations,
			Status:          claim.StatusPending,
			SummaryDate:     summary,
			StatusUpdatedAt: u.now(),
		}
		if err := r.Claims.Create(ctx, c); err != nil {
			return err
		}
		out = &SubmitResult{ClaimID: c.ClaimID, SheetNo: c.SheetNo, Status: string(c.Status), SummaryDate: c.SummaryDate}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update re-reads the claim and replaces its contents. Permitted only
// while the claim is PENDING and only to its own workstation; the sheet
// number is kept, the summary date recomputed and the status reset to
// PENDING for review.
func (u *Usecase) Update(ctx context.Context, claimID, requesterWorkstation string, in SubmitInput) (*SubmitResult, error) {
	item, err := catalog.ItemByID(in.MasterItemID)
	if err != nil {
		return nil, err
	}
	if err := checkSubmittable(in.Items, in.Allocations, item); err != nil {
		return nil, err
	}
	summary, err := SummaryDate(in.SubmitDate)
	if err != nil {
		return nil, err
	}

	var out *SubmitResult
	err = u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		if c.Status != claim.StatusPending {
			return claim.ErrNotEditable
		}
		if c.Workstation != requesterWorkstation {
			return claim.ErrNotOwner
		}
		c.ApplicantName = in.ApplicantName
		c.SubmitDate = in.SubmitDate
		c.MasterItemID = in.MasterItemID
		c.Items = in.Items
		c.Allocations = in.Allocations
		c.Status = claim.StatusPending
		c.SummaryDate = summary
		c.StatusUpdatedAt = u.now()
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}
		out = &SubmitResult{ClaimID: c.ClaimID, SheetNo: c.SheetNo, Status: string(c.Status), SummaryDate: c.SummaryDate}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, claimID string) (*claim.Claim, error) {
	return u.repo.GetByClaimID(ctx, claimID)
}

// ListFilter narrows the claim listing. Quarter is "Q1".."Q4" over the
// submit date month; Query matches sheet number, applicant name or any
// weld number, case-insensitively.
type ListFilter struct {
	Workstation string
	Status      claim.Status
	Quarter     string
	Query       string
}

func (u *Usecase) List(ctx context.Context, f ListFilter) ([]claim.Claim, error) {
	var (
		all []claim.Claim
		err error
	)
	if f.Workstation != "" {
		all, err = u.repo.ListByWorkstation(ctx, f.Workstation)
	} else {
		all, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]claim.Claim, 0, len(all))
	for _, c := range all {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Quarter != "" && quarterOf(c.SubmitDate) != f.Quarter {
			continue
		}
		if f.Query != "" && !matchesQuery(c, f.Query) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// CheckIfApplied reports whether a weld of a catalog item already
// appears on any claim that has not been rejected; first-pass welds may
// only be claimed once.
func (u *Usecase) CheckIfApplied(ctx context.Context, weldNo, masterItemID string) (bool, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range all {
		if c.MasterItemID != masterItemID || c.Status == claim.StatusRejected {
			continue
		}
		for _, it := range c.Items {
			if it.WeldNo == weldNo {
				return true, nil
			}
		}
	}
	return false, nil
}

func quarterOf(submitDate string) string {
	t, err := time.Parse("2006-01-02", submitDate)
	if err != nil {
		return ""
	}
	switch {
	case t.Month() <= 3:
		return "Q1"
	case t.Month() <= 6:
		return "Q2"
	case t.Month() <= 9:
		return "Q3"
	default:
		return "Q4"
	}
}

func matchesQuery(c claim.Claim, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(c.SheetNo), q) || strings.Contains(strings.ToLower(c.ApplicantName), q) {
		return true
	}
	for _, it := range c.Items {
		if strings.Contains(strings.ToLower(it.WeldNo), q) {
			return true
		}
	}
	return false
}
