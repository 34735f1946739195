package claim

import (
	"errors"

	"weldtrack-backend/internal/domain/catalog"
	"weldtrack-backend/internal/domain/claim"
)

// Submit preconditions, distinguishable so the caller can render the
// precise cause.
var (
	ErrNoLineItems       = errors.New("no weld line items selected")
	ErrWelderOverBudget  = errors.New("welder allocations exceed the welder sub-budget")
	ErrForemanOverBudget = errors.New("foreman allocations exceed the foreman sub-budget")
	ErrOverTotalBudget   = errors.New("total allocations exceed the item bonus")
)

// BudgetReport is the result of checking a roster against all three of
// an item's ceilings. The ceilings are independently binding: source
// catalog data does not guarantee welder + foreman == base.
type BudgetReport struct {
	WelderTotal  float64 `json:"welder_total"`
	ForemanTotal float64 `json:"foreman_total"`
	GrandTotal   float64 `json:"grand_total"`
	WelderOver   bool    `json:"welder_over"`
	ForemanOver  bool    `json:"foreman_over"`
	OverBudget   bool    `json:"over_budget"`
}

// ValidateBudget is pure and total over finite rosters; it never errors.
func ValidateBudget(allocations []claim.Allocation, item catalog.Item) BudgetReport {
	var r BudgetReport
	for _, a := range allocations {
		switch a.Role {
		case claim.RoleWelder:
			r.WelderTotal += a.Amount
		case claim.RoleForeman:
			r.ForemanTotal += a.Amount
		}
	}
	r.GrandTotal = r.WelderTotal + r.ForemanTotal
	r.WelderOver = r.WelderTotal > item.WelderPrice
	r.ForemanOver = r.ForemanTotal > item.ForemanPrice
	r.OverBudget = r.WelderOver || r.ForemanOver || item.BasePrice-r.GrandTotal < 0
	return r
}

// checkSubmittable gates a submit or resubmit: a claim needs at least
// one line item and a roster within every ceiling.
func checkSubmittable(items []claim.LineItem, allocations []claim.Allocation, item catalog.Item) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}
	r := ValidateBudget(allocations, item)
	switch {
	case r.WelderOver:
		return ErrWelderOverBudget
	case r.ForemanOver:
		return ErrForemanOverBudget
	case r.OverBudget:
		return ErrOverTotalBudget
	}
	return nil
}
