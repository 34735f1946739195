package claim

import (
	"weldtrack-backend/internal/domain/catalog"
	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/pkg/id"
)

// BuildLineItems populates the weld line items for one configuration of
// a catalog item. Pure transform: catalog order is preserved, the
// serial defaults to defaultSerial and the completion date to the
// claim's submit date. The caller replaces its previous line-item list
// wholesale on configuration change.
func BuildLineItems(item catalog.Item, configName, defaultSerial, submitDate string) []claim.LineItem {
	specs := item.SpecsForConfig(configName)
	out := make([]claim.LineItem, 0, len(specs))
	for _, s := range specs {
		out = append(out, claim.LineItem{
			SpecID:     s.ID,
			DrawingNo:  s.DrawingNo,
			WeldNo:     s.WeldNo,
			ItemSerial: defaultSerial,
			Weight:     s.Weight,
			Price:      s.Price,
			UTDate:     submitDate,
		})
	}
	return out
}

// BuildDefaultAllocations seeds the roster with the item's default
// headcounts, foremen first, each row getting an even floor split of
// its role's sub-budget. A zero headcount seeds no rows for that role
// rather than dividing by zero.
func BuildDefaultAllocations(item catalog.Item) []claim.Allocation {
	out := make([]claim.Allocation, 0, item.DefaultForemen+item.DefaultWelders)
	if item.DefaultForemen > 0 {
		amount := floorDiv(item.ForemanPrice, item.DefaultForemen)
		for i := 0; i < item.DefaultForemen; i++ {
			out = append(out, claim.Allocation{WorkerID: id.NewID32(), Role: claim.RoleForeman, Amount: amount})
		}
	}
	if item.DefaultWelders > 0 {
		amount := floorDiv(item.WelderPrice, item.DefaultWelders)
		for i := 0; i < item.DefaultWelders; i++ {
			out = append(out, claim.Allocation{WorkerID: id.NewID32(), Role: claim.RoleWelder, Amount: amount})
		}
	}
	return out
}

// Redistribute overwrites every allocation's amount with the even floor
// split of its role's sub-budget over the number of roster members
// currently in that role. Order and all other fields are preserved; a
// role with zero members is left untouched.
func Redistribute(allocations []claim.Allocation, item catalog.Item) []claim.Allocation {
	var welders, foremen int
	for _, a := range allocations {
		switch a.Role {
		case claim.RoleWelder:
			welders++
		case claim.RoleForeman:
			foremen++
		}
	}

	out := make([]claim.Allocation, len(allocations))
	copy(out, allocations)
	for i := range out {
		switch out[i].Role {
		case claim.RoleWelder:
			if welders > 0 {
				out[i].Amount = floorDiv(item.WelderPrice, welders)
			}
		case claim.RoleForeman:
			if foremen > 0 {
				out[i].Amount = floorDiv(item.ForemanPrice, foremen)
			}
		}
	}
	return out
}

func floorDiv(budget float64, count int) float64 {
	return float64(int64(budget) / int64(count))
}
