package catalog

import "errors"

var ErrNotFound = errors.New("catalog item not found")

// Category is the closed set of component families eligible for a claim.
type Category string

const (
	CategoryMating Category = "Mating"
	CategoryTP     Category = "TP"
	CategoryJK     Category = "JK"
)

// Code returns the two-letter sheet-number code for the category.
// Unknown categories map to the "XX" sentinel.
func (c Category) Code() string {
	switch c {
	case CategoryMating:
		return "MT"
	case CategoryTP:
		return "TP"
	case CategoryJK:
		return "JK"
	}
	return "XX"
}

// WeldSpec is one required weld within a configuration of an item.
// ConfigName partitions an item's specs into mutually exclusive
// claimable sets; a claim selects exactly one configuration.
type WeldSpec struct {
	ID         string  `json:"id"`
	ConfigName string  `json:"config_name"`
	DrawingNo  string  `json:"drawing_no"`
	WeldNo     string  `json:"weld_no"`
	Weight     float64 `json:"weight"`
	Price      float64 `json:"price"`
}

// Item is a welded component type eligible for a first-pass bonus claim.
// BasePrice is the hard ceiling for the whole claim; WelderPrice and
// ForemanPrice are independently binding sub-ceilings. Source data does
// not guarantee WelderPrice+ForemanPrice == BasePrice, so all three are
// checked separately.
type Item struct {
	ID             string     `json:"id"`
	Category       Category   `json:"category"`
	Name           string     `json:"item_name"`
	BasePrice      float64    `json:"base_price"`
	WelderPrice    float64    `json:"welder_price"`
	ForemanPrice   float64    `json:"foreman_price"`
	DefaultWelders int        `json:"default_welders"`
	DefaultForemen int        `json:"default_foremen"`
	Specs          []WeldSpec `json:"specs"`
}

// ConfigNames returns the distinct configuration names of the item in
// catalog definition order. Specs without a ConfigName fall back to
// their DrawingNo as the grouping key.
func (i Item) ConfigNames() []string {
	seen := make(map[string]struct{}, len(i.Specs))
	var out []string
	for _, s := range i.Specs {
		name := s.ConfigName
		if name == "" {
			name = s.DrawingNo
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// SpecsForConfig filters the item's specs to one configuration,
// preserving definition order.
func (i Item) SpecsForConfig(configName string) []WeldSpec {
	var out []WeldSpec
	for _, s := range i.Specs {
		name := s.ConfigName
		if name == "" {
			name = s.DrawingNo
		}
		if name == configName {
			out = append(out, s)
		}
	}
	return out
}
