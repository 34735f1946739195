package catalog

import "fmt"

// Static reference data for the yard's welded-component catalog.
// Defined once at process start; immutable thereafter.

type itemSeed struct {
	category Category
	name     string
	welder   float64
	foreman  float64
	total    float64
	wCount   int
	fCount   int
}

var itemSeeds = []itemSeed{
	// Mating
	{CategoryMating, "最終大組對接(整層)*", 90000, 10000, 100000, 18, 2},
	{CategoryMating, "TP/UP大組對接(整層)", 45000, 4000, 49000, 18, 2},
	{CategoryMating, "MD/LW大組對接(整層)", 45000, 4000, 49000, 18, 2},
	// TP
	{CategoryTP, "桶身+底板", 8000, 1000, 9000, 8, 2},
	{CategoryTP, "門板+桶身", 4000, 1000, 5000, 4, 2},
	{CategoryTP, "門板+橢圓門框", 4000, 1000, 5000, 4, 2},
	{CategoryTP, "頂板預製", 7200, 1000, 8200, 6, 2},
	{CategoryTP, "頂板大組(大微笑)", 6000, 1000, 7000, 4, 2},
	{CategoryTP, "頂板大組(加勁板立銲)", 2400, 1000, 3400, 2, 2},
	{CategoryTP, "TP 角管接底板", 4000, 1000, 5000, 4, 2},
	{CategoryTP, "大吊耳大組(三顆)", 14400, 1000, 15400, 12, 2},
	// JK
	{CategoryJK, "UL單腿對接", 1600, 400, 2000, 4, 2},
	{CategoryJK, "LL小對接", 1600, 400, 2000, 4, 2},
	{CategoryJK, "LL大對接", 3600, 400, 4000, 4, 2},
	{CategoryJK, "UL 整隻拱頭", 16000, 1000, 17000, 16, 2},
	{CategoryJK, "ML 整隻拱頭", 8000, 1000, 9000, 8, 2},
	{CategoryJK, "LL 整隻拱頭", 9600, 1000, 10600, 8, 2},
	{CategoryJK, "U2D", 4800, 400, 5200, 24, 2},
	{CategoryJK, "M2D", 2400, 400, 2800, 12, 2},
	{CategoryJK, "L2D", 3600, 400, 4000, 12, 2},
	{CategoryJK, "U3D", 6400, 400, 6800, 16, 2},
	{CategoryJK, "M3D", 4800, 400, 5200, 12, 2},
	{CategoryJK, "L3D", 6000, 400, 6400, 12, 2},
	{CategoryJK, "中腿公差板", 2400, 400, 2800, 4, 2},
	{CategoryJK, "下腿公差板", 3200, 400, 3600, 4, 2},
	{CategoryJK, "XB1", 800, 200, 1000, 8, 2},
	{CategoryJK, "XB2", 800, 200, 1000, 8, 2},
	{CategoryJK, "XB3", 1200, 400, 1600, 6, 2},
	{CategoryJK, "XB4", 1200, 400, 1600, 6, 2},
}

// genericSpecs builds a one-configuration spec list for items with no
// engineering drawing breakdown yet.
func genericSpecs(itemID string, prefix string, count int) []WeldSpec {
	out := make([]WeldSpec, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, WeldSpec{
			ID:         fmt.Sprintf("%s-%02d", itemID, i+1),
			ConfigName: prefix + "-Standard",
			DrawingNo:  prefix + "-001",
			WeldNo:     fmt.Sprintf("W-%02d", i+1),
			Weight:     100 * float64(i+1),
		})
	}
	return out
}

type weldSeed struct {
	weldNo string
	weight float64
}

// drawingSpecs builds specs for one engineering drawing; the config
// name defaults to the drawing number.
func drawingSpecs(itemID, drawingNo string, welds []weldSeed) []WeldSpec {
	out := make([]WeldSpec, 0, len(welds))
	for i, w := range welds {
		out = append(out, WeldSpec{
			ID:         fmt.Sprintf("%s-%02d", itemID, i+1),
			ConfigName: drawingNo,
			DrawingNo:  drawingNo,
			WeldNo:     w.weldNo,
			Weight:     w.weight,
		})
	}
	return out
}

var items = buildItems()

func buildItems() []Item {
	out := make([]Item, 0, len(itemSeeds))
	for idx, s := range itemSeeds {
		itemID := fmt.Sprintf("%d", idx+1)
		var specs []WeldSpec
		if s.name == "頂板預製" {
			specs = drawingSpecs(itemID, "CWP08G-TP-8SM303.002", []weldSeed{
				{"W01", 538}, {"W02", 31}, {"W04", 63}, {"W05", 173},
				{"W06", 31}, {"W08", 63}, {"W09", 173},
			})
		} else {
			specs = genericSpecs(itemID, string(s.category), 5)
		}
		out = append(out, Item{
			ID:             itemID,
			Category:       s.category,
			Name:           s.name,
			BasePrice:      s.total,
			WelderPrice:    s.welder,
			ForemanPrice:   s.foreman,
			DefaultWelders: s.wCount,
			DefaultForemen: s.fCount,
			Specs:          specs,
		})
	}
	return out
}

// Items returns the full catalog in definition order.
func Items() []Item { return items }

// ItemByID looks up a catalog item by identifier.
func ItemByID(id string) (Item, error) {
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}
