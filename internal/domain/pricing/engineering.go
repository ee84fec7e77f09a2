package pricing

import (
	"sort"

	"pcbquote/internal/domain/entities"
)

// engineeringFee is a step function of the lot area: small lots pay a flat
// tooling fee, lots past the top bracket have it waived.
func (e *Engine) engineeringFee(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}

	fee := bracketUnitPrice(e.tables.EngineeringFee, q.TotalAreaM2)
	if fee == 0 {
		r.note("engineering fee waived for lots above %.1f m2", topBracket(e.tables.EngineeringFee))
		return r
	}
	r.add("engineering_fee", fee)
	return r
}

// filmFee bills production film per sheet over the single-board area. Boards
// below the minimum billable unit area ride on shared film for free.
func (e *Engine) filmFee(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) || q.SingleAreaM2 <= e.tables.FilmMinSingleAreaM2 {
		return r
	}

	sheets, ok := nearestSheetCount(e.tables.FilmSheetCount, spec.LayerCount)
	if !ok {
		return r
	}
	r.add("film_fee", float64(sheets)*q.SingleAreaM2*e.tables.FilmUnitPrice)
	r.note("%d film sheet(s) over %.3f m2 unit area", sheets, q.SingleAreaM2)
	return r
}

func nearestSheetCount(table map[int]int, layerCount int) (int, bool) {
	if v, ok := table[layerCount]; ok {
		return v, true
	}
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	if len(keys) == 0 || layerCount > keys[len(keys)-1] || layerCount < keys[0] {
		return 0, false
	}
	best := 0
	for _, k := range keys {
		if k < layerCount {
			best = k
		}
	}
	if best == 0 {
		return 0, false
	}
	return table[best], true
}

func topBracket(brackets []AreaPrice) float64 {
	var max float64
	for _, b := range brackets {
		if b.MaxAreaM2 > max {
			max = b.MaxAreaM2
		}
	}
	return max
}
