package pricing

import (
	"math"
	"sort"

	"pcbquote/internal/domain/entities"
)

const (
	packAreaCeilingM2 = 0.2

	thinThicknessMinMm   = 0.2
	thinThicknessMaxMm   = 0.4
	normalThicknessMaxMm = 1.6
	thicknessStepMm      = 0.4

	thinSampleSurcharge      = 120.0
	thinBatchSurchargeFactor = 0.5

	thickStepStandardPerM2   = 60.0
	thickStepMultilayerPerM2 = 40.0

	thinDiscountThicknessMm = 1.2
	thinDiscountMinAreaM2   = 5.0
	thinDiscountPerM2       = 20.0
)

// basePrice resolves the tiered board price and its thickness adjustment.
// Heavy-copper boards (either foil above 1 oz) price from a separate table.
func (e *Engine) basePrice(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}

	table := e.tables.BasePriceStandard
	if copperClassFor(spec) == CopperHigh {
		table = e.tables.BasePriceHeavy
	}

	entry, layer, ok := nearestLayerEntry(table, spec.LayerCount)
	if !ok {
		r.note("%d-layer boards are outside the standard price list, please contact sales for a quotation", spec.LayerCount)
		return r
	}

	var base float64
	if q.TotalAreaM2 <= packAreaCeilingM2 {
		base = entry.PackPrice
		r.note("%d-layer board up to %.1f m2 billed at the pack price %.2f", layer, packAreaCeilingM2, base)
	} else {
		unit := bracketUnitPrice(entry.Brackets, q.TotalAreaM2)
		base = unit * q.TotalAreaM2
		r.note("%d-layer board at %.2f/m2 for %.2f m2", layer, unit, q.TotalAreaM2)
	}
	r.add("base_price", base)

	e.thicknessAdjust(spec, q, base, &r)
	return r
}

// thicknessAdjust applies exactly one of the three thickness rules: thin
// board surcharge, over-thickness step surcharge, or the large-lot thin
// discount inside the normal range.
func (e *Engine) thicknessAdjust(spec entities.OrderSpecification, q entities.ResolvedQuantity, base float64, r *Result) {
	t := spec.BoardThicknessMm
	switch {
	case t >= thinThicknessMinMm && t <= thinThicknessMaxMm:
		if isSample(q) {
			r.add("thickness_thin", thinSampleSurcharge)
		} else {
			r.add("thickness_thin", base*thinBatchSurchargeFactor)
		}
		r.note("thin board %.2f mm carries a handling surcharge", t)
	case t > normalThicknessMaxMm:
		steps := int(math.Ceil((t - normalThicknessMaxMm) / thicknessStepMm))
		rate := thickStepStandardPerM2
		if spec.Multilayer() {
			rate = thickStepMultilayerPerM2
		}
		r.add("thickness_extra", float64(steps)*rate*billableArea(q))
		r.note("board thickness %.2f mm exceeds %.1f mm by %d step(s)", t, normalThicknessMaxMm, steps)
	case t > thinThicknessMaxMm && t < thinDiscountThicknessMm && q.TotalAreaM2 > thinDiscountMinAreaM2:
		r.add("thickness_discount", -thinDiscountPerM2*q.TotalAreaM2)
		r.note("large lot below %.1f mm receives a material discount", thinDiscountThicknessMm)
	}
}

// nearestLayerEntry returns the entry for the exact layer count or the
// nearest supported lower one. Counts above the table ceiling are out of
// range and must be quoted by hand.
func nearestLayerEntry(table map[int]BasePriceEntry, layerCount int) (BasePriceEntry, int, bool) {
	if e, ok := table[layerCount]; ok {
		return e, layerCount, true
	}
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	if len(keys) == 0 || layerCount > keys[len(keys)-1] || layerCount < keys[0] {
		return BasePriceEntry{}, 0, false
	}
	best := -1
	for _, k := range keys {
		if k < layerCount {
			best = k
		}
	}
	if best < 0 {
		return BasePriceEntry{}, 0, false
	}
	return table[best], best, true
}

// bracketUnitPrice picks the smallest bracket covering the area; the entry
// with MaxAreaM2 == 0 is the unbounded top bracket.
func bracketUnitPrice(brackets []AreaPrice, areaM2 float64) float64 {
	var open float64
	for _, b := range brackets {
		if b.MaxAreaM2 == 0 {
			open = b.UnitPrice
			continue
		}
		if areaM2 <= b.MaxAreaM2 {
			return b.UnitPrice
		}
	}
	return open
}
