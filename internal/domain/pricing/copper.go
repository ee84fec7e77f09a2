package pricing

import (
	"fmt"
	"math"
	"sort"

	"pcbquote/internal/domain/entities"
)

const (
	outerCopperMaxOz      = 4.0
	outerCopperStepSample = 150.0
	outerCopperStepPerM2  = 120.0
)

// outerCopperWeight surcharges heavy outer foil on 1-2 layer boards, one
// step per ounce above the 1 oz baseline. Multilayer stackups are priced by
// multilayerCopperWeight instead.
func (e *Engine) outerCopperWeight(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if spec.LayerCount > 2 || noArea(q) {
		return r
	}
	oz := spec.OuterCopperWeightOz
	if oz <= 1 {
		return r
	}
	if oz > outerCopperMaxOz {
		r.note("outer copper %.1f oz exceeds the supported range and requires manual evaluation", oz)
		return r
	}

	steps := int(math.Ceil(oz - 1))
	fee := areaFee(q, CopperFee{
		Sample:     float64(steps) * outerCopperStepSample,
		BatchPerM2: float64(steps) * outerCopperStepPerM2,
	})
	r.add("outer_copper", fee)
	r.note("outer copper %.1f oz surcharge", oz)
	return r
}

// multilayerCopperWeight prices the outer/inner copper combination of a
// multilayer board from a per-layer-count matrix. Combinations absent from
// the matrix are flagged for manual evaluation, never rejected.
func (e *Engine) multilayerCopperWeight(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.Multilayer() || noArea(q) {
		return r
	}

	key := copperKey(spec.OuterCopperWeightOz, spec.InnerCopperWeightOz)
	row, ok := nearestCopperRow(e.tables.MultilayerCopper, spec.LayerCount)
	if !ok {
		r.note("%d-layer copper weight %s requires manual evaluation", spec.LayerCount, key)
		return r
	}
	fee, ok := row[key]
	if !ok {
		r.note("copper weight combination %s is not in the %d-layer price list and requires manual evaluation", key, spec.LayerCount)
		return r
	}

	amount := areaFee(q, fee)
	if amount != 0 {
		r.add("multilayer_copper", amount)
		r.note("multilayer copper %s oz surcharge", key)
	}
	return r
}

func copperKey(outerOz, innerOz float64) string {
	return fmt.Sprintf("%g-%g", outerOz, innerOz)
}

func nearestCopperRow(matrix map[int]map[string]CopperFee, layerCount int) (map[string]CopperFee, bool) {
	if row, ok := matrix[layerCount]; ok {
		return row, true
	}
	keys := make([]int, 0, len(matrix))
	for k := range matrix {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	if len(keys) == 0 || layerCount > keys[len(keys)-1] || layerCount < keys[0] {
		return nil, false
	}
	best := 0
	for _, k := range keys {
		if k < layerCount {
			best = k
		}
	}
	if best == 0 {
		return nil, false
	}
	return matrix[best], true
}
