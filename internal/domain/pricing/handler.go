package pricing

import (
	"fmt"
	"math"

	"pcbquote/internal/domain/entities"
)

// sampleAreaThresholdM2 splits sample pricing (flat per-lot fees) from batch
// pricing (per-m2 rates with a minimum billable area of one square meter).
const sampleAreaThresholdM2 = 1.0

// Result is the contribution of one pricing rule: a signed amount, labeled
// display lines, and customer-facing notes. Rules that cannot price a
// configuration return a zero amount and a review note instead of an error.
type Result struct {
	Extra  float64
	Detail map[string]float64
	Notes  []string
}

func (r *Result) add(label string, amount float64) {
	amount = round2(amount)
	if r.Detail == nil {
		r.Detail = make(map[string]float64)
	}
	r.Detail[label] = amount
	r.Extra += amount
}

func (r *Result) note(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// handlerFunc is the shape of every pricing rule. Rules are pure and
// independent; registration order only fixes the order of notes.
type handlerFunc func(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result

type namedHandler struct {
	name string
	fn   handlerFunc
}

func isSample(q entities.ResolvedQuantity) bool {
	return q.TotalAreaM2 < sampleAreaThresholdM2
}

// billableArea floors batch billing at one square meter.
func billableArea(q entities.ResolvedQuantity) float64 {
	return math.Max(1, q.TotalAreaM2)
}

// noArea reports the "insufficient data" case every area-based rule must
// short-circuit on.
func noArea(q entities.ResolvedQuantity) bool {
	return q.TotalAreaM2 <= 0
}

// areaFee resolves the standard sample/batch split: a flat per-lot fee below
// the sample threshold, otherwise a per-m2 rate over the billable area.
func areaFee(q entities.ResolvedQuantity, fee CopperFee) float64 {
	if noArea(q) {
		return 0
	}
	if isSample(q) {
		return fee.Sample
	}
	return fee.BatchPerM2 * billableArea(q)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
