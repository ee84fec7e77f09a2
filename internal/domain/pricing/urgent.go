package pricing

import (
	"fmt"
	"math"

	"pcbquote/internal/domain/entities"
)

const (
	// urgentManualLayerMin: stackups this dense have no expedite matrix row
	// and must be scheduled by hand.
	urgentManualLayerMin = 12

	urgentFallbackSample = 100.0
	urgentFallbackPerM2  = 50.0
	urgentFallbackFloor  = 100.0
)

// UrgentFee looks up the expedite cost for a requested day reduction. A quote
// is never refused outright: configurations the fine-grained matrix does not
// cover fall back to a coarse flat/per-area heuristic, and only dense
// stackups with no matrix row at all come back unsupported.
func (e *Engine) UrgentFee(spec entities.OrderSpecification, q entities.ResolvedQuantity, reduceDays int) entities.UrgentOption {
	opt := entities.UrgentOption{ReduceDays: reduceDays, FeeBasis: entities.FeeBasisFixed}
	if reduceDays <= 0 || noArea(q) {
		opt.Description = "no lead time reduction applicable"
		return opt
	}

	rows, ok := e.tables.Urgent[spec.LayerCount]
	if !ok {
		if spec.LayerCount >= urgentManualLayerMin {
			opt.Description = fmt.Sprintf("urgent delivery for %d-layer boards requires manual scheduling", spec.LayerCount)
			return opt
		}
		return e.urgentFallback(q, reduceDays)
	}

	brackets := rows[copperClassFor(spec)]
	choice, ok := findUrgentChoice(brackets, q.TotalAreaM2, reduceDays)
	if !ok {
		return e.urgentFallback(q, reduceDays)
	}

	opt.Supported = true
	if choice.PerArea {
		opt.FeeBasis = entities.FeeBasisPerAreaUnit
		opt.Fee = round2(choice.Fee * q.TotalAreaM2)
	} else {
		opt.Fee = choice.Fee
	}
	opt.Description = fmt.Sprintf("urgent delivery, %d day(s) faster", reduceDays)
	return opt
}

// urgentFallback is the coarse heuristic used when the matrix has no entry
// for an otherwise supported configuration.
func (e *Engine) urgentFallback(q entities.ResolvedQuantity, reduceDays int) entities.UrgentOption {
	opt := entities.UrgentOption{
		ReduceDays:  reduceDays,
		Supported:   true,
		Description: fmt.Sprintf("urgent delivery, %d day(s) faster (general expedite rate)", reduceDays),
	}
	if isSample(q) {
		opt.FeeBasis = entities.FeeBasisFixed
		opt.Fee = urgentFallbackSample
		return opt
	}
	opt.FeeBasis = entities.FeeBasisPerAreaUnit
	opt.Fee = round2(math.Max(urgentFallbackFloor, urgentFallbackPerM2*q.TotalAreaM2))
	return opt
}

func findUrgentChoice(brackets []UrgentBracket, areaM2 float64, reduceDays int) (UrgentChoice, bool) {
	for _, b := range brackets {
		if b.MaxAreaM2 != 0 && areaM2 > b.MaxAreaM2 {
			continue
		}
		for _, c := range b.Choices {
			if c.ReduceDays == reduceDays {
				return c, true
			}
		}
		return UrgentChoice{}, false
	}
	return UrgentChoice{}, false
}

// urgentDelivery folds the expedite fee into the price breakdown. The
// standard delivery path always contributes zero.
func (e *Engine) urgentDelivery(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if spec.DeliveryMode != entities.DeliveryUrgent {
		return r
	}
	opt := e.UrgentFee(spec, q, spec.UrgentReduceDays)
	if !opt.Supported {
		r.note("%s", opt.Description)
		return r
	}
	r.add("urgent_delivery", opt.Fee)
	r.note("%s", opt.Description)
	return r
}
