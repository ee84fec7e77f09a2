package pricing

import (
	"math"

	"pcbquote/internal/domain/entities"
)

const (
	maxAspectRatio      = 8.0
	aspectRatioSample   = 80.0
	aspectRatioPerM2    = 60.0
	holeDensityPerM2    = 80000.0
	holeDensityStep     = 10000.0
	holeDensitySample   = 30.0
	holeDensityStepRate = 25.0
)

// traceWidth surcharges fine trace/space below the 6 mil baseline. Widths
// under 3.5 mil cannot be fabricated on the standard line.
func (e *Engine) traceWidth(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	mil := spec.MinTraceSpacingMil
	if mil <= 0 || mil >= 6 || noArea(q) {
		return r
	}

	var fee CopperFee
	switch {
	case mil >= 5:
		fee = CopperFee{100, 80}
	case mil >= 4:
		fee = CopperFee{200, 160}
	case mil >= 3.5:
		fee = CopperFee{320, 260}
	default:
		r.note("trace/space %.1f mil is below the supported minimum and requires manual quotation", mil)
		return r
	}
	r.add("trace_width", areaFee(q, fee))
	r.note("fine trace/space %.1f mil surcharge", mil)
	return r
}

// minHole combines the minimum drill size with layer count and thickness.
// The supported floor is lower for multilayer boards; a drill-to-thickness
// aspect ratio above the limit adds a second charge.
func (e *Engine) minHole(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	d := spec.MinHoleDiameterMm
	if d <= 0 || noArea(q) {
		return r
	}

	var fee CopperFee
	var charged bool
	if spec.Multilayer() {
		switch {
		case d >= 0.25:
		case d >= 0.2:
			fee, charged = CopperFee{60, 50}, true
		case d >= 0.15:
			fee, charged = CopperFee{130, 110}, true
		default:
			r.note("minimum hole %.2f mm is below the multilayer drill limit and requires manual quotation", d)
			return r
		}
	} else {
		switch {
		case d >= 0.3:
		case d >= 0.25:
			fee, charged = CopperFee{50, 40}, true
		case d >= 0.2:
			fee, charged = CopperFee{100, 80}, true
		default:
			r.note("minimum hole %.2f mm is below the drill limit for %d-layer boards and requires manual quotation", d, spec.LayerCount)
			return r
		}
	}
	if charged {
		r.add("min_hole", areaFee(q, fee))
		r.note("small drill %.2f mm surcharge", d)
	}

	if spec.BoardThicknessMm > 0 && spec.BoardThicknessMm/d > maxAspectRatio {
		r.add("aspect_ratio", areaFee(q, CopperFee{aspectRatioSample, aspectRatioPerM2}))
		r.note("drill aspect ratio above %.0f:1 surcharge", maxAspectRatio)
	}
	return r
}

// holeDensity bills drilling volume above the included density.
func (e *Engine) holeDensity(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if spec.HoleCount <= 0 || noArea(q) {
		return r
	}

	density := float64(spec.HoleCount) / q.TotalAreaM2
	if density <= holeDensityPerM2 {
		return r
	}
	units := math.Ceil((density - holeDensityPerM2) / holeDensityStep)
	fee := areaFee(q, CopperFee{
		Sample:     units * holeDensitySample,
		BatchPerM2: units * holeDensityStepRate,
	})
	r.add("hole_density", fee)
	r.note("hole density %.0f/m2 exceeds the included %.0f/m2", density, holeDensityPerM2)
	return r
}
