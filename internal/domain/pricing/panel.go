package pricing

import "pcbquote/internal/domain/entities"

var (
	panelDesignFeeStandard   = CopperFee{60, 50}
	panelDesignFeeMultilayer = CopperFee{120, 100}
)

// maxPanelDesigns is the highest distinct-design count a panel supports per
// layer count; denser stackups tolerate fewer designs per panel.
func maxPanelDesigns(layerCount int) int {
	switch {
	case layerCount <= 2:
		return 8
	case layerCount <= 4:
		return 6
	case layerCount <= 6:
		return 4
	default:
		return 2
	}
}

// panelDesigns charges each additional distinct design sharing one panel.
func (e *Engine) panelDesigns(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if spec.ShipmentMode == entities.ShipmentSingleBoard || spec.DifferentDesignCount <= 1 || noArea(q) {
		return r
	}

	max := maxPanelDesigns(spec.LayerCount)
	if spec.DifferentDesignCount > max {
		r.note("%d designs per panel exceed the %d supported for %d-layer boards, manual quotation required",
			spec.DifferentDesignCount, max, spec.LayerCount)
		return r
	}

	unit := panelDesignFeeStandard
	if spec.Multilayer() {
		unit = panelDesignFeeMultilayer
	}
	extra := float64(spec.DifferentDesignCount - 1)
	r.add("panel_designs", areaFee(q, CopperFee{
		Sample:     extra * unit.Sample,
		BatchPerM2: extra * unit.BatchPerM2,
	}))
	r.note("%d additional design(s) on a shared panel", int(extra))
	return r
}
