package pricing

import "pcbquote/internal/domain/entities"

// Engine runs the full rule catalog over an order specification. It holds
// only immutable table data, so one Engine may serve concurrent requests
// without synchronization.
type Engine struct {
	tables   Tables
	handlers []namedHandler
}

// NewEngine builds an engine over the given rule tables. The registration
// order below fixes the order of notes and detail lines in the breakdown.
func NewEngine(tables Tables) *Engine {
	e := &Engine{tables: tables}
	e.handlers = []namedHandler{
		{"base_price", e.basePrice},
		{"engineering_fee", e.engineeringFee},
		{"film_fee", e.filmFee},
		{"outer_copper", e.outerCopperWeight},
		{"multilayer_copper", e.multilayerCopperWeight},
		{"surface_finish", e.surfaceFinish},
		{"tg_class", e.tgClass},
		{"material_brand", e.materialBrand},
		{"mask_cover", e.maskCover},
		{"mask_color", e.maskColor},
		{"trace_width", e.traceWidth},
		{"min_hole", e.minHole},
		{"hole_density", e.holeDensity},
		{"test_method", e.testMethod},
		{"edge_plating", e.edgePlating},
		{"castellation", e.castellation},
		{"hole_copper", e.holeCopper},
		{"bga_pitch", e.bgaPitch},
		{"impedance", e.impedance},
		{"hdi", e.hdi},
		{"gold_fingers", e.goldFingers},
		{"smt", e.smtAssembly},
		{"product_report", e.productReport},
		{"panel_designs", e.panelDesigns},
		{"urgent_delivery", e.urgentDelivery},
	}
	return e
}

// Price evaluates every rule and aggregates the contributions. Extra and
// Detail accumulate in parallel: a rule may move the total without leaving a
// display line, so the total is never recomputed from the detail map.
func (e *Engine) Price(spec entities.OrderSpecification) entities.PriceBreakdown {
	q := Resolve(spec)
	bd := entities.PriceBreakdown{Detail: make(map[string]float64)}
	for _, h := range e.handlers {
		r := h.fn(spec, q)
		bd.TotalExtraPrice = round2(bd.TotalExtraPrice + r.Extra)
		for label, amount := range r.Detail {
			// Last write wins on a shared label; rules keep labels unique
			// unless they deliberately re-state the same concern.
			bd.Detail[label] = amount
		}
		bd.Notes = append(bd.Notes, r.Notes...)
	}
	return bd
}
