package pricing

import (
	"fmt"
	"math"
	"time"

	"pcbquote/internal/domain/entities"
)

const (
	manualLeadTimeDays   = 20
	heavyCopperMinOz     = 3.0
	heavyCopperSampleAdd = 3
	urgentReductionDays  = 2
	minCycleDays         = 1
)

// extraDay is one lead-time contribution; Days is multiplied by the lot
// area factor before being added.
type extraDay struct {
	reason string
	days   int
}

// LeadTime computes the production cycle for an order placed at orderedAt.
// The reasons trace is shown to the customer, so every contributing rule
// appends a line. The reference timestamp is an explicit parameter to keep
// the computation deterministic.
func (e *Engine) LeadTime(spec entities.OrderSpecification, orderedAt time.Time) entities.LeadTimeResult {
	q := Resolve(spec)
	res := entities.LeadTimeResult{}

	days, manual := e.baseLeadDays(spec, q, &res)

	// Copper at or above 3 oz overrides the table: a small sample slows by a
	// fixed amount, a batch goes to manual scheduling outright.
	if spec.MaxCopperWeightOz() >= heavyCopperMinOz {
		if isSample(q) {
			days += heavyCopperSampleAdd
			res.Reasons = append(res.Reasons,
				fmt.Sprintf("heavy copper adds %d day(s) for sample lots", heavyCopperSampleAdd))
		} else {
			days = manualLeadTimeDays
			manual = true
			res.Reasons = append(res.Reasons,
				fmt.Sprintf("heavy copper batch requires manual scheduling, planned at %d days", manualLeadTimeDays))
		}
	}

	if !manual {
		factor := areaFactor(q)
		for _, ex := range extraDays(spec) {
			add := ex.days * factor
			days += add
			res.Reasons = append(res.Reasons, fmt.Sprintf("%s: +%d day(s)", ex.reason, add))
		}
	}

	if spec.DeliveryMode == entities.DeliveryUrgent {
		days -= urgentReductionDays
		if days < minCycleDays {
			days = minCycleDays
		}
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("urgent delivery shortens production by %d day(s)", urgentReductionDays))
	}

	if orderedAt.Hour() >= e.tables.CutoffHour {
		days++
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("ordered after the %d:00 cutoff, production starts next day", e.tables.CutoffHour))
	}

	if days < minCycleDays {
		days = minCycleDays
	}
	res.CycleDays = days
	return res
}

func (e *Engine) baseLeadDays(spec entities.OrderSpecification, q entities.ResolvedQuantity, res *entities.LeadTimeResult) (int, bool) {
	table := e.tables.LeadTimeNormal
	if copperClassFor(spec) == CopperHigh {
		table = e.tables.LeadTimeHigh
	}

	row, ok := nearestLeadTimeRow(table, spec.LayerCount)
	if !ok {
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("%d-layer boards require manual scheduling, planned at %d days", spec.LayerCount, manualLeadTimeDays))
		return manualLeadTimeDays, true
	}

	tier := leadTimeTier(row, q.TotalAreaM2)
	if tier.Manual {
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("lot size requires manual scheduling, planned at %d days", manualLeadTimeDays))
		return manualLeadTimeDays, true
	}
	res.Reasons = append(res.Reasons,
		fmt.Sprintf("%d-layer base production cycle: %d day(s)", spec.LayerCount, tier.Days))
	return tier.Days, false
}

func nearestLeadTimeRow(table map[int][]AreaDays, layerCount int) ([]AreaDays, bool) {
	if row, ok := table[layerCount]; ok {
		return row, true
	}
	best, found := 0, false
	var max int
	for k := range table {
		if k > max {
			max = k
		}
		if k < layerCount && k > best {
			best, found = k, true
		}
	}
	if layerCount > max || !found {
		return nil, false
	}
	return table[best], true
}

func leadTimeTier(row []AreaDays, areaM2 float64) AreaDays {
	var open AreaDays
	for _, tier := range row {
		if tier.MaxAreaM2 == 0 {
			open = tier
			continue
		}
		if areaM2 <= tier.MaxAreaM2 {
			return tier
		}
	}
	return open
}

// areaFactor scales per-feature extra days with the lot size.
func areaFactor(q entities.ResolvedQuantity) int {
	return int(math.Ceil(math.Max(1, q.TotalAreaM2)))
}

func extraDays(spec entities.OrderSpecification) []extraDay {
	var out []extraDay
	add := func(reason string, days int) {
		out = append(out, extraDay{reason, days})
	}

	if spec.MaterialType != "" && spec.MaterialType != entities.MaterialFR4 {
		add(fmt.Sprintf("%s material", spec.MaterialType), 2)
	}
	if spec.SurfaceFinish == entities.FinishENIG {
		add("ENIG surface finish", 1)
	}
	if spec.MinTraceSpacingMil > 0 && spec.MinTraceSpacingMil < 4 {
		add("fine trace/space", 1)
	}
	if fineHole(spec) {
		add("fine drill", 1)
	}
	if spec.HDIStepCount > 0 {
		add(fmt.Sprintf("HDI %d step(s)", spec.HDIStepCount), 2*spec.HDIStepCount)
	}
	if spec.GoldFingers {
		add("gold fingers", 2)
	}
	if spec.ImpedanceControl {
		add("impedance control", 1)
	}
	if spec.EdgePlating {
		add("edge plating", 1)
	}
	if spec.Castellation {
		add("castellated holes", 1)
	}
	if spec.SMTAssembly {
		add("SMT assembly", 3)
	}
	if spec.FullInspection {
		add("full quality inspection", 1)
	}
	for _, rep := range spec.ProductReports {
		if rep != entities.ReportNone {
			add("product report preparation", 1)
			break
		}
	}
	return out
}

func fineHole(spec entities.OrderSpecification) bool {
	d := spec.MinHoleDiameterMm
	if d <= 0 {
		return false
	}
	if spec.Multilayer() {
		return d < 0.2
	}
	return d < 0.25
}
