package pricing

import "pcbquote/internal/domain/entities"

var (
	edgePlatingFee  = CopperFee{200, 160}
	castellationFee = CopperFee{120, 100}
	holeCopperFee   = CopperFee{130, 100}
	bgaPitchFee     = CopperFee{100, 80}
	impedanceFee    = CopperFee{200, 150}
	hdiStepFee      = CopperFee{500, 400}
)

const productReportFee = 50.0

func (e *Engine) edgePlating(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.EdgePlating || noArea(q) {
		return r
	}
	r.add("edge_plating", areaFee(q, edgePlatingFee))
	r.note("plated board edge surcharge")
	return r
}

func (e *Engine) castellation(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.Castellation || noArea(q) {
		return r
	}
	r.add("castellation", areaFee(q, castellationFee))
	r.note("castellated half-hole surcharge")
	return r
}

func (e *Engine) holeCopper(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.HoleCopper25um || noArea(q) {
		return r
	}
	r.add("hole_copper", areaFee(q, holeCopperFee))
	r.note("25 um hole copper surcharge")
	return r
}

func (e *Engine) bgaPitch(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.BGAFinePitch || noArea(q) {
		return r
	}
	r.add("bga_pitch", areaFee(q, bgaPitchFee))
	r.note("BGA pitch at or below 0.25 mm surcharge")
	return r
}

func (e *Engine) impedance(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.ImpedanceControl || noArea(q) {
		return r
	}
	r.add("impedance", areaFee(q, impedanceFee))
	r.note("impedance control surcharge")
	return r
}

// hdi charges per build-up step of an HDI stackup.
func (e *Engine) hdi(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if spec.HDIStepCount <= 0 || noArea(q) {
		return r
	}
	steps := float64(spec.HDIStepCount)
	r.add("hdi", areaFee(q, CopperFee{
		Sample:     steps * hdiStepFee.Sample,
		BatchPerM2: steps * hdiStepFee.BatchPerM2,
	}))
	r.note("HDI build-up, %d step(s)", spec.HDIStepCount)
	return r
}

// goldFingers cannot be priced automatically; the order goes to manual
// quotation with no fee attached.
func (e *Engine) goldFingers(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.GoldFingers {
		return r
	}
	r.note("gold fingers require manual quotation")
	return r
}

// smtAssembly is quoted by the assembly side, not by board fabrication.
func (e *Engine) smtAssembly(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.SMTAssembly {
		return r
	}
	r.note("SMT assembly is quoted separately after BOM review")
	return r
}

func (e *Engine) productReport(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}
	var n int
	for _, rep := range spec.ProductReports {
		if rep != entities.ReportNone {
			n++
		}
	}
	if n == 0 {
		return r
	}
	r.add("product_report", float64(n)*productReportFee)
	r.note("%d product report(s) requested", n)
	return r
}
