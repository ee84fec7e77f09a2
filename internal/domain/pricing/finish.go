package pricing

import "pcbquote/internal/domain/entities"

var enigFees = map[entities.ENIGThickness]CopperFee{
	entities.ENIG1U: {180, 150},
	entities.ENIG2U: {300, 250},
	entities.ENIG3U: {420, 350},
}

var tgFees = map[entities.TgClass]CopperFee{
	entities.TG150: {80, 60},
	entities.TG170: {150, 120},
}

var shengyiFee = CopperFee{50, 40}

var maskCoverFees = map[entities.MaskCoverMode]CopperFee{
	entities.MaskViaPlugging:       {100, 80},
	entities.MaskNonConductiveFill: {260, 220},
}

// specialMaskColors carry a process surcharge; standard colors are free.
var specialMaskColors = map[entities.SolderMaskColor]bool{
	entities.MaskBlue:       true,
	entities.MaskMatteBlack: true,
	entities.MaskMatteGreen: true,
	entities.MaskPurple:     true,
}

var specialColorFee = CopperFee{80, 60}

// surfaceFinish prices the finishing process. HASL and OSP are the free
// baseline; ENIG tiers by gold thickness.
func (e *Engine) surfaceFinish(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}

	switch spec.SurfaceFinish {
	case entities.FinishHASLLeadFree:
		r.add("surface_finish", areaFee(q, CopperFee{60, 50}))
		r.note("lead-free HASL finish surcharge")
	case entities.FinishENIG:
		tier := spec.ENIGThickness
		if tier == "" {
			tier = entities.ENIG1U
		}
		fee, ok := enigFees[tier]
		if !ok {
			r.note("ENIG thickness %s is not in the price list and requires manual evaluation", tier)
			return r
		}
		r.add("surface_finish", areaFee(q, fee))
		r.note("ENIG %s immersion gold surcharge", tier)
	}
	return r
}

func (e *Engine) tgClass(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}
	fee, ok := tgFees[spec.TgClass]
	if !ok {
		return r
	}
	r.add("tg_class", areaFee(q, fee))
	r.note("high-Tg laminate (%s) surcharge", spec.TgClass)
	return r
}

// materialBrand bills the name-brand laminate option.
func (e *Engine) materialBrand(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if !spec.ShengyiMaterial || noArea(q) {
		return r
	}
	r.add("material_brand", areaFee(q, shengyiFee))
	r.note("Shengyi brand laminate surcharge")
	return r
}

func (e *Engine) maskCover(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}
	fee, ok := maskCoverFees[spec.MaskCoverMode]
	if !ok {
		return r
	}
	r.add("mask_cover", areaFee(q, fee))
	r.note("via treatment %s surcharge", spec.MaskCoverMode)
	return r
}

func (e *Engine) maskColor(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) || !specialMaskColors[spec.SolderMaskColor] {
		return r
	}
	r.add("mask_color", areaFee(q, specialColorFee))
	r.note("special solder mask color %s surcharge", spec.SolderMaskColor)
	return r
}
