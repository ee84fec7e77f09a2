package pricing

import "pcbquote/internal/domain/entities"

// baseSpec is the plain 2-layer FR4/HASL reference board: 100x100 mm,
// quantity 10, 0.1 m2 lot area.
func baseSpec() entities.OrderSpecification {
	return entities.OrderSpecification{
		LayerCount:            2,
		BoardThicknessMm:      1.6,
		OuterCopperWeightOz:   1,
		ShipmentMode:          entities.ShipmentSingleBoard,
		SingleBoardDimensions: entities.Dimensions{LengthMm: 100, WidthMm: 100},
		SingleBoardCount:      10,
		MaterialType:          entities.MaterialFR4,
		TgClass:               entities.TG130,
		SurfaceFinish:         entities.FinishHASL,
		MinTraceSpacingMil:    6,
		MinHoleDiameterMm:     0.3,
		SolderMaskColor:       entities.MaskGreen,
		SilkscreenColor:       entities.SilkWhite,
		MaskCoverMode:         entities.MaskViaTenting,
		TestMethod:            entities.TestNone,
		DeliveryMode:          entities.DeliveryStandard,
	}
}

// withCount returns baseSpec with a different piece count; each piece is
// 0.01 m2, so count 100 gives a 1.0 m2 lot.
func withCount(count int) entities.OrderSpecification {
	spec := baseSpec()
	spec.SingleBoardCount = count
	return spec
}

func testEngine() *Engine {
	return NewEngine(DefaultTables())
}
