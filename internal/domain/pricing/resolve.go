package pricing

import "pcbquote/internal/domain/entities"

const mmPerMeter = 1000.0

// Resolve derives the total piece count and board area from the shipment
// mode. A missing dimension or zero count resolves to zero area, which every
// downstream rule treats as "insufficient data", not as a free order.
func Resolve(spec entities.OrderSpecification) entities.ResolvedQuantity {
	single := spec.SingleBoardDimensions.LengthMm / mmPerMeter *
		(spec.SingleBoardDimensions.WidthMm / mmPerMeter)
	if single < 0 {
		single = 0
	}

	var count int
	switch spec.ShipmentMode {
	case entities.ShipmentPanelByCustomer:
		count = spec.PanelLayout.Rows * spec.PanelLayout.Columns * spec.PanelSetCount
	case entities.ShipmentPanelByPlatform:
		// The platform fixes the panel layout; a set is the billing unit.
		count = spec.PanelSetCount
	default:
		count = spec.SingleBoardCount
	}
	if count < 0 {
		count = 0
	}

	q := entities.ResolvedQuantity{
		TotalCount:   count,
		SingleAreaM2: single,
	}
	if count > 0 && single > 0 {
		q.TotalAreaM2 = single * float64(count)
	}
	return q
}
