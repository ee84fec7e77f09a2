package pricing

import (
	"math"
	"testing"

	"pcbquote/internal/domain/entities"
)

func TestResolve(t *testing.T) {
	t.Run("single board mode", func(t *testing.T) {
		q := Resolve(entities.OrderSpecification{
			ShipmentMode:          entities.ShipmentSingleBoard,
			SingleBoardDimensions: entities.Dimensions{LengthMm: 100, WidthMm: 100},
			SingleBoardCount:      10,
		})
		if q.TotalCount != 10 {
			t.Fatalf("expected 10 pieces, got %d", q.TotalCount)
		}
		if math.Abs(q.SingleAreaM2-0.01) > 1e-9 {
			t.Fatalf("expected 0.01 m2 single area, got %v", q.SingleAreaM2)
		}
		if math.Abs(q.TotalAreaM2-0.1) > 1e-9 {
			t.Fatalf("expected 0.1 m2 total area, got %v", q.TotalAreaM2)
		}
	})

	t.Run("panel by customer multiplies the grid", func(t *testing.T) {
		q := Resolve(entities.OrderSpecification{
			ShipmentMode:          entities.ShipmentPanelByCustomer,
			SingleBoardDimensions: entities.Dimensions{LengthMm: 50, WidthMm: 50},
			PanelLayout:           entities.PanelLayout{Rows: 2, Columns: 3},
			PanelSetCount:         4,
		})
		if q.TotalCount != 24 {
			t.Fatalf("expected 24 pieces, got %d", q.TotalCount)
		}
		if math.Abs(q.TotalAreaM2-24*0.0025) > 1e-9 {
			t.Fatalf("unexpected total area %v", q.TotalAreaM2)
		}
	})

	t.Run("panel by platform bills per set", func(t *testing.T) {
		q := Resolve(entities.OrderSpecification{
			ShipmentMode:          entities.ShipmentPanelByPlatform,
			SingleBoardDimensions: entities.Dimensions{LengthMm: 100, WidthMm: 100},
			PanelLayout:           entities.PanelLayout{Rows: 5, Columns: 5},
			PanelSetCount:         3,
		})
		if q.TotalCount != 3 {
			t.Fatalf("expected 3 sets, got %d", q.TotalCount)
		}
	})

	t.Run("zero count resolves to zero area", func(t *testing.T) {
		q := Resolve(entities.OrderSpecification{
			ShipmentMode:          entities.ShipmentSingleBoard,
			SingleBoardDimensions: entities.Dimensions{LengthMm: 100, WidthMm: 100},
		})
		if q.TotalAreaM2 != 0 {
			t.Fatalf("expected zero area, got %v", q.TotalAreaM2)
		}
	})

	t.Run("missing dimension resolves to zero area", func(t *testing.T) {
		q := Resolve(entities.OrderSpecification{
			ShipmentMode:     entities.ShipmentSingleBoard,
			SingleBoardCount: 5,
		})
		if q.TotalAreaM2 != 0 {
			t.Fatalf("expected zero area, got %v", q.TotalAreaM2)
		}
	})
}
