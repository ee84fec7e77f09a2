package shipping

import (
	"context"
	"errors"
	"testing"

	"pcbquote/internal/usecase/interfaces"
)

func TestEstimate(t *testing.T) {
	e := NewCourierEstimator()

	t.Run("volumetric weight wins for thin stacks", func(t *testing.T) {
		est, err := e.Estimate(context.Background(), interfaces.ShippingQuery{
			Courier:          "sf_express",
			TotalAreaM2:      1.0,
			BoardThicknessMm: 1.6,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ActualWeightKg != 3.04 {
			t.Fatalf("expected actual 3.04 kg, got %v", est.ActualWeightKg)
		}
		if est.VolumetricWeightKg != 3.6 {
			t.Fatalf("expected volumetric 3.6 kg, got %v", est.VolumetricWeightKg)
		}
		if est.ChargeableWeightKg != 3.6 {
			t.Fatalf("expected chargeable 3.6 kg, got %v", est.ChargeableWeightKg)
		}
		if est.Cost != 63.2 {
			t.Fatalf("expected cost 63.2, got %v", est.Cost)
		}
		if est.TransitDays != 2 {
			t.Fatalf("expected 2 transit days, got %d", est.TransitDays)
		}
	})

	t.Run("small parcels pay the minimum chargeable weight", func(t *testing.T) {
		est, err := e.Estimate(context.Background(), interfaces.ShippingQuery{
			Courier:          "sf_express",
			TotalAreaM2:      0.05,
			BoardThicknessMm: 1.0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ChargeableWeightKg != 0.5 {
			t.Fatalf("expected the 0.5 kg floor, got %v", est.ChargeableWeightKg)
		}
		if est.Cost != 26 {
			t.Fatalf("expected cost 26, got %v", est.Cost)
		}
	})

	t.Run("courier name is normalized", func(t *testing.T) {
		est, err := e.Estimate(context.Background(), interfaces.ShippingQuery{
			Courier:          " DHL ",
			TotalAreaM2:      1.0,
			BoardThicknessMm: 1.6,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Courier != "dhl" || est.TransitDays != 4 {
			t.Fatalf("expected normalized dhl slot, got %+v", est)
		}
	})

	t.Run("unknown courier", func(t *testing.T) {
		_, err := e.Estimate(context.Background(), interfaces.ShippingQuery{Courier: "pigeon"})
		if !errors.Is(err, ErrUnknownCourier) {
			t.Fatalf("expected ErrUnknownCourier, got %v", err)
		}
	})
}
