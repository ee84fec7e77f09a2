package shipping

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"pcbquote/internal/domain/entities"
	"pcbquote/internal/usecase/interfaces"
)

var ErrUnknownCourier = errors.New("unknown courier")

const (
	// fr4DensityKgPerM2PerMm: one square meter of FR4 weighs about 1.9 kg
	// per millimeter of thickness, copper included.
	fr4DensityKgPerM2PerMm = 1.9
	packagingAllowanceCm   = 2.0
	minChargeableKg        = 0.5
)

type courierRate struct {
	BaseFee           float64
	PerKg             float64
	VolumetricDivisor float64
	TransitDays       int
}

var defaultRates = map[string]courierRate{
	"sf_express": {BaseFee: 20, PerKg: 12, VolumetricDivisor: 6000, TransitDays: 2},
	"ems":        {BaseFee: 25, PerKg: 18, VolumetricDivisor: 6000, TransitDays: 5},
	"dhl":        {BaseFee: 120, PerKg: 45, VolumetricDivisor: 5000, TransitDays: 4},
	"fedex":      {BaseFee: 110, PerKg: 42, VolumetricDivisor: 5000, TransitDays: 5},
}

// CourierEstimator computes the shipping slot from the engine-resolved area
// and thickness: chargeable weight is the larger of actual and volumetric
// weight, floored at the courier minimum.
type CourierEstimator struct {
	rates map[string]courierRate
}

var _ interfaces.IShippingEstimator = (*CourierEstimator)(nil)

func NewCourierEstimator() *CourierEstimator {
	return &CourierEstimator{rates: defaultRates}
}

func (e *CourierEstimator) Estimate(_ context.Context, q interfaces.ShippingQuery) (entities.ShippingEstimate, error) {
	rate, ok := e.rates[strings.ToLower(strings.TrimSpace(q.Courier))]
	if !ok {
		return entities.ShippingEstimate{}, fmt.Errorf("%w: %s", ErrUnknownCourier, q.Courier)
	}

	actual := q.TotalAreaM2 * q.BoardThicknessMm * fr4DensityKgPerM2PerMm

	// Volumetric weight over the packed box: board footprint in cm2 times
	// stack height plus packaging, over the courier divisor.
	heightCm := q.BoardThicknessMm/10 + packagingAllowanceCm
	volumetric := q.TotalAreaM2 * 10000 * heightCm / rate.VolumetricDivisor

	chargeable := math.Max(actual, volumetric)
	if chargeable < minChargeableKg {
		chargeable = minChargeableKg
	}

	return entities.ShippingEstimate{
		Cost:               round2(rate.BaseFee + rate.PerKg*chargeable),
		ChargeableWeightKg: round2(chargeable),
		ActualWeightKg:     round2(actual),
		VolumetricWeightKg: round2(volumetric),
		Courier:            strings.ToLower(strings.TrimSpace(q.Courier)),
		TransitDays:        rate.TransitDays,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
