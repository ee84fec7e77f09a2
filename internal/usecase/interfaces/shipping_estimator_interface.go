package interfaces

import (
	"context"

	"pcbquote/internal/domain/entities"
)

// ShippingQuery carries the engine-resolved weight/area inputs a courier
// estimator needs alongside the customer's destination and courier choice.
type ShippingQuery struct {
	Destination      string
	Courier          string
	TotalAreaM2      float64
	BoardThicknessMm float64
	TotalCount       int
}

// IShippingEstimator computes the shipping slot folded into a quote. The
// engine reserves a labeled detail entry for its cost and never re-runs
// pricing because of it.
type IShippingEstimator interface {
	Estimate(ctx context.Context, query ShippingQuery) (entities.ShippingEstimate, error)
}
