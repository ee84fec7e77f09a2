package entities

import "time"

// ResolvedQuantity is the piece count and board area derived from the
// shipment mode. It is recomputed per request and never stored.
type ResolvedQuantity struct {
	TotalCount   int
	SingleAreaM2 float64
	TotalAreaM2  float64
}

// PriceBreakdown is the aggregated pricing output. TotalExtraPrice is the
// authoritative sum; Detail entries are labeled display lines and are not
// guaranteed to re-add to the total (some rules contribute without a line).
type PriceBreakdown struct {
	TotalExtraPrice float64            `json:"total_extra_price"`
	Detail          map[string]float64 `json:"detail"`
	Notes           []string           `json:"notes"`
}

// LeadTimeResult is the production cycle in calendar days together with a
// customer-facing trace of every rule that contributed to it.
type LeadTimeResult struct {
	CycleDays int      `json:"cycle_days"`
	Reasons   []string `json:"reasons"`
}

// FeeBasis tells how an urgent-delivery fee scales.
type FeeBasis string

const (
	FeeBasisFixed       FeeBasis = "fixed"
	FeeBasisPerAreaUnit FeeBasis = "per_area_unit"
)

// UrgentOption is the outcome of an urgent-delivery lookup for a requested
// day reduction. Supported=false marks configurations that need manual
// scheduling; the fee is already multiplied out for per-area entries.
type UrgentOption struct {
	ReduceDays  int      `json:"reduce_days"`
	Fee         float64  `json:"fee"`
	FeeBasis    FeeBasis `json:"fee_basis"`
	Supported   bool     `json:"supported"`
	Description string   `json:"description"`
}

// ShippingEstimate is the externally computed shipping slot folded into the
// customer-facing total. The engine never computes it itself.
type ShippingEstimate struct {
	Cost                float64 `json:"cost"`
	ChargeableWeightKg  float64 `json:"chargeable_weight_kg"`
	ActualWeightKg      float64 `json:"actual_weight_kg"`
	VolumetricWeightKg  float64 `json:"volumetric_weight_kg"`
	Courier             string  `json:"courier"`
	TransitDays         int     `json:"transit_days"`
}

/// Quote is the full quotation handed back to the caller: native-currency
// breakdown, lead time, projected finish date and the display conversion.
type Quote struct {
	ID                  string             `json:"id"`
	Price               PriceBreakdown     `json:"price"`
	Urgent              UrgentOption       `json:"urgent"`
	LeadTime            LeadTimeResult     `json:"lead_time"`
	EstimatedFinishDate time.Time          `json:"estimated_finish_date"`
	Currency            string             `json:"currency"`
	ExchangeRate        float64            `json:"exchange_rate"`
	DisplayTotal        float64            `json:"display_total"`
	DisplayDetail       map[string]float64 `json:"display_detail"`
	Shipping            ShippingEstimate   `json:"shipping"`
	CreatedAt           time.Time          `json:"created_at"`
}
