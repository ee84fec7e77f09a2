package response

import (
	"time"

	"pcbquote/internal/domain/entities"
)

const finishDateLayout = "2006-01-02"

type ShippingResponse struct {
	Cost               float64 `json:"cost"`
	ChargeableWeightKg float64 `json:"chargeable_weight_kg"`
	ActualWeightKg     float64 `json:"actual_weight_kg"`
	VolumetricWeightKg float64 `json:"volumetric_weight_kg"`
	Courier            string  `json:"courier"`
	TransitDays        int     `json:"transit_days"`
}

type UrgentResponse struct {
	ReduceDays  int     `json:"reduce_days"`
	Fee         float64 `json:"fee"`
	FeeBasis    string  `json:"fee_basis"`
	Supported   bool    `json:"supported"`
	Description string  `json:"description"`
}

// QuoteResponse is the customer-facing quotation payload. The finish date is
// an ISO-8601 calendar date; monetary fields carry both the native breakdown
// and the display-currency conversion.
type QuoteResponse struct {
	QuoteID             string             `json:"quote_id"`
	TotalExtraPrice     float64            `json:"total_extra_price"`
	Detail              map[string]float64 `json:"detail"`
	Notes               []string           `json:"notes"`
	Urgent              UrgentResponse     `json:"urgent"`
	CycleDays           int                `json:"cycle_days"`
	Reasons             []string           `json:"reasons"`
	EstimatedFinishDate string             `json:"estimated_finish_date"`
	Currency            string             `json:"currency"`
	ExchangeRate        float64            `json:"exchange_rate"`
	DisplayTotal        float64            `json:"display_total"`
	DisplayDetail       map[string]float64 `json:"display_detail"`
	Shipping            ShippingResponse   `json:"shipping"`
	CreatedAt           time.Time          `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:         q.ID,
		TotalExtraPrice: q.Price.TotalExtraPrice,
		Detail:          q.Price.Detail,
		Notes:           q.Price.Notes,
		Urgent: UrgentResponse{
			ReduceDays:  q.Urgent.ReduceDays,
			Fee:         q.Urgent.Fee,
			FeeBasis:    string(q.Urgent.FeeBasis),
			Supported:   q.Urgent.Supported,
			Description: q.Urgent.Description,
		},
		CycleDays:           q.LeadTime.CycleDays,
		Reasons:             q.LeadTime.Reasons,
		EstimatedFinishDate: q.EstimatedFinishDate.Format(finishDateLayout),
		Currency:            q.Currency,
		ExchangeRate:        q.ExchangeRate,
		DisplayTotal:        q.DisplayTotal,
		DisplayDetail:       q.DisplayDetail,
		Shipping: ShippingResponse{
			Cost:               q.Shipping.Cost,
			ChargeableWeightKg: q.Shipping.ChargeableWeightKg,
			ActualWeightKg:     q.Shipping.ActualWeightKg,
			VolumetricWeightKg: q.Shipping.VolumetricWeightKg,
			Courier:            q.Shipping.Courier,
			TransitDays:        q.Shipping.TransitDays,
		},
		CreatedAt: q.CreatedAt,
	}
}

// LeadTimeResponse answers the lead-time preview endpoint.
type LeadTimeResponse struct {
	CycleDays           int      `json:"cycle_days"`
	Reasons             []string `json:"reasons"`
	EstimatedFinishDate string   `json:"estimated_finish_date"`
}

func FromLeadTime(lead entities.LeadTimeResult, finish time.Time) LeadTimeResponse {
	return LeadTimeResponse{
		CycleDays:           lead.CycleDays,
		Reasons:             lead.Reasons,
		EstimatedFinishDate: finish.Format(finishDateLayout),
	}
}
