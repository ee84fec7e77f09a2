package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"pcbquote/internal/domain/entities"
	"pcbquote/internal/domain/pricing"
	"pcbquote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLayerCount = errors.New("invalid layer count")
	ErrInvalidThickness  = errors.New("invalid board thickness")
	ErrInvalidOrderTime  = errors.New("invalid order timestamp")
)

// NativeCurrency is the engine's computation currency; every table constant
// is denominated in it.
const NativeCurrency = "CNY"

// QuoteCommand is one quotation request: the order specification plus the
// caller-side context the engine itself never fetches.
type QuoteCommand struct {
	Spec        entities.OrderSpecification
	OrderedAt   time.Time
	Currency    string
	Destination string
	Courier     string
}

// IQuoteUseCase exposes the quotation operations served over HTTP.
type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, cmd QuoteCommand) (entities.Quote, error)
	PreviewLeadTime(ctx context.Context, spec entities.OrderSpecification, orderedAt time.Time) (entities.LeadTimeResult, time.Time, error)
}

// QuoteUseCase orchestrates the pure pricing engine with the external
// collaborators (exchange rate, shipping). All engine work is deterministic;
// only the collaborators may fail.
type QuoteUseCase struct {
	engine   *pricing.Engine
	rates    interfaces.IExchangeRateProvider
	shipping interfaces.IShippingEstimator
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(engine *pricing.Engine, rates interfaces.IExchangeRateProvider, shipping interfaces.IShippingEstimator) *QuoteUseCase {
	return &QuoteUseCase{engine: engine, rates: rates, shipping: shipping}
}

// GenerateQuote prices the order, computes its lead time and finish date,
// folds in the shipping slot and converts the breakdown for display.
// Business-rule edge cases never error here; they surface as review notes in
// the breakdown (the engine's contract).
func (u *QuoteUseCase) GenerateQuote(ctx context.Context, cmd QuoteCommand) (entities.Quote, error) {
	if err := validateCommand(cmd); err != nil {
		return entities.Quote{}, err
	}

	spec := cmd.Spec
	q := pricing.Resolve(spec)
	breakdown := u.engine.Price(spec)

	urgent := entities.UrgentOption{FeeBasis: entities.FeeBasisFixed}
	if spec.DeliveryMode == entities.DeliveryUrgent {
		urgent = u.engine.UrgentFee(spec, q, spec.UrgentReduceDays)
	}

	lead := u.engine.LeadTime(spec, cmd.OrderedAt)
	finish := u.engine.ProjectFinishDate(cmd.OrderedAt, lead.CycleDays)

	quote := entities.Quote{
		ID:                  uuid.NewString(),
		Price:               breakdown,
		Urgent:              urgent,
		LeadTime:            lead,
		EstimatedFinishDate: finish,
		Currency:            NativeCurrency,
		ExchangeRate:        1,
		CreatedAt:           time.Now().UTC(),
	}

	if cmd.Courier != "" && u.shipping != nil {
		est, err := u.shipping.Estimate(ctx, interfaces.ShippingQuery{
			Destination:      cmd.Destination,
			Courier:          cmd.Courier,
			TotalAreaM2:      q.TotalAreaM2,
			BoardThicknessMm: spec.BoardThicknessMm,
			TotalCount:       q.TotalCount,
		})
		if err != nil {
			return entities.Quote{}, err
		}
		quote.Shipping = est
		quote.Price.Detail["shipping"] = roundMoney(est.Cost)
		quote.Price.TotalExtraPrice = roundMoney(quote.Price.TotalExtraPrice + est.Cost)
	}

	if err := u.convertForDisplay(ctx, cmd.Currency, &quote); err != nil {
		return entities.Quote{}, err
	}
	return quote, nil
}

// PreviewLeadTime answers the lighter "when would this ship" question
// without pricing the order.
func (u *QuoteUseCase) PreviewLeadTime(ctx context.Context, spec entities.OrderSpecification, orderedAt time.Time) (entities.LeadTimeResult, time.Time, error) {
	if spec.LayerCount < 1 {
		return entities.LeadTimeResult{}, time.Time{}, ErrInvalidLayerCount
	}
	if orderedAt.IsZero() {
		return entities.LeadTimeResult{}, time.Time{}, ErrInvalidOrderTime
	}
	lead := u.engine.LeadTime(spec, orderedAt)
	return lead, u.engine.ProjectFinishDate(orderedAt, lead.CycleDays), nil
}

// convertForDisplay applies the exchange rate uniformly to the total and
// every detail entry, without re-deriving any intermediate value.
func (u *QuoteUseCase) convertForDisplay(ctx context.Context, currency string, quote *entities.Quote) error {
	if currency == "" || currency == NativeCurrency {
		quote.DisplayTotal = quote.Price.TotalExtraPrice
		quote.DisplayDetail = quote.Price.Detail
		return nil
	}

	rate, err := u.rates.Rate(ctx, currency)
	if err != nil {
		return err
	}
	quote.Currency = currency
	quote.ExchangeRate = rate
	quote.DisplayTotal = roundMoney(quote.Price.TotalExtraPrice / rate)
	quote.DisplayDetail = make(map[string]float64, len(quote.Price.Detail))
	for label, amount := range quote.Price.Detail {
		quote.DisplayDetail[label] = roundMoney(amount / rate)
	}
	return nil
}

func validateCommand(cmd QuoteCommand) error {
	if cmd.Spec.LayerCount < 1 {
		return ErrInvalidLayerCount
	}
	if cmd.Spec.BoardThicknessMm <= 0 {
		return ErrInvalidThickness
	}
	if cmd.OrderedAt.IsZero() {
		return ErrInvalidOrderTime
	}
	return nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
