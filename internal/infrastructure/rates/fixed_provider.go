package rates

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pcbquote/internal/usecase"
	"pcbquote/internal/usecase/interfaces"
)

var ErrUnknownCurrency = errors.New("unknown display currency")

// FixedRateProvider serves exchange rates from static configuration. Rates
// are loaded once at startup; the quotation path never fetches them live.
type FixedRateProvider struct {
	rates map[string]float64
}

var _ interfaces.IExchangeRateProvider = (*FixedRateProvider)(nil)

// NewFixedRateProvider parses a "USD:7.25,EUR:7.85" style rate list. Each
// rate is native currency units per one display unit.
func NewFixedRateProvider(spec string) (*FixedRateProvider, error) {
	p := &FixedRateProvider{rates: map[string]float64{usecase.NativeCurrency: 1}}
	if strings.TrimSpace(spec) == "" {
		return p, nil
	}
	for _, pair := range strings.Split(spec, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed rate entry %q", pair)
		}
		rate, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("malformed rate value in %q", pair)
		}
		p.rates[strings.ToUpper(strings.TrimSpace(parts[0]))] = rate
	}
	return p, nil
}

func (p *FixedRateProvider) Rate(_ context.Context, currency string) (float64, error) {
	rate, ok := p.rates[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}
	return rate, nil
}
