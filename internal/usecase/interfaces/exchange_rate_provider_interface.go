package interfaces

import "context"

// IExchangeRateProvider supplies the native-to-display conversion rate. The
// quotation engine never fetches rates itself; callers inject an
// already-resolved provider and the output is converted by plain division.
type IExchangeRateProvider interface {
	// Rate returns how many native currency units buy one unit of the given
	// display currency.
	Rate(ctx context.Context, currency string) (float64, error)
}
