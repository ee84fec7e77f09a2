package rates

import (
	"context"
	"errors"
	"testing"
)

func TestNewFixedRateProvider(t *testing.T) {
	t.Run("parses a rate list", func(t *testing.T) {
		p, err := NewFixedRateProvider("USD:7.25, EUR:7.85")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rate, err := p.Rate(context.Background(), "USD")
		if err != nil || rate != 7.25 {
			t.Fatalf("expected 7.25, got %v (%v)", rate, err)
		}
	})

	t.Run("empty configuration still serves the native currency", func(t *testing.T) {
		p, err := NewFixedRateProvider("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rate, err := p.Rate(context.Background(), "CNY")
		if err != nil || rate != 1 {
			t.Fatalf("expected native rate 1, got %v (%v)", rate, err)
		}
	})

	t.Run("rejects a malformed entry", func(t *testing.T) {
		if _, err := NewFixedRateProvider("USD=7.25"); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("rejects a non positive rate", func(t *testing.T) {
		if _, err := NewFixedRateProvider("USD:0"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestRate(t *testing.T) {
	p, err := NewFixedRateProvider("USD:7.25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("lookup is case insensitive", func(t *testing.T) {
		rate, err := p.Rate(context.Background(), " usd ")
		if err != nil || rate != 7.25 {
			t.Fatalf("expected 7.25, got %v (%v)", rate, err)
		}
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := p.Rate(context.Background(), "JPY")
		if !errors.Is(err, ErrUnknownCurrency) {
			t.Fatalf("expected ErrUnknownCurrency, got %v", err)
		}
	})
}
