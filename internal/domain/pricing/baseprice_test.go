package pricing

import (
	"math"
	"strings"
	"testing"
)

func TestBasePrice(t *testing.T) {
	e := testEngine()

	t.Run("small lot bills the pack price", func(t *testing.T) {
		spec := baseSpec()
		r := e.basePrice(spec, Resolve(spec))
		if r.Detail["base_price"] != 450 {
			t.Fatalf("expected pack price 450, got %v", r.Detail["base_price"])
		}
	})

	t.Run("batch lot bills the bracket unit price", func(t *testing.T) {
		spec := withCount(250) // 2.5 m2
		spec.LayerCount = 4
		r := e.basePrice(spec, Resolve(spec))
		want := 820 * 2.5
		if math.Abs(r.Detail["base_price"]-want) > 1e-6 {
			t.Fatalf("expected %v, got %v", want, r.Detail["base_price"])
		}
	})

	t.Run("heavy copper selects the heavy table", func(t *testing.T) {
		spec := baseSpec()
		spec.OuterCopperWeightOz = 2
		r := e.basePrice(spec, Resolve(spec))
		if r.Detail["base_price"] != 580 {
			t.Fatalf("expected heavy pack price 580, got %v", r.Detail["base_price"])
		}
	})

	t.Run("odd layer count falls back to the nearest lower entry", func(t *testing.T) {
		spec := baseSpec()
		spec.LayerCount = 5
		r := e.basePrice(spec, Resolve(spec))
		if r.Detail["base_price"] != 700 {
			t.Fatalf("expected 4-layer pack price 700, got %v", r.Detail["base_price"])
		}
	})

	t.Run("layer count above the table goes to sales", func(t *testing.T) {
		spec := baseSpec()
		spec.LayerCount = 16
		r := e.basePrice(spec, Resolve(spec))
		if r.Extra != 0 {
			t.Fatalf("expected zero price, got %v", r.Extra)
		}
		if len(r.Notes) != 1 || !strings.Contains(r.Notes[0], "contact sales") {
			t.Fatalf("expected contact sales note, got %v", r.Notes)
		}
	})

	t.Run("thin sample board adds the flat surcharge", func(t *testing.T) {
		spec := baseSpec()
		spec.BoardThicknessMm = 0.3
		r := e.basePrice(spec, Resolve(spec))
		if r.Detail["thickness_thin"] != 120 {
			t.Fatalf("expected 120 thin surcharge, got %v", r.Detail["thickness_thin"])
		}
	})

	t.Run("thin batch board adds half the base", func(t *testing.T) {
		spec := withCount(200) // 2.0 m2
		spec.BoardThicknessMm = 0.3
		r := e.basePrice(spec, Resolve(spec))
		base := r.Detail["base_price"]
		if math.Abs(r.Detail["thickness_thin"]-base/2) > 0.01 {
			t.Fatalf("expected %v, got %v", base/2, r.Detail["thickness_thin"])
		}
	})

	t.Run("over-thick board pays per step", func(t *testing.T) {
		spec := withCount(250) // 2.5 m2
		spec.LayerCount = 4
		spec.BoardThicknessMm = 2.0
		r := e.basePrice(spec, Resolve(spec))
		want := 1.0 * 40 * 2.5 // one step, multilayer rate, billable area
		if math.Abs(r.Detail["thickness_extra"]-want) > 1e-6 {
			t.Fatalf("expected %v, got %v", want, r.Detail["thickness_extra"])
		}
	})

	t.Run("large thin lot inside the normal range is discounted", func(t *testing.T) {
		spec := withCount(600) // 6.0 m2
		spec.BoardThicknessMm = 1.0
		r := e.basePrice(spec, Resolve(spec))
		want := -20.0 * 6.0
		if math.Abs(r.Detail["thickness_discount"]-want) > 1e-6 {
			t.Fatalf("expected %v, got %v", want, r.Detail["thickness_discount"])
		}
	})

	t.Run("zero area yields zero without error", func(t *testing.T) {
		r := e.basePrice(withCount(0), Resolve(withCount(0)))
		if r.Extra != 0 || len(r.Detail) != 0 {
			t.Fatalf("expected empty result, got %+v", r)
		}
	})

	t.Run("more area never costs less inside a bracket", func(t *testing.T) {
		prev := 0.0
		for count := 110; count <= 290; count += 20 { // 1.1 to 2.9 m2, all in the <=3 bracket
			spec := withCount(count)
			r := e.basePrice(spec, Resolve(spec))
			if r.Detail["base_price"] < prev {
				t.Fatalf("price decreased at count %d: %v < %v", count, r.Detail["base_price"], prev)
			}
			prev = r.Detail["base_price"]
		}
	})
}
