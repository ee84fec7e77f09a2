package pricing

import (
	"math"
	"testing"

	"pcbquote/internal/domain/entities"
)

func TestUrgentFee(t *testing.T) {
	e := testEngine()

	t.Run("tabulated fixed fee", func(t *testing.T) {
		spec := baseSpec() // 0.1 m2
		opt := e.UrgentFee(spec, Resolve(spec), 1)
		if !opt.Supported || opt.Fee != 100 || opt.FeeBasis != entities.FeeBasisFixed {
			t.Fatalf("unexpected option: %+v", opt)
		}
	})

	t.Run("tabulated per-area fee is multiplied out", func(t *testing.T) {
		spec := withCount(200) // 2.0 m2, bracket <= 5
		opt := e.UrgentFee(spec, Resolve(spec), 1)
		if !opt.Supported || opt.FeeBasis != entities.FeeBasisPerAreaUnit {
			t.Fatalf("unexpected option: %+v", opt)
		}
		if math.Abs(opt.Fee-120) > 1e-6 {
			t.Fatalf("expected 60 x 2.0 = 120, got %v", opt.Fee)
		}
	})

	t.Run("dense stackups without a matrix row are unsupported", func(t *testing.T) {
		spec := baseSpec()
		spec.LayerCount = 14
		opt := e.UrgentFee(spec, Resolve(spec), 1)
		if opt.Supported || opt.Fee != 0 {
			t.Fatalf("expected unsupported, got %+v", opt)
		}
	})

	t.Run("missing day count falls back to the general rate", func(t *testing.T) {
		spec := baseSpec()
		opt := e.UrgentFee(spec, Resolve(spec), 3)
		if !opt.Supported || opt.Fee != urgentFallbackSample {
			t.Fatalf("expected sample fallback %v, got %+v", urgentFallbackSample, opt)
		}
	})

	t.Run("missing layer row below the dense floor falls back", func(t *testing.T) {
		spec := withCount(300) // 3.0 m2 batch
		spec.LayerCount = 7
		opt := e.UrgentFee(spec, Resolve(spec), 1)
		if !opt.Supported {
			t.Fatalf("expected fallback support, got %+v", opt)
		}
		if math.Abs(opt.Fee-150) > 1e-6 { // max(100, 50 x 3.0)
			t.Fatalf("expected 150, got %v", opt.Fee)
		}
	})

	t.Run("small fallback lots pay the flat floor", func(t *testing.T) {
		spec := baseSpec()
		spec.LayerCount = 7
		opt := e.UrgentFee(spec, Resolve(spec), 1)
		if !opt.Supported || opt.Fee != urgentFallbackSample {
			t.Fatalf("expected flat fallback, got %+v", opt)
		}
	})

	t.Run("zero area cannot be expedited", func(t *testing.T) {
		spec := withCount(0)
		opt := e.UrgentFee(spec, Resolve(spec), 1)
		if opt.Supported || opt.Fee != 0 {
			t.Fatalf("expected unsupported, got %+v", opt)
		}
	})
}

func TestUrgentDeliveryHandler(t *testing.T) {
	e := testEngine()

	t.Run("standard delivery contributes nothing", func(t *testing.T) {
		spec := baseSpec()
		r := e.urgentDelivery(spec, Resolve(spec))
		if r.Extra != 0 || len(r.Notes) != 0 {
			t.Fatalf("expected empty result, got %+v", r)
		}
	})

	t.Run("urgent delivery folds the fee into the breakdown", func(t *testing.T) {
		spec := baseSpec()
		spec.DeliveryMode = entities.DeliveryUrgent
		spec.UrgentReduceDays = 1
		r := e.urgentDelivery(spec, Resolve(spec))
		if r.Detail["urgent_delivery"] != 100 {
			t.Fatalf("expected 100, got %v", r.Detail["urgent_delivery"])
		}
	})

	t.Run("unsupported urgent request leaves a note", func(t *testing.T) {
		spec := baseSpec()
		spec.LayerCount = 14
		spec.DeliveryMode = entities.DeliveryUrgent
		spec.UrgentReduceDays = 1
		r := e.urgentDelivery(spec, Resolve(spec))
		if r.Extra != 0 || len(r.Notes) != 1 {
			t.Fatalf("expected note only, got %+v", r)
		}
	})
}
