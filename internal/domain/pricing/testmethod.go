package pricing

import "pcbquote/internal/domain/entities"

const fixtureFlatFee = 500.0

var flyingProbeFee = CopperFee{50, 60}

// testMethod prices electrical testing. A dedicated test fixture is a flat
// one-time tooling charge regardless of lot size.
func (e *Engine) testMethod(spec entities.OrderSpecification, q entities.ResolvedQuantity) Result {
	var r Result
	if noArea(q) {
		return r
	}

	switch spec.TestMethod {
	case entities.TestFlyingProbe:
		r.add("test_method", areaFee(q, flyingProbeFee))
		r.note("flying probe electrical test")
	case entities.TestFixture:
		r.add("test_method", fixtureFlatFee)
		r.note("dedicated test fixture tooling")
	case entities.TestNone:
		r.note("electrical test waived at customer request")
	}
	return r
}
