package pricing

import "pcbquote/internal/domain/entities"

// CopperClass selects between the normal and heavy-copper table variants.
type CopperClass string

const (
	CopperNormal CopperClass = "normal"
	CopperHigh   CopperClass = "high"
)

// AreaPrice is one tier of an area-bracketed unit-price table. MaxAreaM2 = 0
// marks the unbounded top bracket.
type AreaPrice struct {
	MaxAreaM2 float64
	UnitPrice float64
}

// BasePriceEntry prices one layer count: a flat pack price for lots up to
// the pack-area ceiling, then per-m2 unit prices by area bracket.
type BasePriceEntry struct {
	PackPrice float64
	Brackets  []AreaPrice
}

// CopperFee is a sample/batch fee pair used by most surcharge tables.
type CopperFee struct {
	Sample     float64
	BatchPerM2 float64
}

// UrgentChoice is one supported lead-time reduction for a configuration.
type UrgentChoice struct {
	ReduceDays int
	Fee        float64
	PerArea    bool
}

// UrgentBracket groups the urgent choices available below an area ceiling.
type UrgentBracket struct {
	MaxAreaM2 float64
	Choices   []UrgentChoice
}

// AreaDays is one tier of a lead-time table. Manual marks tiers that the
// factory quotes by hand; their day count is clamped to the manual ceiling.
type AreaDays struct {
	MaxAreaM2 float64
	Days      int
	Manual    bool
}

// Tables is the full, immutable rule data set injected into the engine at
// construction. Nothing in here is mutated after process start, so the same
// value may be shared by any number of concurrent requests.
type Tables struct {
	BasePriceStandard map[int]BasePriceEntry // copper <= 1 oz
	BasePriceHeavy    map[int]BasePriceEntry // copper > 1 oz

	EngineeringFee []AreaPrice // UnitPrice holds the flat fee per bracket

	FilmUnitPrice       float64
	FilmSheetCount      map[int]int
	FilmMinSingleAreaM2 float64

	MultilayerCopper map[int]map[string]CopperFee // "outerOz-innerOz" per layer count

	Urgent map[int]map[CopperClass][]UrgentBracket

	LeadTimeNormal map[int][]AreaDays
	LeadTimeHigh   map[int][]AreaDays

	Holidays   map[string]struct{} // "2006-01-02" keys
	CutoffHour int                 // same-day order cutoff, local hour
}

// DefaultTables returns the current production rule set.
func DefaultTables() Tables {
	return Tables{
		BasePriceStandard: map[int]BasePriceEntry{
			1: {PackPrice: 400, Brackets: []AreaPrice{
				{0.5, 520}, {1, 500}, {3, 480}, {5, 460}, {10, 440}, {0, 420},
			}},
			2: {PackPrice: 450, Brackets: []AreaPrice{
				{0.5, 560}, {1, 540}, {3, 520}, {5, 500}, {10, 480}, {0, 460},
			}},
			4: {PackPrice: 700, Brackets: []AreaPrice{
				{0.5, 900}, {1, 860}, {3, 820}, {5, 780}, {10, 750}, {0, 720},
			}},
			6: {PackPrice: 1100, Brackets: []AreaPrice{
				{0.5, 1350}, {1, 1300}, {3, 1250}, {5, 1200}, {10, 1150}, {0, 1100},
			}},
			8: {PackPrice: 1600, Brackets: []AreaPrice{
				{0.5, 1900}, {1, 1850}, {3, 1800}, {5, 1750}, {10, 1700}, {0, 1650},
			}},
			10: {PackPrice: 2100, Brackets: []AreaPrice{
				{0.5, 2500}, {1, 2430}, {3, 2360}, {5, 2290}, {10, 2220}, {0, 2150},
			}},
			12: {PackPrice: 2700, Brackets: []AreaPrice{
				{0.5, 3150}, {1, 3060}, {3, 2980}, {5, 2900}, {10, 2820}, {0, 2750},
			}},
		},
		BasePriceHeavy: map[int]BasePriceEntry{
			1: {PackPrice: 520, Brackets: []AreaPrice{
				{0.5, 680}, {1, 650}, {3, 620}, {5, 600}, {10, 580}, {0, 560},
			}},
			2: {PackPrice: 580, Brackets: []AreaPrice{
				{0.5, 740}, {1, 710}, {3, 680}, {5, 660}, {10, 640}, {0, 620},
			}},
			4: {PackPrice: 880, Brackets: []AreaPrice{
				{0.5, 1120}, {1, 1070}, {3, 1030}, {5, 990}, {10, 950}, {0, 920},
			}},
			6: {PackPrice: 1350, Brackets: []AreaPrice{
				{0.5, 1650}, {1, 1590}, {3, 1530}, {5, 1480}, {10, 1430}, {0, 1380},
			}},
			8: {PackPrice: 1900, Brackets: []AreaPrice{
				{0.5, 2280}, {1, 2210}, {3, 2140}, {5, 2070}, {10, 2010}, {0, 1950},
			}},
			10: {PackPrice: 2500, Brackets: []AreaPrice{
				{0.5, 2980}, {1, 2890}, {3, 2810}, {5, 2730}, {10, 2660}, {0, 2590},
			}},
		},

		EngineeringFee: []AreaPrice{
			{0.2, 150}, {0.5, 300}, {3, 500}, {0, 0},
		},

		FilmUnitPrice:       60,
		FilmSheetCount:      map[int]int{1: 2, 2: 3, 4: 5, 6: 7, 8: 9, 10: 11, 12: 13},
		FilmMinSingleAreaM2: 0.05,

		MultilayerCopper: map[int]map[string]CopperFee{
			4: {
				"1-0.5": {0, 0},
				"1-1":   {80, 60},
				"2-1":   {220, 180},
				"2-2":   {320, 260},
				"3-3":   {720, 580},
			},
			6: {
				"1-0.5": {60, 40},
				"1-1":   {140, 100},
				"2-1":   {340, 260},
				"2-2":   {480, 380},
			},
			8: {
				"1-0.5": {120, 80},
				"1-1":   {220, 160},
				"2-1":   {460, 360},
				"2-2":   {640, 500},
			},
			10: {
				"1-0.5": {200, 140},
				"1-1":   {320, 240},
				"2-1":   {620, 480},
			},
			12: {
				"1-0.5": {280, 200},
				"1-1":   {420, 320},
			},
		},

		Urgent: map[int]map[CopperClass][]UrgentBracket{
			1: {
				CopperNormal: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 80, false}, {2, 160, false}}},
					{MaxAreaM2: 5, Choices: []UrgentChoice{{1, 50, true}, {2, 90, true}}},
					{MaxAreaM2: 0, Choices: []UrgentChoice{{1, 40, true}}},
				},
				CopperHigh: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 120, false}}},
					{MaxAreaM2: 5, Choices: []UrgentChoice{{1, 70, true}}},
				},
			},
			2: {
				CopperNormal: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 100, false}, {2, 200, false}}},
					{MaxAreaM2: 5, Choices: []UrgentChoice{{1, 60, true}, {2, 110, true}}},
					{MaxAreaM2: 0, Choices: []UrgentChoice{{1, 50, true}, {2, 90, true}}},
				},
				CopperHigh: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 150, false}}},
					{MaxAreaM2: 5, Choices: []UrgentChoice{{1, 80, true}}},
				},
			},
			4: {
				CopperNormal: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 200, false}, {2, 350, false}}},
					{MaxAreaM2: 5, Choices: []UrgentChoice{{1, 120, true}, {2, 200, true}}},
				},
				CopperHigh: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 260, false}}},
				},
			},
			6: {
				CopperNormal: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 300, false}}},
					{MaxAreaM2: 5, Choices: []UrgentChoice{{1, 180, true}}},
				},
			},
			8: {
				CopperNormal: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 400, false}}},
				},
			},
			10: {
				CopperNormal: {
					{MaxAreaM2: 1, Choices: []UrgentChoice{{1, 500, false}}},
				},
			},
		},

		LeadTimeNormal: map[int][]AreaDays{
			1:  {{1, 2, false}, {5, 3, false}, {10, 4, false}, {0, 5, false}},
			2:  {{1, 2, false}, {5, 3, false}, {10, 4, false}, {0, 5, false}},
			4:  {{1, 4, false}, {5, 5, false}, {10, 6, false}, {0, 7, false}},
			6:  {{1, 5, false}, {5, 6, false}, {10, 7, false}, {0, 8, false}},
			8:  {{1, 6, false}, {5, 7, false}, {10, 8, false}, {0, 9, false}},
			10: {{1, 7, false}, {5, 8, false}, {10, 10, false}, {0, 12, false}},
			12: {{1, 9, false}, {5, 11, false}, {10, 13, false}, {0, 15, false}},
			14: {{1, 12, false}, {5, 14, false}, {10, 16, false}, {0, 20, true}},
		},
		LeadTimeHigh: map[int][]AreaDays{
			1:  {{1, 3, false}, {5, 4, false}, {10, 5, false}, {0, 6, false}},
			2:  {{1, 3, false}, {5, 4, false}, {10, 5, false}, {0, 6, false}},
			4:  {{1, 5, false}, {5, 6, false}, {10, 7, false}, {0, 9, false}},
			6:  {{1, 6, false}, {5, 8, false}, {10, 9, false}, {0, 11, false}},
			8:  {{1, 8, false}, {5, 10, false}, {10, 12, false}, {0, 14, false}},
			10: {{1, 10, false}, {5, 12, false}, {10, 14, false}, {0, 20, true}},
			12: {{1, 12, false}, {5, 14, false}, {10, 20, true}, {0, 20, true}},
		},

		Holidays:   holidaySet(),
		CutoffHour: 20,
	}
}

func holidaySet() map[string]struct{} {
	days := []string{
		// New Year
		"2026-01-01", "2026-01-02",
		// Spring Festival
		"2026-02-16", "2026-02-17", "2026-02-18", "2026-02-19", "2026-02-20",
		"2026-02-21", "2026-02-22",
		// Qingming
		"2026-04-05", "2026-04-06",
		// Labour Day
		"2026-05-01", "2026-05-04", "2026-05-05",
		// Dragon Boat Festival
		"2026-06-19",
		// Mid-Autumn Festival
		"2026-09-25",
		// National Day
		"2026-10-01", "2026-10-02", "2026-10-05", "2026-10-06", "2026-10-07",
	}
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// copperClassFor picks the table variant for a specification: multilayer
// boards count both copper layers, thinner stackups only the outer foil.
func copperClassFor(spec entities.OrderSpecification) CopperClass {
	if spec.Multilayer() {
		if spec.OuterCopperWeightOz > 1 || spec.InnerCopperWeightOz > 1 {
			return CopperHigh
		}
		return CopperNormal
	}
	if spec.OuterCopperWeightOz > 1 {
		return CopperHigh
	}
	return CopperNormal
}
