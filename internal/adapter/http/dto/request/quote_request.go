package request

import (
	"time"

	"pcbquote/internal/domain/entities"
)

// QuoteRequest is the JSON payload of the quotation endpoints. Optional
// categorical fields default to the plain FR4/HASL/green baseline here, so
// the engine always receives a fully populated specification.
type QuoteRequest struct {
	LayerCount          int     `json:"layer_count" binding:"required"`
	BoardThicknessMm    float64 `json:"board_thickness_mm" binding:"required"`
	OuterCopperWeightOz float64 `json:"outer_copper_weight_oz"`
	InnerCopperWeightOz float64 `json:"inner_copper_weight_oz"`

	ShipmentMode       string  `json:"shipment_mode"`
	SingleBoardLength  float64 `json:"single_board_length_mm"`
	SingleBoardWidth   float64 `json:"single_board_width_mm"`
	SingleBoardCount   int     `json:"single_board_count"`
	PanelRows          int     `json:"panel_rows"`
	PanelColumns       int     `json:"panel_columns"`
	PanelSetCount      int     `json:"panel_set_count"`
	DifferentDesigns   int     `json:"different_design_count"`

	MaterialType    string `json:"material_type"`
	TgClass         string `json:"tg_class"`
	ShengyiMaterial bool   `json:"shengyi_material"`
	SurfaceFinish   string `json:"surface_finish"`
	ENIGThickness   string `json:"enig_thickness"`

	MinTraceSpacingMil float64 `json:"min_trace_spacing_mil"`
	MinHoleDiameterMm  float64 `json:"min_hole_diameter_mm"`
	HoleCount          int     `json:"hole_count"`

	SolderMaskColor string `json:"solder_mask_color"`
	SilkscreenColor string `json:"silkscreen_color"`
	MaskCoverMode   string `json:"mask_cover_mode"`
	TestMethod      string `json:"test_method"`

	ImpedanceControl bool `json:"impedance_control"`
	GoldFingers      bool `json:"gold_fingers"`
	EdgePlating      bool `json:"edge_plating"`
	Castellation     bool `json:"castellation"`
	HoleCopper25um   bool `json:"hole_copper_25um"`
	BGAFinePitch     bool `json:"bga_fine_pitch"`
	SMTAssembly      bool `json:"smt_assembly"`
	FullInspection   bool `json:"full_inspection"`
	HDIStepCount     int  `json:"hdi_step_count"`

	ProductReports []string `json:"product_reports"`

	DeliveryMode     string `json:"delivery_mode"`
	UrgentReduceDays int    `json:"urgent_reduce_days"`

	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Courier     string `json:"courier"`
	OrderedAt   string `json:"ordered_at"` // RFC 3339; defaults to now
}

// ToSpecification maps the payload onto the engine's order specification,
// applying baseline defaults for absent categorical fields.
func (r QuoteRequest) ToSpecification() entities.OrderSpecification {
	spec := entities.OrderSpecification{
		LayerCount:          r.LayerCount,
		BoardThicknessMm:    r.BoardThicknessMm,
		OuterCopperWeightOz: defaultFloat(r.OuterCopperWeightOz, 1),
		InnerCopperWeightOz: r.InnerCopperWeightOz,

		ShipmentMode: entities.ShipmentMode(defaultString(r.ShipmentMode, string(entities.ShipmentSingleBoard))),
		SingleBoardDimensions: entities.Dimensions{
			LengthMm: r.SingleBoardLength,
			WidthMm:  r.SingleBoardWidth,
		},
		SingleBoardCount:     r.SingleBoardCount,
		PanelLayout:          entities.PanelLayout{Rows: r.PanelRows, Columns: r.PanelColumns},
		PanelSetCount:        r.PanelSetCount,
		DifferentDesignCount: r.DifferentDesigns,

		MaterialType:    entities.MaterialType(defaultString(r.MaterialType, string(entities.MaterialFR4))),
		TgClass:         entities.TgClass(defaultString(r.TgClass, string(entities.TG130))),
		ShengyiMaterial: r.ShengyiMaterial,
		SurfaceFinish:   entities.SurfaceFinish(defaultString(r.SurfaceFinish, string(entities.FinishHASL))),
		ENIGThickness:   entities.ENIGThickness(r.ENIGThickness),

		MinTraceSpacingMil: r.MinTraceSpacingMil,
		MinHoleDiameterMm:  r.MinHoleDiameterMm,
		HoleCount:          r.HoleCount,

		SolderMaskColor: entities.SolderMaskColor(defaultString(r.SolderMaskColor, string(entities.MaskGreen))),
		SilkscreenColor: entities.SilkscreenColor(defaultString(r.SilkscreenColor, string(entities.SilkWhite))),
		MaskCoverMode:   entities.MaskCoverMode(defaultString(r.MaskCoverMode, string(entities.MaskViaTenting))),
		TestMethod:      entities.TestMethod(defaultString(r.TestMethod, string(entities.TestFlyingProbe))),

		ImpedanceControl: r.ImpedanceControl,
		GoldFingers:      r.GoldFingers,
		EdgePlating:      r.EdgePlating,
		Castellation:     r.Castellation,
		HoleCopper25um:   r.HoleCopper25um,
		BGAFinePitch:     r.BGAFinePitch,
		SMTAssembly:      r.SMTAssembly,
		FullInspection:   r.FullInspection,
		HDIStepCount:     r.HDIStepCount,

		DeliveryMode:     entities.DeliveryMode(defaultString(r.DeliveryMode, string(entities.DeliveryStandard))),
		UrgentReduceDays: r.UrgentReduceDays,
	}

	for _, rep := range r.ProductReports {
		spec.ProductReports = append(spec.ProductReports, entities.ProductReport(rep))
	}
	return spec
}

// ResolveOrderedAt parses the optional order timestamp, falling back to the
// given reference time.
func (r QuoteRequest) ResolveOrderedAt(fallback time.Time) (time.Time, error) {
	if r.OrderedAt == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, r.OrderedAt)
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
