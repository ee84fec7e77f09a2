package entities

// ShipmentMode selects how boards are delivered from fabrication.
type ShipmentMode string

const (
	// ShipmentSingleBoard ships routed single boards.
	ShipmentSingleBoard ShipmentMode = "single"
	// ShipmentPanelByCustomer ships panels laid out in the customer gerber.
	ShipmentPanelByCustomer ShipmentMode = "panel_by_customer"
	// ShipmentPanelByPlatform ships panels laid out by the platform CAM team.
	ShipmentPanelByPlatform ShipmentMode = "panel_by_platform"
)

type MaterialType string

const (
	MaterialFR4      MaterialType = "fr4"
	MaterialAluminum MaterialType = "aluminum"
	MaterialRogers   MaterialType = "rogers"
	MaterialCEM1     MaterialType = "cem1"
)

type TgClass string

const (
	TG130 TgClass = "tg130"
	TG150 TgClass = "tg150"
	TG170 TgClass = "tg170"
)

type SurfaceFinish string

const (
	FinishHASL         SurfaceFinish = "hasl"
	FinishHASLLeadFree SurfaceFinish = "hasl_lead_free"
	FinishOSP          SurfaceFinish = "osp"
	FinishENIG         SurfaceFinish = "enig"
)

// ENIGThickness is the immersion gold thickness sub-tier, only meaningful
// when SurfaceFinish is ENIG.
type ENIGThickness string

const (
	ENIG1U ENIGThickness = "1u"
	ENIG2U ENIGThickness = "2u"
	ENIG3U ENIGThickness = "3u"
)

type MaskCoverMode string

const (
	MaskViaTenting        MaskCoverMode = "tenting"
	MaskViaPlugging       MaskCoverMode = "plugging"
	MaskNonConductiveFill MaskCoverMode = "non_conductive_fill"
)

type TestMethod string

const (
	TestNone        TestMethod = "none"
	TestFlyingProbe TestMethod = "flying_probe"
	TestFixture     TestMethod = "fixture"
)

type SolderMaskColor string

const (
	MaskGreen      SolderMaskColor = "green"
	MaskRed        SolderMaskColor = "red"
	MaskYellow     SolderMaskColor = "yellow"
	MaskBlue       SolderMaskColor = "blue"
	MaskWhite      SolderMaskColor = "white"
	MaskBlack      SolderMaskColor = "black"
	MaskMatteBlack SolderMaskColor = "matte_black"
	MaskMatteGreen SolderMaskColor = "matte_green"
	MaskPurple     SolderMaskColor = "purple"
)

type SilkscreenColor string

const (
	SilkWhite SilkscreenColor = "white"
	SilkBlack SilkscreenColor = "black"
)

type ProductReport string

const (
	ReportNone         ProductReport = "none"
	ReportCrossSection ProductReport = "cross_section"
	ReportDelivery     ProductReport = "delivery_report"
	ReportImpedance    ProductReport = "impedance_report"
)

type DeliveryMode string

const (
	DeliveryStandard DeliveryMode = "standard"
	DeliveryUrgent   DeliveryMode = "urgent"
)

// Dimensions is a single board outline in millimeters.
type Dimensions struct {
	LengthMm float64 `json:"length_mm"`
	WidthMm  float64 `json:"width_mm"`
}

// PanelLayout is the unit grid of a production panel.
type PanelLayout struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// OrderSpecification is the immutable input to the quotation engine. It is
// assumed to be well-formed: field-level validation and defaulting happen in
// the HTTP layer before the engine ever sees it.
type OrderSpecification struct {
	LayerCount          int     `json:"layer_count"`
	BoardThicknessMm    float64 `json:"board_thickness_mm"`
	OuterCopperWeightOz float64 `json:"outer_copper_weight_oz"`
	// InnerCopperWeightOz is only meaningful when LayerCount >= 4.
	InnerCopperWeightOz float64 `json:"inner_copper_weight_oz"`

	ShipmentMode          ShipmentMode `json:"shipment_mode"`
	SingleBoardDimensions Dimensions   `json:"single_board_dimensions"`
	SingleBoardCount      int          `json:"single_board_count"`
	PanelLayout           PanelLayout  `json:"panel_layout"`
	PanelSetCount         int          `json:"panel_set_count"`
	// DifferentDesignCount is the number of distinct designs sharing one panel.
	DifferentDesignCount int `json:"different_design_count"`

	MaterialType    MaterialType  `json:"material_type"`
	TgClass         TgClass       `json:"tg_class"`
	ShengyiMaterial bool          `json:"shengyi_material"`
	SurfaceFinish   SurfaceFinish `json:"surface_finish"`
	ENIGThickness   ENIGThickness `json:"enig_thickness"`

	MinTraceSpacingMil float64 `json:"min_trace_spacing_mil"`
	MinHoleDiameterMm  float64 `json:"min_hole_diameter_mm"`
	HoleCount          int     `json:"hole_count"`

	SolderMaskColor SolderMaskColor `json:"solder_mask_color"`
	SilkscreenColor SilkscreenColor `json:"silkscreen_color"`
	MaskCoverMode   MaskCoverMode   `json:"mask_cover_mode"`
	TestMethod      TestMethod      `json:"test_method"`

	ImpedanceControl bool `json:"impedance_control"`
	GoldFingers      bool `json:"gold_fingers"`
	EdgePlating      bool `json:"edge_plating"`
	Castellation     bool `json:"castellation"`
	HoleCopper25um   bool `json:"hole_copper_25um"`
	BGAFinePitch     bool `json:"bga_fine_pitch"`
	SMTAssembly      bool `json:"smt_assembly"`
	FullInspection   bool `json:"full_inspection"`
	HDIStepCount     int  `json:"hdi_step_count"`

	ProductReports []ProductReport `json:"product_reports"`

	DeliveryMode     DeliveryMode `json:"delivery_mode"`
	UrgentReduceDays int          `json:"urgent_reduce_days"`
}

// Multilayer reports whether the board has a symmetric multilayer stackup.
func (s OrderSpecification) Multilayer() bool {
	return s.LayerCount >= 4
}

// MaxCopperWeightOz returns the heaviest copper on the board. Inner copper
// only participates for multilayer stackups.
func (s OrderSpecification) MaxCopperWeightOz() float64 {
	if s.Multilayer() && s.InnerCopperWeightOz > s.OuterCopperWeightOz {
		return s.InnerCopperWeightOz
	}
	return s.OuterCopperWeightOz
}
