package entities

// Consumption is the normalized energy-consumption figure for a run.
type Consumption struct {
	MonthlyKWh float64 `json:"monthly_kwh"`
	AnnualKWh  float64 `json:"annual_kwh"`
}

// SizingAdvisory flags how the sizing decision reconciled demand against the
// available area.

type SizingAdvisory string

const (
	// AdvisoryDemandMet: the area was sufficient and the array was sized for
	// the consumption target.
	AdvisoryDemandMet SizingAdvisory = "demand_met"
	// AdvisoryAreaConstrained: the available area cannot host enough panels
	// to cover the consumption target.
	AdvisoryAreaConstrained SizingAdvisory = "area_constrained"
	// AdvisorySurplus: maximize-area sizing produces more than the annual
	// consumption; the excess is sellable on-grid.
	AdvisorySurplus SizingAdvisory = "surplus"
	// AdvisoryAreaFilled: maximize-area sizing used the whole area without
	// exceeding consumption.
	AdvisoryAreaFilled SizingAdvisory = "area_filled"
)

// SizedSystem is the sizing result. CapacityKW is always re-derived from the
// integer panel count, so it is an exact multiple of one panel's rating and
// never exceeds the area ceiling.
type SizedSystem struct {
	CapacityKW       float64          `json:"capacity_kw"`
	PanelCount       int              `json:"panel_count"`
	TargetCapacityKW float64          `json:"target_capacity_kw"`
	AreaCeilingKW    float64          `json:"area_ceiling_kw"`
	Advisory         SizingAdvisory   `json:"advisory"`
	InstallationSite InstallationSite `json:"installation_site"`
}

// CostAllocation is the reporting-only split of the hardware cost plus the
// battery slice, in local currency. It feeds charts, never calculations.
type CostAllocation struct {
	PanelsInverterLocal   float64 `json:"panels_inverter_local"`
	MountingCablingLocal  float64 `json:"mounting_cabling_local"`
	LaborEngineeringLocal float64 `json:"labor_engineering_local"`
	PermitsLogisticsLocal float64 `json:"permits_logistics_local"`
	BatteryLocal          float64 `json:"battery_local"`
}

// CostBreakdown is the upfront cost of the system. Hardware and battery
// costs are computed in USD and converted once with the submission's
// exchange rate.
type CostBreakdown struct {
	ScaleMultiplier    float64        `json:"scale_multiplier"`
	HardwareUSD        float64        `json:"hardware_usd"`
	BatteryCapacityKWh float64        `json:"battery_capacity_kwh"`
	BatteryUSD         float64        `json:"battery_usd"`
	TotalLocal         float64        `json:"total_local"`
	Allocation         CostAllocation `json:"allocation"`
}

// ProductionForecast is the expected energy output of the sized system.
// MonthlyKWh always holds 12 values summing to AnnualKWh.
type ProductionForecast struct {
	AnnualKWh         float64    `json:"annual_kwh"`
	MonthlyKWh        [12]float64 `json:"monthly_kwh"`
	MonthlySavingsLocal float64  `json:"monthly_savings_local"`
	SurplusAnnualKWh  float64    `json:"surplus_annual_kwh"`
	SurplusRevenueLocal float64  `json:"surplus_revenue_local"`
	FromProvider      bool       `json:"from_provider"`
}

// CashFlowSeries is the nominal year-by-year cumulative balance over the
// projection horizon, starting from the negative upfront cost.
type CashFlowSeries struct {
	HorizonYears  int       `json:"horizon_years"`
	Balances      []float64 `json:"balances"`
	BreakEvenYear float64   `json:"break_even_year"`
	// BeyondHorizon is set when no crossing occurred and BreakEvenYear holds
	// the horizon length as a ceiling, not a true payback figure.
	BeyondHorizon bool `json:"beyond_horizon"`
}

// LoanSchedule is the fixed-payment amortization result plus the
// side-by-side comparison against the monthly savings.
type LoanSchedule struct {
	MonthlyPaymentLocal float64 `json:"monthly_payment_local"`
	// SavingsDeltaLocal = monthly savings - installment. Positive means the
	// system covers its own loan payment.
	SavingsDeltaLocal float64 `json:"savings_delta_local"`
}

// EnvironmentalImpact is the report-only ecological equivalence block.
type EnvironmentalImpact struct {
	CO2AvoidedTons  float64 `json:"co2_avoided_tons"`
	TreeEquivalent  int     `json:"tree_equivalent"`
	CarKMEquivalent float64 `json:"car_km_equivalent"`
}

// AnalysisReport is the complete result of one submission. All fields are
// derived in one pass; nothing in it persists across runs.
type AnalysisReport struct {
	Location    LocationProfile     `json:"location"`
	SystemMode  SystemMode          `json:"system_mode"`
	Objective   Objective           `json:"objective"`
	Consumption Consumption         `json:"consumption"`
	Panel       PanelSpec           `json:"panel"`
	Sizing      SizedSystem         `json:"sizing"`
	Cost        CostBreakdown       `json:"cost"`
	Production  ProductionForecast  `json:"production"`
	CashFlow    CashFlowSeries      `json:"cash_flow"`
	Loan        *LoanSchedule       `json:"loan,omitempty"`
	Impact      EnvironmentalImpact `json:"impact"`
}
