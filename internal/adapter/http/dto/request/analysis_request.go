package request

import (
	"solarvizyon/internal/domain/entities"
)

// LoanRequest carries the optional financing terms. Rate comes in as a
// percentage (3.5 = 3.5%/month). A zero principal means "finance the whole
// system cost".
type LoanRequest struct {
	PrincipalLocal     float64 `json:"principal_local"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent"`
	TermMonths         int     `json:"term_months" binding:"required"`
}

// AnalysisRequest is the submission payload for one analysis run.
type AnalysisRequest struct {
	LocationID       string  `json:"location_id" binding:"required"`
	InstallationSite string  `json:"installation_site" binding:"required"`
	SystemMode       string  `json:"system_mode" binding:"required"`
	Objective        string  `json:"objective"`
	Orientation      string  `json:"orientation"`
	AreaM2           float64 `json:"area_m2" binding:"required"`

	ConsumptionUnit  string  `json:"consumption_unit" binding:"required"`
	ConsumptionValue float64 `json:"consumption_value" binding:"required"`

	PanelTier   string `json:"panel_tier" binding:"required"`
	BatteryTier string `json:"battery_tier"`

	UnitEnergyPrice    float64 `json:"unit_energy_price" binding:"required"`
	ExchangeRate       float64 `json:"exchange_rate" binding:"required"`
	PriceGrowthPercent float64 `json:"price_growth_percent"`

	UseIrradianceService bool `json:"use_irradiance_service"`

	Loan *LoanRequest `json:"loan,omitempty"`
}

// ToInput translates the payload into the domain input consumed by the
// analysis use case.
func (r AnalysisRequest) ToInput() entities.AnalysisInput {
	in := entities.AnalysisInput{
		LocationID:           r.LocationID,
		InstallationSite:     entities.InstallationSite(r.InstallationSite),
		SystemMode:           entities.SystemMode(r.SystemMode),
		Objective:            entities.Objective(r.Objective),
		Orientation:          entities.Orientation(r.Orientation),
		AreaM2:               r.AreaM2,
		ConsumptionUnit:      entities.ConsumptionUnit(r.ConsumptionUnit),
		ConsumptionValue:     r.ConsumptionValue,
		PanelTier:            entities.PanelTier(r.PanelTier),
		BatteryTier:          entities.BatteryTier(r.BatteryTier),
		UnitEnergyPrice:      r.UnitEnergyPrice,
		ExchangeRate:         r.ExchangeRate,
		PriceGrowthPercent:   r.PriceGrowthPercent,
		UseIrradianceService: r.UseIrradianceService,
	}
	if r.Loan != nil {
		in.Loan = &entities.LoanTerms{
			PrincipalLocal: r.Loan.PrincipalLocal,
			MonthlyRate:    r.Loan.MonthlyRatePercent / 100,
			TermMonths:     r.Loan.TermMonths,
		}
	}
	return in
}
