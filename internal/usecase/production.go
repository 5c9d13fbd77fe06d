package usecase

import (
	"solarvizyon/internal/domain/catalog"
	"solarvizyon/internal/domain/entities"
)

// ProductionInput collects the production-forecast inputs. When Provider is
// non-nil its yield figures are taken as-is: the provider already accounts
// for location, tilt, azimuth and system losses.
type ProductionInput struct {
	CapacityKW             float64
	DailyPSH               float64
	OrientationLossPercent float64
	UnitEnergyPrice        float64
	AnnualConsumptionKWh   float64
	Mode                   entities.SystemMode
	Objective              entities.Objective
	Provider               *entities.YieldEstimate
}

// ForecastProduction derives annual and monthly energy output and the
// resulting monthly savings. For on-grid maximize-area systems the excess
// over consumption is reported as sale revenue; off-grid systems have no
// sale path.
func ForecastProduction(cfg EngineConfig, in ProductionInput) entities.ProductionForecast {
	var forecast entities.ProductionForecast

	if in.Provider != nil {
		forecast.AnnualKWh = in.Provider.AnnualKWh
		forecast.MonthlyKWh = in.Provider.MonthlyKWh
		forecast.FromProvider = true
	} else {
		efficiency := cfg.systemEfficiency(in.OrientationLossPercent)
		forecast.AnnualKWh = in.CapacityKW * in.DailyPSH * 365 * efficiency
		monthlyAvg := forecast.AnnualKWh / 12
		for i, coeff := range catalog.SeasonalCoefficients {
			forecast.MonthlyKWh[i] = monthlyAvg * coeff
		}
	}

	forecast.MonthlySavingsLocal = (forecast.AnnualKWh / 12) * in.UnitEnergyPrice

	if in.Mode == entities.SystemModeOnGrid && in.Objective == entities.ObjectiveMaximizeArea {
		if surplus := forecast.AnnualKWh - in.AnnualConsumptionKWh; surplus > 0 {
			forecast.SurplusAnnualKWh = surplus
			forecast.SurplusRevenueLocal = surplus * in.UnitEnergyPrice
		}
	}

	return forecast
}
