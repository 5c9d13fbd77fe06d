package usecase

import (
	"math"

	"solarvizyon/internal/domain/entities"
)

// CashFlowInput collects the projection inputs. BatteryCostLocal is the
// original storage cost in local currency; it recurs as a replacement
// expense every battery lifetime, except at the horizon year itself.
type CashFlowInput struct {
	AnnualProductionKWh float64
	UnitEnergyPrice     float64
	PriceGrowthPercent  float64
	TotalCostLocal      float64
	CapacityKW          float64
	ExchangeRate        float64
	Mode                entities.SystemMode
	Battery             *entities.BatterySpec
	BatteryCostLocal    float64
}

// ProjectCashFlow simulates the nominal cumulative balance over the horizon
// and locates the break-even year by linear interpolation within the
// crossing year. Purely deterministic: identical inputs always produce the
// identical series.
func ProjectCashFlow(cfg EngineConfig, in CashFlowInput) entities.CashFlowSeries {
	inflation := 1 + in.PriceGrowthPercent/100
	inverterCostLocal := in.CapacityKW * cfg.InverterCostUSDPerKW * in.ExchangeRate

	series := entities.CashFlowSeries{
		HorizonYears: cfg.HorizonYears,
		Balances:     make([]float64, 0, cfg.HorizonYears),
	}

	balance := -in.TotalCostLocal
	breakEven := 0.0
	for year := 1; year <= cfg.HorizonYears; year++ {
		revenue := in.AnnualProductionKWh *
			math.Pow(cfg.DegradationRate, float64(year)) *
			in.UnitEnergyPrice *
			math.Pow(inflation, float64(year))

		expense := 0.0
		if year == cfg.InverterReplacementYear {
			expense += inverterCostLocal
		}
		if in.Mode == entities.SystemModeOffGrid && in.Battery != nil && in.Battery.LifeYears > 0 {
			if year%in.Battery.LifeYears == 0 && year != cfg.HorizonYears {
				expense += in.BatteryCostLocal
			}
		}

		balance += revenue - expense
		series.Balances = append(series.Balances, balance)

		if balance > 0 && breakEven == 0 {
			net := revenue - expense
			// A non-positive net cannot have caused the crossing; keep
			// searching in later years.
			if net > 0 {
				priorBalance := balance - net
				breakEven = float64(year-1) + math.Abs(priorBalance)/net
			}
		}
	}

	if breakEven == 0 {
		series.BreakEvenYear = float64(cfg.HorizonYears)
		series.BeyondHorizon = true
	} else {
		series.BreakEvenYear = breakEven
	}
	return series
}
