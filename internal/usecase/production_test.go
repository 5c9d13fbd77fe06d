package usecase

import (
	"math"
	"testing"

	"solarvizyon/internal/domain/catalog"
	"solarvizyon/internal/domain/entities"
)

func TestForecastProduction(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.BaseLossPercent = 15

	t.Run("local table forecast", func(t *testing.T) {
		f := ForecastProduction(cfg, ProductionInput{
			CapacityKW:      2.8,
			DailyPSH:        4.2,
			UnitEnergyPrice: 2.5,
			Mode:            entities.SystemModeOnGrid,
			Objective:       entities.ObjectiveMeetDemand,
		})
		expectedAnnual := 2.8 * 4.2 * 365 * 0.85
		if math.Abs(f.AnnualKWh-expectedAnnual) > 1e-6 {
			t.Fatalf("expected annual %v, got %v", expectedAnnual, f.AnnualKWh)
		}
		if f.FromProvider {
			t.Fatal("local forecast must not be flagged as provider-sourced")
		}
		expectedSavings := expectedAnnual / 12 * 2.5
		if math.Abs(f.MonthlySavingsLocal-expectedSavings) > 1e-6 {
			t.Fatalf("expected savings %v, got %v", expectedSavings, f.MonthlySavingsLocal)
		}
	})

	t.Run("monthly values sum to annual", func(t *testing.T) {
		f := ForecastProduction(cfg, ProductionInput{
			CapacityKW:      5.5,
			DailyPSH:        5.57,
			UnitEnergyPrice: 2.5,
			Mode:            entities.SystemModeOnGrid,
			Objective:       entities.ObjectiveMeetDemand,
		})
		sum := 0.0
		for _, m := range f.MonthlyKWh {
			sum += m
		}
		if math.Abs(sum-f.AnnualKWh) > 1e-6 {
			t.Fatalf("monthly sum %v does not match annual %v", sum, f.AnnualKWh)
		}
	})

	t.Run("seasonal weighting peaks in summer", func(t *testing.T) {
		f := ForecastProduction(cfg, ProductionInput{
			CapacityKW:      3,
			DailyPSH:        4.5,
			UnitEnergyPrice: 2.5,
			Mode:            entities.SystemModeOnGrid,
			Objective:       entities.ObjectiveMeetDemand,
		})
		if f.MonthlyKWh[6] <= f.MonthlyKWh[0] {
			t.Fatalf("July %v should exceed January %v", f.MonthlyKWh[6], f.MonthlyKWh[0])
		}
		avg := f.AnnualKWh / 12
		for i, coeff := range catalog.SeasonalCoefficients {
			expected := avg * coeff
			if math.Abs(f.MonthlyKWh[i]-expected) > 1e-6 {
				t.Fatalf("month %d: expected %v, got %v", i, expected, f.MonthlyKWh[i])
			}
		}
	})

	t.Run("orientation loss reduces output", func(t *testing.T) {
		south := ForecastProduction(cfg, ProductionInput{
			CapacityKW: 3, DailyPSH: 4.5, UnitEnergyPrice: 2.5,
			Mode: entities.SystemModeOnGrid, Objective: entities.ObjectiveMeetDemand,
		})
		east := ForecastProduction(cfg, ProductionInput{
			CapacityKW: 3, DailyPSH: 4.5, UnitEnergyPrice: 2.5,
			OrientationLossPercent: 15,
			Mode:                   entities.SystemModeOnGrid,
			Objective:              entities.ObjectiveMeetDemand,
		})
		if east.AnnualKWh >= south.AnnualKWh {
			t.Fatalf("east-facing %v should produce less than south-facing %v", east.AnnualKWh, south.AnnualKWh)
		}
	})

	t.Run("provider estimate taken as-is", func(t *testing.T) {
		yield := &entities.YieldEstimate{AnnualKWh: 4321}
		for i := range yield.MonthlyKWh {
			yield.MonthlyKWh[i] = 4321.0 / 12
		}
		f := ForecastProduction(cfg, ProductionInput{
			CapacityKW: 2.8, DailyPSH: 4.2, UnitEnergyPrice: 2.5,
			Mode: entities.SystemModeOnGrid, Objective: entities.ObjectiveMeetDemand,
			Provider: yield,
		})
		if !f.FromProvider {
			t.Fatal("expected provider-sourced flag")
		}
		if f.AnnualKWh != 4321 {
			t.Fatalf("expected provider annual 4321, got %v", f.AnnualKWh)
		}
	})

	t.Run("on-grid maximize-area surplus", func(t *testing.T) {
		f := ForecastProduction(cfg, ProductionInput{
			CapacityKW: 10, DailyPSH: 5, UnitEnergyPrice: 2.5,
			AnnualConsumptionKWh: 3600,
			Mode:                 entities.SystemModeOnGrid,
			Objective:            entities.ObjectiveMaximizeArea,
		})
		expectedSurplus := f.AnnualKWh - 3600
		if math.Abs(f.SurplusAnnualKWh-expectedSurplus) > 1e-6 {
			t.Fatalf("expected surplus %v, got %v", expectedSurplus, f.SurplusAnnualKWh)
		}
		if math.Abs(f.SurplusRevenueLocal-expectedSurplus*2.5) > 1e-6 {
			t.Fatalf("expected revenue %v, got %v", expectedSurplus*2.5, f.SurplusRevenueLocal)
		}
	})

	t.Run("off-grid never reports surplus", func(t *testing.T) {
		f := ForecastProduction(cfg, ProductionInput{
			CapacityKW: 10, DailyPSH: 5, UnitEnergyPrice: 2.5,
			AnnualConsumptionKWh: 3600,
			Mode:                 entities.SystemModeOffGrid,
			Objective:            entities.ObjectiveMaximizeArea,
		})
		if f.SurplusAnnualKWh != 0 || f.SurplusRevenueLocal != 0 {
			t.Fatalf("off-grid surplus must stay zero, got %+v", f)
		}
	})
}
