package usecase

import (
	"errors"

	"solarvizyon/internal/domain/entities"
)

var (
	ErrInvalidExchangeRate = errors.New("invalid exchange rate")
	ErrBatterySpecRequired = errors.New("battery spec required for off-grid cost")
)

// Fixed reporting split of the hardware cost. Presentation only; none of
// these shares feed a downstream calculation.
const (
	allocPanelsInverter   = 0.50
	allocMountingCabling  = 0.20
	allocLaborEngineering = 0.20
	allocPermitsLogistics = 0.10
)

// CostInput collects the cost-estimation inputs. Battery may be nil for
// on-grid systems and is required off-grid.
type CostInput struct {
	CapacityKW            float64
	Panel                 entities.PanelSpec
	Mode                  entities.SystemMode
	Battery               *entities.BatterySpec
	MonthlyConsumptionKWh float64
	ExchangeRate          float64
}

// EstimateCost computes the upfront cost: tiered hardware pricing plus, for
// off-grid systems, storage sized for the configured autonomy.
func EstimateCost(cfg EngineConfig, in CostInput) (entities.CostBreakdown, error) {
	if in.ExchangeRate <= 0 {
		return entities.CostBreakdown{}, ErrInvalidExchangeRate
	}

	scale := cfg.scaleMultiplier(in.CapacityKW)
	hardwareUSD := in.CapacityKW * in.Panel.BaseUnitCostUSDPerKW * scale

	var batteryKWh, batteryUSD float64
	if in.Mode == entities.SystemModeOffGrid {
		if in.Battery == nil {
			return entities.CostBreakdown{}, ErrBatterySpecRequired
		}
		dailyKWh := in.MonthlyConsumptionKWh / daysPerMonth
		batteryKWh = dailyKWh * cfg.AutonomyDays
		batteryUSD = batteryKWh * in.Battery.UnitCostUSDPerKWh
	}

	hardwareLocal := hardwareUSD * in.ExchangeRate
	return entities.CostBreakdown{
		ScaleMultiplier:    scale,
		HardwareUSD:        hardwareUSD,
		BatteryCapacityKWh: batteryKWh,
		BatteryUSD:         batteryUSD,
		TotalLocal:         (hardwareUSD + batteryUSD) * in.ExchangeRate,
		Allocation: entities.CostAllocation{
			PanelsInverterLocal:   hardwareLocal * allocPanelsInverter,
			MountingCablingLocal:  hardwareLocal * allocMountingCabling,
			LaborEngineeringLocal: hardwareLocal * allocLaborEngineering,
			PermitsLogisticsLocal: hardwareLocal * allocPermitsLogistics,
			BatteryLocal:          batteryUSD * in.ExchangeRate,
		},
	}, nil
}
