package usecase

import (
	"errors"
	"math"

	"solarvizyon/internal/domain/entities"
)

var (
	ErrInvalidArea = errors.New("invalid installable area")
	ErrInvalidPSH  = errors.New("invalid peak sun hours")
)

// SizingInput collects everything the sizing step needs. DailyPSH always
// comes from the canonical location table; the external provider only
// refines production figures, never the array size.
type SizingInput struct {
	AnnualConsumptionKWh   float64
	AreaM2                 float64
	Panel                  entities.PanelSpec
	DailyPSH               float64
	OrientationLossPercent float64
	Mode                   entities.SystemMode
	Objective              entities.Objective
	Site                   entities.InstallationSite
}

// SizeSystem determines installed capacity and the discrete panel count.
// The returned capacity is re-derived from the integer panel count, so it is
// always an exact multiple of one panel's rating.
func SizeSystem(cfg EngineConfig, in SizingInput) (entities.SizedSystem, error) {
	if in.AreaM2 <= 0 {
		return entities.SizedSystem{}, ErrInvalidArea
	}
	if in.DailyPSH <= 0 {
		return entities.SizedSystem{}, ErrInvalidPSH
	}
	if in.AnnualConsumptionKWh <= 0 {
		return entities.SizedSystem{}, ErrInvalidConsumption
	}

	efficiency := cfg.systemEfficiency(in.OrientationLossPercent)
	targetKW := (in.AnnualConsumptionKWh * cfg.MarginFactor) / (in.DailyPSH * 365 * efficiency)
	ceilingKW := in.AreaM2 * in.Panel.AreaEfficiencyKWPerM2

	var capacityKW float64
	advisory := entities.AdvisoryDemandMet
	if in.Objective == entities.ObjectiveMaximizeArea && in.Mode == entities.SystemModeOnGrid {
		capacityKW = ceilingKW
		advisory = entities.AdvisoryAreaFilled
	} else {
		capacityKW = math.Min(targetKW, ceilingKW)
	}
	if ceilingKW < targetKW {
		advisory = entities.AdvisoryAreaConstrained
	}

	panelCount := int(math.Floor(capacityKW * 1000 / in.Panel.UnitWatt))
	if panelCount < 1 {
		panelCount = 1
	}

	return entities.SizedSystem{
		CapacityKW:       float64(panelCount) * in.Panel.UnitWatt / 1000,
		PanelCount:       panelCount,
		TargetCapacityKW: targetKW,
		AreaCeilingKW:    ceilingKW,
		Advisory:         advisory,
		InstallationSite: in.Site,
	}, nil
}
