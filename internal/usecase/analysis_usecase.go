package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"solarvizyon/internal/domain/catalog"
	"solarvizyon/internal/domain/entities"
	"solarvizyon/internal/usecase/interfaces"
)

var (
	ErrUnknownLocation         = errors.New("unknown location")
	ErrUnknownPanelTier        = errors.New("unknown panel tier")
	ErrUnknownBatteryTier      = errors.New("unknown battery tier")
	ErrUnknownOrientation      = errors.New("unknown orientation")
	ErrInvalidSystemMode       = errors.New("invalid system mode")
	ErrInvalidObjective        = errors.New("invalid objective")
	ErrInvalidInstallationSite = errors.New("invalid installation site")
	ErrInvalidEnergyPrice      = errors.New("invalid energy price")
	ErrIrradianceNotConfigured = errors.New("irradiance provider not configured")
	ErrIrradianceUnavailable   = errors.New("irradiance data unavailable")
)

// IAnalysisUseCase runs one complete sizing and financial-feasibility
// analysis per call. The caller supplies a full AnalysisInput and receives a
// full AnalysisReport; no state crosses calls.

type IAnalysisUseCase interface {
	Analyze(ctx context.Context, in entities.AnalysisInput) (entities.AnalysisReport, error)
}

type AnalysisUseCase struct {
	cfg        EngineConfig
	irradiance interfaces.IIrradianceProvider
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

// NewAnalysisUseCase wires the engine configuration and the optional
// external irradiance provider. A nil provider restricts analyses to the
// static location table.
func NewAnalysisUseCase(cfg EngineConfig, irradiance interfaces.IIrradianceProvider) (*AnalysisUseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return &AnalysisUseCase{cfg: cfg, irradiance: irradiance}, nil
}

// Analyze runs the full pipeline: normalize consumption, resolve catalog
// entries, size the array, estimate cost and production, project cash flow
// and attach the optional loan comparison.
//
// A provider failure aborts the whole analysis. Silently substituting a
// table value would misrepresent the satellite-validated claim made for
// provider-backed results.
func (u *AnalysisUseCase) Analyze(ctx context.Context, in entities.AnalysisInput) (entities.AnalysisReport, error) {
	if !in.SystemMode.Valid() {
		return entities.AnalysisReport{}, ErrInvalidSystemMode
	}
	if !in.InstallationSite.Valid() {
		return entities.AnalysisReport{}, ErrInvalidInstallationSite
	}
	objective := in.Objective
	if objective == "" {
		objective = entities.ObjectiveMeetDemand
	}
	if !objective.Valid() {
		return entities.AnalysisReport{}, ErrInvalidObjective
	}
	if in.UnitEnergyPrice <= 0 {
		return entities.AnalysisReport{}, ErrInvalidEnergyPrice
	}
	if in.ExchangeRate <= 0 {
		return entities.AnalysisReport{}, ErrInvalidExchangeRate
	}

	location, ok := catalog.LocationByID(in.LocationID)
	if !ok {
		return entities.AnalysisReport{}, ErrUnknownLocation
	}
	panel, ok := catalog.PanelSpecByTier(in.PanelTier)
	if !ok {
		return entities.AnalysisReport{}, ErrUnknownPanelTier
	}

	// Ground installations are mounted facing south; the orientation choice
	// only applies to rooftops.
	orientation := in.Orientation
	if in.InstallationSite == entities.InstallationSiteGround || orientation == "" {
		orientation = entities.OrientationSouth
	}
	orient, ok := catalog.OrientationByName(orientation)
	if !ok {
		return entities.AnalysisReport{}, ErrUnknownOrientation
	}

	var battery *entities.BatterySpec
	if in.SystemMode == entities.SystemModeOffGrid {
		spec, ok := catalog.BatterySpecByTier(in.BatteryTier)
		if !ok {
			return entities.AnalysisReport{}, ErrUnknownBatteryTier
		}
		battery = &spec
	}

	consumption, err := NormalizeConsumption(in.ConsumptionUnit, in.ConsumptionValue, in.UnitEnergyPrice)
	if err != nil {
		return entities.AnalysisReport{}, err
	}

	sizing, err := SizeSystem(u.cfg, SizingInput{
		AnnualConsumptionKWh:   consumption.AnnualKWh,
		AreaM2:                 in.AreaM2,
		Panel:                  panel,
		DailyPSH:               location.DailyPeakSunHours,
		OrientationLossPercent: orient.LossPercent,
		Mode:                   in.SystemMode,
		Objective:              objective,
		Site:                   in.InstallationSite,
	})
	if err != nil {
		return entities.AnalysisReport{}, err
	}

	cost, err := EstimateCost(u.cfg, CostInput{
		CapacityKW:            sizing.CapacityKW,
		Panel:                 panel,
		Mode:                  in.SystemMode,
		Battery:               battery,
		MonthlyConsumptionKWh: consumption.MonthlyKWh,
		ExchangeRate:          in.ExchangeRate,
	})
	if err != nil {
		return entities.AnalysisReport{}, err
	}

	var providerYield *entities.YieldEstimate
	if in.UseIrradianceService {
		if u.irradiance == nil {
			return entities.AnalysisReport{}, ErrIrradianceNotConfigured
		}
		yield, err := u.irradiance.EstimateYield(ctx, entities.YieldRequest{
			Latitude:          location.Latitude,
			Longitude:         location.Longitude,
			PeakPowerKW:       sizing.CapacityKW,
			SystemLossPercent: u.cfg.BaseLossPercent,
			TiltDegrees:       u.cfg.TiltDegrees,
			AzimuthDegrees:    orient.AzimuthDegrees,
		})
		if err != nil {
			log.Printf("[analysis][usecase] irradiance lookup failed location=%s err=%v", location.ID, err)
			return entities.AnalysisReport{}, fmt.Errorf("%w: %v", ErrIrradianceUnavailable, err)
		}
		providerYield = &yield
	}

	production := ForecastProduction(u.cfg, ProductionInput{
		CapacityKW:             sizing.CapacityKW,
		DailyPSH:               location.DailyPeakSunHours,
		OrientationLossPercent: orient.LossPercent,
		UnitEnergyPrice:        in.UnitEnergyPrice,
		AnnualConsumptionKWh:   consumption.AnnualKWh,
		Mode:                   in.SystemMode,
		Objective:              objective,
		Provider:               providerYield,
	})
	if production.SurplusAnnualKWh > 0 && sizing.Advisory == entities.AdvisoryAreaFilled {
		sizing.Advisory = entities.AdvisorySurplus
	}

	cashFlow := ProjectCashFlow(u.cfg, CashFlowInput{
		AnnualProductionKWh: production.AnnualKWh,
		UnitEnergyPrice:     in.UnitEnergyPrice,
		PriceGrowthPercent:  in.PriceGrowthPercent,
		TotalCostLocal:      cost.TotalLocal,
		CapacityKW:          sizing.CapacityKW,
		ExchangeRate:        in.ExchangeRate,
		Mode:                in.SystemMode,
		Battery:             battery,
		BatteryCostLocal:    cost.BatteryUSD * in.ExchangeRate,
	})

	report := entities.AnalysisReport{
		Location:    location,
		SystemMode:  in.SystemMode,
		Objective:   objective,
		Consumption: consumption,
		Panel:       panel,
		Sizing:      sizing,
		Cost:        cost,
		Production:  production,
		CashFlow:    cashFlow,
		Impact:      EstimateImpact(production.AnnualKWh),
	}

	if in.Loan != nil {
		terms := *in.Loan
		// Zero principal means the whole system is financed.
		if terms.PrincipalLocal == 0 {
			terms.PrincipalLocal = cost.TotalLocal
		}
		payment, err := AmortizedMonthlyPayment(terms)
		if err != nil {
			return entities.AnalysisReport{}, err
		}
		report.Loan = &entities.LoanSchedule{
			MonthlyPaymentLocal: payment,
			SavingsDeltaLocal:   production.MonthlySavingsLocal - payment,
		}
	}

	log.Printf("[analysis][usecase] done location=%s mode=%s panels=%d capacity_kw=%.2f break_even=%.1f",
		location.ID, in.SystemMode, sizing.PanelCount, sizing.CapacityKW, cashFlow.BreakEvenYear)
	return report, nil
}
