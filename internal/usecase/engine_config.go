package usecase

import "fmt"

// ScaleTier applies a cost multiplier to systems below a capacity threshold.
// Small systems amortize fixed costs over fewer kW, so they pay a penalty.
type ScaleTier struct {
	BelowKW    float64
	Multiplier float64
}

// EngineConfig carries every constant of the sizing and financial engine.
// Panel tiers, loss tables and irradiance sourcing vary per deployment, so
// they are injected here at construction instead of being branched in code.
type EngineConfig struct {
	// MarginFactor oversizes the consumption target to absorb real-world
	// losses not captured by the loss percentages.
	MarginFactor float64

	// BaseLossPercent is the system loss (inverter, cabling, soiling,
	// temperature) before any orientation loss is added.
	BaseLossPercent float64

	// TiltDegrees is the fixed mounting tilt submitted to the external
	// irradiance provider.
	TiltDegrees float64

	// ScaleTiers must be ordered by ascending BelowKW. Capacities above the
	// last threshold pay no penalty.
	ScaleTiers []ScaleTier

	// AutonomyDays sizes off-grid storage as days of average consumption.
	AutonomyDays float64

	// HorizonYears is the cash-flow projection horizon.
	HorizonYears int

	// DegradationRate is the year-over-year panel output retention
	// (0.995 = 0.5% annual loss).
	DegradationRate float64

	// InverterReplacementYear and InverterCostUSDPerKW schedule the one-off
	// inverter replacement expense.
	InverterReplacementYear int
	InverterCostUSDPerKW    float64
}

// DefaultEngineConfig returns the constants of the deployed variant.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MarginFactor:    1.2,
		BaseLossPercent: 14,
		TiltDegrees:     30,
		ScaleTiers: []ScaleTier{
			{BelowKW: 3, Multiplier: 1.4},
			{BelowKW: 5, Multiplier: 1.3},
			{BelowKW: 10, Multiplier: 1.1},
		},
		AutonomyDays:            1.5,
		HorizonYears:            25,
		DegradationRate:         0.995,
		InverterReplacementYear: 12,
		InverterCostUSDPerKW:    150,
	}
}

// Validate checks the configuration is internally consistent.
func (c EngineConfig) Validate() error {
	if c.MarginFactor < 1 {
		return fmt.Errorf("invalid margin factor: %v (must be >= 1)", c.MarginFactor)
	}
	if c.BaseLossPercent < 0 || c.BaseLossPercent >= 100 {
		return fmt.Errorf("invalid base loss percent: %v", c.BaseLossPercent)
	}
	if c.HorizonYears < 1 {
		return fmt.Errorf("invalid horizon: %d years", c.HorizonYears)
	}
	if c.DegradationRate <= 0 || c.DegradationRate > 1 {
		return fmt.Errorf("invalid degradation rate: %v", c.DegradationRate)
	}
	if c.AutonomyDays <= 0 {
		return fmt.Errorf("invalid autonomy days: %v", c.AutonomyDays)
	}
	for i := 1; i < len(c.ScaleTiers); i++ {
		if c.ScaleTiers[i].BelowKW <= c.ScaleTiers[i-1].BelowKW {
			return fmt.Errorf("scale tiers not ascending at index %d", i)
		}
	}
	return nil
}

// scaleMultiplier resolves the cost penalty for a capacity.
func (c EngineConfig) scaleMultiplier(capacityKW float64) float64 {
	for _, t := range c.ScaleTiers {
		if capacityKW < t.BelowKW {
			return t.Multiplier
		}
	}
	return 1.0
}

// systemEfficiency folds the base loss and the orientation loss into one
// production efficiency factor.
func (c EngineConfig) systemEfficiency(orientationLossPercent float64) float64 {
	return (100 - c.BaseLossPercent - orientationLossPercent) / 100
}
