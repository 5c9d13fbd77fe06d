package usecase

import "solarvizyon/internal/domain/entities"

// Ecological equivalence constants: grid carbon intensity in kg CO2 per
// kWh, annual CO2 uptake of one tree in kg, and average passenger-car
// emissions expressed as km driven per ton of CO2.
const (
	co2KgPerKWh   = 0.5
	co2KgPerTree  = 20
	carKMPerTonne = 5000
)

// EstimateImpact derives the report-only environmental equivalence block
// from the annual production figure.
func EstimateImpact(annualProductionKWh float64) entities.EnvironmentalImpact {
	co2Kg := annualProductionKWh * co2KgPerKWh
	return entities.EnvironmentalImpact{
		CO2AvoidedTons:  co2Kg / 1000,
		TreeEquivalent:  int(co2Kg / co2KgPerTree),
		CarKMEquivalent: (co2Kg / 1000) * carKMPerTonne,
	}
}
