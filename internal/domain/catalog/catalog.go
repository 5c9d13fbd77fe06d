// Package catalog holds the static lookup tables the engine runs on: the
// canonical location table, panel and battery tiers, orientation losses and
// the monthly seasonality coefficients. Values are constants of the deployed
// variant, not user input.
package catalog

import "solarvizyon/internal/domain/entities"

// locations is the canonical city table. DailyPeakSunHours is the
// full-rated-power equivalent; DaylightHours is the meteorological total for
// reference only.
var locations = []entities.LocationProfile{
	{ID: "istanbul", Name: "İstanbul", Latitude: 41.01, Longitude: 28.98, DailyPeakSunHours: 3.8, DaylightHours: 5.1},
	{ID: "ankara", Name: "Ankara", Latitude: 39.93, Longitude: 32.85, DailyPeakSunHours: 4.2, DaylightHours: 6.7},
	{ID: "izmir", Name: "İzmir", Latitude: 38.42, Longitude: 27.14, DailyPeakSunHours: 4.6, DaylightHours: 8.1},
	{ID: "antalya", Name: "Antalya", Latitude: 36.90, Longitude: 30.70, DailyPeakSunHours: 4.9, DaylightHours: 8.1},
	{ID: "kayseri", Name: "Kayseri", Latitude: 38.72, Longitude: 35.49, DailyPeakSunHours: 4.7, DaylightHours: 7.0},
	{ID: "konya", Name: "Konya", Latitude: 37.87, Longitude: 32.49, DailyPeakSunHours: 4.6, DaylightHours: 7.4},
	{ID: "gaziantep", Name: "Gaziantep", Latitude: 37.07, Longitude: 37.38, DailyPeakSunHours: 4.8, DaylightHours: 7.0},
	{ID: "van", Name: "Van", Latitude: 38.49, Longitude: 43.38, DailyPeakSunHours: 5.0, DaylightHours: 7.9},
	{ID: "adana", Name: "Adana", Latitude: 37.00, Longitude: 35.32, DailyPeakSunHours: 4.8, DaylightHours: 7.6},
	{ID: "trabzon", Name: "Trabzon", Latitude: 41.00, Longitude: 39.72, DailyPeakSunHours: 3.6, DaylightHours: 4.5},
}

var panelSpecs = map[entities.PanelTier]entities.PanelSpec{
	entities.PanelTierStandard: {
		Tier:                  entities.PanelTierStandard,
		AreaEfficiencyKWPerM2: 0.17,
		UnitWatt:              400,
		BaseUnitCostUSDPerKW:  600,
	},
	entities.PanelTierPremium: {
		Tier:                  entities.PanelTierPremium,
		AreaEfficiencyKWPerM2: 0.21,
		UnitWatt:              550,
		BaseUnitCostUSDPerKW:  750,
	},
}

var batterySpecs = map[entities.BatteryTier]entities.BatterySpec{
	entities.BatteryTierGel:     {Tier: entities.BatteryTierGel, UnitCostUSDPerKWh: 300, LifeYears: 5},
	entities.BatteryTierLithium: {Tier: entities.BatteryTierLithium, UnitCostUSDPerKWh: 600, LifeYears: 10},
}

// OrientationFactors couples the production-loss percentage of a roof
// orientation with the azimuth convention the irradiance provider expects
// (0 = south, negative = east).
type OrientationFactors struct {
	LossPercent    float64
	AzimuthDegrees float64
}

var orientationTable = map[entities.Orientation]OrientationFactors{
	entities.OrientationSouth:     {LossPercent: 0, AzimuthDegrees: 0},
	entities.OrientationSoutheast: {LossPercent: 5, AzimuthDegrees: -45},
	entities.OrientationSouthwest: {LossPercent: 5, AzimuthDegrees: 45},
	entities.OrientationEast:      {LossPercent: 15, AzimuthDegrees: -90},
	entities.OrientationWest:      {LossPercent: 15, AzimuthDegrees: 90},
	entities.OrientationNorth:     {LossPercent: 35, AzimuthDegrees: 180},
}

// SeasonalCoefficients weight the flat monthly average into a seasonal
// monthly distribution. The twelve values sum to 12.0.
var SeasonalCoefficients = [12]float64{
	0.60, 0.70, 0.90, 1.10, 1.20, 1.30, 1.35, 1.30, 1.15, 0.95, 0.80, 0.65,
}

// Locations returns the selectable location table in a stable order.
func Locations() []entities.LocationProfile {
	out := make([]entities.LocationProfile, len(locations))
	copy(out, locations)
	return out
}

func LocationByID(id string) (entities.LocationProfile, bool) {
	for _, l := range locations {
		if l.ID == id {
			return l, true
		}
	}
	return entities.LocationProfile{}, false
}

func PanelSpecByTier(tier entities.PanelTier) (entities.PanelSpec, bool) {
	s, ok := panelSpecs[tier]
	return s, ok
}

func BatterySpecByTier(tier entities.BatteryTier) (entities.BatterySpec, bool) {
	s, ok := batterySpecs[tier]
	return s, ok
}

func OrientationByName(o entities.Orientation) (OrientationFactors, bool) {
	f, ok := orientationTable[o]
	return f, ok
}
