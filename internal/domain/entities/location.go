package entities

// LocationProfile is one entry of the canonical location table: a selectable
// city with its reference daily peak-sun-hours figure.
//
// DailyPeakSunHours is the equivalent hours per day the array runs at full
// rated power. DaylightHours is the meteorological total-daylight figure for
// the same city; it is informational only and never enters a calculation.
type LocationProfile struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	DailyPeakSunHours float64 `json:"daily_peak_sun_hours"`
	DaylightHours     float64 `json:"daylight_hours"`
}
