package entities

// YieldRequest is the query sent to the external irradiance/production
// provider. Azimuth follows the provider convention: 0 = south, negative =
// east, positive = west.
type YieldRequest struct {
	Latitude          float64
	Longitude         float64
	PeakPowerKW       float64
	SystemLossPercent float64
	TiltDegrees       float64
	AzimuthDegrees    float64
}

// YieldEstimate is the provider response: annual energy yield and its
// monthly distribution, already location/tilt/azimuth-aware. No further loss
// or efficiency factor is applied on top of these figures.
type YieldEstimate struct {
	AnnualKWh  float64
	MonthlyKWh [12]float64
}
