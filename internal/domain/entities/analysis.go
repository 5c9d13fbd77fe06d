package entities

// SystemMode selects the grid topology of the installation.
//
// Domain notes:
//   - On-grid systems carry no storage; surplus production may be sold.
//   - Off-grid systems must size battery storage for autonomy and have no
//     sale path for surplus energy.

type SystemMode string

const (
	SystemModeOnGrid  SystemMode = "on_grid"
	SystemModeOffGrid SystemMode = "off_grid"
)

func (m SystemMode) Valid() bool {
	return m == SystemModeOnGrid || m == SystemModeOffGrid
}

// Objective selects the sizing goal. MeetDemand sizes the array for the
// consumption target; MaximizeArea fills the available area and is only
// meaningful on-grid, where the surplus can be exported.

type Objective string

const (
	ObjectiveMeetDemand   Objective = "meet_demand"
	ObjectiveMaximizeArea Objective = "maximize_area"
)

func (o Objective) Valid() bool {
	return o == ObjectiveMeetDemand || o == ObjectiveMaximizeArea
}

// ConsumptionUnit tags the unit of the raw consumption figure supplied by
// the caller.

type ConsumptionUnit string

const (
	ConsumptionUnitBillAmount ConsumptionUnit = "bill_amount"
	ConsumptionUnitDailyKWh   ConsumptionUnit = "daily_kwh"
	ConsumptionUnitMonthlyKWh ConsumptionUnit = "monthly_kwh"
)

func (u ConsumptionUnit) Valid() bool {
	switch u {
	case ConsumptionUnitBillAmount, ConsumptionUnitDailyKWh, ConsumptionUnitMonthlyKWh:
		return true
	}
	return false
}

// InstallationSite is the installation-site label (rooftop vs ground). It is
// a required input: advisory messages reference it, so it must always be
// defined for a run.

type InstallationSite string

const (
	InstallationSiteRooftop InstallationSite = "rooftop"
	InstallationSiteGround  InstallationSite = "ground"
)

func (s InstallationSite) Valid() bool {
	return s == InstallationSiteRooftop || s == InstallationSiteGround
}

// Orientation is one of the six discrete roof orientations. Ground
// installations are always mounted facing south.

type Orientation string

const (
	OrientationSouth     Orientation = "south"
	OrientationSoutheast Orientation = "southeast"
	OrientationSouthwest Orientation = "southwest"
	OrientationEast      Orientation = "east"
	OrientationWest      Orientation = "west"
	OrientationNorth     Orientation = "north"
)

// AnalysisInput is the complete submission for one analysis run. The caller
// supplies everything in one struct and receives one AnalysisReport back;
// no state is carried between calls.
type AnalysisInput struct {
	LocationID       string
	InstallationSite InstallationSite
	SystemMode       SystemMode
	Objective        Objective
	Orientation      Orientation
	AreaM2           float64

	ConsumptionUnit  ConsumptionUnit
	ConsumptionValue float64

	PanelTier   PanelTier
	BatteryTier BatteryTier

	// Market assumptions.
	UnitEnergyPrice    float64 // local currency per kWh
	ExchangeRate       float64 // local currency per USD
	PriceGrowthPercent float64 // expected annual energy price growth

	// UseIrradianceService switches yield sourcing from the static city
	// table to the external provider.
	UseIrradianceService bool

	Loan *LoanTerms
}

// LoanTerms describes an optional fixed-payment loan. It never feeds the
// cash-flow projection; the payment is only compared against monthly savings
// in the report.
type LoanTerms struct {
	PrincipalLocal float64
	MonthlyRate    float64 // fraction, e.g. 0.035
	TermMonths     int
}
