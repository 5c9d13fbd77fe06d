package entities

// PanelTier is the closed enumeration of panel technology tiers. Tier
// attributes are catalog constants, never user-editable.

type PanelTier string

const (
	PanelTierStandard PanelTier = "standard"
	PanelTierPremium  PanelTier = "premium"
)

// PanelSpec holds the fixed attributes of one panel tier.
type PanelSpec struct {
	Tier                  PanelTier `json:"tier"`
	AreaEfficiencyKWPerM2 float64   `json:"area_efficiency_kw_per_m2"`
	UnitWatt              float64   `json:"unit_watt"`
	BaseUnitCostUSDPerKW  float64   `json:"base_unit_cost_usd_per_kw"`
}

// BatteryTier enumerates the storage technologies available for off-grid
// systems.

type BatteryTier string

const (
	BatteryTierGel     BatteryTier = "gel"
	BatteryTierLithium BatteryTier = "lithium"
)

// BatterySpec holds the fixed attributes of one battery tier. It is only
// consulted when the system mode is off-grid.
type BatterySpec struct {
	Tier              BatteryTier `json:"tier"`
	UnitCostUSDPerKWh float64     `json:"unit_cost_usd_per_kwh"`
	LifeYears         int         `json:"life_years"`
}
