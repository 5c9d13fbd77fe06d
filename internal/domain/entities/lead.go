package entities

import "time"

// Lead is the contact record handed to the append-only lead store after an
// analysis. Its write never affects an already-computed report.
//
// Storage model (DynamoDB):
//   - PK: id
type Lead struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Phone                 string     `json:"phone"`
	Email                 string     `json:"email,omitempty"`
	Company               string     `json:"company,omitempty"`
	LocationID            string     `json:"location_id"`
	SystemMode            SystemMode `json:"system_mode"`
	MonthlyConsumptionKWh float64    `json:"monthly_consumption_kwh"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}
