package request

import (
	"strings"

	"solarvizyon/internal/domain/entities"
)

// LeadRequest is the contact-form payload. Name and phone are mandatory;
// everything else is context carried along for the sales follow-up.
type LeadRequest struct {
	Name                  string  `json:"name" binding:"required"`
	Phone                 string  `json:"phone" binding:"required"`
	Email                 string  `json:"email"`
	Company               string  `json:"company"`
	LocationID            string  `json:"location_id"`
	SystemMode            string  `json:"system_mode"`
	MonthlyConsumptionKWh float64 `json:"monthly_consumption_kwh"`
	Notes                 string  `json:"notes"`
}

// ToLead translates the payload into the domain record. ID and timestamp
// are assigned server-side by the use case.
func (r LeadRequest) ToLead() entities.Lead {
	return entities.Lead{
		Name:                  strings.TrimSpace(r.Name),
		Phone:                 strings.TrimSpace(r.Phone),
		Email:                 strings.TrimSpace(r.Email),
		Company:               strings.TrimSpace(r.Company),
		LocationID:            strings.TrimSpace(r.LocationID),
		SystemMode:            entities.SystemMode(r.SystemMode),
		MonthlyConsumptionKWh: r.MonthlyConsumptionKWh,
		Notes:                 r.Notes,
	}
}
