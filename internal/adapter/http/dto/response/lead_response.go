package response

import (
	"time"

	"solarvizyon/internal/domain/entities"
)

type LeadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	LocationID string    `json:"location_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Phone:      l.Phone,
		LocationID: l.LocationID,
		CreatedAt:  l.CreatedAt,
	}
}
