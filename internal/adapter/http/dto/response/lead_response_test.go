package response

import (
	"testing"
	"time"

	"solarvizyon/internal/domain/entities"
)

func TestFromLead(t *testing.T) {
	now := time.Now().UTC()
	res := FromLead(entities.Lead{
		ID:         "lead-1",
		Name:       "Ayşe Yılmaz",
		Phone:      "05321234567",
		Email:      "ayse@example.com",
		LocationID: "ankara",
		CreatedAt:  now,
	})
	if res.ID != "lead-1" || res.Name != "Ayşe Yılmaz" || res.Phone != "05321234567" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.LocationID != "ankara" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected context fields: %+v", res)
	}
}
