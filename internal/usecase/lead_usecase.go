package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"solarvizyon/internal/domain/entities"
	"solarvizyon/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLeadName  = errors.New("invalid lead name")
	ErrInvalidLeadPhone = errors.New("invalid lead phone")
	ErrLeadPersistence  = errors.New("lead persistence failed")
)

// ILeadUseCase registers contact requests after an analysis. A persistence
// failure here is local to the lead path and never invalidates an
// already-computed report.

type ILeadUseCase interface {
	Register(ctx context.Context, lead entities.Lead) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Register(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Phone = strings.TrimSpace(lead.Phone)
	if lead.Name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}
	if lead.Phone == "" {
		return entities.Lead{}, ErrInvalidLeadPhone
	}

	lead.ID = uuid.NewString()
	lead.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.Printf("[lead][usecase] create failed name=%q err=%v", lead.Name, err)
		return entities.Lead{}, fmt.Errorf("%w: %v", ErrLeadPersistence, err)
	}
	log.Printf("[lead][usecase] created id=%s location=%s", created.ID, created.LocationID)
	return created, nil
}
