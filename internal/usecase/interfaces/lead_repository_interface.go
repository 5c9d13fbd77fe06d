package interfaces

import (
	"context"

	"solarvizyon/internal/domain/entities"
)

// ILeadRepository abstracts the append-only lead store. One record per
// submission; no updates, no read-modify-write.
type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
}
