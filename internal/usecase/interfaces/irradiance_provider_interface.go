package interfaces

import (
	"context"

	"solarvizyon/internal/domain/entities"
)

// IIrradianceProvider abstracts the external solar-resource service that
// returns annual/monthly energy yield for a located, tilted, oriented array.
//
// Contract:
//   - the call is idempotent for identical requests and safe to cache
//   - any failure (timeout, non-success status, malformed payload) must
//     surface as an error; callers never fall back to a default yield
type IIrradianceProvider interface {
	EstimateYield(ctx context.Context, req entities.YieldRequest) (entities.YieldEstimate, error)
}
