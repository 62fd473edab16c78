package ballistics

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ballistics_calculator/internal/models"
)

// BatchItem is the per-request outcome of a batch calculation. Exactly
// one of Response and Error is set.
type BatchItem struct {
	Response *models.CalculationResponse `json:"response,omitempty"`
	Error    *models.ErrorResponse       `json:"error,omitempty"`
}

// CalculateBatch runs several calculations concurrently. The simulation
// is CPU-bound, so parallelism is capped at the number of cores. One
// request failing does not abort the others; results keep request order.
func (s *Service) CalculateBatch(ctx context.Context, reqs []models.CalculationRequest) []BatchItem {
	items := make([]BatchItem, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				items[i] = BatchItem{Error: &models.ErrorResponse{
					Detail:    err.Error(),
					ErrorCode: CodeEngine,
				}}
				return nil
			}
			resp, err := s.Calculate(req)
			if err != nil {
				items[i] = BatchItem{Error: &models.ErrorResponse{
					Detail:    err.Error(),
					ErrorCode: ErrorCode(err),
				}}
				return nil
			}
			items[i] = BatchItem{Response: &resp}
			return nil
		})
	}
	_ = g.Wait()

	return items
}
