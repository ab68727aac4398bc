package generation

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-drafter/internal/types"
)

// DefaultBatchLimit caps concurrent generations when GenerateBatch is given a non-positive limit
const DefaultBatchLimit = 4

// BatchItem is one generation request in a batch
type BatchItem struct {
	Name     string // label used in logs and results, e.g. the profile file
	Profile  *types.Profile
	Template *types.Template
	Options  Options
}

// BatchResult is the outcome of one batch item. Err is set instead of Result
// when the item could not be generated.
type BatchResult struct {
	Name   string  `json:"name"`
	Result *Result `json:"result,omitempty"`
	Err    error   `json:"-"`
}

// GenerateBatch generates drafts for items in parallel, at most limit at a
// time. Results are in input order. A failing item does not stop the others;
// the returned error is non-nil only when ctx is cancelled.
func (g *Generator) GenerateBatch(ctx context.Context, items []BatchItem, limit int) ([]BatchResult, error) {
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	results := make([]BatchResult, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, item := range items {
		results[i].Name = item.Name
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			result, err := g.Generate(item.Profile, item.Template, item.Options)
			if err != nil {
				g.logger.Warn("batch item failed", zap.String("item", item.Name), zap.Error(err))
				results[i].Err = err
				return nil
			}
			results[i].Result = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
