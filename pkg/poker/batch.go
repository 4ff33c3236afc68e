package poker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pokermind/pkg/deck"
)

// EvaluateBatch runs SelectBest over every card set using at most limit goroutines
// (no limit if limit <= 0). Results are returned in input order. The first failure
// cancels the remaining work and is returned wrapped with the index of the card set.
func EvaluateBatch(ctx context.Context, hands []deck.Hand, limit int) ([]EvaluatedHand, error) {
	results := make([]EvaluatedHand, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, cards := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			best, err := SelectBest(cards)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}

			results[i] = best
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
