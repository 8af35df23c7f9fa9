package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/bnema/pokedex-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultDetailConcurrency = 8

var ErrEmptyQuery = errors.New("search query is empty")

// Catalog aggregates listing pages and detail records from a PokemonSource.
type Catalog struct {
	source      ports.PokemonSource
	logger      *zap.Logger
	concurrency int
}

func NewCatalog(source ports.PokemonSource, logger *zap.Logger, concurrency int) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = DefaultDetailConcurrency
	}

	return &Catalog{source: source, logger: logger, concurrency: concurrency}
}

// FetchPage lists one window and fetches every listed record concurrently.
// The result keeps listing order. A failed detail fetch fails the whole page
// and cancels the fetches still running; no partial page is returned.
func (c *Catalog) FetchPage(ctx context.Context, window domain.PageWindow) ([]domain.PokemonSummary, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	refs, err := c.source.ListPokemon(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	summaries := make([]domain.PokemonSummary, len(refs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)
	for i, ref := range refs {
		i, ref := i, ref
		group.Go(func() error {
			record, err := c.source.GetPokemon(groupCtx, ref)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", domain.ErrPartialAggregation, ref.Name, err)
			}
			summaries[i] = record.Summary
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		c.logger.Debug("page fetch failed",
			zap.Int("offset", window.Offset),
			zap.Int("limit", window.Limit),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("page fetched",
		zap.Int("offset", window.Offset),
		zap.Int("limit", window.Limit),
		zap.Int("count", len(summaries)),
	)

	return summaries, nil
}

// Lookup fetches a single pokemon by name or numeric id.
func (c *Catalog) Lookup(ctx context.Context, name string) (domain.PokemonSummary, error) {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return domain.PokemonSummary{}, ErrEmptyQuery
	}

	record, err := c.source.GetPokemon(ctx, domain.ResourceRef{Name: normalized})
	if err != nil {
		return domain.PokemonSummary{}, fmt.Errorf("lookup %s: %w", normalized, err)
	}

	return record.Summary, nil
}
