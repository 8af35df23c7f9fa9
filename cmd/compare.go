package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pokedex-cli/internal/adapters/render/pokedex"
	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errComparisonIncomplete = errors.New("comparison needs two distinct pokemon")

func newCompareCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <name> <name> [name...]",
		Short: "Compare two pokemon side by side",
		Long:  "compare toggles each named pokemon into the comparison selection in order. The selection holds two entries: a third name evicts the oldest, and naming one twice removes it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching pokemon...", func(ctx context.Context) error {
				for _, name := range args {
					summary, err := app.catalog.Lookup(ctx, name)
					if err != nil {
						return searchError(name, err)
					}
					app.store.Toggle(summary)
				}
				return nil
			})
			if err != nil {
				return err
			}

			selected := app.store.Selected()
			if !app.store.Ready() {
				return fmt.Errorf("%w (selected %d of %d)", errComparisonIncomplete, len(selected), domain.MaxComparison)
			}

			return writeOutput(cmd, app,
				comparisonOutput{Pokemon: toPokemonOutputs(selected, app.settings.Sprites.BaseURL)},
				pokedex.Comparison{Entries: selected},
			)
		},
	}
}
