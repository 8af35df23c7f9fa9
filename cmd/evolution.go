package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/pokedex-cli/internal/adapters/render/pokedex"
	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newEvolutionCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "evolution <name>",
		Short: "Show the evolution chain of a pokemon",
		Long:  "evolution resolves pokemon, species and chain in turn and prints the chain from its base form. Branching chains follow their first branch only.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var chain []domain.EvolutionNode
			err := runFetch(cmd.Context(), app, cmd.ErrOrStderr(), "Resolving evolution chain...", func(ctx context.Context) error {
				var err error
				chain, err = app.resolver.Resolve(ctx, args[0])
				return err
			})
			name := domain.NormalizeName(args[0])
			if err != nil {
				return fmt.Errorf("evolution chain of %q: %w", name, err)
			}

			return writeOutput(cmd, app,
				toEvolutionOutput(name, chain, app.settings.Sprites.BaseURL),
				pokedex.Evolution{Name: name, Chain: chain},
			)
		},
	}
}
