package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pokedex-cli/internal/adapters/render/pokedex"
	"github.com/bnema/pokedex-cli/internal/application"
	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var pages int
	var types []string
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pokemon page by page",
		Long:  "list fetches one or more pages from the catalog, then narrows the loaded pokemon by type and name. Filters never trigger extra requests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pages <= 0 {
				return fmt.Errorf("--pages must be positive, got %d", pages)
			}
			for _, tag := range types {
				if !domain.IsCanonicalType(domain.NormalizeName(tag)) {
					return fmt.Errorf("%w: %q", domain.ErrUnknownType, tag)
				}
			}

			session := app.session
			err := runFetch(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching pokemon...", func(ctx context.Context) error {
				for i := 0; i < pages; i++ {
					if _, err := session.LoadNextPage(ctx); err != nil {
						return fmt.Errorf("load page %d: %w", i+1, err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			view := session.View()
			for _, tag := range types {
				if view, err = session.ToggleType(tag); err != nil {
					return err
				}
			}
			if nameFilter != "" {
				view = session.SetNameFilter(nameFilter)
			}

			return writeList(cmd, app, view)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	cmd.Flags().StringSliceVar(&types, "type", nil, "Only show pokemon with any of these types (repeatable)")
	cmd.Flags().StringVar(&nameFilter, "name", "", "Only show pokemon whose name contains this text")

	return cmd
}

func writeList(cmd *cobra.Command, app *app, view application.View) error {
	spriteBase := app.settings.Sprites.BaseURL
	payload := listOutput{
		NextOffset: view.Offset,
		Limit:      view.Limit,
		Loaded:     view.Total,
		Types:      view.SelectedTypes,
		NameFilter: view.NameFilter,
		Pokemon:    toPokemonOutputs(view.Items, spriteBase),
	}

	footer := fmt.Sprintf("loaded %d, next offset %d", view.Total, view.Offset)
	if view.Mode == application.ModeFiltering {
		footer = fmt.Sprintf("%d of %d loaded match the filters", len(view.Items), view.Total)
	}

	return writeOutput(cmd, app, payload, pokedex.List{Items: view.Items, Footer: footer})
}

func newSearchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Look up one pokemon by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var view application.View
			err := runFetch(cmd.Context(), app, cmd.ErrOrStderr(), "Searching...", func(ctx context.Context) error {
				var err error
				view, err = app.session.Search(ctx, args[0])
				return err
			})
			if err != nil {
				return searchError(args[0], err)
			}

			return writeOutput(cmd, app,
				comparisonOutput{Pokemon: toPokemonOutputs(view.Items, app.settings.Sprites.BaseURL)},
				pokedex.List{Title: "Search: " + view.Query, Items: view.Items},
			)
		},
	}
}

func newShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show details and base stats of one pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var summary domain.PokemonSummary
			err := runFetch(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching pokemon...", func(ctx context.Context) error {
				var err error
				summary, err = app.catalog.Lookup(ctx, args[0])
				return err
			})
			if err != nil {
				return searchError(args[0], err)
			}

			return writeOutput(cmd, app,
				detailOutput{Pokemon: toPokemonOutput(summary, app.settings.Sprites.BaseURL)},
				pokedex.Detail{Pokemon: summary},
			)
		},
	}
}

func newTypesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type tags accepted by --type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeOutput(cmd, app, typesOutput{Types: domain.AllTypes()}, pokedex.Types{})
		},
	}
}

func searchError(name string, err error) error {
	switch {
	case errors.Is(err, application.ErrEmptyQuery):
		return errors.New("a pokemon name is required")
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("no pokemon named %q: %w", domain.NormalizeName(name), err)
	default:
		return err
	}
}
