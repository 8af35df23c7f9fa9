package cmd

import (
	"github.com/bnema/pokedex-cli/internal/adapters/tui/browser"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return browser.Run(cmd.Context(), browser.Deps{
				Session:   app.session,
				Store:     app.store,
				Evolution: app.evolution,
				Render:    app.renderOptions(),
				Logger:    app.logger.Named("browser"),
			})
		},
	}
}
