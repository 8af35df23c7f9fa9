package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	format     string
	verbose    bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "pdx",
		Short:         "pdx: a terminal Pokédex backed by PokeAPI",
		Long:          "pdx browses the PokeAPI catalog from the terminal: paged listing, name search, type filters, detail stats, evolution chains and side by side comparison.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(opts.format)
			if err != nil {
				return err
			}
			if err := app.wire(opts.configPath, opts.verbose, cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("wire app: %w", err)
			}
			app.format = format
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: ~/.config/pdx/config.toml)")
	flags.StringVar(&opts.format, "format", string(formatText), "Output format: text, json, toml or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(app),
		newSearchCmd(app),
		newShowCmd(app),
		newEvolutionCmd(app),
		newCompareCmd(app),
		newTypesCmd(app),
		newBrowseCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
