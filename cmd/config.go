package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/pokedex-cli/internal/config"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the config file",
	}

	cmd.AddCommand(
		newConfigInitCmd(app),
		newConfigShowCmd(app),
	)

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := app.settingsRepo
			if !force {
				_, err := repo.Load(cmd.Context())
				switch {
				case err == nil:
					return fmt.Errorf("config file %s already exists (use --force to overwrite)", repo.Path())
				case !errors.Is(err, config.ErrSettingsNotFound):
					return err
				}
			}

			if err := repo.Save(cmd.Context(), app.settings); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", repo.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := toSettingsOutput(app.settingsRepo.Path(), app.settings)
			if app.format != formatText {
				return writeOutput(cmd, app, payload, nil)
			}

			data, err := toml.Marshal(payload)
			if err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
