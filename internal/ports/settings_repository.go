package ports

import (
	"context"

	"github.com/bnema/pokedex-cli/internal/config"
)

type SettingsRepository interface {
	Path() string
	// Load returns config.ErrSettingsNotFound when the file does not exist.
	Load(ctx context.Context) (config.Settings, error)
	Save(ctx context.Context, settings config.Settings) error
}
