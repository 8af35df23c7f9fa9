package cmd

import (
	"io"
	"net/http"

	"github.com/bnema/pokedex-cli/internal/adapters/pokeapi"
	"github.com/bnema/pokedex-cli/internal/adapters/render/pokedex"
	tomlrepo "github.com/bnema/pokedex-cli/internal/adapters/repo/toml"
	"github.com/bnema/pokedex-cli/internal/application"
	"github.com/bnema/pokedex-cli/internal/config"
	"github.com/bnema/pokedex-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	settings     config.Settings
	format       outputFormat
	logger       *zap.Logger
	catalog      *application.Catalog
	session      *application.Session
	store        *application.ComparisonStore
	resolver     *application.EvolutionResolver
	evolution    *application.EvolutionLookup
	settingsRepo ports.SettingsRepository
	renderer     func(pokedex.Document, pokedex.RenderOptions) (string, error)
}

func (a *app) wire(configPath string, verbose bool, logOutput io.Writer) error {
	settings, err := config.Load(viper.New(), configPath)
	if err != nil {
		return err
	}

	level, err := settings.Log.ZapLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	logger := newLogger(logOutput, level)

	repo, err := tomlrepo.NewRepository(configPath)
	if err != nil {
		return err
	}

	client := pokeapi.NewClient(settings.API.BaseURL, &http.Client{Timeout: settings.API.Timeout}, logger.Named("pokeapi"))
	catalog := application.NewCatalog(client, logger.Named("catalog"), settings.API.Concurrency)
	resolver := application.NewEvolutionResolver(client, logger.Named("evolution"))

	a.settings = settings
	a.logger = logger
	a.catalog = catalog
	a.session = application.NewSession(catalog, settings.Page.Limit, logger.Named("session"))
	a.store = application.NewComparisonStore()
	a.resolver = resolver
	a.evolution = application.NewEvolutionLookup(resolver)
	a.settingsRepo = repo
	a.renderer = pokedex.Render

	logger.Debug("app wired",
		zap.String("api_base_url", settings.API.BaseURL),
		zap.Int("page_limit", settings.Page.Limit),
		zap.String("session_id", a.session.ID()),
	)
	return nil
}

func (a *app) renderOptions() pokedex.RenderOptions {
	return pokedex.RenderOptions{SpriteBaseURL: a.settings.Sprites.BaseURL}
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}
