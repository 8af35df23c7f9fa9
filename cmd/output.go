package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/pokedex-cli/internal/adapters/render/pokedex"
	"github.com/bnema/pokedex-cli/internal/config"
	"github.com/bnema/pokedex-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatTOML outputFormat = "toml"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(raw string) (outputFormat, error) {
	switch format := outputFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case formatText, formatJSON, formatTOML, formatYAML:
		return format, nil
	case "":
		return formatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json, toml or yaml)", raw)
	}
}

// writeOutput prints payload in the selected structured format, or doc
// through the terminal renderer for text.
func writeOutput(cmd *cobra.Command, app *app, payload any, doc pokedex.Document) error {
	out := cmd.OutOrStdout()

	switch app.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case formatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode toml output: %w", err)
		}
		_, err = out.Write(data)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("encode yaml output: %w", err)
		}
		return enc.Close()
	}

	rendered, err := app.renderer(doc, app.renderOptions())
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}

type statOutput struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Label string `json:"label" yaml:"label" toml:"label"`
	Value int    `json:"value" yaml:"value" toml:"value"`
}

type pokemonOutput struct {
	ID        int          `json:"id" yaml:"id" toml:"id"`
	Name      string       `json:"name" yaml:"name" toml:"name"`
	Sprite    string       `json:"sprite,omitempty" yaml:"sprite,omitempty" toml:"sprite,omitempty"`
	Types     []string     `json:"types" yaml:"types" toml:"types"`
	Abilities []string     `json:"abilities" yaml:"abilities" toml:"abilities"`
	Height    int          `json:"height" yaml:"height" toml:"height"`
	Weight    int          `json:"weight" yaml:"weight" toml:"weight"`
	Stats     []statOutput `json:"stats" yaml:"stats" toml:"stats"`
}

type listOutput struct {
	NextOffset int             `json:"next_offset" yaml:"next_offset" toml:"next_offset"`
	Limit      int             `json:"limit" yaml:"limit" toml:"limit"`
	Loaded     int             `json:"loaded" yaml:"loaded" toml:"loaded"`
	Types      []string        `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
	NameFilter string          `json:"name_filter,omitempty" yaml:"name_filter,omitempty" toml:"name_filter,omitempty"`
	Pokemon    []pokemonOutput `json:"pokemon" yaml:"pokemon" toml:"pokemon"`
}

type detailOutput struct {
	Pokemon pokemonOutput `json:"pokemon" yaml:"pokemon" toml:"pokemon"`
}

type comparisonOutput struct {
	Pokemon []pokemonOutput `json:"pokemon" yaml:"pokemon" toml:"pokemon"`
}

type evolutionNodeOutput struct {
	ID     int    `json:"id" yaml:"id" toml:"id"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	Sprite string `json:"sprite,omitempty" yaml:"sprite,omitempty" toml:"sprite,omitempty"`
}

type evolutionOutput struct {
	Name  string                `json:"name" yaml:"name" toml:"name"`
	Chain []evolutionNodeOutput `json:"chain" yaml:"chain" toml:"chain"`
}

type typesOutput struct {
	Types []string `json:"types" yaml:"types" toml:"types"`
}

type settingsOutput struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	API  struct {
		BaseURL     string `json:"base_url" yaml:"base_url" toml:"base_url"`
		Timeout     string `json:"timeout" yaml:"timeout" toml:"timeout"`
		Concurrency int    `json:"concurrency" yaml:"concurrency" toml:"concurrency"`
	} `json:"api" yaml:"api" toml:"api"`
	Page struct {
		Limit int `json:"limit" yaml:"limit" toml:"limit"`
	} `json:"page" yaml:"page" toml:"page"`
	Sprites struct {
		BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`
	} `json:"sprites" yaml:"sprites" toml:"sprites"`
	Log struct {
		Level string `json:"level" yaml:"level" toml:"level"`
	} `json:"log" yaml:"log" toml:"log"`
}

func toPokemonOutput(p domain.PokemonSummary, spriteBaseURL string) pokemonOutput {
	stats := make([]statOutput, 0, len(p.Stats))
	for _, stat := range p.Stats {
		stats = append(stats, statOutput{Name: stat.Name, Label: domain.StatLabel(stat.Name), Value: stat.Value})
	}

	return pokemonOutput{
		ID:        p.ID,
		Name:      p.Name,
		Sprite:    p.Sprite(spriteBaseURL),
		Types:     nonNil(p.Types),
		Abilities: nonNil(p.Abilities),
		Height:    p.Height,
		Weight:    p.Weight,
		Stats:     stats,
	}
}

func toPokemonOutputs(list []domain.PokemonSummary, spriteBaseURL string) []pokemonOutput {
	out := make([]pokemonOutput, 0, len(list))
	for _, p := range list {
		out = append(out, toPokemonOutput(p, spriteBaseURL))
	}
	return out
}

func toEvolutionOutput(name string, chain []domain.EvolutionNode, spriteBaseURL string) evolutionOutput {
	nodes := make([]evolutionNodeOutput, 0, len(chain))
	for _, node := range chain {
		entry := evolutionNodeOutput{ID: node.ID(), Name: node.SpeciesName}
		if entry.ID > 0 && spriteBaseURL != "" {
			entry.Sprite = domain.SpriteURL(spriteBaseURL, entry.ID)
		}
		nodes = append(nodes, entry)
	}
	return evolutionOutput{Name: name, Chain: nodes}
}

func toSettingsOutput(path string, settings config.Settings) settingsOutput {
	var out settingsOutput
	out.Path = path
	out.API.BaseURL = settings.API.BaseURL
	out.API.Timeout = settings.API.Timeout.String()
	out.API.Concurrency = settings.API.Concurrency
	out.Page.Limit = settings.Page.Limit
	out.Sprites.BaseURL = settings.Sprites.BaseURL
	out.Log.Level = settings.Log.Level
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
