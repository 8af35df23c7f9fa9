package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	API     apiSchema     `toml:"api"`
	Page    pageSchema    `toml:"page"`
	Sprites spritesSchema `toml:"sprites"`
	Log     logSchema     `toml:"log"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type apiSchema struct {
	BaseURL     string `toml:"base_url"`
	Timeout     string `toml:"timeout"`
	Concurrency int    `toml:"concurrency"`
}

type pageSchema struct {
	Limit int `toml:"limit"`
}

type spritesSchema struct {
	BaseURL string `toml:"base_url"`
}

type logSchema struct {
	Level string `toml:"level"`
}
