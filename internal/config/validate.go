package config

import (
	"fmt"

	"reelnote/internal/content"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateContent(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelnote/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'reelnote config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateContent() error {
	for _, section := range c.Content.Sections {
		switch section {
		case content.SectionOverview, content.SectionInfo, content.SectionSeasons:
		default:
			return fmt.Errorf("content.sections: unknown section %q", section)
		}
	}
	return nil
}
