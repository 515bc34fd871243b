package config

import "strings"

func (c *Config) normalize() error {
	c.normalizeTMDB()
	c.normalizeCovers()
	c.normalizeContent()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTMDB() {
	if c.TMDB.APIKey == "" {
		loadDotEnv()
		if value, ok := lookupAPIKeyEnv(); ok {
			c.TMDB.APIKey = value
		}
	}
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.ImageBaseURL = strings.TrimSpace(c.TMDB.ImageBaseURL)
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = defaultTMDBImageBaseURL
	}
}

func (c *Config) normalizeCovers() {
	if c.Covers.MaxWidth <= 0 {
		c.Covers.MaxWidth = defaultCoverMaxWidth
	}
}

func (c *Config) normalizeContent() {
	sections := make([]string, 0, len(c.Content.Sections))
	for _, section := range c.Content.Sections {
		section = strings.ToLower(strings.TrimSpace(section))
		if section != "" {
			sections = append(sections, section)
		}
	}
	c.Content.Sections = sections
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
}
