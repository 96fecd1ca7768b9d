// Package config loads the reader's settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultAPIURL       = "https://api.mangadex.org"
	DefaultUploadsURL   = "https://uploads.mangadex.org"
	DefaultLanguage     = "en"
	DefaultListLimit    = 20
	DefaultChapterLimit = 100
	DefaultUserAgent    = "mangaread/0.1"
)

// DefaultContentRatings are the ratings requested by the listing and search screens.
var DefaultContentRatings = []string{"safe", "suggestive"}

// Config holds every setting shared by the fetchers and the UI.
type Config struct {
	APIURL         string
	UploadsURL     string
	Language       string
	ListLimit      int
	ChapterLimit   int
	ContentRatings []string
	DataSaver      bool
	UserAgent      string
	LogLevel       zerolog.Level
	LogFile        string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		UploadsURL:     DefaultUploadsURL,
		Language:       DefaultLanguage,
		ListLimit:      DefaultListLimit,
		ChapterLimit:   DefaultChapterLimit,
		ContentRatings: append([]string(nil), DefaultContentRatings...),
		UserAgent:      DefaultUserAgent,
		LogLevel:       zerolog.InfoLevel,
	}
}

// Load reads the configuration from the environment. If envFile is not empty
// it is loaded first; variables already set in the environment take precedence.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("error loading env file '%s': %w", envFile, err)
		}
	}

	cfg := Default()
	var err error

	if v := env("MANGA_API_URL"); v != "" {
		if cfg.APIURL, err = parseBaseURL("MANGA_API_URL", v); err != nil {
			return nil, err
		}
	}
	if v := env("MANGA_UPLOADS_URL"); v != "" {
		if cfg.UploadsURL, err = parseBaseURL("MANGA_UPLOADS_URL", v); err != nil {
			return nil, err
		}
	}
	if v := env("MANGA_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := env("MANGA_LIST_LIMIT"); v != "" {
		if cfg.ListLimit, err = parseLimit("MANGA_LIST_LIMIT", v); err != nil {
			return nil, err
		}
	}
	if v := env("MANGA_CHAPTER_LIMIT"); v != "" {
		if cfg.ChapterLimit, err = parseLimit("MANGA_CHAPTER_LIMIT", v); err != nil {
			return nil, err
		}
	}
	if v := env("MANGA_CONTENT_RATINGS"); v != "" {
		cfg.ContentRatings = splitList(v)
	}
	if v := env("MANGA_DATA_SAVER"); v != "" {
		if cfg.DataSaver, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("error parsing MANGA_DATA_SAVER '%s': %w", v, err)
		}
	}
	if v := env("MANGA_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(v)); err != nil {
			return nil, fmt.Errorf("error parsing LOG_LEVEL '%s': %w", v, err)
		}
	}
	cfg.LogFile = env("MANGA_LOG_FILE")

	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func parseBaseURL(key, value string) (string, error) {
	parsed, err := url.Parse(value)
	if err != nil {
		return "", fmt.Errorf("error parsing %s '%s': %w", key, value, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("error parsing %s '%s': scheme must be http or https", key, value)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("error parsing %s '%s': missing host", key, value)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func parseLimit(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("error converting %s '%s' to int: %w", key, value, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
