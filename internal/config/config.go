package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultBaseURL       = "https://www.nemlig.com"
	DefaultSearchBaseURL = "https://webapi.prod.knl.nemlig.it/searchgateway/api"
)

type Config struct {
	Version       int    `json:"version"`
	BaseURL       string `json:"base_url"`
	SearchBaseURL string `json:"search_base_url"`
	Username      string `json:"username,omitempty"`
	HTTPUserAgent string `json:"http_user_agent,omitempty"`

	Session *Session `json:"session,omitempty"`
}

// Session is the cached auth bundle from the last login. The bearer token is
// short-lived (minutes), so ExpiresAt decides whether it is worth reusing.
type Session struct {
	XSRFToken     string            `json:"xsrf_token,omitempty"`
	AccessToken   string            `json:"access_token,omitempty"`
	ExpiresAt     time.Time         `json:"expires_at,omitempty"`
	CookiesByHost map[string]string `json:"cookies_by_host,omitempty"`
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nemlig", "config.json"), nil
}

func Load(path string) (Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SearchBaseURL == "" {
		cfg.SearchBaseURL = DefaultSearchBaseURL
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func New() Config {
	return Config{
		Version:       1,
		BaseURL:       DefaultBaseURL,
		SearchBaseURL: DefaultSearchBaseURL,
	}
}

func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && s.XSRFToken != ""
}

// LikelyExpired reports whether the cached bearer token should not be reused.
// A small skew keeps us from presenting a token that dies mid-request.
func (s *Session) LikelyExpired(now time.Time) bool {
	if !s.Valid() {
		return true
	}
	if s.ExpiresAt.IsZero() {
		if exp, ok := AccessTokenExpiresAt(s.AccessToken); ok {
			return !exp.After(now.Add(30 * time.Second))
		}
		return true
	}
	return !s.ExpiresAt.After(now.Add(30 * time.Second))
}
