package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// ValidateConfigPath checks that the config path points to a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadConfig reads the configuration file, applies environment overrides and fills defaults.
// A missing file is not an error: the reporter is expected to run from CI with env only.
func LoadConfig(configPath string) (*Config, error) {
	return loadConfig(configPath, os.Getenv)
}

func loadConfig(configPath string, lookup LookupFunc) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		err := LoadYAML(configPath, cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}

	UpdateConfigFromEnv(cfg, lookup)
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateConfigFromEnv sets configuration values from environment variables, if they are set.
// SSD_REPORTER_GITHUB_TOKEN wins over the generic GITHUB_TOKEN.
func UpdateConfigFromEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.Getenv
	}

	envVars := []struct {
		name   string
		target *string
	}{
		{"GITHUB_TOKEN", &cfg.GitHub.Token},
		{"SSD_REPORTER_GITHUB_TOKEN", &cfg.GitHub.Token},
		{"GITHUB_API_URL", &cfg.GitHub.APIURL},
		{"SSD_UPLOAD_URL", &cfg.SSD.UploadURL},
		{"SSD_FINDINGS_PATH", &cfg.Findings.Path},
	}

	for _, env := range envVars {
		if v := lookup(env.name); v != "" {
			*env.target = v
		}
	}
}

func applyDefaults(cfg *Config) error {
	cfg.GitHub.APIURL = SetThen(cfg.GitHub.APIURL, DefaultGitHubAPIURL)
	cfg.Findings.TopIssues = SetThen(cfg.Findings.TopIssues, DefaultTopIssues)
	cfg.HTTPClient.Timeout = SetThen(cfg.HTTPClient.Timeout, DefaultHTTPConfig().Timeout)

	if cfg.Findings.Path == "" {
		path, err := DefaultFindingsFile()
		if err != nil {
			return err
		}
		cfg.Findings.Path = path
	}
	return nil
}

// DefaultFindingsFile returns the findings file location under the user home folder.
func DefaultFindingsFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get user home folder: %w", err)
	}
	return filepath.Join(append([]string{home}, DefaultFindingsPath...)...), nil
}
