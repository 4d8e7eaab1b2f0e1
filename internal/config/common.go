package config

import (
	"crypto/tls"
	"time"
)

const (
	// DefaultGitHubAPIURL is the public GitHub REST endpoint.
	DefaultGitHubAPIURL = "https://api.github.com"
	// DefaultTopIssues is how many ranked findings the PR comment lists.
	DefaultTopIssues = 5
	// MaxTopIssues bounds findings.top_issues.
	MaxTopIssues = 50
)

// DefaultFindingsPath is the findings file location relative to the user home folder.
var DefaultFindingsPath = []string{".local", "bin", "ssd-scan-results", "diff-scan-findings.json"}

// Config is the YAML configuration of the reporter.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	GitHub     GitHub     `yaml:"github"`
	SSD        SSD        `yaml:"ssd"`
	Findings   Findings   `yaml:"findings"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type HTTPClient struct {
	Timeout         time.Duration   `yaml:"timeout"`
	TLSClientConfig TLSClientConfig `yaml:"tls_client_config"`
	Proxy           Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GitHub holds the issue-comments API settings.
type GitHub struct {
	APIURL string `yaml:"api_url"`
	Token  string `yaml:"token"`
}

// SSD holds the settings of the findings portal.
type SSD struct {
	UploadURL string `yaml:"upload_url"`
}

// Findings describes where the diff scan findings file lives and how much of it is rendered.
type Findings struct {
	Path      string `yaml:"path"`
	TopIssues int    `yaml:"top_issues"`
}

// BaseHTTPConfig holds common HTTP client configuration settings.
type BaseHTTPConfig struct {
	Timeout         time.Duration // Timeout for requests
	TLSClientConfig *tls.Config   // TLS configuration
	Proxy           string        // Proxy address
}

// DefaultHTTPConfig returns a base configuration for HTTP clients with default values.
func DefaultHTTPConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		Timeout: 30 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: false,
		},
		Proxy: "",
	}
}
