package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateHTTPConfig(&cfg.HTTPClient); err != nil {
		return fmt.Errorf("YAML global config: http_client directive is invalid: %w", err)
	}
	if err := ValidateGitHubConfig(&cfg.GitHub); err != nil {
		return fmt.Errorf("YAML global config: github directive is invalid: %w", err)
	}
	if err := ValidateFindingsConfig(&cfg.Findings); err != nil {
		return fmt.Errorf("YAML global config: findings directive is invalid: %w", err)
	}
	return nil
}

// ValidateHTTPConfig checks if the HTTP configurations have valid values.
func ValidateHTTPConfig(httpConfig *HTTPClient) error {
	if httpConfig == nil {
		return fmt.Errorf("HTTP configuration is nil")
	}
	if err := validateDuration(httpConfig.Timeout, "timeout", 100*time.Second); err != nil {
		return err
	}
	return validateProxy(&httpConfig.Proxy)
}

// ValidateGitHubConfig checks that the API URL is an absolute http(s) URL.
func ValidateGitHubConfig(gh *GitHub) error {
	if gh == nil {
		return fmt.Errorf("github configuration is nil")
	}
	u, err := url.Parse(gh.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", gh.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("api_url must be an absolute http(s) URL: %q", gh.APIURL)
	}
	return nil
}

// ValidateFindingsConfig checks the findings file settings.
func ValidateFindingsConfig(f *Findings) error {
	if f == nil {
		return fmt.Errorf("findings configuration is nil")
	}
	if strings.TrimSpace(f.Path) == "" {
		return fmt.Errorf("path must not be empty")
	}
	if f.TopIssues < 1 || f.TopIssues > MaxTopIssues {
		return fmt.Errorf("top_issues must be between 1 and %d: %d", MaxTopIssues, f.TopIssues)
	}
	return nil
}

// validateDuration checks that a time.Duration is valid and within a specified maximum duration.
func validateDuration(d time.Duration, name string, max time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid duration for %q: %v cannot be negative", name, d)
	}
	if d > max {
		return fmt.Errorf("%q duration is too long: %v exceeds maximum of %v", name, d, max)
	}
	return nil
}

// validateProxy checks if the given Proxy settings are valid.
func validateProxy(proxy *Proxy) error {
	if proxy == nil {
		return fmt.Errorf("proxy configuration is nil")
	}

	// If host or port is not set, skip further validation
	if proxy.Host == "" || proxy.Port == 0 {
		return nil
	}

	if err := validateHost(&proxy.Host); err != nil {
		return err
	}
	return validatePort(proxy.Port)
}

// validateHost ensures the proxy host includes a scheme; adds "http" if missing.
func validateHost(host *string) error {
	if host == nil {
		return fmt.Errorf("host string pointer is nil")
	}

	if !strings.Contains(*host, "://") {
		*host = "http://" + *host
	}
	*host = strings.TrimRight(*host, "/")

	if _, err := url.Parse(*host); err != nil {
		return fmt.Errorf("invalid host URL: %w", err)
	}
	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}
