package httpclient

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/ssd-reporter/internal/config"
)

// NewHTTPClient builds the *http.Client handed to SDKs that take a plain http.Client.
// Only timeout, TLS and proxy settings are taken from the resty client; request logging
// and retries are resty features and do not apply to calls made through the returned client.
func NewHTTPClient(logger hclog.Logger, cfg *config.Config) *http.Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	httpConfig := applyHTTPClientConfig(cfg)
	client := resty.New().
		SetTimeout(httpConfig.Timeout).
		SetTLSClientConfig(httpConfig.TLSClientConfig)
	if httpConfig.Proxy != "" {
		client.SetProxy(httpConfig.Proxy)
	}

	logger.Debug("http client configured",
		"timeout", httpConfig.Timeout,
		"insecureSkipVerify", httpConfig.TLSClientConfig.InsecureSkipVerify,
		"proxy", httpConfig.Proxy)
	return client.GetClient()
}

// applyHTTPClientConfig applies the http_client configuration or uses default values.
func applyHTTPClientConfig(cfg *config.Config) config.BaseHTTPConfig {
	base := config.DefaultHTTPConfig()
	if cfg == nil {
		return base
	}

	httpConfig := cfg.HTTPClient
	base.Timeout = config.SetThen(httpConfig.Timeout, base.Timeout)
	base.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: !config.GetBoolValue(httpConfig.TLSClientConfig, "Verify", true), //nolint:gosec // opt-in via config
	}
	if httpConfig.Proxy.Host != "" && httpConfig.Proxy.Port != 0 {
		base.Proxy = fmt.Sprintf("%s:%d", httpConfig.Proxy.Host, httpConfig.Proxy.Port)
	}
	return base
}
