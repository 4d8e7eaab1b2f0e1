package httpclient

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/ssd-reporter/internal/config"
)

func boolPtr(b bool) *bool { return &b }

func TestApplyHTTPClientConfigDefaults(t *testing.T) {
	got := applyHTTPClientConfig(nil)
	assert.Equal(t, 30*time.Second, got.Timeout)
	assert.False(t, got.TLSClientConfig.InsecureSkipVerify)
	assert.Empty(t, got.Proxy)
}

func TestApplyHTTPClientConfig(t *testing.T) {
	cfg := &config.Config{HTTPClient: config.HTTPClient{
		Timeout:         5 * time.Second,
		TLSClientConfig: config.TLSClientConfig{Verify: boolPtr(false)},
		Proxy:           config.Proxy{Host: "http://proxy.local", Port: 3128},
	}}

	got := applyHTTPClientConfig(cfg)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.True(t, got.TLSClientConfig.InsecureSkipVerify)
	assert.Equal(t, "http://proxy.local:3128", got.Proxy)
}

func TestNewHTTPClient(t *testing.T) {
	cfg := &config.Config{HTTPClient: config.HTTPClient{
		Timeout: 7 * time.Second,
		Proxy:   config.Proxy{Host: "http://proxy.local", Port: 3128},
	}}

	client := NewHTTPClient(nil, cfg)
	require.NotNil(t, client)
	assert.Equal(t, 7*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.Proxy)
	req, _ := http.NewRequest(http.MethodGet, "https://api.github.com", nil)
	proxyURL, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "proxy.local:3128", proxyURL.Host)
}

func TestNewHTTPClientLogsAppliedSettings(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Level: hclog.Debug, Output: &buf, JSONFormat: true})

	cfg := &config.Config{HTTPClient: config.HTTPClient{
		TLSClientConfig: config.TLSClientConfig{Verify: boolPtr(false)},
		Proxy:           config.Proxy{Host: "http://proxy.local", Port: 3128},
	}}
	NewHTTPClient(logger, cfg)

	out := buf.String()
	assert.Contains(t, out, `"@message":"http client configured"`)
	assert.Contains(t, out, `"proxy":"http://proxy.local:3128"`)
	assert.Contains(t, out, `"insecureSkipVerify":true`)
}
