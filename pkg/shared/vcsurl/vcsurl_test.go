package vcsurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		host        string
		namespace   string
		repository  string
		pullRequest int
		protocol    Protocol
	}{
		{
			name:       "GitHub scp-like URL",
			input:      "git@github.com:juice-shop/juice-shop.git",
			host:       "github.com",
			namespace:  "juice-shop",
			repository: "juice-shop",
			protocol:   SSH,
		},
		{
			name:       "GitHub HTTP URL with suffix",
			input:      "https://github.com/juice-shop/juice-shop.git",
			host:       "github.com",
			namespace:  "juice-shop",
			repository: "juice-shop",
			protocol:   HTTP,
		},
		{
			name:       "ssh URL with port",
			input:      "ssh://git@ghe.example.com:2222/acme/shop.git",
			host:       "ghe.example.com",
			namespace:  "acme",
			repository: "shop",
			protocol:   SSH,
		},
		{
			name:        "pull request URL",
			input:       "https://github.com/acme/shop/pull/42",
			host:        "github.com",
			namespace:   "acme",
			repository:  "shop",
			pullRequest: 42,
			protocol:    HTTP,
		},
		{
			name:        "pull request files tab",
			input:       "https://ghe.example.com/acme/shop/pull/7/files",
			host:        "ghe.example.com",
			namespace:   "acme",
			repository:  "shop",
			pullRequest: 7,
			protocol:    HTTP,
		},
		{
			name:       "tree URL",
			input:      "https://github.com/acme/shop/tree/main",
			host:       "github.com",
			namespace:  "acme",
			repository: "shop",
			protocol:   HTTP,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.host, got.Host)
			assert.Equal(t, tc.namespace, got.Namespace)
			assert.Equal(t, tc.repository, got.Repository)
			assert.Equal(t, tc.pullRequest, got.PullRequestID)
			assert.Equal(t, tc.protocol, got.Protocol())
			assert.Equal(t, tc.input, got.Raw)
			assert.NotNil(t, got.ParsedURL)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"not a url",
		"ftp://github.com/acme/shop",
		"https://github.com/acme",
		"https://github.com/acme/shop/pull/abc",
		"https://github.com/acme/shop/pull/0",
	} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParsePullRequest(t *testing.T) {
	u, err := ParsePullRequest("https://github.com/acme/shop/pull/42")
	require.NoError(t, err)
	assert.Equal(t, 42, u.PullRequestID)

	_, err = ParsePullRequest("https://github.com/acme/shop")
	assert.ErrorContains(t, err, "not a pull request URL")
}

func TestServerAndAPIURL(t *testing.T) {
	testCases := []struct {
		input  string
		server string
		api    string
	}{
		{input: "https://github.com/acme/shop/pull/1", server: "https://github.com", api: "https://api.github.com"},
		{input: "git@github.com:acme/shop.git", server: "https://github.com", api: "https://api.github.com"},
		{input: "http://ghe.local:8080/acme/shop", server: "http://ghe.local:8080", api: "http://ghe.local:8080/api/v3"},
		{input: "git@ghe.example.com:acme/shop.git", server: "https://ghe.example.com", api: "https://ghe.example.com/api/v3"},
	}

	for _, tc := range testCases {
		u, err := Parse(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.server, u.ServerURL(), tc.input)
		assert.Equal(t, tc.api, u.APIURL(), tc.input)
	}
}
