package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/newswire"
	main "github.com/fwojciec/newswire/cmd/newswire"
	"github.com/fwojciec/newswire/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.Config = testConfig()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: newswire")
			assert.Contains(t, stdout.String(), "Commands:")
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Config = testConfig()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: newswire")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Config = testConfig()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"bogus"}, stdout, stderr)

	assert.Error(t, err)
}

func TestScrape_DryRun(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<div class="slot noticia">
				<div class="volanta">Regulation</div>
				<h2 class="titulo"><a href="/n/1">Macau Updates Casino Rules</a></h2>
				<div class="imagen"><a href="/n/1"><img src="/img/1.jpg"></a></div>
			</div>
			<div class="slot noticia">
				<h2 class="titulo"><a href="/n/2">Vegas Operator Reports Growth</a></h2>
			</div>
		</body></html>`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Source.Origin = srv.URL
	cfg.Strategy.Timeout = config.Duration(time.Second)

	m := main.NewMain()
	m.Config = cfg

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{
		"scrape",
		"--url", srv.URL,
		"--entities", "none",
		"--dry-run",
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Articles: 2")
	assert.Contains(t, stdout.String(), "Macau")
	assert.Contains(t, stdout.String(), "Top capitalized words:")
}

func TestScrape_FetchFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Source.Origin = srv.URL

	m := main.NewMain()
	m.Config = cfg

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{
		"scrape",
		"--url", srv.URL,
		"--entities", "none",
		"--dry-run",
	}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, newswire.EUNAVAILABLE, newswire.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error:")
}

func TestScrape_GeminiEntitiesRequireKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Strategy.APIKey = ""

	m := main.NewMain()
	m.Config = cfg

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{
		"scrape",
		"--entities", "gemini",
		"--dry-run",
	}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, newswire.EINVALID, newswire.ErrorCode(err))
}
