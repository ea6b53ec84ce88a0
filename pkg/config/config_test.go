package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "twitter_cache.json", cfg.CachePath)
	assert.Equal(t, 100, cfg.Search.Count)
	assert.Equal(t, 3, cfg.Analysis.TopHashtags)
	assert.Equal(t, 10, cfg.Analysis.TopWords)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_BEARER_TOKEN", "AAAA-test-123")

	content := `
cache_path: "cache.json"
history: false
search:
  count: 50
  timeout: 5s
auth:
  bearer_token: ${TEST_BEARER_TOKEN}
analysis:
  top_words: 5
  stop_words_file: stop.txt
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cache.json", cfg.CachePath)
	assert.False(t, cfg.History)
	assert.Equal(t, 50, cfg.Search.Count)
	assert.Equal(t, 5*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "AAAA-test-123", cfg.Auth.BearerToken, "env var not expanded")
	assert.Equal(t, 5, cfg.Analysis.TopWords)
	assert.Equal(t, 3, cfg.Analysis.TopHashtags, "unset fields keep defaults")
	assert.Equal(t, "stop.txt", cfg.Analysis.StopWordsFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://api.twitter.com/1.1/search/tweets.json", cfg.Search.Endpoint)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  count: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "search.count")
}

func TestLoadOrDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault("other.yaml")
	assert.Error(t, err)
}
