package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pario-ai/tagtally/pkg/analyzer"
	"github.com/pario-ai/tagtally/pkg/config"
	"github.com/pario-ai/tagtally/pkg/models"
)

func TestNormalizeHashtag(t *testing.T) {
	assert.Equal(t, "#go", normalizeHashtag("go"))
	assert.Equal(t, "#go", normalizeHashtag("#go"))
	assert.Equal(t, "#Go", normalizeHashtag("  Go \n"))
	assert.Equal(t, "", normalizeHashtag("   "))
}

func TestNumberWord(t *testing.T) {
	assert.Equal(t, "THREE", numberWord(3))
	assert.Equal(t, "TEN", numberWord(10))
	assert.Equal(t, "12", numberWord(12))
}

func TestWriteReport(t *testing.T) {
	r := report{
		Hashtag:  "#go",
		Hashtags: models.RankedTally{{Label: "#golang", Count: 4}},
		Words:    models.RankedTally{{Label: "gopher", Count: 2}, {Label: "generics", Count: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, 3, 10, false))

	out := buf.String()
	assert.Contains(t, out, "THREE MOST FREQUENT HASHTAGS FOR #go\n")
	assert.Contains(t, out, "TEN MOST FREQUENT WORDS FOR #go\n")
	assert.Regexp(t, `#golang\s+appeared 4 times`, out)
	assert.Regexp(t, `generics\s+appeared 1 times`, out)
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, report{Hashtag: "#none"}, 3, 10, false))
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestBuildReport(t *testing.T) {
	raw := json.RawMessage(`{"statuses":[{"text":"the Go gopher","entities":{"hashtags":[{"text":"Go"},{"text":"gophers"}]}}]}`)
	cfg := config.Default().Analysis

	r, err := buildReport(raw, "#go", analyzer.DefaultStopWords(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"#gophers"}, r.Hashtags.Labels())
	assert.Equal(t, []string{"go", "gopher"}, r.Words.Labels())

	_, err = buildReport(json.RawMessage(`[1,2]`), "#go", nil, cfg)
	assert.Error(t, err)
}
