package analyzer

import (
	"strings"

	"github.com/pario-ai/tagtally/pkg/models"
)

// edgePunct is trimmed from both ends of every token.
const edgePunct = ",.()[]!?;:…"

// retweetMarker is the "RT" prefix of old-style retweets, lower-cased.
const retweetMarker = "rt"

// Tokenize lower-cases text, splits it on whitespace and trims edgePunct
// from each token. Interior punctuation is kept.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	for i, f := range fields {
		fields[i] = strings.Trim(f, edgePunct)
	}
	return fields
}

// TopWords returns the n most frequent words across status texts in rs.
// "rt", stop words, hashtags and tokens that are pure punctuation are not
// ranked. n <= 0 uses DefaultTopWords.
func TopWords(rs models.ResultSet, stop StopWords, n int) models.RankedTally {
	if n <= 0 {
		n = DefaultTopWords
	}

	var words []string
	for _, st := range rs.Statuses {
		words = append(words, Tokenize(st.Text)...)
	}

	return rank(words, func(w string) bool {
		return w == "" || w == retweetMarker || stop.Contains(w) || strings.HasPrefix(w, "#")
	}, n)
}
