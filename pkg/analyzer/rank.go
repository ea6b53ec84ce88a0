// Package analyzer ranks the hashtags and words that co-occur in a search
// result set.
package analyzer

import (
	"sort"

	"github.com/pario-ai/tagtally/pkg/models"
)

const (
	// DefaultTopHashtags is the hashtag ranking size.
	DefaultTopHashtags = 3
	// DefaultTopWords is the word ranking size.
	DefaultTopWords = 10
)

// rank counts items, drops those for which skip returns true, and returns
// the n most frequent. Equal counts keep first-occurrence order.
func rank(items []string, skip func(string) bool, n int) models.RankedTally {
	counts := make(map[string]int)
	var order []string
	for _, it := range items {
		if skip != nil && skip(it) {
			continue
		}
		if _, ok := counts[it]; !ok {
			order = append(order, it)
		}
		counts[it]++
	}

	tally := make(models.RankedTally, 0, len(order))
	for _, label := range order {
		tally = append(tally, models.TallyEntry{Label: label, Count: counts[label]})
	}
	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Count > tally[j].Count
	})

	if len(tally) > n {
		tally = tally[:n]
	}
	return tally
}
