package analyzer

import (
	"strings"

	"github.com/pario-ai/tagtally/pkg/models"
)

// TopHashtags returns the n hashtags most often attached to statuses in rs,
// normalized to lower case with a leading '#'. ignoreTag, usually the
// queried hashtag, is excluded case-insensitively. n <= 0 uses
// DefaultTopHashtags.
func TopHashtags(rs models.ResultSet, ignoreTag string, n int) models.RankedTally {
	if n <= 0 {
		n = DefaultTopHashtags
	}

	var tags []string
	for _, st := range rs.Statuses {
		for _, h := range st.Entities.Hashtags {
			tags = append(tags, "#"+strings.ToLower(h.Text))
		}
	}

	ignore := strings.ToLower(ignoreTag)
	return rank(tags, func(tag string) bool { return tag == ignore }, n)
}
