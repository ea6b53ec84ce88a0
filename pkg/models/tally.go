package models

// TallyEntry is a label with its occurrence count.
type TallyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankedTally is ordered by count descending.
type RankedTally []TallyEntry

// Labels returns the labels in rank order.
func (t RankedTally) Labels() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Label
	}
	return out
}
