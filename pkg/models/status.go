package models

import (
	"encoding/json"
	"fmt"
)

// ResultSet is the decoded body of a search/tweets response.
type ResultSet struct {
	Statuses []Status `json:"statuses"`
}

// Status is a single tweet in a search result.
type Status struct {
	Text     string   `json:"text"`
	Entities Entities `json:"entities"`
}

// Entities holds the annotations Twitter extracts from a tweet.
type Entities struct {
	Hashtags []Hashtag `json:"hashtags"`
}

// Hashtag is a hashtag annotation. Text carries no leading '#'.
type Hashtag struct {
	Text string `json:"text"`
}

// DecodeResultSet decodes a raw search payload. Missing statuses, entities or
// text fields decode to their zero values. An empty payload is an empty set.
func DecodeResultSet(raw json.RawMessage) (ResultSet, error) {
	var rs ResultSet
	if len(raw) == 0 {
		return rs, nil
	}
	if err := json.Unmarshal(raw, &rs); err != nil {
		return ResultSet{}, fmt.Errorf("decode result set: %w", err)
	}
	return rs, nil
}
