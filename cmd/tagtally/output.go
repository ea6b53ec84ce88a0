package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/pario-ai/tagtally/pkg/models"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

var numberWords = []string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE", "TEN"}

func numberWord(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return strconv.Itoa(n)
}

// normalizeHashtag trims input and adds a missing leading '#'.
func normalizeHashtag(input string) string {
	tag := strings.TrimSpace(input)
	if tag == "" || strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}

func heading(text string, styled bool) string {
	if styled {
		return headingStyle.Render(text)
	}
	return text
}

// writeReport prints both rankings, or a single line when both are empty.
func writeReport(w io.Writer, r report, topTags, topWords int, styled bool) error {
	if len(r.Hashtags) == 0 && len(r.Words) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}

	fmt.Fprintln(w, heading(fmt.Sprintf("%s MOST FREQUENT HASHTAGS FOR %s", numberWord(topTags), r.Hashtag), styled))
	if err := writeTally(w, r.Hashtags); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading(fmt.Sprintf("%s MOST FREQUENT WORDS FOR %s", numberWord(topWords), r.Hashtag), styled))
	return writeTally(w, r.Words)
}

func writeTally(w io.Writer, t models.RankedTally) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range t {
		fmt.Fprintf(tw, "\t%s\tappeared %d times\n", e.Label, e.Count)
	}
	return tw.Flush()
}
