// Package keywords picks the most frequent content words of a passage.
package keywords

import (
	"bufio"
	_ "embed"
	"sort"
	"strings"

	"github.com/abhisek/precis/internal/vocab"
)

// MinLength is the shortest token considered a keyword.
const MinLength = 3

//go:embed stopwords.txt
var stopwordsData string

var stopwords = parseStopwords(stopwordsData)

func parseStopwords(data string) map[string]struct{} {
	set := make(map[string]struct{})
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	return set
}

// IsStopword reports whether w is excluded from keyword extraction.
func IsStopword(w string) bool {
	_, ok := stopwords[strings.ToLower(w)]
	return ok
}

// Stopwords returns the stop-word list in lexicographic order.
func Stopwords() []string {
	out := make([]string, 0, len(stopwords))
	for w := range stopwords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Extract returns up to topN keywords ranked by descending frequency. Ties
// keep the order in which the words first appear.
func Extract(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range vocab.Tokenize(text) {
		if len(tok) < MinLength || IsStopword(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}
	if order == nil {
		return []string{}
	}
	return order
}
