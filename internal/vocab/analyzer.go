package vocab

import (
	"sort"
	"strings"
)

// MaxNonTargetExamples caps Stats.NonTargetExamples.
const MaxNonTargetExamples = 10

// Stats summarizes how a text's vocabulary relates to the reference lists.
// All counts are over distinct words.
type Stats struct {
	TotalUniqueWords  int      `json:"total_unique_words"`
	TargetWords       int      `json:"target_words"`
	NonTargetWords    int      `json:"non_target_words"`
	TargetRatio       float64  `json:"target_ratio"`
	EraAWords         int      `json:"era_a_words"`
	EraARatio         float64  `json:"era_a_ratio"`
	EraBWords         int      `json:"era_b_words"`
	EraBRatio         float64  `json:"era_b_ratio"`
	NonTargetExamples []string `json:"non_target_examples"`
	Degraded          bool     `json:"degraded"`
}

// Tokenize returns the maximal runs of ASCII letters in text, lowercased, in
// order of appearance. Anything else separates tokens.
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		if isASCIILetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, strings.ToLower(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, strings.ToLower(text[start:]))
	}
	return tokens
}

// Analyze computes vocabulary statistics for text. Nil sets are treated as
// empty. When target is empty the result is flagged Degraded and every word
// counts as non-target.
func Analyze(text string, target, eraA, eraB *Set) Stats {
	unique := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		unique[tok] = struct{}{}
	}

	var st Stats
	st.TotalUniqueWords = len(unique)
	st.Degraded = target.Len() == 0
	if st.TotalUniqueWords == 0 {
		st.NonTargetExamples = []string{}
		return st
	}

	nonTarget := make([]string, 0, len(unique))
	for w := range unique {
		if target.Contains(w) {
			st.TargetWords++
		} else {
			nonTarget = append(nonTarget, w)
		}
		if eraA.Contains(w) {
			st.EraAWords++
		}
		if eraB.Contains(w) {
			st.EraBWords++
		}
	}
	st.NonTargetWords = len(nonTarget)

	total := float64(st.TotalUniqueWords)
	st.TargetRatio = float64(st.TargetWords) / total
	st.EraARatio = float64(st.EraAWords) / total
	st.EraBRatio = float64(st.EraBWords) / total

	sort.Strings(nonTarget)
	if len(nonTarget) > MaxNonTargetExamples {
		nonTarget = nonTarget[:MaxNonTargetExamples]
	}
	st.NonTargetExamples = nonTarget
	return st
}
