package vocab

import (
	"sort"

	"github.com/abhisek/precis/internal/grade"
)

// Set is an immutable set of lowercase reference words.
type Set struct {
	era   grade.Era
	words map[string]struct{}
}

// NewSet builds a set from the given words. Words are stored as given; callers
// are expected to pass lowercase words.
func NewSet(era grade.Era, words ...string) *Set {
	s := &Set{era: era, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return s
}

// Contains reports whether w is in the set. A nil set contains nothing.
func (s *Set) Contains(w string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[w]
	return ok
}

// Len returns the number of words. A nil set has length 0.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the members in lexicographic order.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Era returns the era the set was loaded for, or "" for the combined set.
func (s *Set) Era() grade.Era {
	if s == nil {
		return ""
	}
	return s.era
}

func union(a, b *Set) *Set {
	u := &Set{words: make(map[string]struct{}, a.Len()+b.Len())}
	for _, src := range []*Set{a, b} {
		if src == nil {
			continue
		}
		for w := range src.words {
			u.words[w] = struct{}{}
		}
	}
	return u
}
