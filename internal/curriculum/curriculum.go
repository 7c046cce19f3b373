// Package curriculum holds the summary-writing achievement standards for each
// grade and course track.
package curriculum

import (
	"errors"
	"fmt"

	"github.com/abhisek/precis/internal/grade"
)

// ErrNotFound is returned by Resolve when no descriptor exists for the
// requested grade and track.
var ErrNotFound = errors.New("curriculum descriptor not found")

// Achievement is the grade's achievement information. It is either a
// LevelRubric or SubjectStandards.
type Achievement interface {
	achievement()
}

// Level is one step of an achievement rubric.
type Level struct {
	Level string `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// LevelRubric is an ordered set of achievement levels (A first).
type LevelRubric []Level

func (LevelRubric) achievement() {}

// Standard is a per-subject achievement standard.
type Standard struct {
	Subject string `json:"subject" yaml:"subject"`
	Code    string `json:"code" yaml:"code"`
	Text    string `json:"text" yaml:"text"`
}

// Display renders the standard the way it appears in the national
// curriculum documents.
func (s Standard) Display() string {
	return fmt.Sprintf("[%s] %s", s.Code, s.Text)
}

// SubjectStandards lists achievement standards in subject order.
type SubjectStandards []Standard

func (SubjectStandards) achievement() {}

// Descriptor describes what a summary at a given grade and track should
// look like.
type Descriptor struct {
	Key                 string
	Grade               grade.Grade
	Track               grade.Track
	Edition             string
	Year                string
	Subjects            []string
	Achievement         Achievement
	MainAchievement     string
	TopicRange          string
	SummaryLevel        string
	KeyFeatures         []string
	VocabularyLevel     string
	VocabularyReference string
	VocabularyEra       grade.Era
	GrammarComplexity   string
	TextFamiliarity     string
	AssessmentTips      string
}

// Rubric returns the level rubric, or nil if the descriptor carries subject
// standards.
func (d *Descriptor) Rubric() LevelRubric {
	r, _ := d.Achievement.(LevelRubric)
	return r
}

// Standards returns the subject standards, or nil if the descriptor carries a
// level rubric.
func (d *Descriptor) Standards() SubjectStandards {
	s, _ := d.Achievement.(SubjectStandards)
	return s
}

// WritingGuideline is the per-grade guidance given to the summary writer.
type WritingGuideline struct {
	Grade               grade.Grade
	Edition             string
	LengthTarget        string
	SentenceStructure   string
	VocabularyFocus     string
	VocabularyReference string
	ContentFocus        string
	LevelDescriptor     string
}

// Key composes the lookup key for a grade and track. 고1 ignores the track.
func Key(g grade.Grade, t grade.Track) string {
	if !g.RequiresTrack() {
		return g.Label()
	}
	return g.Label() + "_" + t.Label()
}

// Catalog is an immutable, validated set of descriptors.
type Catalog struct {
	entries    []*Descriptor
	byKey      map[string]*Descriptor
	guidelines map[grade.Grade]WritingGuideline
}

// New validates the descriptors and guidelines and builds a catalog.
func New(entries []Descriptor, guidelines []WritingGuideline) (*Catalog, error) {
	if err := validate(entries, guidelines); err != nil {
		return nil, err
	}

	c := &Catalog{
		byKey:      make(map[string]*Descriptor, len(entries)),
		guidelines: make(map[grade.Grade]WritingGuideline, len(guidelines)),
	}
	for i := range entries {
		d := entries[i]
		c.entries = append(c.entries, &d)
		c.byKey[d.Key] = &d
	}
	for _, g := range guidelines {
		c.guidelines[g.Grade] = g
	}
	return c, nil
}

// Resolve returns the descriptor for the grade and track. A miss yields
// ErrNotFound.
func (c *Catalog) Resolve(g grade.Grade, t grade.Track) (*Descriptor, error) {
	if g == grade.Unknown {
		return nil, fmt.Errorf("resolve %s: %w", g, ErrNotFound)
	}
	key := Key(g, t)
	d, ok := c.byKey[key]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", key, ErrNotFound)
	}
	return d, nil
}

// Lookup returns the descriptor stored under key.
func (c *Catalog) Lookup(key string) (*Descriptor, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

// All returns every descriptor in table order.
func (c *Catalog) All() []*Descriptor {
	out := make([]*Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Guideline returns the writing guideline for a grade.
func (c *Catalog) Guideline(g grade.Grade) (WritingGuideline, bool) {
	w, ok := c.guidelines[g]
	return w, ok
}
