package curriculum

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/precis/internal/grade"
)

//go:embed curriculum.yaml
var defaultTable []byte

type tableFile struct {
	Entries    []entryYAML     `yaml:"entries"`
	Guidelines []guidelineYAML `yaml:"guidelines"`
}

type entryYAML struct {
	Key                 string           `yaml:"key"`
	Grade               string           `yaml:"grade"`
	Track               string           `yaml:"track"`
	Edition             string           `yaml:"edition"`
	Year                string           `yaml:"year"`
	Subjects            []string         `yaml:"subjects"`
	Rubric              LevelRubric      `yaml:"rubric"`
	Standards           SubjectStandards `yaml:"standards"`
	MainAchievement     string           `yaml:"main_achievement"`
	TopicRange          string           `yaml:"topic_range"`
	SummaryLevel        string           `yaml:"summary_level"`
	KeyFeatures         []string         `yaml:"key_features"`
	VocabularyLevel     string           `yaml:"vocabulary_level"`
	VocabularyReference string           `yaml:"vocabulary_reference"`
	VocabularyEra       string           `yaml:"vocabulary_era"`
	GrammarComplexity   string           `yaml:"grammar_complexity"`
	TextFamiliarity     string           `yaml:"text_familiarity"`
	AssessmentTips      string           `yaml:"assessment_tips"`
}

type guidelineYAML struct {
	Grade               string `yaml:"grade"`
	Edition             string `yaml:"edition"`
	LengthTarget        string `yaml:"length_target"`
	SentenceStructure   string `yaml:"sentence_structure"`
	VocabularyFocus     string `yaml:"vocabulary_focus"`
	VocabularyReference string `yaml:"vocabulary_reference"`
	ContentFocus        string `yaml:"content_focus"`
	LevelDescriptor     string `yaml:"level_descriptor"`
}

// LoadDefault builds the catalog from the embedded standards table.
func LoadDefault() (*Catalog, error) {
	return Parse(defaultTable)
}

// Parse builds a catalog from a YAML standards table.
func Parse(data []byte) (*Catalog, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse curriculum table: %w", err)
	}

	entries := make([]Descriptor, 0, len(tf.Entries))
	for _, e := range tf.Entries {
		d, err := e.descriptor()
		if err != nil {
			return nil, err
		}
		entries = append(entries, d)
	}

	guidelines := make([]WritingGuideline, 0, len(tf.Guidelines))
	for _, g := range tf.Guidelines {
		gr, err := grade.Parse(g.Grade)
		if err != nil {
			return nil, fmt.Errorf("guideline: %w", err)
		}
		guidelines = append(guidelines, WritingGuideline{
			Grade:               gr,
			Edition:             g.Edition,
			LengthTarget:        g.LengthTarget,
			SentenceStructure:   g.SentenceStructure,
			VocabularyFocus:     g.VocabularyFocus,
			VocabularyReference: g.VocabularyReference,
			ContentFocus:        g.ContentFocus,
			LevelDescriptor:     g.LevelDescriptor,
		})
	}

	return New(entries, guidelines)
}

func (e entryYAML) descriptor() (Descriptor, error) {
	g, err := grade.Parse(e.Grade)
	if err != nil {
		return Descriptor{}, fmt.Errorf("entry %q: %w", e.Key, err)
	}
	t, err := grade.ParseTrack(e.Track)
	if err != nil {
		return Descriptor{}, fmt.Errorf("entry %q: %w", e.Key, err)
	}

	var ach Achievement
	switch {
	case len(e.Rubric) > 0 && len(e.Standards) > 0:
		return Descriptor{}, fmt.Errorf("entry %q: both rubric and standards given", e.Key)
	case len(e.Rubric) > 0:
		ach = e.Rubric
	case len(e.Standards) > 0:
		ach = e.Standards
	}

	return Descriptor{
		Key:                 e.Key,
		Grade:               g,
		Track:               t,
		Edition:             e.Edition,
		Year:                e.Year,
		Subjects:            e.Subjects,
		Achievement:         ach,
		MainAchievement:     e.MainAchievement,
		TopicRange:          e.TopicRange,
		SummaryLevel:        e.SummaryLevel,
		KeyFeatures:         e.KeyFeatures,
		VocabularyLevel:     e.VocabularyLevel,
		VocabularyReference: e.VocabularyReference,
		VocabularyEra:       grade.Era(e.VocabularyEra),
		GrammarComplexity:   e.GrammarComplexity,
		TextFamiliarity:     e.TextFamiliarity,
		AssessmentTips:      e.AssessmentTips,
	}, nil
}
