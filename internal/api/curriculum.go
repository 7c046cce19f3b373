package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
)

type guidelineView struct {
	Edition             string `json:"edition"`
	LengthTarget        string `json:"length_target"`
	SentenceStructure   string `json:"sentence_structure"`
	VocabularyFocus     string `json:"vocabulary_focus"`
	VocabularyReference string `json:"vocabulary_reference"`
	ContentFocus        string `json:"content_focus"`
	LevelDescriptor     string `json:"level_descriptor"`
}

type descriptorView struct {
	Key                 string                      `json:"key"`
	Grade               string                      `json:"grade"`
	Track               string                      `json:"track,omitempty"`
	Edition             string                      `json:"edition"`
	Year                string                      `json:"year"`
	Subjects            []string                    `json:"subjects"`
	Rubric              curriculum.LevelRubric      `json:"rubric,omitempty"`
	Standards           curriculum.SubjectStandards `json:"standards,omitempty"`
	MainAchievement     string                      `json:"main_achievement"`
	TopicRange          string                      `json:"topic_range"`
	SummaryLevel        string                      `json:"summary_level"`
	KeyFeatures         []string                    `json:"key_features"`
	VocabularyLevel     string                      `json:"vocabulary_level"`
	VocabularyReference string                      `json:"vocabulary_reference"`
	VocabularyEra       string                      `json:"vocabulary_era"`
	GrammarComplexity   string                      `json:"grammar_complexity"`
	TextFamiliarity     string                      `json:"text_familiarity"`
	AssessmentTips      string                      `json:"assessment_tips"`
	Guideline           *guidelineView              `json:"guideline,omitempty"`
}

func (h *handler) view(d *curriculum.Descriptor) descriptorView {
	v := descriptorView{
		Key:                 d.Key,
		Grade:               d.Grade.String(),
		Edition:             d.Edition,
		Year:                d.Year,
		Subjects:            d.Subjects,
		Rubric:              d.Rubric(),
		Standards:           d.Standards(),
		MainAchievement:     d.MainAchievement,
		TopicRange:          d.TopicRange,
		SummaryLevel:        d.SummaryLevel,
		KeyFeatures:         d.KeyFeatures,
		VocabularyLevel:     d.VocabularyLevel,
		VocabularyReference: d.VocabularyReference,
		VocabularyEra:       string(d.VocabularyEra),
		GrammarComplexity:   d.GrammarComplexity,
		TextFamiliarity:     d.TextFamiliarity,
		AssessmentTips:      d.AssessmentTips,
	}
	if d.Track != grade.NoTrack {
		v.Track = d.Track.String()
	}
	if w, ok := h.Curriculum.Guideline(d.Grade); ok {
		v.Guideline = &guidelineView{
			Edition:             w.Edition,
			LengthTarget:        w.LengthTarget,
			SentenceStructure:   w.SentenceStructure,
			VocabularyFocus:     w.VocabularyFocus,
			VocabularyReference: w.VocabularyReference,
			ContentFocus:        w.ContentFocus,
			LevelDescriptor:     w.LevelDescriptor,
		}
	}
	return v
}

// GET /api/curriculum?grade=&track=
// Without a grade, every descriptor is listed.
func (h *handler) getCurriculum(c *gin.Context) {
	if h.Curriculum == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", errUnavailable)
		return
	}

	if c.Query("grade") == "" {
		all := h.Curriculum.All()
		out := make([]descriptorView, len(all))
		for i, d := range all {
			out[i] = h.view(d)
		}
		respondOK(c, gin.H{"descriptors": out})
		return
	}

	g, t, err := gradeAndTrack(c.Query("grade"), c.Query("track"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	d, err := h.Curriculum.Resolve(g, t)
	switch {
	case errors.Is(err, curriculum.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   APIError{Message: err.Error(), Code: "not_found"},
			"key":     curriculum.Key(g, t),
			"generic": true,
		})
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	respondOK(c, h.view(d))
}

// gradeAndTrack parses the grade (required) and track (optional).
func gradeAndTrack(gs, ts string) (grade.Grade, grade.Track, error) {
	g, err := grade.Parse(gs)
	if err != nil {
		return grade.Unknown, grade.NoTrack, err
	}
	t, err := grade.ParseTrack(ts)
	if err != nil {
		return g, grade.NoTrack, err
	}
	return g, t, nil
}
