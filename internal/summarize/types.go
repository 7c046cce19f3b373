package summarize

import (
	"errors"
	"strings"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/vocab"
)

// Purpose labels attached to each LLM call.
const (
	PurposeGloss    = "keyword-gloss"
	PurposeSummary  = "reference-summary"
	PurposeFeedback = "summary-feedback"
)

// Summary length target in words, inclusive.
const (
	MinWords = 15
	MaxWords = 20
)

var (
	ErrEmptyPassage = errors.New("passage is empty")
	ErrEmptySummary = errors.New("summary is empty")
)

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// WithinTarget reports whether n words meets the summary length target.
func WithinTarget(n int) bool {
	return n >= MinWords && n <= MaxWords
}

// SummaryInput is the passage to summarize and the audience it is for.
type SummaryInput struct {
	Passage string
	Grade   grade.Grade
	Track   grade.Track
}

// Summary is a generated reference summary.
type Summary struct {
	Text         string `json:"text"`
	WordCount    int    `json:"word_count"`
	WithinTarget bool   `json:"within_target"`
	// Generic is set when no curriculum descriptor matched and the prompt
	// fell back to generic guidance.
	Generic bool `json:"generic"`
}

// FeedbackInput pairs a teacher-written summary with its source passage.
type FeedbackInput struct {
	Passage        string
	TeacherSummary string
	Grade          grade.Grade
	Track          grade.Track
}

// CriterionID identifies one feedback criterion.
type CriterionID string

const (
	CriterionCurriculumFit   CriterionID = "curriculum-fit"
	CriterionSubjectTraits   CriterionID = "subject-traits"
	CriterionVocabularyLevel CriterionID = "vocabulary-level"
	CriterionGrammar         CriterionID = "grammar"
	CriterionContent         CriterionID = "content"
	CriterionClassroomUse    CriterionID = "classroom-use"
	CriterionLength          CriterionID = "length"
	CriterionVocabularyLists CriterionID = "vocabulary-lists"
)

// CriterionInfo names a criterion and what the reviewer should look at.
type CriterionInfo struct {
	ID       CriterionID
	Name     string
	Question string
}

// Criteria lists the feedback criteria in display order.
var Criteria = []CriterionInfo{
	{CriterionCurriculumFit, "교육과정 부합도", "해당 학년·과목유형 기준에 얼마나 부합하는가?"},
	{CriterionSubjectTraits, "과목 특성 반영", "과목의 특성이 잘 반영되었는가?"},
	{CriterionVocabularyLevel, "어휘 수준 적절성", "학습자에게 적절한 어휘인가? (어휘 분석 결과 참고)"},
	{CriterionGrammar, "문법 정확성", "해당 과목 수준에 맞는 문장 구조인가?"},
	{CriterionContent, "내용 완성도", "핵심 내용이 교육과정 기준에 맞게 포함되었는가?"},
	{CriterionClassroomUse, "교육적 활용도", "실제 수업에서 활용 가능한가?"},
	{CriterionLength, "길이 준수", "15-20단어 기준을 지켰는가?"},
	{CriterionVocabularyLists, "어휘 분석", "2015년/2022년 교육부 기본 어휘 기준에 적절한가?"},
}

// CriterionName returns the display name for id, or id itself if unknown.
func CriterionName(id CriterionID) string {
	for _, c := range Criteria {
		if c.ID == id {
			return c.Name
		}
	}
	return string(id)
}

// Criterion is the reviewer's verdict on one criterion.
type Criterion struct {
	ID         CriterionID `json:"id"`
	Name       string      `json:"name"`
	Score      int         `json:"score"`
	Comment    string      `json:"comment"`
	Suggestion string      `json:"suggestion"`
}

// Feedback is the review of a teacher-written summary.
type Feedback struct {
	Criteria     []Criterion `json:"criteria"`
	Overall      string      `json:"overall"`
	Revised      string      `json:"revised_summary"`
	Vocabulary   vocab.Stats `json:"vocabulary"`
	WordCount    int         `json:"word_count"`
	WithinTarget bool        `json:"within_target"`
	Generic      bool        `json:"generic"`
}

// AverageScore is the mean criterion score, 0 if there are none.
func (f *Feedback) AverageScore() float64 {
	if len(f.Criteria) == 0 {
		return 0
	}
	sum := 0
	for _, c := range f.Criteria {
		sum += c.Score
	}
	return float64(sum) / float64(len(f.Criteria))
}
