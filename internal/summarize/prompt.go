package summarize

import (
	"fmt"
	"strings"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/vocab"
)

// guidance is the curriculum context for one prompt. desc and guide are nil
// when the grade/track had no descriptor.
type guidance struct {
	label string
	desc  *curriculum.Descriptor
	guide *curriculum.WritingGuideline
}

func (g guidance) generic() bool { return g.desc == nil }

func (g guidance) vocabularyReference() string {
	if g.desc != nil {
		return g.desc.VocabularyReference
	}
	return "2015년/2022년 교육부 기본 어휘"
}

const summarySystemPrompt = `You write reference summaries of English reading passages for Korean high-school English teachers. Your summaries model what a strong student at the given grade should produce: accurate, complete sentences, vocabulary and grammar matched to the national curriculum level.`

func writeCurriculumGuide(b *strings.Builder, g guidance) {
	if g.generic() {
		b.WriteString("Curriculum: no standard is registered for this grade and track. Use general high-school guidance:\n")
		b.WriteString("- 주제: 친숙한 일반적 주제\n")
		b.WriteString("- 어휘: 고등학교 수준의 기본 어휘 (2015년/2022년 교육부 기본 어휘)\n")
		b.WriteString("- 구조: 완전한 문장, 핵심 아이디어 중심\n")
		return
	}

	d := g.desc
	fmt.Fprintf(b, "Curriculum: %s\n", d.Edition)
	if r := d.Rubric(); len(r) > 0 {
		fmt.Fprintf(b, "과목: %s\n", strings.Join(d.Subjects, ", "))
		fmt.Fprintf(b, "성취수준: %s (%s수준 목표)\n", r[0].Text, r[0].Level)
	} else {
		fmt.Fprintf(b, "과목 유형: %s\n", d.Track.Label())
		fmt.Fprintf(b, "주요 성취기준: %s\n", d.MainAchievement)
	}
	fmt.Fprintf(b, "- 주제: %s\n", d.TopicRange)
	fmt.Fprintf(b, "- 어휘: %s (%s)\n", d.VocabularyLevel, d.VocabularyReference)
	fmt.Fprintf(b, "- 구조: %s\n", d.GrammarComplexity)
	fmt.Fprintf(b, "- 내용: %s\n", d.TextFamiliarity)
	fmt.Fprintf(b, "- 표현: %s\n", d.SummaryLevel)

	if g.guide != nil {
		w := g.guide
		b.WriteString("\nWriting guideline:\n")
		fmt.Fprintf(b, "- 길이: %s\n", w.LengthTarget)
		fmt.Fprintf(b, "- 문장 구조: %s\n", w.SentenceStructure)
		fmt.Fprintf(b, "- 어휘 초점: %s\n", w.VocabularyFocus)
		fmt.Fprintf(b, "- 내용 초점: %s\n", w.ContentFocus)
	}
}

func buildSummaryUserMessage(passage string, g guidance) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Audience: Korean high school %s\n\n", g.label)
	writeCurriculumGuide(&b, g)

	fmt.Fprintf(&b, "\nPassage:\n%s\n", passage)

	fmt.Fprintf(&b, `
Instructions:
1. Summarize the passage in English in exactly %d-%d words.
2. Use complete sentence structure and include the central idea.
3. Use vocabulary and grammar suited to the audience above, drawing on the %s list.
4. Meet the achievement standard or level described above.
5. Return only the summary text in the "summary" field.`, MinWords, MaxWords, g.vocabularyReference())

	return b.String()
}

const feedbackSystemPrompt = `You review English summaries written by Korean high-school English teachers against the national curriculum. Be specific and practical. Write all evaluation text in Korean; write any revised English summary in English.`

func buildFeedbackUserMessage(in FeedbackInput, g guidance, stats vocab.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Audience: Korean high school %s\n\n", g.label)
	if g.generic() {
		writeCurriculumGuide(&b, g)
	} else {
		d := g.desc
		fmt.Fprintf(&b, "Curriculum: %s\n", d.Edition)
		if r := d.Rubric(); len(r) > 0 {
			fmt.Fprintf(&b, "과목: %s\n", strings.Join(d.Subjects, ", "))
			fmt.Fprintf(&b, "%s수준: %q\n", r[0].Level, r[0].Text)
		} else {
			fmt.Fprintf(&b, "과목 유형: %s\n", d.Track.Label())
			fmt.Fprintf(&b, "주요 성취기준: %s\n", d.MainAchievement)
			for _, s := range d.Standards() {
				fmt.Fprintf(&b, "- %s: %s\n", s.Subject, s.Display())
			}
		}
		b.WriteString(strings.TrimSpace(d.AssessmentTips))
		b.WriteString("\n")
	}

	writeVocabularyAnalysis(&b, g.vocabularyReference(), stats)

	fmt.Fprintf(&b, "\nPassage:\n%s\n", in.Passage)
	fmt.Fprintf(&b, "\nTeacher summary (%d words):\n%s\n", CountWords(in.TeacherSummary), in.TeacherSummary)

	b.WriteString("\nEvaluate the teacher summary on each criterion, in this order:\n")
	for i, c := range Criteria {
		fmt.Fprintf(&b, "%d. %s (%s): %s\n", i+1, c.Name, c.ID, c.Question)
	}
	b.WriteString(`
Instructions:
- Give every criterion a score from 1 to 5 with a concrete comment and, where needed, a suggestion.
- Consider differences between specialized and general high schools and the transition between curriculum editions.
- In "overall", give practical advice for improving the summary.
- In "revised_summary", rewrite the teacher summary in 15-20 English words.`)

	return b.String()
}

// maxPromptExamples caps the non-target examples quoted in the feedback prompt.
const maxPromptExamples = 5

func writeVocabularyAnalysis(b *strings.Builder, reference string, s vocab.Stats) {
	fmt.Fprintf(b, "\n어휘 수준 분석 (%s 기준):\n", reference)
	if s.Degraded {
		b.WriteString("- 기준 어휘 목록을 불러오지 못해 기준 어휘 비율은 참고용이 아닙니다.\n")
	}
	fmt.Fprintf(b, "- 전체 고유 단어: %d개\n", s.TotalUniqueWords)
	fmt.Fprintf(b, "- 해당 학년 기준 어휘: %d개 (%.1f%%)\n", s.TargetWords, s.TargetRatio*100)
	fmt.Fprintf(b, "- 기준 외 어휘: %d개\n", s.NonTargetWords)
	fmt.Fprintf(b, "- 2015년 기준 어휘: %d개 (%.1f%%)\n", s.EraAWords, s.EraARatio*100)
	fmt.Fprintf(b, "- 2022년 기준 어휘: %d개 (%.1f%%)\n", s.EraBWords, s.EraBRatio*100)
	if len(s.NonTargetExamples) > 0 {
		ex := s.NonTargetExamples
		if len(ex) > maxPromptExamples {
			ex = ex[:maxPromptExamples]
		}
		fmt.Fprintf(b, "- 기준 외 어휘 예시: %s\n", strings.Join(ex, ", "))
	}
}

const glossSystemPrompt = `You translate English vocabulary for Korean high-school students. Give the single most fitting Korean meaning for each word as it is commonly used in reading passages.`

func buildGlossUserMessage(words []string) string {
	var b strings.Builder
	b.WriteString("Words:\n")
	for _, w := range words {
		fmt.Fprintf(&b, "- %s\n", w)
	}
	b.WriteString("\nReturn one entry per word, keeping each word exactly as given.")
	return b.String()
}
