// Package survey models the TAM research questionnaire teachers answer after
// using the tool, and how responses are stored and summarized.
package survey

import "fmt"

// ItemsPerCategory is the number of Likert items in every category.
const ItemsPerCategory = 5

// Category is one construct of the questionnaire.
type Category struct {
	Code      string
	Name      string
	EnglishID string
	Caption   string
	Questions [ItemsPerCategory]string
}

// ItemKey returns the column key of the i-th (1-based) item.
func (c Category) ItemKey(i int) string {
	return fmt.Sprintf("%s_%d", c.Code, i)
}

// Categories lists the questionnaire in presentation order.
var Categories = []Category{
	{
		Code:      "PU",
		Name:      "인지된 유용성",
		EnglishID: "Perceived Usefulness",
		Caption:   "이 AI 도구가 영어 교육에 얼마나 도움이 될 것 같은지 평가해주세요",
		Questions: [ItemsPerCategory]string{
			"이 AI 영어 요약 도구를 사용하면 영어 요약 수업을 더 효과적으로 진행할 수 있을 것이다.",
			"이 도구를 사용하면 학생들의 영어 요약 능력 향상에 도움이 될 것이다.",
			"이 도구는 영어 요약 수업 준비 시간을 단축시켜 줄 것이다.",
			"이 도구를 사용하면 더 질 높은 영어 요약 수업을 할 수 있을 것이다.",
			"전반적으로 이 도구는 영어 요약 교육에 유용할 것이다.",
		},
	},
	{
		Code:      "PEOU",
		Name:      "인지된 사용용이성",
		EnglishID: "Perceived Ease of Use",
		Caption:   "이 AI 도구가 얼마나 사용하기 쉬운지 평가해주세요",
		Questions: [ItemsPerCategory]string{
			"이 AI 영어 요약 도구는 사용하기 쉽다.",
			"이 도구의 사용법을 익히는 것은 어렵지 않다.",
			"이 도구를 능숙하게 사용하는 것은 쉬울 것이다.",
			"이 도구와의 상호작용은 명확하고 이해하기 쉽다.",
			"전반적으로 이 도구는 사용하기 편리하다.",
		},
	},
	{
		Code:      "SE",
		Name:      "자기효능감",
		EnglishID: "Self-Efficacy",
		Caption:   "이 AI 도구를 교육현장에서 효과적으로 활용할 수 있는 자신감을 평가해주세요",
		Questions: [ItemsPerCategory]string{
			"나는 이 AI 영어 요약 도구를 수업에 효과적으로 활용할 수 있다.",
			"나는 이 도구의 기능들을 잘 이해하고 활용할 수 있다.",
			"나는 이 도구를 사용하여 학생들에게 적절한 피드백을 제공할 수 있다.",
			"나는 이 도구를 교육과정과 연계하여 활용할 수 있다.",
			"나는 이 도구 사용에 대해 자신감이 있다.",
		},
	},
	{
		Code:      "BI",
		Name:      "활용의도",
		EnglishID: "Behavioral Intention",
		Caption:   "향후 이 AI 도구를 실제로 활용할 의향을 평가해주세요",
		Questions: [ItemsPerCategory]string{
			"나는 앞으로 이 AI 영어 요약 도구를 수업에서 사용할 의향이 있다.",
			"나는 이 도구를 정기적으로 사용할 계획이 있다.",
			"나는 다른 동료 교사들에게 이 도구를 추천하고 싶다.",
			"나는 이 도구를 내 수업 방식에 통합하여 사용하고 싶다.",
			"기회가 된다면 이 도구를 지속적으로 활용하겠다.",
		},
	},
	{
		Code:      "AD",
		Name:      "추가 문항",
		EnglishID: "Additional",
		Caption:   "AI 교육 도구에 대한 전반적인 인식을 평가해주세요",
		Questions: [ItemsPerCategory]string{
			"이 도구가 우리 학교 교육과정에 적합하다고 생각한다.",
			"이 도구는 학생들의 학습 동기를 향상시킬 것이다.",
			"이 도구는 교사의 업무 효율성을 높여줄 것이다.",
			"이 도구의 AI 피드백은 신뢰할 만하다.",
			"이런 유형의 AI 도구가 교육현장에서 더 활용되어야 한다.",
		},
	},
}

// ItemKeys returns every item key in column order.
func ItemKeys() []string {
	keys := make([]string, 0, len(Categories)*ItemsPerCategory)
	for _, c := range Categories {
		for i := 1; i <= ItemsPerCategory; i++ {
			keys = append(keys, c.ItemKey(i))
		}
	}
	return keys
}

// Likert scale bounds.
const (
	MinScore     = 1
	MaxScore     = 5
	NeutralScore = 3
)

var likertLabels = [...]string{"전혀 그렇지 않다", "그렇지 않다", "보통이다", "그렇다", "매우 그렇다"}

// LikertLabel returns the label for a score, or "" if out of range.
func LikertLabel(score int) string {
	if score < MinScore || score > MaxScore {
		return ""
	}
	return likertLabels[score-1]
}

// Choices offered for the teacher and passage metadata fields.
var (
	TeacherGrades = []string{"고1", "고2", "고3", "고1-2", "고2-3", "고1-3"}
	SchoolTypes   = []string{"일반고", "특목고", "특성화고", "자사고", "중학교", "기타"}
	Experiences   = []string{"5년 미만", "5-10년", "11-15년", "16-20년", "20년 이상"}
	SourceTypes   = []string{"수능 기출", "모의고사", "EBS 교재", "교과서", "사설 문제집", "기타"}
	SourceYears   = []string{"2025", "2024", "2023", "2022", "2021", "2020", "2019", "그 이전"}
)
