package survey

import (
	"math"
	"strconv"
	"strings"
)

// otherLabel buckets records with an empty distribution field.
const otherLabel = "기타"

// Stats aggregates stored responses.
type Stats struct {
	Total       int                `json:"total_responses"`
	Latest      string             `json:"latest_response,omitempty"`
	SchoolTypes map[string]int     `json:"school_types"`
	GradeLevels map[string]int     `json:"grade_levels"`
	Averages    map[string]float64 `json:"tam_averages"`
}

// Summarize computes Stats over header-keyed records, oldest first. Score
// cells that are not plain integers are ignored; a category with no usable
// cells averages 0.
func Summarize(records []map[string]string) Stats {
	s := Stats{
		Total:       len(records),
		SchoolTypes: map[string]int{},
		GradeLevels: map[string]int{},
		Averages:    make(map[string]float64, len(Categories)),
	}
	if len(records) == 0 {
		for _, c := range Categories {
			s.Averages[c.Code] = 0
		}
		return s
	}

	s.Latest = records[len(records)-1]["timestamp"]
	for _, rec := range records {
		s.SchoolTypes[orOther(rec["school_type"])]++
		s.GradeLevels[orOther(rec["tool_grade_level"])]++
	}

	for _, c := range Categories {
		sum, n := 0, 0
		for i := 1; i <= ItemsPerCategory; i++ {
			key := c.ItemKey(i)
			for _, rec := range records {
				if v, ok := digits(rec[key]); ok {
					sum += v
					n++
				}
			}
		}
		if n > 0 {
			s.Averages[c.Code] = math.Round(float64(sum)/float64(n)*100) / 100
		} else {
			s.Averages[c.Code] = 0
		}
	}
	return s
}

func orOther(s string) string {
	if strings.TrimSpace(s) == "" {
		return otherLabel
	}
	return s
}

// digits parses a cell made only of ASCII digits.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}
