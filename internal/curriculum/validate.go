package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/precis/internal/grade"
)

// validate performs the structural checks on a descriptor table.
// Returns a combined error describing all problems found, or nil if valid.
func validate(entries []Descriptor, guidelines []WritingGuideline) error {
	var errs []string

	if len(entries) == 0 {
		errs = append(errs, "no curriculum entries")
	}

	seen := make(map[string]bool, len(entries))
	for _, d := range entries {
		if seen[d.Key] {
			errs = append(errs, fmt.Sprintf("duplicate key: %q", d.Key))
		}
		seen[d.Key] = true

		if d.Grade == grade.Unknown {
			errs = append(errs, fmt.Sprintf("entry %q: unknown grade", d.Key))
			continue
		}
		if want := Key(d.Grade, d.Track); d.Key != want {
			errs = append(errs, fmt.Sprintf("entry %q: key does not match grade/track (want %q)", d.Key, want))
		}
		if d.Grade.RequiresTrack() && d.Track == grade.NoTrack {
			errs = append(errs, fmt.Sprintf("entry %q: grade %s requires a track", d.Key, d.Grade))
		}

		switch a := d.Achievement.(type) {
		case nil:
			errs = append(errs, fmt.Sprintf("entry %q: missing achievement", d.Key))
		case LevelRubric:
			if d.Grade != grade.Tier1 {
				errs = append(errs, fmt.Sprintf("entry %q: level rubric is only used for %s", d.Key, grade.Tier1))
			}
			if len(a) == 0 {
				errs = append(errs, fmt.Sprintf("entry %q: empty level rubric", d.Key))
			}
		case SubjectStandards:
			if d.Grade == grade.Tier1 {
				errs = append(errs, fmt.Sprintf("entry %q: %s uses a level rubric, not subject standards", d.Key, grade.Tier1))
			}
			if len(a) == 0 {
				errs = append(errs, fmt.Sprintf("entry %q: empty subject standards", d.Key))
			}
			subjects := make(map[string]bool, len(a))
			for _, s := range a {
				if subjects[s.Subject] {
					errs = append(errs, fmt.Sprintf("entry %q: duplicate subject %q", d.Key, s.Subject))
				}
				subjects[s.Subject] = true
			}
		}

		if era, _ := d.Grade.VocabularyEra(); d.VocabularyEra != era {
			errs = append(errs, fmt.Sprintf("entry %q: vocabulary era %q, want %q", d.Key, d.VocabularyEra, era))
		}
	}

	seenGuide := make(map[grade.Grade]bool, len(guidelines))
	for _, g := range guidelines {
		if g.Grade == grade.Unknown {
			errs = append(errs, "guideline with unknown grade")
			continue
		}
		if seenGuide[g.Grade] {
			errs = append(errs, fmt.Sprintf("duplicate guideline for %s", g.Grade))
		}
		seenGuide[g.Grade] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
