package grade

import (
	"fmt"
	"strings"
)

// Grade is a high-school year level.
type Grade int

const (
	Unknown Grade = iota
	Tier1         // 고1, 2022 curriculum edition
	Tier2         // 고2, 2015 curriculum edition
	Tier3         // 고3, 2015 curriculum edition
)

// All returns the known grades in ascending order.
func All() []Grade {
	return []Grade{Tier1, Tier2, Tier3}
}

// Label returns the Korean label used in curriculum keys and prompts.
func (g Grade) Label() string {
	switch g {
	case Tier1:
		return "고1"
	case Tier2:
		return "고2"
	case Tier3:
		return "고3"
	default:
		return ""
	}
}

// String returns the stable identifier for a grade ("tier1", ...).
func (g Grade) String() string {
	switch g {
	case Tier1:
		return "tier1"
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	default:
		return "unknown"
	}
}

// RequiresTrack reports whether curriculum lookups for this grade need a track.
func (g Grade) RequiresTrack() bool {
	return g == Tier2 || g == Tier3
}

// VocabularyEra returns the reference vocabulary era that is authoritative
// for the grade. ok is false for Unknown.
func (g Grade) VocabularyEra() (era Era, ok bool) {
	switch g {
	case Tier1:
		return EraB, true
	case Tier2, Tier3:
		return EraA, true
	default:
		return "", false
	}
}

// Parse accepts "tier1", "1", "고1" (and the other tiers) case-insensitively.
func Parse(s string) (Grade, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tier1", "1", "고1", "g1":
		return Tier1, nil
	case "tier2", "2", "고2", "g2":
		return Tier2, nil
	case "tier3", "3", "고3", "g3":
		return Tier3, nil
	}
	return Unknown, fmt.Errorf("unknown grade %q: must be tier1, tier2 or tier3", s)
}

// Track is the course track for second and third year students.
type Track int

const (
	NoTrack  Track = iota
	General        // 일반선택+진로선택
	Advanced       // 전문교과
)

// AllTracks returns the known tracks in display order.
func AllTracks() []Track {
	return []Track{General, Advanced}
}

// Label returns the Korean label used in curriculum keys.
func (t Track) Label() string {
	switch t {
	case General:
		return "일반선택+진로선택"
	case Advanced:
		return "전문교과"
	default:
		return ""
	}
}

func (t Track) String() string {
	switch t {
	case General:
		return "general"
	case Advanced:
		return "advanced"
	default:
		return "none"
	}
}

// ParseTrack accepts "general"/"advanced" or the Korean labels. An empty
// string yields NoTrack.
func ParseTrack(s string) (Track, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoTrack, nil
	case "general", "일반선택+진로선택", "일반선택", "진로선택":
		return General, nil
	case "advanced", "전문교과":
		return Advanced, nil
	}
	return NoTrack, fmt.Errorf("unknown track %q: must be general or advanced", s)
}

// Era identifies one of the two reference vocabulary lists by the year of
// the curriculum edition that published it.
type Era string

const (
	EraA Era = "2015"
	EraB Era = "2022"
)

// Eras returns both eras, A first.
func Eras() []Era {
	return []Era{EraA, EraB}
}

// EditionLabel returns the curriculum edition name for the era.
func (e Era) EditionLabel() string {
	return string(e) + " 개정 교육과정"
}
