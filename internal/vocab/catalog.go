package vocab

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/precis/internal/grade"
)

// Default file names of the two reference lists published by the ministry.
const (
	DefaultEraAFile = "2015년 교육부 기본 어휘 3000개_전체.txt"
	DefaultEraBFile = "2022년 교육부 기본 어휘 3000개_전체.txt"
)

// Status describes the outcome of loading one reference list.
type Status string

const (
	StatusLoaded        Status = "loaded"
	StatusMissing       Status = "missing"
	StatusEncodingError Status = "encoding-error"
	StatusEmpty         Status = "empty"
)

// LoadReport records how one era's list was loaded.
type LoadReport struct {
	Era      grade.Era
	Source   string
	Status   Status
	Encoding string
	Words    int
	Err      error
}

// Degraded reports whether the era ended up with an empty set.
func (r LoadReport) Degraded() bool {
	return r.Status != StatusLoaded
}

// Catalog holds the two era word sets and their union. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	eraA     *Set
	eraB     *Set
	combined *Set
	reports  []LoadReport
}

// Load reads both word lists from the local filesystem. It never fails: any
// problem with a list yields an empty set and a degraded report.
func Load(eraAPath, eraBPath string) *Catalog {
	a := loadOne(grade.EraA, eraAPath, func() ([]byte, error) { return os.ReadFile(eraAPath) })
	b := loadOne(grade.EraB, eraBPath, func() ([]byte, error) { return os.ReadFile(eraBPath) })
	return assemble(a, b)
}

// LoadDir loads both lists from dir using the default file names.
func LoadDir(dir string) *Catalog {
	return Load(filepath.Join(dir, DefaultEraAFile), filepath.Join(dir, DefaultEraBFile))
}

// LoadFS is Load over an fs.FS.
func LoadFS(fsys fs.FS, eraAPath, eraBPath string) *Catalog {
	a := loadOne(grade.EraA, eraAPath, func() ([]byte, error) { return fs.ReadFile(fsys, eraAPath) })
	b := loadOne(grade.EraB, eraBPath, func() ([]byte, error) { return fs.ReadFile(fsys, eraBPath) })
	return assemble(a, b)
}

// NewCatalog builds a catalog from pre-built sets. Nil sets are treated as
// empty.
func NewCatalog(eraA, eraB *Set) *Catalog {
	if eraA == nil {
		eraA = NewSet(grade.EraA)
	}
	if eraB == nil {
		eraB = NewSet(grade.EraB)
	}
	return &Catalog{
		eraA:     eraA,
		eraB:     eraB,
		combined: union(eraA, eraB),
		reports: []LoadReport{
			reportFor(grade.EraA, eraA),
			reportFor(grade.EraB, eraB),
		},
	}
}

func reportFor(era grade.Era, s *Set) LoadReport {
	r := LoadReport{Era: era, Source: "memory", Status: StatusLoaded, Encoding: EncodingUTF8, Words: s.Len()}
	if s.Len() == 0 {
		r.Status = StatusEmpty
	}
	return r
}

type loaded struct {
	set    *Set
	report LoadReport
}

func loadOne(era grade.Era, source string, read func() ([]byte, error)) loaded {
	report := LoadReport{Era: era, Source: source}
	empty := NewSet(era)

	raw, err := read()
	if err != nil {
		report.Status = StatusMissing
		if !errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("read %s: %w", source, err)
		}
		report.Err = err
		return loaded{set: empty, report: report}
	}

	text, enc, err := decode(raw)
	report.Encoding = enc
	if err != nil {
		report.Status = StatusEncodingError
		report.Err = fmt.Errorf("decode %s: %w", source, err)
		return loaded{set: empty, report: report}
	}

	set := NewSet(era, parseWords(text)...)
	report.Words = set.Len()
	if set.Len() == 0 {
		report.Status = StatusEmpty
		return loaded{set: set, report: report}
	}
	report.Status = StatusLoaded
	return loaded{set: set, report: report}
}

func assemble(a, b loaded) *Catalog {
	return &Catalog{
		eraA:     a.set,
		eraB:     b.set,
		combined: union(a.set, b.set),
		reports:  []LoadReport{a.report, b.report},
	}
}

// Era returns the set for one era. Unknown eras yield the combined set.
func (c *Catalog) Era(e grade.Era) *Set {
	switch e {
	case grade.EraA:
		return c.eraA
	case grade.EraB:
		return c.eraB
	default:
		return c.combined
	}
}

// Combined returns the union of both eras.
func (c *Catalog) Combined() *Set {
	return c.combined
}

// ForGrade returns the target set for a grade: 고1 uses the 2022 list, 고2
// and 고3 the 2015 list, anything else the union.
func (c *Catalog) ForGrade(g grade.Grade) *Set {
	era, ok := g.VocabularyEra()
	if !ok {
		return c.combined
	}
	return c.Era(era)
}

// Reports returns the load reports, era A first.
func (c *Catalog) Reports() []LoadReport {
	out := make([]LoadReport, len(c.reports))
	copy(out, c.reports)
	return out
}

// Degraded reports whether any era failed to load.
func (c *Catalog) Degraded() bool {
	for _, r := range c.reports {
		if r.Degraded() {
			return true
		}
	}
	return false
}

// Overlap describes how the two lists relate.
type Overlap struct {
	Common     int
	OnlyEraA   int
	OnlyEraB   int
	TotalUnion int
}

// Overlap counts words shared between the eras and unique to each.
func (c *Catalog) Overlap() Overlap {
	common := 0
	for w := range c.eraA.words {
		if c.eraB.Contains(w) {
			common++
		}
	}
	return Overlap{
		Common:     common,
		OnlyEraA:   c.eraA.Len() - common,
		OnlyEraB:   c.eraB.Len() - common,
		TotalUnion: c.combined.Len(),
	}
}

// AnalyzeForGrade analyzes text against the grade's target set.
func (c *Catalog) AnalyzeForGrade(text string, g grade.Grade) Stats {
	return Analyze(text, c.ForGrade(g), c.eraA, c.eraB)
}
