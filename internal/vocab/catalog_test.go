package vocab

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/abhisek/precis/internal/grade"
)

func eucKR(t *testing.T, s string) []byte {
	t.Helper()
	b, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestParseWords(t *testing.T) {
	doc := "Apple : 사과\n" +
		"\n" +
		"a.m. : 오전\n" +
		"well-known : 잘 알려진\n" +
		"café : 카페\n" +
		"x2 : 숫자\n" +
		"banana 바나나\n" +
		"   \n" +
		" - : 빈칸\n"

	got := parseWords(doc)
	want := []string{"apple", "a.m.", "well-known", "banana"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseWords mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": {Data: []byte("\xEF\xBB\xBFHappy : 행복한\nmat : 매트\n")},
		"b.txt": {Data: eucKR(t, "cat : 고양이\nmat : 매트\n")},
	}

	c := LoadFS(fsys, "a.txt", "b.txt")
	reports := c.Reports()
	require.Len(t, reports, 2)

	assert.Equal(t, StatusLoaded, reports[0].Status)
	assert.Equal(t, EncodingUTF8, reports[0].Encoding)
	assert.Equal(t, 2, reports[0].Words)

	assert.Equal(t, StatusLoaded, reports[1].Status)
	assert.Equal(t, EncodingEUCKR, reports[1].Encoding)
	assert.Equal(t, 2, reports[1].Words)

	assert.False(t, c.Degraded())
	assert.Equal(t, []string{"happy", "mat"}, c.Era(grade.EraA).Words())
	assert.Equal(t, []string{"cat", "mat"}, c.Era(grade.EraB).Words())
	assert.Equal(t, []string{"cat", "happy", "mat"}, c.Combined().Words())

	ov := c.Overlap()
	assert.Equal(t, Overlap{Common: 1, OnlyEraA: 1, OnlyEraB: 1, TotalUnion: 3}, ov)
}

func TestLoadFSDegraded(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.txt":   {Data: []byte{0xFF, 0xFE, 'a', '\n'}},
		"empty.txt": {Data: []byte("\n\n   \n")},
	}

	c := LoadFS(fsys, "missing.txt", "bad.txt")
	reports := c.Reports()
	assert.Equal(t, StatusMissing, reports[0].Status)
	assert.Error(t, reports[0].Err)
	assert.Equal(t, StatusEncodingError, reports[1].Status)
	assert.Error(t, reports[1].Err)
	assert.True(t, c.Degraded())
	assert.Equal(t, 0, c.Combined().Len())

	c = LoadFS(fsys, "empty.txt", "empty.txt")
	assert.Equal(t, StatusEmpty, c.Reports()[0].Status)
	assert.NoError(t, c.Reports()[0].Err)
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEraAFile), []byte("apple : 사과\n"), 0o644))

	c := LoadDir(dir)
	assert.Equal(t, 1, c.Era(grade.EraA).Len())
	assert.Equal(t, StatusMissing, c.Reports()[1].Status)
	assert.True(t, c.ForGrade(grade.Tier1) == c.Era(grade.EraB))
}

func TestForGrade(t *testing.T) {
	c := NewCatalog(NewSet(grade.EraA, "happy", "mat"), NewSet(grade.EraB, "cat"))

	if c.ForGrade(grade.Tier1) != c.Era(grade.EraB) {
		t.Error("tier1 should use era B")
	}
	if c.ForGrade(grade.Tier2) != c.Era(grade.EraA) {
		t.Error("tier2 should use era A")
	}
	if c.ForGrade(grade.Tier3) != c.ForGrade(grade.Tier2) {
		t.Error("tier2 and tier3 should share a set")
	}
	if c.ForGrade(grade.Unknown) != c.Combined() {
		t.Error("unknown grade should use the combined set")
	}
}
