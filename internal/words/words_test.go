package words

import (
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NormalizesLines(t *testing.T) {
	path := writeFile(t, "plage\n  Arbre \r\n\nCHIEN\n")

	got, err := Load(path)
	require.NoError(t, err)

	want := WordList{"PLAGE", "ARBRE", "CHIEN"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected word list (-want +got)\n%s", diff)
	}
}

func TestLoad_DoesNotCheckLength(t *testing.T) {
	path := writeFile(t, "plage\nsoleil\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, WordList{"PLAGE", "SOLEIL"}, got)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "\n   \n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	assert.False(t, errors.Is(err, ErrEmptySource))
}

func TestLoadEmbedded(t *testing.T) {
	list, err := LoadEmbedded()
	require.NoError(t, err)
	assert.NotEmpty(t, list)
	assert.NoError(t, list.Validate(5))
	for _, w := range list {
		assert.Equal(t, Normalize(w), w)
	}
}

func TestValidate(t *testing.T) {
	list := WordList{"PLAGE", "SOLEIL", "ARBRE", "EAU"}

	assert.NoError(t, WordList{"PLAGE", "ARBRE"}.Validate(5))

	err := list.Validate(5)
	var lerr *LengthError
	require.ErrorAs(t, err, &lerr)
	assert.ErrorIs(t, err, ErrWordLength)
	assert.Equal(t, 5, lerr.Length)
	assert.Equal(t, []string{"SOLEIL", "EAU"}, lerr.Words)
	assert.Contains(t, err.Error(), "SOLEIL")
}

func TestValidate_CountsLettersNotBytes(t *testing.T) {
	assert.NoError(t, WordList{"ÉLÈVE"}.Validate(5))
}

func TestFilter(t *testing.T) {
	list := WordList{"PLAGE", "SOLEIL", "ARBRE"}
	assert.Equal(t, WordList{"PLAGE", "ARBRE"}, list.Filter(5))
	assert.Empty(t, list.Filter(3))
}

func TestVocabulary(t *testing.T) {
	v := WordList{"PLAGE", "ARBRE"}.Vocabulary()
	assert.True(t, v.Contains("PLAGE"))
	assert.True(t, v.Contains(" plage "))
	assert.False(t, v.Contains("CHIEN"))
}

func TestPickRandom_CoversList(t *testing.T) {
	list := WordList{"PLAGE", "ARBRE", "CHIEN", "TABLE"}
	r := rand.New(rand.NewSource(42))

	seen := map[string]int{}
	for i := 0; i < 400; i++ {
		w := PickRandom(list, r)
		require.Contains(t, list, w)
		seen[w]++
	}
	assert.Len(t, seen, len(list))
}

func TestRandomSource_SameSeedSameSequence(t *testing.T) {
	list := WordList{"PLAGE", "ARBRE", "CHIEN", "TABLE", "LIVRE"}
	a, err := NewRandomSource(list, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := NewRandomSource(list, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}

func TestRandomSource_CryptoDefault(t *testing.T) {
	list := WordList{"PLAGE", "ARBRE"}
	s, err := NewRandomSource(list, nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Contains(t, list, s.Pick())
	}
}

func TestDailySource(t *testing.T) {
	list := WordList{"PLAGE", "ARBRE", "CHIEN", "TABLE", "LIVRE"}
	day := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	s := &DailySource{List: list, Salt: "salt", Now: func() time.Time { return day }}

	first := s.Pick()
	assert.Equal(t, first, s.Pick())
	assert.Equal(t, PickDaily(list, "salt", day.Add(10*time.Hour)), first)
}

func TestNewRandomSource_EmptyList(t *testing.T) {
	filtered := WordList{"SOLEIL", "EAU"}.Filter(5)

	s, err := NewRandomSource(filtered, nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptySource)

	_, err = NewRandomSource(nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrEmptySource)
}
