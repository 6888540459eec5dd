// ABOUTME: Tests for resource location and CSV/JSON parsing.
// ABOUTME: Covers quoted-comma splitting, lookup fallbacks, and empty-file errors.
package seed

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestReadCSVQuotedComma(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.csv": {Data: []byte("h1,h2,h3,h4\nA,B,\"C, D\",E\n")},
	}
	src := NewSource(fsys, testLogger())

	rows, err := src.ReadCSV("sample.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"A", "B", "C, D", "E"}, rows[1])
}

func TestReadCSVTrimsFields(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.csv": {Data: []byte("h1,h2\n  a , b \n")},
	}
	src := NewSource(fsys, testLogger())

	rows, err := src.ReadCSV("sample.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rows[1])
}

func TestReadCSVDropsBlankRows(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.csv": {Data: []byte("h1,h2\na,b\n\nc,d\n")},
	}
	src := NewSource(fsys, testLogger())

	rows, err := src.ReadCSV("sample.csv")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestReadCSVEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.csv": {Data: []byte("h1,h2\n")},
	}
	src := NewSource(fsys, testLogger())

	_, err := src.ReadCSV("sample.csv")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadCSVMissingFile(t *testing.T) {
	src := NewSource(fstest.MapFS{}, testLogger())

	_, err := src.ReadCSV("nope.csv")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocateFallbackPaths(t *testing.T) {
	t.Run("data prefix added", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/foods.csv": {Data: []byte("h\nrow\n")},
		}
		src := NewSource(fsys, testLogger())
		_, err := src.ReadCSV("foods.csv")
		assert.NoError(t, err)
	})

	t.Run("directory stripped to base name", func(t *testing.T) {
		fsys := fstest.MapFS{
			"foods.csv": {Data: []byte("h\nrow\n")},
		}
		src := NewSource(fsys, testLogger())
		_, err := src.ReadCSV("bundle/foods.csv")
		assert.NoError(t, err)
	})
}

func TestDecodeJSONValidates(t *testing.T) {
	fsys := fstest.MapFS{
		"programs/bad.json": {Data: []byte(`{"name": {"en": "X", "tr": "X"}, "days_per_week": 9, "workouts": [{"name": "A", "day": 1, "exercises": [{"name": "Squat", "sets": 3, "reps": 5}]}]}`)},
	}
	src := NewSource(fsys, testLogger())

	var doc programDoc
	err := src.DecodeJSON("programs/bad.json", &doc)
	assert.ErrorIs(t, err, ErrInvalidDataFormat)
}

func TestDecodeJSONMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"doc.json": {Data: []byte(`{not json`)},
	}
	src := NewSource(fsys, testLogger())

	var doc routineDoc
	err := src.DecodeJSON("doc.json", &doc)
	assert.ErrorIs(t, err, ErrParsing)
}

func TestListJSONSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"programs/b.json":   {Data: []byte(`{}`)},
		"programs/a.json":   {Data: []byte(`{}`)},
		"programs/skip.txt": {Data: []byte(``)},
	}
	src := NewSource(fsys, testLogger())

	names, err := src.ListJSON("programs")
	require.NoError(t, err)
	assert.Equal(t, []string{"programs/a.json", "programs/b.json"}, names)
}
