// ABOUTME: Bundled resource locator and CSV/JSON parser for seeding.
// ABOUTME: Tries several lookup paths and splits CSV rows into trimmed fields.
package seed

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Source locates and parses bundled resource files from an fs.FS.
// The default source wraps the embedded seeddata filesystem; tests
// substitute an fstest.MapFS.
type Source struct {
	fsys     fs.FS
	log      logrus.FieldLogger
	validate *validator.Validate
}

// NewSource creates a Source over the given filesystem.
func NewSource(fsys fs.FS, log logrus.FieldLogger) *Source {
	return &Source{
		fsys:     fsys,
		log:      log,
		validate: validator.New(),
	}
}

// locate resolves a logical resource name against several candidate
// paths in order; the first existing file wins.
func (s *Source) locate(name string) ([]byte, error) {
	candidates := []string{name}
	if base := path.Base(name); base != name {
		candidates = append(candidates, base)
	}
	// Legacy layouts kept resources under a data/ prefix.
	candidates = append(candidates, path.Join("data", name))
	if base := path.Base(name); base != name {
		candidates = append(candidates, path.Join("data", base))
	}

	for _, candidate := range candidates {
		data, err := fs.ReadFile(s.fsys, candidate)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
}

// ReadCSV locates a CSV resource and splits it into rows of trimmed
// string fields. Blank rows are dropped with a warning. The first row is
// conventionally a header; callers skip it, not the parser.
func (s *Source) ReadCSV(name string) ([][]string, error) {
	data, err := s.locate(name)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrParsing, name)
	}

	var rows [][]string
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			// Trailing newline produces one empty final element; only
			// interior blanks are worth a warning.
			if i != len(lines)-1 {
				s.log.WithFields(logrus.Fields{"file": name, "line": i + 1}).
					Warn("dropping blank row")
			}
			continue
		}
		rows = append(rows, splitCSVLine(line))
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s has %d non-blank rows", ErrEmptyFile, name, len(rows))
	}
	return rows, nil
}

// splitCSVLine splits one comma-delimited line into trimmed fields.
// Double quotes group a field so embedded commas survive, and the
// surrounding quotes are stripped. Escaped quotes are not supported.
func splitCSVLine(line string) []string {
	var fields []string
	var sb strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(sb.String()))
	return fields
}

// DecodeJSON locates a JSON resource, decodes it into v, and validates
// the result against its struct tags.
func (s *Source) DecodeJSON(name string, v interface{}) error {
	data, err := s.locate(name)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParsing, name, err)
	}
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDataFormat, name, err)
	}
	return nil
}

// ListJSON returns the JSON resources under a subdirectory, sorted by
// fs.WalkDir's lexical order so seeding is deterministic.
func (s *Source) ListJSON(dir string) ([]string, error) {
	var names []string
	err := fs.WalkDir(s.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, dir)
	}
	return names, nil
}
