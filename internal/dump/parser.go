package dump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"sql-diff/internal/schema"
)

var (
	// The statement terminator is the semicolon at end of line, not the
	// first semicolon anywhere: table options may carry quoted semicolons
	// (COMMENT='a;b') that must stay inside the options tail.
	createTableRe = regexp.MustCompile("(?ms)CREATE TABLE\\s+`([^`]+)`\\s*\\((.*?)\\)\\s*(ENGINE[^\\n]*);$")
	charsetRe     = regexp.MustCompile(`DEFAULT CHARSET=(\w+)`)
	collateRe     = regexp.MustCompile(`COLLATE=(\w+)`)
)

// MissingFileError reports a dump path that does not reference an existing
// file. It is the only structural failure the parser ever surfaces;
// malformed DDL is skipped or best-effort parsed, never an error.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file %s does not exist", e.Path)
}

// ParseFile reads a dump file and extracts its structural schema.
func ParseFile(path string) (*schema.Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(string(content)), nil
}

// Parse scans dump text for CREATE TABLE statements and builds the schema.
// Each statement body runs through the clause segmenter and parsers; table
// options contribute charset and collation. A duplicate table name
// overwrites the earlier entry, last seen wins.
func Parse(content string) *schema.Schema {
	s := schema.NewSchema()

	for _, m := range createTableRe.FindAllStringSubmatch(content, -1) {
		name, body, options := m[1], m[2], m[3]

		t := schema.NewTable(name)
		if cm := charsetRe.FindStringSubmatch(options); cm != nil {
			t.Charset = cm[1]
		}
		if cm := collateRe.FindStringSubmatch(options); cm != nil {
			t.Collation = cm[1]
		}

		for _, clause := range SplitClauses(body) {
			parseClause(clause, t)
		}

		s.AddTable(t)
	}

	return s
}

// Open returns a reader over a dump path, with MissingFileError semantics
// matching ParseFile. Used by the line-level collaborators (tables, strip).
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
