package dump

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
)

var (
	createTableLineRe = regexp.MustCompile("CREATE TABLE `([^`]+)`")
	insertLineRe      = regexp.MustCompile("INSERT INTO `([^`]+)`")
)

// ListTables returns the table names encountered via CREATE TABLE matches,
// in file order, duplicates preserved.
func ListTables(r io.Reader) ([]string, error) {
	var tables []string
	sc := newLineScanner(r)
	for sc.Scan() {
		if m := createTableLineRe.FindStringSubmatch(sc.Text()); m != nil {
			tables = append(tables, m[1])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dump: %w", err)
	}
	return tables, nil
}

// StripResult reports which of the requested tables were actually present.
type StripResult struct {
	Found    []string // requested tables seen via a CREATE TABLE match, sorted
	NotFound []string // requested tables never encountered, sorted
}

// StripData copies the dump from r to w, omitting INSERT lines for the
// requested tables. Every other line, including the targeted tables'
// CREATE TABLE statements, is preserved verbatim. progress, when non-nil,
// is invoked once per input line.
func StripData(r io.Reader, w io.Writer, tables []string, progress func()) (*StripResult, error) {
	targets := make(map[string]bool, len(tables))
	for _, t := range tables {
		targets[t] = true
	}
	found := make(map[string]bool)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			skip := false
			if m := insertLineRe.FindStringSubmatch(line); m != nil && targets[m[1]] {
				skip = true
			}
			if !skip {
				if _, werr := io.WriteString(w, line); werr != nil {
					return nil, fmt.Errorf("failed to write output: %w", werr)
				}
			}
			if m := createTableLineRe.FindStringSubmatch(line); m != nil && targets[m[1]] {
				found[m[1]] = true
			}
			if progress != nil {
				progress()
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dump: %w", err)
		}
	}

	res := &StripResult{}
	for t := range targets {
		if found[t] {
			res.Found = append(res.Found, t)
		} else {
			res.NotFound = append(res.NotFound, t)
		}
	}
	sort.Strings(res.Found)
	sort.Strings(res.NotFound)
	return res, nil
}

// newLineScanner builds a scanner sized for dump files, whose INSERT lines
// routinely exceed the default token limit.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return sc
}
