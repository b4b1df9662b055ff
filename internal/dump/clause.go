package dump

import (
	"regexp"
	"strings"

	"sql-diff/internal/schema"
)

var defaultRe = regexp.MustCompile(`DEFAULT\s+([^,\s]+)`)

// parseClause classifies one clause string and adds the resulting column or
// constraint to t. A clause matching no known shape is dropped silently:
// the parser is lenient by design and never fails on malformed DDL.
func parseClause(clause string, t *schema.Table) {
	switch {
	case strings.HasPrefix(clause, "PRIMARY KEY"):
		if c := parsePrimaryKey(clause); c != nil {
			t.AddConstraint(c)
		}
	case strings.HasPrefix(clause, "UNIQUE KEY"):
		if c := parseUniqueKey(clause); c != nil {
			t.AddConstraint(c)
		}
	case strings.HasPrefix(clause, "CONSTRAINT"):
		if c := parseForeignKey(clause); c != nil {
			t.AddConstraint(c)
		}
	case strings.HasPrefix(clause, "KEY"):
		if c := parseIndex(clause); c != nil {
			t.AddConstraint(c)
		}
	case strings.HasPrefix(clause, "FOREIGN KEY"):
		// bare FOREIGN KEY without a CONSTRAINT name: dropped
	default:
		if col := parseColumn(clause); col != nil {
			t.AddColumn(col)
		}
	}
}

// parseColumn extracts name, data type, nullability, default and extra
// attributes from a column clause. Returns nil when the clause does not
// open with a backtick-quoted identifier.
func parseColumn(clause string) *schema.Column {
	name, rest, ok := readBacktickIdent(clause)
	if !ok {
		return nil
	}
	dataType, attrs := splitDataType(strings.TrimSpace(rest))
	col := &schema.Column{
		Name:     name,
		DataType: dataType,
		Nullable: !strings.Contains(attrs, "NOT NULL"),
	}
	if m := defaultRe.FindStringSubmatch(attrs); m != nil {
		v := m[1]
		col.Default = &v
	}
	if strings.Contains(attrs, "AUTO_INCREMENT") {
		col.Extra = "AUTO_INCREMENT"
	}
	return col
}

// splitDataType splits a column tail into the data type and the attribute
// remainder. enum and set keep their full parenthesized payload as part of
// the type; anything else takes the first whitespace-delimited token.
func splitDataType(rest string) (dataType, attrs string) {
	lower := strings.ToLower(rest)
	kwLen := 0
	switch {
	case strings.HasPrefix(lower, "enum"):
		kwLen = len("enum")
	case strings.HasPrefix(lower, "set"):
		kwLen = len("set")
	}
	if kwLen > 0 {
		i := kwLen
		for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
			i++
		}
		if i < len(rest) && rest[i] == '(' {
			if end := matchParen(rest, i); end >= 0 {
				return rest[:kwLen] + rest[i:end+1], strings.TrimSpace(rest[end+1:])
			}
		}
		// malformed payload: fall back to plain token split
	}
	if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
		return rest[:sp], strings.TrimSpace(rest[sp+1:])
	}
	return rest, ""
}

func parsePrimaryKey(clause string) *schema.Constraint {
	rest := strings.TrimSpace(strings.TrimPrefix(clause, "PRIMARY KEY"))
	cols, _, ok := readColumnList(rest)
	if !ok {
		return nil
	}
	return &schema.Constraint{Name: "PRIMARY", Kind: schema.PrimaryKey, Columns: cols}
}

func parseUniqueKey(clause string) *schema.Constraint {
	rest := strings.TrimSpace(strings.TrimPrefix(clause, "UNIQUE KEY"))
	name, rest, ok := readBacktickIdent(rest)
	if !ok {
		return nil
	}
	cols, _, ok := readColumnList(strings.TrimSpace(rest))
	if !ok {
		return nil
	}
	return &schema.Constraint{Name: name, Kind: schema.Unique, Columns: cols}
}

func parseIndex(clause string) *schema.Constraint {
	rest := strings.TrimSpace(strings.TrimPrefix(clause, "KEY"))
	name, rest, ok := readBacktickIdent(rest)
	if !ok {
		return nil
	}
	cols, _, ok := readColumnList(strings.TrimSpace(rest))
	if !ok {
		return nil
	}
	return &schema.Constraint{Name: name, Kind: schema.Index, Columns: cols}
}

func parseForeignKey(clause string) *schema.Constraint {
	rest := strings.TrimSpace(strings.TrimPrefix(clause, "CONSTRAINT"))
	name, rest, ok := readBacktickIdent(rest)
	if !ok {
		return nil
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "FOREIGN KEY") {
		return nil
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "FOREIGN KEY"))
	cols, rest, ok := readColumnList(rest)
	if !ok {
		return nil
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "REFERENCES") {
		return nil
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "REFERENCES"))
	refTable, rest, ok := readBacktickIdent(rest)
	if !ok {
		return nil
	}
	refCols, _, ok := readColumnList(strings.TrimSpace(rest))
	if !ok {
		return nil
	}
	return &schema.Constraint{
		Name:              name,
		Kind:              schema.ForeignKey,
		Columns:           cols,
		ReferencedTable:   refTable,
		ReferencedColumns: refCols,
	}
}

// readBacktickIdent reads a leading backtick-quoted identifier and returns
// it together with the unconsumed remainder.
func readBacktickIdent(s string) (ident, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if len(s) == 0 || s[0] != '`' {
		return "", "", false
	}
	end := strings.IndexByte(s[1:], '`')
	if end < 0 {
		return "", "", false
	}
	return s[1 : 1+end], s[end+2:], true
}

// readColumnList reads a leading parenthesized column list. Each entry is
// stripped of surrounding backticks and whitespace. An empty list is not
// a valid constraint column set.
func readColumnList(s string) (cols []string, rest string, ok bool) {
	if len(s) == 0 || s[0] != '(' {
		return nil, "", false
	}
	end := matchParen(s, 0)
	if end < 0 {
		return nil, "", false
	}
	for _, part := range strings.Split(s[1:end], ",") {
		if col := strings.Trim(part, "` "); col != "" {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return nil, "", false
	}
	return cols, s[end+1:], true
}

// matchParen returns the index of the parenthesis closing the one at open,
// honoring quoted regions, or -1 when unbalanced.
func matchParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			switch {
			case ch == '\\' && quote == '\'':
				i++
			case ch == quote:
				if quote == '\'' && i+1 < len(s) && s[i+1] == '\'' {
					i++
				} else {
					quote = 0
				}
			}
			continue
		}
		switch ch {
		case '\'', '`':
			quote = ch
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
