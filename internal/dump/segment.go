package dump

import "strings"

// SplitClauses splits the body of a CREATE TABLE statement into its
// top-level clause strings (one column, key, or constraint definition each).
//
// The body is walked character by character tracking parenthesis depth and
// quote state, and a clause boundary is recognized only at a comma that sits
// at depth zero outside any quoted region. Commas and parentheses inside
// enum/set payloads, quoted defaults, or backtick identifiers therefore
// never split a clause, regardless of how the dump wraps its lines.
func SplitClauses(body string) []string {
	var clauses []string
	var cur strings.Builder

	flush := func() {
		clause := strings.TrimSpace(cur.String())
		if clause != "" {
			clauses = append(clauses, clause)
		}
		cur.Reset()
	}

	depth := 0
	var quote byte // 0 when outside a quoted region, '\'' or '`' inside

	for i := 0; i < len(body); i++ {
		ch := body[i]

		if quote != 0 {
			cur.WriteByte(ch)
			switch {
			case ch == '\\' && quote == '\'' && i+1 < len(body):
				// backslash escape inside a string literal
				i++
				cur.WriteByte(body[i])
			case ch == quote:
				if quote == '\'' && i+1 < len(body) && body[i+1] == '\'' {
					// doubled quote stays inside the literal
					i++
					cur.WriteByte(body[i])
				} else {
					quote = 0
				}
			}
			continue
		}

		switch ch {
		case '\'', '`':
			quote = ch
			cur.WriteByte(ch)
		case '(':
			depth++
			cur.WriteByte(ch)
		case ')':
			depth--
			cur.WriteByte(ch)
		case ',':
			if depth == 0 {
				flush()
			} else {
				cur.WriteByte(ch)
			}
		case '\n', '\r':
			// physical line layout carries no meaning at this level
			cur.WriteByte(' ')
		default:
			cur.WriteByte(ch)
		}
	}
	flush()

	return clauses
}
