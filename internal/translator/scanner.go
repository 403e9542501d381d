package translator

import "strings"

// spanKind distinguishes quoted regions from bare SQL text. Substitution
// rules only ever apply to bare spans, which keeps keywords inside string
// literals and quoted identifiers intact.
type spanKind int

const (
	bareSpan spanKind = iota
	singleQuotedSpan
	doubleQuotedSpan
	backtickQuotedSpan
)

// span is a slice of the statement text. For quoted spans text includes the
// surrounding delimiters.
type span struct {
	kind spanKind
	text string
}

// scan splits a statement into bare and quoted spans. Doubled quote
// characters ('' or "" or ``) and backslash escapes inside single-quoted
// strings are kept within their span. An unterminated quote runs to the end
// of the input; the scanner never fails.
func scan(sql string) []span {
	var spans []span
	var start int
	i := 0

	flushBare := func(end int) {
		if end > start {
			spans = append(spans, span{kind: bareSpan, text: sql[start:end]})
		}
	}

	for i < len(sql) {
		c := sql[i]
		var kind spanKind
		switch c {
		case '\'':
			kind = singleQuotedSpan
		case '"':
			kind = doubleQuotedSpan
		case '`':
			kind = backtickQuotedSpan
		default:
			i++
			continue
		}

		flushBare(i)
		end := scanQuoted(sql, i, c)
		spans = append(spans, span{kind: kind, text: sql[i:end]})
		i = end
		start = end
	}
	flushBare(len(sql))
	return spans
}

// scanQuoted returns the index just past the quoted region starting at
// sql[start] == quote.
func scanQuoted(sql string, start int, quote byte) int {
	i := start + 1
	for i < len(sql) {
		c := sql[i]
		if c == '\\' && quote == '\'' && i+1 < len(sql) {
			i += 2
			continue
		}
		if c == quote {
			if i+1 < len(sql) && sql[i+1] == quote {
				i += 2 // doubled quote stays inside the span
				continue
			}
			return i + 1
		}
		i++
	}
	return len(sql)
}

// requoteIdentifier converts a backtick-quoted identifier span into standard
// double-quote identifier quoting.
func requoteIdentifier(text string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "`"), "`")
	inner = strings.ReplaceAll(inner, "``", "`")
	inner = strings.ReplaceAll(inner, `"`, `""`)
	return `"` + inner + `"`
}
