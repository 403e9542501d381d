// Package translator rewrites MySQL dialect SQL into PostgreSQL-acceptable
// text. It runs two strictly ordered passes: a syntax repair pass that fixes
// a known class of malformed type declarations, then a dialect substitution
// pass driven by a fixed, ordered rule table. Each rule is idempotent, so
// re-translating already-translated text is a no-op.
//
// Substitutions are quote-aware: the statement is split into quoted and bare
// spans and rules apply only to bare spans. The translator never fails;
// text it does not recognize passes through unmodified.
package translator

import (
	"regexp"
	"strings"
)

// rule is one ordered pattern substitution.
type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// repairRules run before dialect substitution so the type-name rules see
// well-formed syntax. Order matters: sized types gain their parentheses
// first, then incorrectly nested column types are unwrapped.
var repairRules = []rule{
	{
		name: "sized-type-missing-parens", // VARCHAR255 -> VARCHAR(255)
		re:   regexp.MustCompile(`(?i)\b(VARCHAR|CHAR|VARBINARY|BINARY)(\d+)\b`),
		repl: `${1}(${2})`,
	},
	{
		name: "nested-column-type", // name(VARCHAR(255)) -> name VARCHAR(255)
		re:   regexp.MustCompile(`(?i)\b([A-Za-z_][A-Za-z0-9_]*)\((VARCHAR|CHAR)\((\d+)\)\)`),
		repl: `${1} ${2}(${3})`,
	},
}

// dialectRules is the ordered substitution table. Earlier rules shadow later
// ones (TINYINT(1) must become BOOLEAN before bare TINYINT is mapped).
var dialectRules = []rule{
	{
		name: "bigint-auto-increment",
		re:   regexp.MustCompile(`(?i)\bBIGINT\s+AUTO_INCREMENT\b`),
		repl: "BIGSERIAL",
	},
	{
		name: "int-auto-increment",
		re:   regexp.MustCompile(`(?i)\b(?:INT|INTEGER)\s+AUTO_INCREMENT\b`),
		repl: "SERIAL",
	},
	{
		name: "stray-auto-increment",
		re:   regexp.MustCompile(`(?i)\s*\bAUTO_INCREMENT\b`),
		repl: "",
	},
	{
		name: "unsigned",
		re:   regexp.MustCompile(`(?i)\s+\bUNSIGNED\b`),
		repl: "",
	},
	{
		name: "tinyint-bool",
		re:   regexp.MustCompile(`(?i)\bTINYINT\s*\(\s*1\s*\)`),
		repl: "BOOLEAN",
	},
	{
		name: "tinyint",
		re:   regexp.MustCompile(`(?i)\bTINYINT\b`),
		repl: "SMALLINT",
	},
	{
		name: "mediumint",
		re:   regexp.MustCompile(`(?i)\bMEDIUMINT\b`),
		repl: "INTEGER",
	},
	{
		name: "long-text",
		re:   regexp.MustCompile(`(?i)\b(?:LONG|MEDIUM)TEXT\b`),
		repl: "TEXT",
	},
	{
		name: "blob",
		re:   regexp.MustCompile(`(?i)\b(?:LONG|MEDIUM)?BLOB\b`),
		repl: "BYTEA",
	},
	{
		name: "varbinary",
		re:   regexp.MustCompile(`(?i)\bVARBINARY\b`),
		repl: "BYTEA",
	},
	{
		name: "sized-binary",
		re:   regexp.MustCompile(`(?i)\bBINARY\s*\(`),
		repl: "BYTEA (",
	},
	{
		name: "now",
		re:   regexp.MustCompile(`(?i)\bNOW\s*\(\s*\)`),
		repl: "CURRENT_TIMESTAMP",
	},
	{
		name: "curdate",
		re:   regexp.MustCompile(`(?i)\bCURDATE\s*\(\s*\)`),
		repl: "CURRENT_DATE",
	},
	{
		name: "curtime",
		re:   regexp.MustCompile(`(?i)\bCURTIME\s*\(\s*\)`),
		repl: "CURRENT_TIME",
	},
	{
		name: "year-type",
		re:   regexp.MustCompile(`(?i)\bYEAR\b`),
		repl: "SMALLINT",
	},
	{
		name: "engine-clause",
		re:   regexp.MustCompile(`(?i)\s*\bENGINE\s*=\s*[^\s;]+`),
		repl: "",
	},
	{
		// MySQL two-argument form: LIMIT offset, count.
		name: "limit-offset",
		re:   regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)\s*,\s*(\d+)`),
		repl: "LIMIT ${2} OFFSET ${1}",
	},
}

var reIfNotExists = regexp.MustCompile(`(?i)\bIF\s+NOT\s+EXISTS\s+`)

// Translate rewrites a MySQL statement into PostgreSQL syntax. Statements
// already in PostgreSQL syntax come back unchanged.
func Translate(sql string) string {
	out := applySpans(sql, repairRules, false)
	out = applySpans(out, dialectRules, true)
	out = stripCreateDatabaseIfNotExists(out)
	return out
}

// applySpans applies the rule table to the bare spans of the statement.
// When requote is set, backtick-quoted identifier spans are converted to
// double-quote quoting as part of the same walk.
func applySpans(sql string, rules []rule, requote bool) string {
	spans := scan(sql)
	var b strings.Builder
	b.Grow(len(sql))
	for _, sp := range spans {
		switch sp.kind {
		case bareSpan:
			text := sp.text
			for _, r := range rules {
				text = r.re.ReplaceAllString(text, r.repl)
			}
			b.WriteString(text)
		case backtickQuotedSpan:
			if requote {
				b.WriteString(requoteIdentifier(sp.text))
			} else {
				b.WriteString(sp.text)
			}
		default:
			b.WriteString(sp.text)
		}
	}
	return b.String()
}

// stripCreateDatabaseIfNotExists removes the IF NOT EXISTS clause from
// CREATE DATABASE statements; PostgreSQL does not accept it there. The
// removal only happens when both tokens are present.
func stripCreateDatabaseIfNotExists(sql string) string {
	lower := strings.ToLower(sql)
	if !strings.Contains(lower, "create database") || !strings.Contains(lower, "if not exists") {
		return sql
	}
	return applySpans(sql, []rule{{name: "if-not-exists", re: reIfNotExists, repl: ""}}, false)
}
