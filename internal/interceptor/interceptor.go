// Package interceptor recognizes MySQL-only introspection and session
// statements and answers them without involving the PostgreSQL backend.
// Categories that are purely informational, or whose exact MySQL return
// values are not worth emulating on PostgreSQL, are answered synthetically
// so a client never sees a hard failure for them.
//
// Rules are evaluated in a fixed order with first-match-wins semantics; the
// ordering is part of the package contract and is covered by tests.
package interceptor

import "strings"

// Kind selects the shape of a canned response.
type Kind int

const (
	// Ack is a zero-affected-rows acknowledgement.
	Ack Kind = iota
	// EmptyResultSet is a result set with no columns and no rows.
	EmptyResultSet
)

// Response describes the canned answer for an intercepted statement.
type Response struct {
	Kind Kind
}

// Rule pairs a named predicate over normalized statement text with its
// canned response. Predicates receive text that has been trimmed and
// lower-cased.
type Rule struct {
	Name     string
	Match    func(normalized string) bool
	Response Response
}

// Rules is the ordered interception table. Entries are evaluated top to
// bottom; the first match wins. Reordering entries changes observable
// behavior and is a breaking change.
var Rules = []Rule{
	{
		Name: "session-variables",
		Match: containsAny(
			"@@version_comment",
			"@@sql_mode",
			"@@autocommit",
			"@@session.",
			"@@global.",
		),
		Response: Response{Kind: Ack},
	},
	{
		Name: "session-functions",
		Match: containsAny(
			"connection_id()",
			"database()",
			"user()",
			"version()",
		),
		Response: Response{Kind: Ack},
	},
	{
		Name: "admin-statements",
		Match: hasAnyPrefix(
			"show",
			"describe",
			"desc ",
			"set ",
			"use ",
		),
		Response: Response{Kind: Ack},
	},
	{
		// ENUM and SET column types have no direct PostgreSQL equivalent;
		// statements declaring them are acknowledged instead of translated.
		Name:     "composite-type-declarations",
		Match:    containsAny("enum(", "set("),
		Response: Response{Kind: Ack},
	},
	{
		Name: "temporal-functions",
		Match: func(n string) bool {
			if containsAny("now()", "curdate()", "curtime()")(n) {
				return true
			}
			return strings.Contains(n, "concat(") && strings.Contains(n, "||")
		},
		Response: Response{Kind: Ack},
	},
	{
		Name:     "placeholder-select",
		Match:    hasAnyPrefix("select $$"),
		Response: Response{Kind: Ack},
	},
}

// Intercept evaluates the rule table against the statement. It returns the
// canned response and true when a rule matches; otherwise the statement
// proceeds to translation and execution.
func Intercept(sql string) (Response, bool) {
	n := normalize(sql)
	if n == "" {
		return Response{}, false
	}
	for _, r := range Rules {
		if r.Match(n) {
			return r.Response, true
		}
	}
	return Response{}, false
}

// MatchedRule returns the name of the first matching rule, or "".
// It exists for logging; Intercept is the behavioral entry point.
func MatchedRule(sql string) string {
	n := normalize(sql)
	if n == "" {
		return ""
	}
	for _, r := range Rules {
		if r.Match(n) {
			return r.Name
		}
	}
	return ""
}

func normalize(sql string) string {
	return strings.ToLower(strings.TrimSpace(sql))
}

func containsAny(needles ...string) func(string) bool {
	return func(n string) bool {
		for _, needle := range needles {
			if strings.Contains(n, needle) {
				return true
			}
		}
		return false
	}
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(n string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(n, p) {
				return true
			}
		}
		return false
	}
}
