// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"regexp"
	"strings"

	"mygres/proxy/internal/errors"
)

// reNestedColumn matches column definitions missing the space between the
// column name and its type, e.g. "test(name(VARCHAR(255)))".
var reNestedColumn = regexp.MustCompile(`\w+\(\s*\w+\s*\(`)

// ClassifyError turns a backend execution failure into a statement-level
// error with a more actionable message when the failure matches a known
// shape. Classification is heuristic, based on the error text and the
// statement that produced it.
func ClassifyError(sql string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "syntax error") {
		if hasVarcharWithoutLength(sql) {
			return errors.Wrap(errors.StatementFailed,
				"VARCHAR requires a length, e.g. VARCHAR(255)", err)
		}
		if isCreateTableMissingSpaces(sql) {
			return errors.Wrap(errors.StatementFailed,
				"CREATE TABLE column definitions need a space between the column name and its type", err)
		}
		return errors.Wrap(errors.StatementFailed, "SQL syntax error", err)
	}
	return errors.Wrap(errors.StatementFailed, "failed to execute statement", err)
}

// hasVarcharWithoutLength reports whether the statement uses VARCHAR with no
// following length declaration.
func hasVarcharWithoutLength(sql string) bool {
	lower := strings.ToLower(sql)
	for i := 0; ; {
		idx := strings.Index(lower[i:], "varchar")
		if idx == -1 {
			return false
		}
		rest := lower[i+idx+len("varchar"):]
		rest = strings.TrimLeft(rest, " \t\r\n")
		if !strings.HasPrefix(rest, "(") {
			return true
		}
		i += idx + len("varchar")
	}
}

// isCreateTableMissingSpaces reports whether a CREATE TABLE statement looks
// like its column list lost the spaces between names and types.
func isCreateTableMissingSpaces(sql string) bool {
	lower := strings.ToLower(sql)
	if !strings.Contains(lower, "create table") {
		return false
	}
	// Only consider the column list, not the table name's own parenthesis.
	open := strings.Index(lower, "(")
	if open == -1 {
		return false
	}
	return reNestedColumn.MatchString(lower[open+1:])
}
