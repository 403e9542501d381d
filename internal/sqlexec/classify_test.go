// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	stderrors "errors"
	"strings"
	"testing"

	"mygres/proxy/internal/errors"
)

func TestClassifyError(t *testing.T) {
	syntaxErr := stderrors.New(`ERROR: syntax error at or near "("`)
	otherErr := stderrors.New(`ERROR: relation "nonexistent" does not exist`)

	tests := []struct {
		name     string
		sql      string
		err      error
		wantHint string
	}{
		{
			name:     "varchar without length",
			sql:      "CREATE TABLE t(name VARCHAR,)",
			err:      syntaxErr,
			wantHint: "VARCHAR requires a length",
		},
		{
			name:     "create table missing spaces",
			sql:      "CREATE TABLE test(name(VARCHAR(255)))",
			err:      syntaxErr,
			wantHint: "space between the column name and its type",
		},
		{
			name:     "generic syntax error",
			sql:      "CREATE TABLE invalid syntax here",
			err:      syntaxErr,
			wantHint: "SQL syntax error",
		},
		{
			name:     "non syntax failure",
			sql:      "SELECT * FROM nonexistent",
			err:      otherErr,
			wantHint: "failed to execute statement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.sql, tt.err)
			if got == nil {
				t.Fatal("ClassifyError returned nil")
			}
			if errors.KindOf(got) != errors.StatementFailed {
				t.Errorf("kind = %q, want %q", errors.KindOf(got), errors.StatementFailed)
			}
			if !strings.Contains(got.Error(), tt.wantHint) {
				t.Errorf("message %q does not contain %q", got.Error(), tt.wantHint)
			}
			if !stderrors.Is(got, tt.err) {
				t.Error("classified error does not wrap the original")
			}
		})
	}
}

func TestHasVarcharWithoutLength(t *testing.T) {
	tests := []struct {
		sql  string
		want bool
	}{
		{"CREATE TABLE t(name VARCHAR(255))", false},
		{"CREATE TABLE t(name VARCHAR)", true},
		{"CREATE TABLE t(name VARCHAR, age INT)", true},
		{"CREATE TABLE t(a VARCHAR(10), b VARCHAR)", true},
		{"SELECT * FROM users", false},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			if got := hasVarcharWithoutLength(tt.sql); got != tt.want {
				t.Errorf("hasVarcharWithoutLength(%q) = %v, want %v", tt.sql, got, tt.want)
			}
		})
	}
}

func TestIsCreateTableMissingSpaces(t *testing.T) {
	tests := []struct {
		sql  string
		want bool
	}{
		{"CREATE TABLE test(name(VARCHAR(255)))", true},
		{"CREATE TABLE t(id INT, name VARCHAR(50))", false},
		{"SELECT id(name(x FROM t", false},
		{"CREATE TABLE noparens", false},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			if got := isCreateTableMissingSpaces(tt.sql); got != tt.want {
				t.Errorf("isCreateTableMissingSpaces(%q) = %v, want %v", tt.sql, got, tt.want)
			}
		})
	}
}
