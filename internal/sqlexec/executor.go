// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlexec executes translated statements against the PostgreSQL
// backend pool and normalizes the outcome for the wire layer. SELECT
// statements are run once as row-returning queries; everything else is
// executed for its affected-row count. Execution failures are classified
// into actionable messages but never terminate the session.
package sqlexec

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor runs statements on a shared connection pool. The pool is safe for
// concurrent use; each statement checks out its own connection.
type Executor struct {
	Pool *pgxpool.Pool
}

// New creates an Executor from an existing pgx pool.
func New(pool *pgxpool.Pool) *Executor {
	return &Executor{Pool: pool}
}

// Execute runs the statement and returns its normalized result. Errors are
// statement-scoped: the pool and the calling session remain usable.
func (e *Executor) Execute(ctx context.Context, sql string) (*Result, error) {
	if isSelect(sql) {
		return e.query(ctx, sql)
	}

	tag, err := e.Pool.Exec(ctx, sql)
	if err != nil {
		return nil, ClassifyError(sql, err)
	}
	return &Result{Kind: KindAck, AffectedRows: tag.RowsAffected()}, nil
}

func (e *Executor) query(ctx context.Context, sql string) (*Result, error) {
	rows, err := e.Pool.Query(ctx, sql)
	if err != nil {
		return nil, ClassifyError(sql, err)
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	res := &Result{
		Kind:    KindRows,
		Columns: make([]Column, len(fds)),
		Rows:    [][]any{},
	}
	for i, fd := range fds {
		res.Columns[i] = Column{Name: fd.Name, OID: fd.DataTypeOID}
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, ClassifyError(sql, err)
		}
		converted := make([]any, len(vals))
		for i, v := range vals {
			converted[i], err = convertValue(res.Columns[i].OID, v)
			if err != nil {
				return nil, err
			}
		}
		res.Rows = append(res.Rows, converted)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyError(sql, err)
	}

	return res, nil
}

// isSelect reports whether the statement returns rows. Classification is by
// leading keyword on the trimmed, case-folded text.
func isSelect(sql string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(sql)), "select")
}
