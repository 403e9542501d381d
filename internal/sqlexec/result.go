// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"

	"mygres/proxy/internal/errors"
)

// Kind tags the two possible statement outcomes.
type Kind int

const (
	// KindAck is an acknowledgement carrying an affected-row count.
	KindAck Kind = iota
	// KindRows is a result set with column descriptors and row values.
	KindRows
)

// Column describes one result column: its name and the backend type OID
// that selected its value mapping.
type Column struct {
	Name string
	OID  uint32
}

// Result is the normalized outcome of one statement.
type Result struct {
	Kind         Kind
	AffectedRows int64
	Columns      []Column
	Rows         [][]any
}

// convertValue maps one backend value into the representation the MySQL wire
// response can carry. Only the types the proxy commits to are accepted;
// anything else fails the whole statement rather than silently corrupting
// the value.
func convertValue(oid uint32, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch oid {
	case pgtype.Int4OID:
		return v, nil
	case pgtype.VarcharOID, pgtype.TextOID:
		return v, nil
	case pgtype.BoolOID:
		// MySQL has no wire-level boolean; render as text.
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), nil
		}
		return fmt.Sprintf("%v", v), nil
	case pgtype.Float4OID, pgtype.Float8OID:
		return v, nil
	default:
		return nil, errors.New(errors.UnsupportedType,
			fmt.Sprintf("unsupported column type (oid %d)", oid))
	}
}
