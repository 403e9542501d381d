// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"mygres/proxy/internal/errors"
)

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name    string
		oid     uint32
		in      any
		want    any
		wantErr bool
	}{
		{"int4", pgtype.Int4OID, int32(42), int32(42), false},
		{"varchar", pgtype.VarcharOID, "hello", "hello", false},
		{"text", pgtype.TextOID, "hello", "hello", false},
		{"bool true", pgtype.BoolOID, true, "true", false},
		{"bool false", pgtype.BoolOID, false, "false", false},
		{"float4", pgtype.Float4OID, float32(1.5), float32(1.5), false},
		{"float8", pgtype.Float8OID, 2.25, 2.25, false},
		{"null passes through", pgtype.TimestampOID, nil, nil, false},
		{"timestamp unsupported", pgtype.TimestampOID, "2025-01-01", nil, true},
		{"numeric unsupported", pgtype.NumericOID, "1.23", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertValue(tt.oid, tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.KindOf(err) != errors.UnsupportedType {
					t.Errorf("error kind = %q, want %q", errors.KindOf(err), errors.UnsupportedType)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("convertValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestIsSelect(t *testing.T) {
	tests := []struct {
		sql  string
		want bool
	}{
		{"SELECT * FROM t", true},
		{"  select 1  ", true},
		{"SeLeCt id FROM t", true},
		{"INSERT INTO t VALUES (1)", false},
		{"UPDATE t SET a = 1", false},
		{"CREATE TABLE t(id INT)", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			if got := isSelect(tt.sql); got != tt.want {
				t.Errorf("isSelect(%q) = %v, want %v", tt.sql, got, tt.want)
			}
		})
	}
}
