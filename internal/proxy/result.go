package proxy

import (
	"github.com/go-mysql-org/go-mysql/mysql"
	"github.com/jackc/pgx/v5/pgtype"

	"mygres/proxy/internal/errors"
	"mygres/proxy/internal/interceptor"
	"mygres/proxy/internal/sqlexec"
)

// cannedResult renders an interception response as a wire result.
func cannedResult(resp interceptor.Response) *mysql.Result {
	if resp.Kind == interceptor.EmptyResultSet {
		return &mysql.Result{Resultset: &mysql.Resultset{}}
	}
	return &mysql.Result{}
}

// toWireResult maps a normalized backend result onto the MySQL response
// shape: an OK packet for acknowledgements, a text resultset for row sets.
func toWireResult(res *sqlexec.Result) (*mysql.Result, error) {
	if res.Kind == sqlexec.KindAck {
		return &mysql.Result{AffectedRows: uint64(res.AffectedRows)}, nil
	}

	if len(res.Rows) == 0 {
		// A zero-row SELECT still sends its column descriptors.
		return &mysql.Result{Resultset: emptyResultset(res.Columns)}, nil
	}

	names := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		names[i] = c.Name
	}
	rs, err := mysql.BuildSimpleResultset(names, res.Rows, false)
	if err != nil {
		return nil, mysql.NewError(mysql.ER_UNKNOWN_ERROR, err.Error())
	}
	return &mysql.Result{Resultset: rs}, nil
}

// emptyResultset builds the column descriptor set for a SELECT that
// produced no rows.
func emptyResultset(cols []sqlexec.Column) *mysql.Resultset {
	rs := &mysql.Resultset{Fields: make([]*mysql.Field, len(cols))}
	for i, c := range cols {
		rs.Fields[i] = &mysql.Field{
			Name:    []byte(c.Name),
			Charset: 33, // utf8_general_ci
			Type:    wireType(c.OID),
		}
	}
	return rs
}

// wireType selects the MySQL column type tag for a backend type OID.
func wireType(oid uint32) uint8 {
	switch oid {
	case pgtype.Int4OID:
		return mysql.MYSQL_TYPE_LONG
	case pgtype.Float4OID:
		return mysql.MYSQL_TYPE_FLOAT
	case pgtype.Float8OID:
		return mysql.MYSQL_TYPE_DOUBLE
	default:
		return mysql.MYSQL_TYPE_VAR_STRING
	}
}

// wireError converts a statement failure into a MySQL protocol error so the
// client sees a command failure while the session stays open.
func wireError(err error) error {
	switch errors.KindOf(err) {
	case errors.UnsupportedType:
		return mysql.NewError(mysql.ER_NOT_SUPPORTED_YET, err.Error())
	default:
		return mysql.NewError(mysql.ER_UNKNOWN_ERROR, err.Error())
	}
}
