package proxy

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-mysql-org/go-mysql/mysql"
	"github.com/pterm/pterm"

	"mygres/proxy/internal/interceptor"
	"mygres/proxy/internal/sqlexec"
	"mygres/proxy/internal/translator"
)

// placeholderStatementID is the fixed id recorded for prepared statements.
// Prepared-statement support is a stub: statements are registered and
// acknowledged but parameter binding is not implemented.
const placeholderStatementID uint32 = 42

// session holds the per-connection state and implements the wire library's
// command handler. Each accepted connection gets its own session; the
// executor (and its pool) is shared across all of them.
type session struct {
	connID uint32
	db     string
	exec   *sqlexec.Executor
	log    *pterm.Logger
	stmts  map[uint32]string
}

func newSession(exec *sqlexec.Executor, log *pterm.Logger) *session {
	return &session{
		exec:  exec,
		log:   log,
		stmts: make(map[uint32]string),
	}
}

// UseDB acknowledges COM_INIT_DB without touching the backend; database
// selection is a MySQL-side notion the proxy only records.
func (s *session) UseDB(dbName string) error {
	s.db = dbName
	return nil
}

// HandleQuery is the core per-statement flow: interception, then dialect
// translation, then backend execution, then transcoding back to the wire.
func (s *session) HandleQuery(query string) (*mysql.Result, error) {
	s.log.Debug("received statement", s.log.Args("conn", s.connID, "sql", query))

	if resp, ok := interceptor.Intercept(query); ok {
		s.log.Info("intercepted system statement",
			s.log.Args("conn", s.connID, "rule", interceptor.MatchedRule(query)))
		return cannedResult(resp), nil
	}

	translated := translator.Translate(query)
	if translated != query {
		s.log.Debug("translated statement",
			s.log.Args("conn", s.connID, "sql", translated))
	}

	res, err := s.exec.Execute(context.Background(), translated)
	if err != nil {
		s.log.Warn("statement failed",
			s.log.Args("conn", s.connID, "error", err.Error()))
		return nil, wireError(err)
	}
	return toWireResult(res)
}

func (s *session) HandleFieldList(table string, fieldWildcard string) ([]*mysql.Field, error) {
	return nil, nil
}

func (s *session) HandleStmtPrepare(query string) (int, int, interface{}, error) {
	s.stmts[placeholderStatementID] = query
	return strings.Count(query, "?"), 0, placeholderStatementID, nil
}

func (s *session) HandleStmtExecute(ctx interface{}, query string, args []interface{}) (*mysql.Result, error) {
	return &mysql.Result{}, nil
}

func (s *session) HandleStmtClose(ctx interface{}) error {
	delete(s.stmts, placeholderStatementID)
	return nil
}

func (s *session) HandleOtherCommand(cmd byte, data []byte) error {
	return mysql.NewError(mysql.ER_UNKNOWN_ERROR,
		fmt.Sprintf("command %d is not supported", cmd))
}
