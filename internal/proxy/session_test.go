package proxy

import (
	"testing"

	"mygres/proxy/internal/logging"
)

func TestSessionUseDB(t *testing.T) {
	s := newSession(nil, logging.New())

	if err := s.UseDB("mysql"); err != nil {
		t.Fatalf("UseDB returned error: %v", err)
	}
	if s.db != "mysql" {
		t.Errorf("db = %q, want %q", s.db, "mysql")
	}
}

func TestSessionStmtPrepareStub(t *testing.T) {
	s := newSession(nil, logging.New())

	params, columns, ctx, err := s.HandleStmtPrepare("SELECT * FROM t WHERE id = ? AND name = ?")
	if err != nil {
		t.Fatalf("HandleStmtPrepare returned error: %v", err)
	}
	if params != 2 {
		t.Errorf("params = %d, want 2", params)
	}
	if columns != 0 {
		t.Errorf("columns = %d, want 0", columns)
	}
	if ctx != placeholderStatementID {
		t.Errorf("context = %v, want placeholder id %d", ctx, placeholderStatementID)
	}
	if _, ok := s.stmts[placeholderStatementID]; !ok {
		t.Error("prepared statement not recorded in registry")
	}

	res, err := s.HandleStmtExecute(ctx, "SELECT * FROM t WHERE id = ? AND name = ?", []interface{}{1, "a"})
	if err != nil {
		t.Fatalf("HandleStmtExecute returned error: %v", err)
	}
	if res.AffectedRows != 0 || res.Resultset != nil {
		t.Error("stubbed execute should return an empty acknowledgement")
	}

	if err := s.HandleStmtClose(ctx); err != nil {
		t.Fatalf("HandleStmtClose returned error: %v", err)
	}
	if len(s.stmts) != 0 {
		t.Error("registry not cleared after statement close")
	}
}

func TestSessionOtherCommandRejected(t *testing.T) {
	s := newSession(nil, logging.New())

	if err := s.HandleOtherCommand(0xfe, nil); err == nil {
		t.Error("unsupported commands should return a protocol error")
	}
}
