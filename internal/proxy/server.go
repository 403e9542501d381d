// Package proxy accepts MySQL client connections and drives the per-session
// command loop. The wire-protocol handshake and packet framing are delegated
// to the go-mysql server library; this package supplies the credential
// check, the per-statement query flow, and the accept loop.
package proxy

import (
	stderrors "errors"
	"io"
	"net"

	"github.com/go-mysql-org/go-mysql/mysql"
	mysqlserver "github.com/go-mysql-org/go-mysql/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"mygres/proxy/internal/auth"
	"mygres/proxy/internal/config"
	"mygres/proxy/internal/errors"
	"mygres/proxy/internal/sqlexec"
)

// serverVersion is the version string advertised in the initial handshake.
// Clients use it for capability gating, so it must look like a MySQL version.
const serverVersion = "8.0.12-mygres"

// Server is the connection orchestrator: it owns the listener, the shared
// executor, and the handshake configuration. One goroutine per accepted
// connection; sessions never share mutable state beyond the backend pool.
type Server struct {
	cfg   config.Config
	log   *pterm.Logger
	authp *auth.Provider
	exec  *sqlexec.Executor
	wire  *mysqlserver.Server
}

// New assembles a Server from loaded configuration and an established
// backend pool.
func New(cfg config.Config, pool *pgxpool.Pool, log *pterm.Logger) *Server {
	authp := auth.NewProvider(cfg, log)
	return &Server{
		cfg:   cfg,
		log:   log,
		authp: authp,
		exec:  sqlexec.New(pool),
		wire:  mysqlserver.NewServer(serverVersion, mysql.DEFAULT_COLLATION_ID, authp.DefaultPlugin(), nil, nil),
	}
}

// ListenAndServe binds the MySQL endpoint and accepts connections until the
// process exits. Only the bind itself is fatal; accept, handshake, and
// per-statement errors are logged and absorbed.
func (s *Server) ListenAndServe() error {
	s.banner()

	ln, err := net.Listen("tcp", s.cfg.BindAddress)
	if err != nil {
		return errors.Wrap(errors.BindFailed, "failed to bind "+s.cfg.BindAddress, err)
	}
	defer ln.Close()

	s.log.Info("MySQL endpoint listening", s.log.Args("addr", s.cfg.BindAddress))

	for {
		conn, err := ln.Accept()
		if err != nil {
			if stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warn("accept failed", s.log.Args("error", err.Error()))
			continue
		}
		go s.handleConn(conn)
	}
}

// handleConn drives one client connection: handshake, then the command loop
// until the client disconnects or the connection breaks.
func (s *Server) handleConn(raw net.Conn) {
	remote := raw.RemoteAddr().String()

	sess := newSession(s.exec, s.log)
	creds := &credentialProvider{auth: s.authp}

	conn, err := mysqlserver.NewCustomizedConn(raw, s.wire, creds, sess)
	if err != nil {
		s.log.Warn("handshake failed", s.log.Args("remote", remote, "error", err.Error()))
		raw.Close()
		return
	}
	defer conn.Close()

	sess.connID = conn.ConnectionID()
	s.log.Debug("client connected", s.log.Args("conn", sess.connID, "remote", remote))

	for !conn.Closed() {
		if err := conn.HandleCommand(); err != nil {
			if !stderrors.Is(err, io.EOF) {
				s.log.Warn("connection error", s.log.Args("conn", sess.connID, "error", err.Error()))
			}
			break
		}
	}

	s.log.Debug("client disconnected", s.log.Args("conn", sess.connID, "remote", remote))
}

// banner prints the startup banner.
func (s *Server) banner() {
	_ = pterm.DefaultBigText.WithLetters(putils.LettersFromString("mygres")).Render()
}
