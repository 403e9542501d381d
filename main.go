// Package main is the entry point for the mygres proxy server.
// It exposes a MySQL-compatible network endpoint whose queries are
// re-executed against a PostgreSQL backend.
package main

import (
	"mygres/proxy/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
