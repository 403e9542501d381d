// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the mygres proxy server.
// The root command loads configuration from the environment, establishes the
// PostgreSQL backend pool, and runs the MySQL-compatible listener until the
// process is terminated. Individual connection or statement errors never stop
// the server; only startup failures abort with a non-zero exit.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"mygres/proxy/internal/config"
	"mygres/proxy/internal/errors"
	"mygres/proxy/internal/logging"
	"mygres/proxy/internal/proxy"
)

var (
	showVersion bool
	bindAddress string
)

// rootCmd represents the base command. Running it without flags starts the
// proxy server in the foreground.
var rootCmd = &cobra.Command{
	Use:           "mygres",
	Short:         "MySQL-compatible proxy server backed by PostgreSQL",
	Long:          `mygres accepts MySQL client connections, translates MySQL dialect SQL into PostgreSQL syntax, and re-executes the statements against a PostgreSQL backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("mygres %s\n", Version)
			return nil
		}

		log := logging.New()

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		if bindAddress != "" {
			cfg.BindAddress = bindAddress
		}

		ctx := context.Background()

		connString := cfg.PostgresDSN()
		log.Info("connecting to PostgreSQL backend", log.Args("dsn", logging.Mask(connString)))

		pool, err := pgxpool.New(ctx, connString)
		if err != nil {
			return errors.Wrap(errors.BackendUnreachable, "invalid backend connection string", err)
		}
		defer pool.Close()

		// pgxpool connects lazily; ping now so a dead backend fails startup
		// instead of the first client statement.
		if err := pool.Ping(ctx); err != nil {
			return errors.Wrap(errors.BackendUnreachable, "failed to reach PostgreSQL backend", err)
		}

		srv := proxy.New(cfg, pool, log)
		return srv.ListenAndServe()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("startup failed", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.Flags().StringVar(&bindAddress, "bind", "", "Listen address override (default from BIND_ADDRESS)")
}
