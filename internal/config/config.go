// Package config loads the proxy configuration from environment variables.
// The configuration is loaded once at startup and never mutated afterwards.
package config

import (
	"os"

	"mygres/proxy/internal/dsn"
	"mygres/proxy/internal/errors"
)

// DefaultBindAddress is used when BIND_ADDRESS is not set.
const DefaultBindAddress = "0.0.0.0:3306"

// Config holds the proxy settings: the PostgreSQL backend connection
// parameters and the credentials expected from MySQL clients.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MySQLUsername string
	MySQLPassword string

	BindAddress string
}

// FromEnv reads configuration from the environment. The backend parameters
// come either from the discrete DB_HOST/DB_USER/DB_PASSWORD variables or from
// a single DB_URL connection URL; MYSQL_USERNAME and MYSQL_PASSWORD are
// always required. BIND_ADDRESS defaults to 0.0.0.0:3306.
func FromEnv() (Config, error) {
	var c Config

	if raw := os.Getenv("DB_URL"); raw != "" {
		info, err := dsn.Parse(raw)
		if err != nil {
			return c, errors.Wrap(errors.ConfigMissing, "invalid DB_URL", err)
		}
		c.DBHost = info.Host
		c.DBPort = info.Port
		c.DBUser = info.User
		c.DBPassword = info.Password
		c.DBName = info.Database
	} else {
		var err error
		if c.DBHost, err = required("DB_HOST"); err != nil {
			return c, err
		}
		if c.DBUser, err = required("DB_USER"); err != nil {
			return c, err
		}
		if c.DBPassword, err = required("DB_PASSWORD"); err != nil {
			return c, err
		}
		c.DBName = os.Getenv("DB_NAME")
	}

	var err error
	if c.MySQLUsername, err = required("MYSQL_USERNAME"); err != nil {
		return c, err
	}
	if c.MySQLPassword, err = required("MYSQL_PASSWORD"); err != nil {
		return c, err
	}

	c.BindAddress = os.Getenv("BIND_ADDRESS")
	if c.BindAddress == "" {
		c.BindAddress = DefaultBindAddress
	}

	return c, nil
}

// PostgresDSN renders the backend connection string in keyword/value form,
// e.g. "host=localhost user=postgres password=1234".
func (c Config) PostgresDSN() string {
	return dsn.KeywordValue(&dsn.Info{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
	})
}

func required(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", errors.New(errors.ConfigMissing, "missing required environment variable: "+key)
	}
	return v, nil
}
