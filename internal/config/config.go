// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// StartupPolicy decides what the server does when startup-time resources
// are missing.
type StartupPolicy string

const (
	// StartupPolicyExit stops the process when TLS material is missing or the
	// database is unreachable.
	StartupPolicyExit StartupPolicy = "exit"

	// StartupPolicyDegraded serves plain HTTP when TLS material is missing.
	// An unreachable database is still fatal.
	StartupPolicyDegraded StartupPolicy = "degraded"
)

// Session store backends.
const (
	SessionsBackendPostgres = "postgres"
	SessionsBackendRedis    = "redis"
)

// StructuredConfig is the top-level configuration container of the shop.
// It is populated by merging environment variables, command-line flags and
// an optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, CSRF and authentication settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database, Redis and upload directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, TLS and lifecycle settings. Its variables are
	// not prefixed so that the conventional PORT variable is honoured.
	Server Server

	// Log holds log level and access log settings.
	Log Log `envPrefix:"LOG_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the session and CSRF gate.
type App struct {
	// SessionSecret signs the session cookie value with HMAC-SHA256.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionTTL is how long a stored session lives after its last save.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SessionCookieName is the name of the session cookie.
	// Env: APP_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// SessionCookieMaxAge sets Max-Age on the session cookie. Zero keeps the
	// cookie for the browser session only.
	// Env: APP_SESSION_COOKIE_MAX_AGE
	SessionCookieMaxAge time.Duration `env:"SESSION_COOKIE_MAX_AGE"`

	// CSRFKey is the 32-byte authentication key of gorilla/csrf.
	// Env: APP_CSRF_KEY
	CSRFKey string `env:"CSRF_KEY"`

	// IdentityTimeout bounds the user lookup of identity resolution.
	// Env: APP_IDENTITY_TIMEOUT
	IdentityTimeout time.Duration `env:"IDENTITY_TIMEOUT"`

	// LoginRateLimit is the number of login/signup submissions per second
	// allowed per client address.
	// Env: APP_LOGIN_RATE_LIMIT
	LoginRateLimit float64 `env:"LOGIN_RATE_LIMIT"`

	// LoginRateBurst is the burst size of the login rate limiter.
	// Env: APP_LOGIN_RATE_BURST
	LoginRateBurst int `env:"LOGIN_RATE_BURST"`
}

// Server holds network, TLS and lifecycle settings for the HTTP server.
type Server struct {
	// Host is the interface to bind to; empty binds all interfaces.
	// Env: SERVER_HOST
	Host string `env:"SERVER_HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT"`

	// TLSCertFile is the path to the PEM certificate.
	// Env: SERVER_TLS_CERT_FILE
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE"`

	// TLSKeyFile is the path to the PEM private key.
	// Env: SERVER_TLS_KEY_FILE
	TLSKeyFile string `env:"SERVER_TLS_KEY_FILE"`

	// StartupPolicy is either "exit" or "degraded".
	// Env: SERVER_STARTUP_POLICY
	StartupPolicy StartupPolicy `env:"SERVER_STARTUP_POLICY"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// StaticDir is the directory served under /static.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"SERVER_STATIC_DIR"`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the Redis connection settings used by the redis session
	// backend.
	Redis Redis `envPrefix:"REDIS_"`

	// Files holds the upload directory settings.
	Files Files `envPrefix:"FILES_"`

	// SessionsBackend selects the session store: "postgres" or "redis".
	// Env: STORAGE_SESSIONS_BACKEND
	SessionsBackend string `env:"SESSIONS_BACKEND"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// DSN overrides the connection string built from the other fields.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Host is "host:port" of the database server.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// User is the database user.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database password.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the database name.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// ConnString returns DSN when set, otherwise a postgres URL assembled from
// the credential, host and name fields.
func (d DB) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}

	return u.String()
}

// Redis holds connection settings for Redis.
type Redis struct {
	// Address is "host:port" of the Redis server.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the Redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
}

// Files holds settings of the upload handler.
type Files struct {
	// ImagesDir is where accepted uploads are written and served from.
	// Env: STORAGE_FILES_IMAGES_DIR
	ImagesDir string `env:"IMAGES_DIR"`

	// MaxUploadBytes limits the size of a multipart request body.
	// Env: STORAGE_FILES_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Log holds logger settings.
type Log struct {
	// Level is the zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// AccessFile is the combined-format access log file.
	// Env: LOG_ACCESS_FILE
	AccessFile string `env:"ACCESS_FILE"`

	// AccessMaxSizeMB is the size at which the access log is rotated.
	// Env: LOG_ACCESS_MAX_SIZE_MB
	AccessMaxSizeMB int `env:"ACCESS_MAX_SIZE_MB"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SessionSweepInterval is how often expired sessions are purged from
	// the postgres session store.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, completes and validates the
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
