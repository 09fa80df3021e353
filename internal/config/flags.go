package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the process command line into a partial
// [StructuredConfig]. Unset flags leave their fields zero so that other
// sources and defaults can fill them.
//
// Flags:
//
//	-p               listen port
//	-host            listen host
//	-d               database DSN
//	-c/-config       json file path with configs
//	-tls-cert        TLS certificate file
//	-tls-key         TLS private key file
//	-startup-policy  "exit" or "degraded"
//	-session-secret  session cookie signing secret
//	-session-ttl     session lifetime (e.g. "24h")
//	-csrf-key        32-byte CSRF key
//	-images-dir      upload directory
//	-static-dir      public static directory
//	-access-log      access log file
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-shop", flag.ContinueOnError)

	var (
		port           int
		host           string
		databaseDSN    string
		jsonConfigPath string
		tlsCert        string
		tlsKey         string
		startupPolicy  string
		sessionSecret  string
		sessionTTL     time.Duration
		csrfKey        string
		imagesDir      string
		staticDir      string
		accessLog      string
	)

	fs.IntVar(&port, "p", 0, "Listen port")
	fs.StringVar(&host, "host", "", "Listen host")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&tlsKey, "tls-key", "", "TLS private key file")
	fs.StringVar(&startupPolicy, "startup-policy", "", "Startup policy: exit or degraded")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&csrfKey, "csrf-key", "", "32-byte CSRF key")
	fs.StringVar(&imagesDir, "images-dir", "", "Upload directory")
	fs.StringVar(&staticDir, "static-dir", "", "Public static directory")
	fs.StringVar(&accessLog, "access-log", "", "Access log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, port)
	}

	return &StructuredConfig{
		App: App{
			SessionSecret: sessionSecret,
			SessionTTL:    sessionTTL,
			CSRFKey:       csrfKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ImagesDir: imagesDir,
			},
		},
		Server: Server{
			Host:          host,
			Port:          port,
			TLSCertFile:   tlsCert,
			TLSKeyFile:    tlsKey,
			StartupPolicy: StartupPolicy(startupPolicy),
			StaticDir:     staticDir,
		},
		Log: Log{
			AccessFile: accessLog,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
