package config

import "time"

// defaultConfig returns the values used for every field left empty by the
// configured sources.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL:        14 * 24 * time.Hour,
			SessionCookieName: "connect.sid",
			IdentityTimeout:   5 * time.Second,
			LoginRateLimit:    1,
			LoginRateBurst:    5,
		},
		Storage: Storage{
			DB: DB{
				Host: "localhost:5432",
			},
			Files: Files{
				ImagesDir:      "images",
				MaxUploadBytes: 10 << 20,
			},
			SessionsBackend: SessionsBackendPostgres,
		},
		Server: Server{
			Port:            3000,
			TLSCertFile:     "server.cert",
			TLSKeyFile:      "server.key",
			StartupPolicy:   StartupPolicyExit,
			ShutdownTimeout: 10 * time.Second,
			StaticDir:       "public",
		},
		Log: Log{
			Level:           "debug",
			AccessFile:      "access.log",
			AccessMaxSizeMB: 100,
		},
		Workers: Workers{
			SessionSweepInterval: 15 * time.Minute,
		},
	}
}
