package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret       string   `json:"session_secret"`
		SessionTTL          Duration `json:"session_ttl"`
		SessionCookieName   string   `json:"session_cookie_name"`
		SessionCookieMaxAge Duration `json:"session_cookie_max_age"`
		CSRFKey             string   `json:"csrf_key"`
		IdentityTimeout     Duration `json:"identity_timeout"`
		LoginRateLimit      float64  `json:"login_rate_limit"`
		LoginRateBurst      int      `json:"login_rate_burst"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN      string `json:"dsn"`
			Host     string `json:"host"`
			User     string `json:"user"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
		} `json:"redis,omitempty"`

		Files struct {
			ImagesDir      string `json:"images_dir"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
		} `json:"files,omitempty"`

		SessionsBackend string `json:"sessions_backend"`
	} `json:"storage,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		TLSCertFile     string   `json:"tls_cert_file"`
		TLSKeyFile      string   `json:"tls_key_file"`
		StartupPolicy   string   `json:"startup_policy"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		StaticDir       string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Log struct {
		Level           string `json:"level"`
		AccessFile      string `json:"access_file"`
		AccessMaxSizeMB int    `json:"access_max_size_mb"`
	} `json:"log,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret:       jsonCfg.App.SessionSecret,
			SessionTTL:          time.Duration(jsonCfg.App.SessionTTL),
			SessionCookieName:   jsonCfg.App.SessionCookieName,
			SessionCookieMaxAge: time.Duration(jsonCfg.App.SessionCookieMaxAge),
			CSRFKey:             jsonCfg.App.CSRFKey,
			IdentityTimeout:     time.Duration(jsonCfg.App.IdentityTimeout),
			LoginRateLimit:      jsonCfg.App.LoginRateLimit,
			LoginRateBurst:      jsonCfg.App.LoginRateBurst,
		},
		Storage: Storage{
			DB: DB{
				DSN:      jsonCfg.Storage.DB.DSN,
				Host:     jsonCfg.Storage.DB.Host,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				Name:     jsonCfg.Storage.DB.Name,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
			},
			Files: Files{
				ImagesDir:      jsonCfg.Storage.Files.ImagesDir,
				MaxUploadBytes: jsonCfg.Storage.Files.MaxUploadBytes,
			},
			SessionsBackend: jsonCfg.Storage.SessionsBackend,
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			Port:            jsonCfg.Server.Port,
			TLSCertFile:     jsonCfg.Server.TLSCertFile,
			TLSKeyFile:      jsonCfg.Server.TLSKeyFile,
			StartupPolicy:   StartupPolicy(jsonCfg.Server.StartupPolicy),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			StaticDir:       jsonCfg.Server.StaticDir,
		},
		Log: Log{
			Level:           jsonCfg.Log.Level,
			AccessFile:      jsonCfg.Log.AccessFile,
			AccessMaxSizeMB: jsonCfg.Log.AccessMaxSizeMB,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
