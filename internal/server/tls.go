package server

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
)

// TLSEnabled reports whether the server should terminate TLS.
//
// Empty certificate and key paths select plain HTTP. Unreadable TLS
// material is fatal under [config.StartupPolicyExit]; under
// [config.StartupPolicyDegraded] it is logged and plain HTTP is served.
func TLSEnabled(cfg config.Server, logger *logger.Logger) (bool, error) {
	if cfg.TLSCertFile == "" && cfg.TLSKeyFile == "" {
		return false, nil
	}

	err := checkReadable(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err == nil {
		return true, nil
	}

	if cfg.StartupPolicy == config.StartupPolicyDegraded {
		logger.Warn().Err(err).Msg("TLS material missing, serving plain HTTP")
		return false, nil
	}

	return false, fmt.Errorf("%w: %w", ErrTLSMaterialMissing, err)
}

func checkReadable(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			return errors.New("empty TLS file path")
		}
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		f.Close()
	}
	return nil
}
