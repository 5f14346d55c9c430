// Package server owns the listen-and-serve lifecycle.
package server

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/pkg/logger"
)

// Start binds the configured port and serves handler until the process
// exits or the listener fails.
func Start(handler http.Handler) error {
	if err := config.Load(); err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("vendora listening", "addr", addr, "env", config.AppEnv())
	return srv.ListenAndServe()
}
