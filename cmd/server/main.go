package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"pokermind/internal/config"
	"pokermind/internal/logging"
	"pokermind/internal/mux"
)

// Version is the server version
var Version = "v0.0.0-dev"

type cli struct {
	Addr    string           `help:"The listen address (overrides config)." placeholder:"ADDR"`
	Version kong.VersionFlag `help:"Print the version and exit."`
}

func main() {
	var args cli
	kong.Parse(&args, kong.Name("server"), kong.Vars{"version": Version})

	cfg := config.Instance()
	if args.Addr != "" {
		cfg.HTTP.Addr = args.Addr
	}

	logger, err := logging.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	srv := newServer(cfg, logger, os.Stdout)

	logger.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"version": Version,
	}).Info("listening")
	logger.Fatal(srv.ListenAndServe())
}

func newServer(cfg config.Config, logger logrus.FieldLogger, accessLog io.Writer) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	return &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      loggingHandler(cfg, accessLog, c.Handler(mux.NewMux(logger, cfg, Version))),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
}

func loggingHandler(cfg config.Config, out io.Writer, next http.Handler) http.Handler {
	if !cfg.HTTP.AccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(out, next)
}
