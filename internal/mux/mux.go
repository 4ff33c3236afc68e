package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pokermind/internal/config"
	"pokermind/pkg/session"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

const uuidPattern = "{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config   muxConfig
	version  string
	logger   logrus.FieldLogger
	registry *session.Registry
}

type muxConfig struct {
	// batchWorkers caps the goroutines used by /evaluate/batch
	batchWorkers int
	// maxBatchHands is the largest batch accepted in a single request
	maxBatchHands int
}

// NewMux returns a new HTTP mux
func NewMux(logger logrus.FieldLogger, cfg config.Config, version string) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		logger:   logger,
		registry: session.NewRegistry(logger, cfg.Sessions.Limit),
		config: muxConfig{
			batchWorkers:  cfg.Batch.Workers,
			maxBatchHands: cfg.Batch.MaxHands,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
	r.Methods(http.MethodPost).Path("/evaluate/batch").Handler(this.postEvaluateBatch())
	r.Methods(http.MethodPost).Path("/preflop").Handler(this.postPreflop())
	r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())

	sr := r.PathPrefix("/session/" + uuidPattern).Subrouter()
	sr.Use(this.sessionMiddleware)

	sr.Methods(http.MethodGet).Path("").Handler(this.getSessionUUID())
	sr.Methods(http.MethodDelete).Path("").Handler(this.deleteSessionUUID())
	sr.Methods(http.MethodPost).Path("/community").Handler(this.postSessionUUIDCommunity())
	sr.Methods(http.MethodGet).Path("/available").Handler(this.getSessionUUIDAvailable())

	return this
}
