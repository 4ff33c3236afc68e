package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pokermind/internal/config"
)

// New returns a logger writing to out with the configured level and format.
// Text output is coloured only when out is a terminal.
func New(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("could not parse level: %w", err)
		}

		logger.SetLevel(level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		tty := isTerminal(out)
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   tty,
			DisableColors: !tty,
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}

	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
