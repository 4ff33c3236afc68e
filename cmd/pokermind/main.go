package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"pokermind/internal/config"
	"pokermind/internal/logging"
	"pokermind/pkg/deck"
)

// Version is the CLI version
var Version = "v0.0.0-dev"

// Globals are shared by every command
type Globals struct {
	LogLevel string           `help:"Log level (overrides config)." placeholder:"LEVEL"`
	Version  kong.VersionFlag `help:"Print the version and exit."`

	out    io.Writer          `kong:"-"`
	logger logrus.FieldLogger `kong:"-"`
	config config.Config      `kong:"-"`
}

// CLI is the pokermind command line
type CLI struct {
	Globals

	Evaluate EvaluateCmd `cmd:"" help:"Evaluate the best five-card hand from 5 to 7 cards."`
	Preflop  PreflopCmd  `cmd:"" help:"Classify two hole cards as pair, suited or offsuit."`
	Batch    BatchCmd    `cmd:"" help:"Evaluate one card set per line of a file."`
	Deal     DealCmd     `cmd:"" help:"Deal a random hand and show the best hand on every street."`
}

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokermind"),
		kong.Description("Poker hand evaluation."),
		kong.UsageOnError(),
		kong.Vars{"version": Version, "workers": strconv.Itoa(config.Instance().Batch.Workers)},
	)

	if err := cli.setup(os.Stdout, os.Stderr); err != nil {
		ctx.Fatalf("%v", err)
	}

	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

func (c *CLI) setup(out, logOut io.Writer) error {
	cfg := config.Instance()
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}

	logger, err := logging.New(cfg, logOut)
	if err != nil {
		return err
	}

	c.out = out
	c.logger = logger
	c.config = cfg
	return nil
}

// parseCards accepts identifiers (141) or rank and suit letter (As, 14s)
func parseCards(args []string) (deck.Hand, error) {
	cards := make(deck.Hand, 0, len(args))
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}

			c, err := deck.CardFromString(s)
			if err != nil {
				return nil, err
			}

			cards = append(cards, c)
		}
	}

	return cards, nil
}
