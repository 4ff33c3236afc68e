package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"pokermind/pkg/deck"
	"pokermind/pkg/poker"
)

// BatchCmd evaluates many card sets concurrently
type BatchCmd struct {
	File    string `short:"f" help:"File with one comma separated card set per line, - for stdin." default:"-"`
	Workers int    `short:"w" help:"Maximum concurrent evaluations, 0 for no limit." default:"${workers}"`

	stdin io.Reader `kong:"-"`
}

// Run executes the command
func (b *BatchCmd) Run(g *Globals) error {
	in := b.stdin
	if in == nil {
		in = os.Stdin
	}

	if b.File != "-" {
		f, err := os.Open(b.File)
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
	}

	hands, err := readHands(in)
	if err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"hands":   len(hands),
		"workers": b.Workers,
	}).Info("evaluating batch")

	results, err := poker.EvaluateBatch(context.Background(), hands, b.Workers)
	if err != nil {
		return err
	}

	for i, h := range results {
		fmt.Fprintf(g.out, "%d\t%s\t%s\t%s\n", i, h.Category, joinInts(h.Tiebreak), h.Cards)
	}

	return nil
}

// readHands parses one card set per line. Blank lines and lines starting with # are skipped.
func readHands(r io.Reader) ([]deck.Hand, error) {
	var hands []deck.Hand

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		cards, err := deck.CardsFromString(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		hands = append(hands, cards)
	}

	return hands, scanner.Err()
}
