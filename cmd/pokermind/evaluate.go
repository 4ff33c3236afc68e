package main

import (
	"fmt"
	"io"
	"strings"

	"pokermind/pkg/deck"
	"pokermind/pkg/poker"
)

// EvaluateCmd evaluates a single card set
type EvaluateCmd struct {
	Cards []string `arg:"" help:"5 to 7 cards, as identifiers (141) or rank and suit (As, 10h)."`
}

// Run executes the command
func (e *EvaluateCmd) Run(g *Globals) error {
	cards, err := parseCards(e.Cards)
	if err != nil {
		return err
	}

	best, err := poker.SelectBest(cards)
	if err != nil {
		return err
	}

	g.logger.WithField("cards", cards.String()).Debug("evaluated")
	printHand(g.out, best)
	return nil
}

// PreflopCmd classifies two hole cards
type PreflopCmd struct {
	Cards []string `arg:"" help:"Two hole cards."`
}

// Run executes the command
func (p *PreflopCmd) Run(g *Globals) error {
	cards, err := parseCards(p.Cards)
	if err != nil {
		return err
	}

	if len(cards) != 2 {
		return &poker.InsufficientCardsError{Min: 2, Max: 2, Got: len(cards)}
	}

	category, err := poker.ClassifyPreflop(cards[0], cards[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(g.out, "%s %s: %s (%d)\n", cards[0], cards[1], category, int(category))
	return nil
}

func printHand(w io.Writer, h poker.EvaluatedHand) {
	fmt.Fprintf(w, "%s (%d)\n", h.Category, int(h.Category))
	fmt.Fprintf(w, "  tiebreak: %s\n", joinInts(h.Tiebreak))
	fmt.Fprintf(w, "  cards:    %s  %s\n", handString(h.Cards), h.Cards)
}

func handString(h deck.Hand) string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}

	return strings.Join(s, " ")
}

func joinInts(ints []int) string {
	s := make([]string, len(ints))
	for i, n := range ints {
		s[i] = fmt.Sprint(n)
	}

	return strings.Join(s, ",")
}
