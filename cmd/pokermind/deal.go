package main

import (
	"fmt"
	"strings"

	"pokermind/internal/rng"
	"pokermind/pkg/deck"
	"pokermind/pkg/session"
)

// DealCmd plays out a random hand through a session
type DealCmd struct {
	Opponents int   `short:"o" help:"Number of opponents (1-8)." default:"1"`
	Seed      int64 `short:"s" help:"Shuffle seed, 0 for a random seed." default:"0"`

	generator rng.Generator `kong:"-"`
}

// Run executes the command
func (d *DealCmd) Run(g *Globals) error {
	seed := d.Seed
	if seed <= 0 {
		gen := d.generator
		if gen == nil {
			gen = rng.Crypto{}
		}

		seed = rng.Seed(gen)
	}

	dk := deck.New()
	dk.Shuffle(seed)

	hole, err := dk.DrawN(2)
	if err != nil {
		return err
	}

	s, err := session.New(g.logger, hole, d.Opponents)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.out, "seed %d, %d opponent(s)\n", dk.GetSeed(), d.Opponents)
	fmt.Fprintf(g.out, "hole:     %s  %s\n", handString(s.Hole()), s.Preflop())

	for _, n := range []int{3, 1, 1} {
		cards, err := dk.DrawN(n)
		if err != nil {
			return err
		}

		if err := s.AddCommunity(cards...); err != nil {
			return err
		}

		best, err := s.Best()
		if err != nil {
			return err
		}

		fmt.Fprintf(g.out, "%-9s %s  %s\n", s.Street().String()+":", handString(cards), best.Category)
	}

	best, err := s.Best()
	if err != nil {
		return err
	}

	features, err := s.Features()
	if err != nil {
		return err
	}

	fmt.Fprintf(g.out, "best:     %s  %s\n", handString(best.Cards), best.Category)
	values := features.Map()
	pairs := make([]string, len(session.FeatureColumns))
	for i, name := range session.FeatureColumns {
		pairs[i] = fmt.Sprintf("%s=%d", name, values[name])
	}

	fmt.Fprintf(g.out, "features: %s\n", strings.Join(pairs, " "))
	return nil
}
