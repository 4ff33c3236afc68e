package session

import "fmt"

// Street is a betting round, derived from the number of community cards
type Street int

// constants for Street
const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	return fmt.Sprintf("Street(%d)", int(s))
}

// MarshalText encodes the street by name
func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a street from its name
func (s *Street) UnmarshalText(text []byte) error {
	for _, street := range []Street{Preflop, Flop, Turn, River} {
		if street.String() == string(text) {
			*s = street
			return nil
		}
	}

	return fmt.Errorf("unknown street %q", text)
}

// communityCards is the number of community cards visible on the street
func (s Street) communityCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	}

	return 0
}

func streetFor(community int) Street {
	switch {
	case community >= 5:
		return River
	case community == 4:
		return Turn
	case community == 3:
		return Flop
	}

	// one or two cards of a flop are still preflop
	return Preflop
}
