package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"pokermind/pkg/poker"
)

// View is a point-in-time description of a session
type View struct {
	ID          uuid.UUID             `json:"id"`
	Hole        []int                 `json:"hole"`
	Community   []int                 `json:"community"`
	Opponents   int                   `json:"opponents"`
	Street      Street                `json:"street"`
	Preflop     poker.PreflopCategory `json:"preflop"`
	PreflopName string                `json:"preflopName"`
	Streets     []StreetView          `json:"streets"`
	Best        *HandView             `json:"best"`
	Features    *Features             `json:"features"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// StreetView is the best hand category after a street
type StreetView struct {
	Street       Street         `json:"street"`
	Category     poker.Category `json:"category"`
	CategoryName string         `json:"categoryName"`
}

// HandView is an evaluated hand with cards encoded by identifier
type HandView struct {
	Category     poker.Category `json:"category"`
	CategoryName string         `json:"categoryName"`
	Tiebreak     []int          `json:"tiebreak"`
	Cards        []int          `json:"cards"`
}

// NewHandView returns the view of an evaluated hand
func NewHandView(h poker.EvaluatedHand) *HandView {
	return &HandView{
		Category:     h.Category,
		CategoryName: h.Category.String(),
		Tiebreak:     h.Tiebreak,
		Cards:        h.Cards.IDs(),
	}
}

// View returns the current state of the session
func (s *Session) View() (*View, error) {
	preflop := s.Preflop()
	community := s.Community()

	v := &View{
		ID:          s.ID,
		Hole:        s.hole.IDs(),
		Community:   community.IDs(),
		Opponents:   s.Opponents,
		Street:      streetFor(len(community)),
		Preflop:     preflop,
		PreflopName: preflop.String(),
		Streets:     []StreetView{},
		CreatedAt:   s.CreatedAt,
	}

	streets, err := s.Streets()
	if err != nil {
		return nil, err
	}

	for _, r := range streets {
		v.Streets = append(v.Streets, StreetView{
			Street:       r.Street,
			Category:     r.Best.Category,
			CategoryName: r.Best.Category.String(),
		})
	}

	if n := len(streets); n > 0 {
		v.Best = NewHandView(streets[n-1].Best)
	}

	features, err := s.Features()
	if err == nil {
		v.Features = &features
	} else if !errors.Is(err, ErrNotEnoughCommunity) {
		return nil, err
	}

	return v, nil
}

// AvailableIDs returns the identifiers of the cards that can still be revealed
func (s *Session) AvailableIDs() []int {
	return s.Available().IDs()
}
