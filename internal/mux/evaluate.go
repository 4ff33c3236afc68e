package mux

import (
	"fmt"
	"net/http"

	"pokermind/pkg/deck"
	"pokermind/pkg/poker"
	"pokermind/pkg/session"
)

type cardsPayload struct {
	Cards []int `json:"cards"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardsPayload
		if !m.decodeRequest(w, r, &payload) {
			return
		}

		cards, err := deck.CardsFromIDs(payload.Cards)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		best, err := poker.SelectBest(cards)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		m.writeJSON(w, http.StatusOK, session.NewHandView(best))
	}
}

type batchPayload struct {
	Hands [][]int `json:"hands"`
}

func (m *Mux) postEvaluateBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload batchPayload
		if !m.decodeRequest(w, r, &payload) {
			return
		}

		if len(payload.Hands) > m.config.maxBatchHands {
			m.writeJSONError(w, http.StatusBadRequest, fmt.Errorf("a batch cannot have more than %d hands", m.config.maxBatchHands))
			return
		}

		hands := make([]deck.Hand, len(payload.Hands))
		for i, ids := range payload.Hands {
			cards, err := deck.CardsFromIDs(ids)
			if err != nil {
				m.writeEvaluationError(w, fmt.Errorf("hand %d: %w", i, err))
				return
			}

			hands[i] = cards
		}

		results, err := poker.EvaluateBatch(r.Context(), hands, m.config.batchWorkers)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		views := make([]*session.HandView, len(results))
		for i, result := range results {
			views[i] = session.NewHandView(result)
		}

		m.writeJSON(w, http.StatusOK, views)
	}
}

type preflopResponse struct {
	Category poker.PreflopCategory `json:"category"`
	Name     string                `json:"name"`
}

func (m *Mux) postPreflop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardsPayload
		if !m.decodeRequest(w, r, &payload) {
			return
		}

		cards, err := deck.CardsFromIDs(payload.Cards)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		if len(cards) != 2 {
			m.writeEvaluationError(w, &poker.InsufficientCardsError{Min: 2, Max: 2, Got: len(cards)})
			return
		}

		category, err := poker.ClassifyPreflop(cards[0], cards[1])
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		m.writeJSON(w, http.StatusOK, preflopResponse{
			Category: category,
			Name:     category.String(),
		})
	}
}
