package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"pokermind/pkg/deck"
	"pokermind/pkg/session"
)

type postSessionPayload struct {
	Cards     []int `json:"cards"`
	Opponents int   `json:"opponents"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postSessionPayload
		if !m.decodeRequest(w, r, &payload) {
			return
		}

		hole, err := deck.CardsFromIDs(payload.Cards)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		s, err := m.registry.Create(hole, payload.Opponents)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		m.writeSessionView(w, http.StatusCreated, s)
	}
}

func (m *Mux) getSessionUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*session.Session)
		m.writeSessionView(w, http.StatusOK, s)
	})
}

func (m *Mux) deleteSessionUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*session.Session)
		if err := m.registry.Delete(s.ID); err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (m *Mux) postSessionUUIDCommunity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*session.Session)

		var payload cardsPayload
		if !m.decodeRequest(w, r, &payload) {
			return
		}

		cards, err := deck.CardsFromIDs(payload.Cards)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		if err := s.AddCommunity(cards...); err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		m.writeSessionView(w, http.StatusOK, s)
	})
}

func (m *Mux) getSessionUUIDAvailable() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*session.Session)
		m.writeJSON(w, http.StatusOK, cardsPayload{Cards: s.AvailableIDs()})
	})
}

func (m *Mux) writeSessionView(w http.ResponseWriter, statusCode int, s *session.Session) {
	view, err := s.View()
	if err != nil {
		m.writeJSONError(w, http.StatusInternalServerError, err)
		return
	}

	m.writeJSON(w, statusCode, view)
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["uuid"])
		if err != nil {
			m.writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		s, err := m.registry.Get(id)
		if err != nil {
			m.writeEvaluationError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, s)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
