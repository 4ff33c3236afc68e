package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"pokermind/internal/config"
	"pokermind/pkg/poker"
	"pokermind/pkg/session"
)

func TestMux_postEvaluate(t *testing.T) {
	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	var hand session.HandView
	assertPost(t, ts, "/evaluate", cardsPayload{Cards: []int{141, 142, 143, 144, 21, 32, 43}}, &hand, http.StatusOK)
	assert.Equal(t, poker.FourOfAKind, hand.Category)
	assert.Equal(t, "Four of a kind", hand.CategoryName)
	assert.Equal(t, []int{14, 14, 14, 14, 4}, hand.Tiebreak)
	assert.Equal(t, []int{141, 142, 143, 144, 43}, hand.Cards)

	assertPost(t, ts, "/evaluate", `{"cards":[141,51,44,33,22]}`, &hand, http.StatusOK)
	assert.Equal(t, poker.Straight, hand.Category)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, hand.Tiebreak)

	var errObj errorResponse
	assertPost(t, ts, "/evaluate", cardsPayload{Cards: []int{141, 141, 131, 121, 111}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "duplicate card A♠ (141)", errObj.Message)

	assertPost(t, ts, "/evaluate", cardsPayload{Cards: []int{141, 131, 121, 111}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "expected 5-7 cards, got 4", errObj.Message)

	assertPost(t, ts, "/evaluate", cardsPayload{Cards: []int{141, 131, 121, 111, 150}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)
}

func TestMux_postEvaluateBatch(t *testing.T) {
	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	var hands []session.HandView
	assertPost(t, ts, "/evaluate/batch", batchPayload{Hands: [][]int{
		{101, 111, 121, 131, 141},
		{22, 23, 32, 33, 44, 52},
		{141, 112, 83, 64, 32, 24, 53},
	}}, &hands, http.StatusOK)

	if assert.Len(t, hands, 3) {
		assert.Equal(t, poker.RoyalFlush, hands[0].Category)
		assert.Equal(t, poker.TwoPair, hands[1].Category)
		assert.Equal(t, poker.HighCard, hands[2].Category)
	}

	var errObj errorResponse
	assertPost(t, ts, "/evaluate/batch", batchPayload{Hands: [][]int{{101, 111, 121, 131, 141}, {22, 23}}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "hand 1: expected 5-7 cards, got 2", errObj.Message)

	assertPost(t, ts, "/evaluate/batch", batchPayload{Hands: [][]int{{101, 999}}}, &errObj, http.StatusBadRequest)
	assert.Contains(t, errObj.Message, "hand 0:")

	assertPost(t, ts, "/evaluate/batch", batchPayload{Hands: make([][]int, 1001)}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "a batch cannot have more than 1000 hands", errObj.Message)
}

func TestMux_postEvaluateBatch_maxHands(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := config.DefaultConfig()
	cfg.Batch.MaxHands = 2

	ts := httptest.NewServer(NewMux(logger, cfg, ""))
	defer ts.Close()

	hand := []int{101, 111, 121, 131, 141}

	var hands []session.HandView
	assertPost(t, ts, "/evaluate/batch", batchPayload{Hands: [][]int{hand, hand}}, &hands, http.StatusOK)
	assert.Len(t, hands, 2)

	var errObj errorResponse
	assertPost(t, ts, "/evaluate/batch", batchPayload{Hands: [][]int{hand, hand, hand}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "a batch cannot have more than 2 hands", errObj.Message)
}

func TestMux_postPreflop(t *testing.T) {
	ts := httptest.NewServer(newTestMux(""))
	defer ts.Close()

	tests := []struct {
		cards []int
		want  poker.PreflopCategory
		name  string
	}{
		{[]int{141, 142}, poker.Pair, "Pair"},
		{[]int{101, 111}, poker.Suited, "Suited"},
		{[]int{101, 112}, poker.Offsuit, "Offsuit"},
	}

	for _, tt := range tests {
		var resp preflopResponse
		assertPost(t, ts, "/preflop", cardsPayload{Cards: tt.cards}, &resp, http.StatusOK)
		assert.Equal(t, tt.want, resp.Category)
		assert.Equal(t, tt.name, resp.Name)
	}

	var errObj errorResponse
	assertPost(t, ts, "/preflop", cardsPayload{Cards: []int{141, 141}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "duplicate card A♠ (141)", errObj.Message)

	assertPost(t, ts, "/preflop", cardsPayload{Cards: []int{141}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "expected 2 cards, got 1", errObj.Message)
}
