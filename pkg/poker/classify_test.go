package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokermind/pkg/deck"
)

func cards(s string) deck.Hand {
	return deck.MustCardsFromString(s)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		tiebreak []int
	}{
		{"royal flush", "10s,11s,12s,13s,14s", RoyalFlush, []int{14, 13, 12, 11, 10}},
		{"straight flush", "9h,10h,11h,12h,13h", StraightFlush, []int{13, 12, 11, 10, 9}},
		{"steel wheel", "14d,2d,3d,4d,5d", StraightFlush, []int{5, 4, 3, 2, 1}},
		{"four of a kind", "3c,3d,3h,3s,2c", FourOfAKind, []int{3, 3, 3, 3, 2}},
		{"full house aces over fives", "14c,5c,14d,5h,14h", FullHouse, []int{14, 14, 14, 5, 5}},
		{"full house fives over aces", "5c,14c,5d,14h,5h", FullHouse, []int{5, 5, 5, 14, 14}},
		{"flush", "2h,5h,9h,11h,13h", Flush, []int{13, 11, 9, 5, 2}},
		{"straight", "5c,6d,7h,8s,9c", Straight, []int{9, 8, 7, 6, 5}},
		{"broadway", "10c,11d,12h,13s,14c", Straight, []int{14, 13, 12, 11, 10}},
		{"wheel", "14s,2c,3d,4h,5s", Straight, []int{5, 4, 3, 2, 1}},
		{"three of a kind", "7c,13s,7d,2c,7h", ThreeOfAKind, []int{7, 7, 7, 13, 2}},
		{"two pair", "4h,13c,9c,4s,13d", TwoPair, []int{13, 13, 4, 4, 9}},
		{"pair", "2h,13c,9s,13d,5c", OnePair, []int{13, 13, 9, 5, 2}},
		{"high card", "3c,11d,14c,6s,8h", HighCard, []int{14, 11, 8, 6, 3}},
		{"gap is not a straight", "14c,13d,12h,11s,9c", HighCard, []int{14, 13, 12, 11, 9}},
		{"seven low", "2c,3d,4h,5s,7c", HighCard, []int{7, 5, 4, 3, 2}},
		{"no wrap-around straight", "12c,13d,14h,2s,3c", HighCard, []int{14, 13, 12, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Classify(cards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, h.Category)
			assert.Equal(t, tt.tiebreak, h.Tiebreak)
			assert.Len(t, h.Cards, 5)
		})
	}
}

func TestClassify_wheel(t *testing.T) {
	h, err := Classify(cards("14s,2c,3d,4h,5s"))
	require.NoError(t, err)
	assert.Equal(t, Straight, h.Category)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, h.Tiebreak)
	assert.Equal(t, []int{51, 44, 33, 22, 141}, h.Cards.IDs())
	assert.Equal(t, "Straight [5♠ 4♡ 3♢ 2♣ A♠]", h.String())
}

func TestClassify_royalFlush(t *testing.T) {
	h, err := Classify(cards("10s,11s,12s,13s,14s"))
	require.NoError(t, err)
	assert.Equal(t, RoyalFlush, h.Category)
	assert.Equal(t, 10, int(h.Category))

	// same ranks, mixed suits is only a straight
	h, err = Classify(cards("10s,11s,12s,13s,14h"))
	require.NoError(t, err)
	assert.Equal(t, Straight, h.Category)
}

func TestClassify_cardOrder(t *testing.T) {
	h, err := Classify(cards("5h,14c,5c,14h,14d"))
	require.NoError(t, err)
	assert.Equal(t, []int{142, 143, 144, 52, 54}, h.Cards.IDs())

	h, err = Classify(cards("2h,9s,13d,5c,13c"))
	require.NoError(t, err)
	assert.Equal(t, []int{132, 133, 91, 52, 24}, h.Cards.IDs())
}

func TestClassify_permutationInvariance(t *testing.T) {
	for _, s := range []string{
		"14s,2c,3d,4h,5s",
		"10s,11s,12s,13s,14s",
		"4h,13c,9c,4s,13d",
		"5c,14c,5d,14h,5h",
		"3c,11d,14c,6s,8h",
	} {
		in := cards(s)
		want, err := Classify(in)
		require.NoError(t, err)

		n := 0
		permute(in.Clone(), func(p deck.Hand) {
			got, err := Classify(p)
			require.NoError(t, err)
			assert.Equal(t, want, got, "permutation %s of %s", p, s)
			n++
		})
		assert.Equal(t, 120, n)
	}
}

func TestClassify_doesNotMutate(t *testing.T) {
	in := cards("3c,11d,14c,6s,8h")
	_, err := Classify(in)
	require.NoError(t, err)
	assert.Equal(t, "32,113,142,61,84", in.String())
}

func TestClassify_errors(t *testing.T) {
	_, err := Classify(cards("2c,3c,4c,5c"))
	var insufficient *InsufficientCardsError
	if assert.ErrorAs(t, err, &insufficient) {
		assert.Equal(t, InsufficientCardsError{Min: 5, Max: 5, Got: 4}, *insufficient)
		assert.Equal(t, "expected 5 cards, got 4", err.Error())
	}

	_, err = Classify(cards("2c,3c,4c,5c,6c,7c"))
	assert.ErrorAs(t, err, &insufficient)

	_, err = Classify(cards("2s,2s,3c,4d,5h"))
	var dup *deck.DuplicateCardError
	assert.ErrorAs(t, err, &dup)

	_, err = Classify(deck.Hand{{Rank: 15, Suit: deck.Spades}, {Rank: 2, Suit: deck.Spades}, {Rank: 3, Suit: deck.Spades}, {Rank: 4, Suit: deck.Spades}, {Rank: 5, Suit: deck.Spades}})
	var invalid *deck.InvalidCardError
	assert.ErrorAs(t, err, &invalid)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Royal flush", RoyalFlush.String())
	assert.Equal(t, "Category(11)", Category(11).String())
	assert.Len(t, Categories, 10)
	for i, c := range Categories {
		assert.Equal(t, i+1, int(c))
	}
}

// permute calls fn with every permutation of h (Heap's algorithm)
func permute(h deck.Hand, fn func(deck.Hand)) {
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			fn(h)
			return
		}

		generate(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				h[i], h[k-1] = h[k-1], h[i]
			} else {
				h[0], h[k-1] = h[k-1], h[0]
			}

			generate(k - 1)
		}
	}

	generate(len(h))
}
