package domain

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardKeys(d Deck) []string {
	keys := make([]string, len(d))
	for i, c := range d {
		keys[i] = c.String()
	}
	sort.Strings(keys)
	return keys
}

func TestNewDeck_HasAllUniqueCards(t *testing.T) {
	deck := NewDeck()

	require.Len(t, deck, DeckSize)
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	for _, s := range Suits {
		for _, r := range Ranks {
			assert.True(t, seen[Card{Suit: s, Rank: r}], "missing %s%s", r, s)
		}
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	before := cardKeys(NewDeck())

	for i := 0; i < 50; i++ {
		deck := NewDeck()
		deck.Shuffle(rng)

		require.Len(t, deck, DeckSize)
		assert.Equal(t, before, cardKeys(deck))
	}
}

func TestShuffle_ChangesOrder(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewPCG(42, 42)))

	assert.NotEqual(t, NewDeck(), deck)
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	a := NewDeck()
	b := NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(7, 9)))
	b.Shuffle(rand.New(rand.NewPCG(7, 9)))

	assert.Equal(t, a, b)
}

func TestShuffle_NilSourceStillPermutes(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(nil)

	assert.Equal(t, cardKeys(NewDeck()), cardKeys(deck))
}

func TestShuffle_RoughlyUniformFirstPosition(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	counts := make(map[Suit]int)
	const runs = 4000

	for i := 0; i < runs; i++ {
		deck := NewDeck()
		deck.Shuffle(rng)
		counts[deck[0].Suit]++
	}

	for _, s := range Suits {
		assert.InDelta(t, runs/4, counts[s], runs/10, "suit %s", s)
	}
}

func TestRank_Reps(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected int
	}{
		{"A", 25},
		{"2", 2},
		{"3", 3},
		{"4", 4},
		{"5", 5},
		{"6", 6},
		{"7", 7},
		{"8", 8},
		{"9", 9},
		{"10", 10},
		{"J", 15},
		{"Q", 15},
		{"K", 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.rank), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rank.Reps())
		})
	}
}

func TestParseSuit(t *testing.T) {
	tests := []struct {
		input    string
		expected Suit
	}{
		{"♠", Spades},
		{"hearts", Hearts},
		{"Diamonds", Diamonds},
		{" clubs ", Clubs},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseSuit(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestParseSuit_Unknown(t *testing.T) {
	_, err := ParseSuit("stars")

	assert.ErrorIs(t, err, ErrUnknownSuit)
}

func TestSuit_IsRed(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
}
