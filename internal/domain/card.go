package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Suit is one of the four card suits, stored as its symbol
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the suits in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Name returns the lowercase english name of the suit
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	}
	return ""
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s.Name() != ""
}

// ParseSuit accepts a suit symbol ("♠") or name ("spades", "Spades")
func ParseSuit(value string) (Suit, error) {
	value = strings.TrimSpace(value)
	for _, s := range Suits {
		if value == string(s) || strings.EqualFold(value, s.Name()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSuit, value)
}

// Rank is a card face value
type Rank string

// Ranks lists the ranks from lowest (ace) to highest (king)
var Ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// IsAce reports whether r is the lowest rank
func (r Rank) IsAce() bool {
	return r == "A"
}

// IsCourt reports whether r is a jack, queen or king
func (r Rank) IsCourt() bool {
	return r == "J" || r == "Q" || r == "K"
}

// Reps returns the repetition count for the rank:
// 25 for an ace, 15 for a court card, the face number otherwise.
func (r Rank) Reps() int {
	switch {
	case r.IsAce():
		return 25
	case r.IsCourt():
		return 15
	}
	n, err := strconv.Atoi(string(r))
	if err != nil {
		return 0
	}
	return n
}

// Card is a single playing card
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// Deck is an ordered sequence of cards
type Deck []Card

// NewDeck returns a fresh, unshuffled 52-card deck in suit-major order
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes the deck in place with Fisher-Yates.
// A nil rng uses the package-level source.
func (d Deck) Shuffle(rng *rand.Rand) {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(d) - 1; i > 0; i-- {
		j := intN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}
