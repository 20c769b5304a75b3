package game

import (
	"fmt"
	"math/rand"
)

type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

type Rank string

const (
	RankAce   Rank = "A"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

var suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

var ranks = []Rank{
	RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
	RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
}

// Card is an immutable value; cards only ever move between containers.
type Card struct {
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
	ID   string `json:"id"`
}

func newCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank, ID: fmt.Sprintf("%s-%s", suit, rank)}
}

func buildDeck() []Card {
	deck := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, newCard(suit, rank))
		}
	}
	return deck
}

func shuffleDeck(rng *rand.Rand, deck []Card) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

func isFaceOrAce(rank Rank) bool {
	switch rank {
	case RankJack, RankQueen, RankKing, RankAce:
		return true
	}
	return false
}

// chancesForRank is the number of plays a responder gets to answer the
// opening card of a challenge.
func chancesForRank(rank Rank) int {
	switch rank {
	case RankJack:
		return 1
	case RankQueen:
		return 2
	case RankKing:
		return 3
	case RankAce:
		return 4
	default:
		return 0
	}
}
