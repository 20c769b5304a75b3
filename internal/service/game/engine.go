package game

import (
	"fmt"
	"math/rand"
	"time"
)

const maxPlayers = 2

// Player is a seat in the match. The identity is session-scoped and rebound
// on reconnect; the seat itself never moves.
type Player struct {
	ID        string
	Name      string
	Connected bool
	hand      []Card // FIFO: flipped from the front, collected to the back
}

type ChallengeState struct {
	ChallengerSeat int  `json:"challengerIndex"`
	ResponderSeat  int  `json:"responderIndex"`
	ChancesLeft    int  `json:"chancesLeft"`
	OpeningRank    Rank `json:"faceCardRank"`
}

type PendingCollection struct {
	Seat   int    `json:"playerIndex"`
	Reason string `json:"reason"`
}

// The match phase is a tagged value rather than two nullable fields, so an
// active challenge and a pending collection can never coexist.
type phaseKind int

const (
	phaseIdle phaseKind = iota
	phaseChallenge
	phaseCollect
)

type phase struct {
	kind      phaseKind
	challenge ChallengeState    // valid when kind == phaseChallenge
	collect   PendingCollection // valid when kind == phaseCollect
}

type PlayResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Card          *Card  `json:"card,omitempty"`
	RevealPending bool   `json:"revealPending,omitempty"`
}

type SlapResult struct {
	Valid       bool   `json:"valid"`
	SlapperID   string `json:"slapperId"`
	SlapperName string `json:"slapperName"`
	Reason      string `json:"reason"`
	BurnedCard  *Card  `json:"burnedCard,omitempty"`
}

type CollectResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Engine is the authoritative state machine for one match. It performs no
// I/O and holds no lock; the owning room runtime serializes access.
type Engine struct {
	players []Player
	pile    []Card // bottom to top; the top is the last card played
	turn    int    // meaningful only while phase is idle
	phase   phase

	started bool
	over    bool
	winner  string

	lastAction    string
	lastSlap      *SlapResult
	lastPlayed    *Card
	lastBurned    *Card
	lastPlayedBy  int
	revealPending bool

	plays int

	rng *rand.Rand
}

func New() *Engine {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewWithRand(rng *rand.Rand) *Engine {
	return &Engine{
		lastAction:   "Waiting for players...",
		lastPlayedBy: -1,
		rng:          rng,
	}
}

// AddPlayer seats a player. Fails once two seats are taken or after the
// first deal.
func (e *Engine) AddPlayer(id, name string) bool {
	if len(e.players) >= maxPlayers || e.started {
		return false
	}
	e.players = append(e.players, Player{ID: id, Name: name, Connected: true})
	return true
}

// SeatOf returns the seat index for an identity, or -1.
func (e *Engine) SeatOf(id string) int {
	for i := range e.players {
		if e.players[i].ID == id {
			return i
		}
	}
	return -1
}

// Reconnect rebinds a seated identity to a new one without touching any
// game state.
func (e *Engine) Reconnect(oldID, newID string) bool {
	seat := e.SeatOf(oldID)
	if seat == -1 {
		return false
	}
	e.players[seat].ID = newID
	e.players[seat].Connected = true
	return true
}

func (e *Engine) MarkDisconnected(id string) {
	if seat := e.SeatOf(id); seat != -1 {
		e.players[seat].Connected = false
	}
}

// Start shuffles and deals a fresh deck. Callable again after a match ends
// to play another round with the same seats.
func (e *Engine) Start() bool {
	if len(e.players) != maxPlayers {
		return false
	}
	if e.started && !e.over {
		return false
	}

	deck := buildDeck()
	shuffleDeck(e.rng, deck)
	half := (len(deck) + 1) / 2
	e.players[0].hand = append([]Card(nil), deck[:half]...)
	e.players[1].hand = append([]Card(nil), deck[half:]...)

	e.pile = nil
	e.turn = 0
	e.phase = phase{kind: phaseIdle}
	e.started = true
	e.over = false
	e.winner = ""
	e.lastAction = fmt.Sprintf("%s's turn to flip.", e.players[0].Name)
	e.lastSlap = nil
	e.lastPlayed = nil
	e.lastBurned = nil
	e.lastPlayedBy = -1
	e.revealPending = false
	e.plays = 0
	return true
}

func (e *Engine) otherSeat(seat int) int {
	return (seat + 1) % maxPlayers
}

// nextPlayableSeat advances the turn, staying put when the other seat has no
// cards to flip.
func (e *Engine) nextPlayableSeat(from int) int {
	next := e.otherSeat(from)
	if len(e.players[next].hand) == 0 {
		return from
	}
	return next
}

// Play flips the acting player's top card onto the pile and applies the
// challenge rules.
func (e *Engine) Play(id string) PlayResult {
	if !e.started || e.over {
		return PlayResult{Message: "Game is not active."}
	}

	if e.phase.kind == phaseCollect {
		collector := e.players[e.phase.collect.Seat]
		return PlayResult{Message: fmt.Sprintf("%s must collect the pile first!", collector.Name)}
	}

	seat := e.SeatOf(id)
	if seat == -1 {
		return PlayResult{Message: "Player not found."}
	}

	player := &e.players[seat]
	if len(player.hand) == 0 {
		return PlayResult{Message: "You have no cards."}
	}

	var expected int
	if e.phase.kind == phaseChallenge {
		ch := e.phase.challenge
		expected = ch.ResponderSeat

		// The responder can end up empty-handed after an intervening
		// collect. The challenger wins without a card being flipped.
		if len(e.players[expected].hand) == 0 {
			challenger := e.players[ch.ChallengerSeat]
			e.phase = phase{kind: phaseCollect, collect: PendingCollection{
				Seat:   ch.ChallengerSeat,
				Reason: "Face-card challenge won! (opponent had no cards)",
			}}
			e.lastAction = fmt.Sprintf("%s won the challenge! Press Collect to take the pile.", challenger.Name)
			return PlayResult{Success: true, Message: e.lastAction}
		}
	} else {
		expected = e.turn
	}

	if seat != expected {
		return PlayResult{Message: "Not your turn."}
	}

	card := player.hand[0]
	player.hand = player.hand[1:]
	e.pile = append(e.pile, card)
	e.lastPlayed = &card
	e.lastSlap = nil
	e.lastBurned = nil
	e.lastPlayedBy = seat
	e.revealPending = true
	e.plays++

	inChallenge := e.phase.kind == phaseChallenge

	if inChallenge && !isFaceOrAce(card.Rank) {
		// Number card from the responder: burn a chance.
		e.phase.challenge.ChancesLeft--
		if e.phase.challenge.ChancesLeft <= 0 {
			challenger := e.players[e.phase.challenge.ChallengerSeat]
			e.phase = phase{kind: phaseCollect, collect: PendingCollection{
				Seat:   e.phase.challenge.ChallengerSeat,
				Reason: "Face-card challenge won!",
			}}
			e.lastAction = fmt.Sprintf("%s won the challenge! Press Collect to take the pile.", challenger.Name)
			// The win check waits: the final card may still be slapped.
			return PlayResult{Success: true, Message: e.lastAction, Card: &card, RevealPending: true}
		}
		e.lastAction = fmt.Sprintf("%s played %s. %d chance(s) left.", player.Name, card.Rank, e.phase.challenge.ChancesLeft)
	} else if isFaceOrAce(card.Rank) {
		// A face card or ace opens a challenge; from the responder it
		// reverses the current one.
		responder := e.otherSeat(seat)
		e.phase = phase{kind: phaseChallenge, challenge: ChallengeState{
			ChallengerSeat: seat,
			ResponderSeat:  responder,
			ChancesLeft:    chancesForRank(card.Rank),
			OpeningRank:    card.Rank,
		}}

		if len(e.players[responder].hand) == 0 {
			e.phase = phase{kind: phaseCollect, collect: PendingCollection{
				Seat:   seat,
				Reason: "Face-card challenge won! (opponent had no cards)",
			}}
			e.lastAction = fmt.Sprintf("%s played %s and wins the challenge!", player.Name, card.Rank)
			return PlayResult{Success: true, Message: e.lastAction, Card: &card, RevealPending: true}
		}

		e.lastAction = fmt.Sprintf("%s played %s! %s has %d chance(s).",
			player.Name, card.Rank, e.players[responder].Name, e.phase.challenge.ChancesLeft)
	} else {
		e.turn = e.nextPlayableSeat(seat)
		e.lastAction = fmt.Sprintf("%s played %s. %s's turn.", player.Name, card.Rank, e.players[e.turn].Name)
	}

	if e.phase.kind != phaseCollect {
		e.checkWin()
	}
	return PlayResult{Success: true, Message: e.lastAction, Card: &card, RevealPending: true}
}

// slapPattern checks the top of the pile for a double or a sandwich.
func (e *Engine) slapPattern() (bool, string) {
	n := len(e.pile)
	if n >= 2 && e.pile[n-1].Rank == e.pile[n-2].Rank {
		return true, "Double!"
	}
	if n >= 3 && e.pile[n-1].Rank == e.pile[n-3].Rank {
		return true, "Sandwich!"
	}
	return false, "Invalid slap."
}

// Slap may be attempted by either player at any time, including during a
// pending collection: the final card of a resolved challenge can itself
// complete a double or sandwich, and a valid slap takes the pile over.
func (e *Engine) Slap(id string) SlapResult {
	if !e.started || e.over {
		return SlapResult{SlapperID: id, Reason: "Game not active."}
	}

	seat := e.SeatOf(id)
	if seat == -1 {
		return SlapResult{SlapperID: id, Reason: "Player not found."}
	}

	player := &e.players[seat]
	if len(e.pile) == 0 {
		return SlapResult{SlapperID: id, SlapperName: player.Name, Reason: "Nothing to slap!"}
	}

	if valid, reason := e.slapPattern(); valid {
		e.phase = phase{kind: phaseCollect, collect: PendingCollection{Seat: seat, Reason: reason}}

		result := SlapResult{Valid: true, SlapperID: id, SlapperName: player.Name, Reason: reason}
		e.lastSlap = &result
		e.lastBurned = nil
		e.lastAction = fmt.Sprintf("%s slapped: %s Press Collect to take the pile!", player.Name, reason)
		return result
	}

	// Penalty: burn the slapper's top card to the bottom of the pile.
	var burned *Card
	if len(player.hand) > 0 {
		b := player.hand[0]
		player.hand = player.hand[1:]
		e.pile = append([]Card{b}, e.pile...)
		burned = &b
		e.lastBurned = &b
		e.lastAction = fmt.Sprintf("%s slapped incorrectly! Burned: %s of %s.", player.Name, b.Rank, b.Suit)
	} else {
		e.lastAction = fmt.Sprintf("%s slapped incorrectly! No cards to burn.", player.Name)
	}

	reason := "Bad slap! No cards to burn."
	if burned != nil {
		reason = fmt.Sprintf("Bad slap! Burned: %s of %s", burned.Rank, burned.Suit)
	}
	result := SlapResult{SlapperID: id, SlapperName: player.Name, Reason: reason, BurnedCard: burned}
	e.lastSlap = &result

	// Burning can empty a hand and end the match.
	e.checkWin()
	return result
}

// Collect moves the whole pile to the back of the entitled player's hand.
func (e *Engine) Collect(id string) CollectResult {
	if !e.started || e.over {
		return CollectResult{Message: "Game is not active."}
	}

	if e.phase.kind != phaseCollect {
		return CollectResult{Message: "No pile to collect."}
	}

	seat := e.SeatOf(id)
	if seat == -1 {
		return CollectResult{Message: "Player not found."}
	}

	if seat != e.phase.collect.Seat {
		return CollectResult{Message: "You are not the one who should collect!"}
	}

	player := &e.players[seat]
	player.hand = append(player.hand, e.pile...)
	e.pile = nil
	e.phase = phase{kind: phaseIdle}
	e.lastPlayed = nil
	e.lastBurned = nil
	e.turn = seat

	e.lastAction = fmt.Sprintf("%s collected the pile! Their turn to flip.", player.Name)
	e.checkWin()

	return CollectResult{Success: true, Message: e.lastAction}
}

// Reveal clears the reveal-pending flag. Idempotent; the room runtime calls
// it when the reveal delay elapses.
func (e *Engine) Reveal() {
	e.revealPending = false
}

// checkWin ends the match when one hand and the pile are both empty. It
// never fires during a pending collection: the pile still belongs to
// someone until physically collected.
func (e *Engine) checkWin() {
	if e.phase.kind == phaseCollect {
		return
	}
	if len(e.pile) != 0 {
		return
	}
	for seat := range e.players {
		if len(e.players[seat].hand) == 0 {
			winner := e.players[e.otherSeat(seat)]
			e.over = true
			e.winner = winner.Name
			e.lastAction = fmt.Sprintf("%s wins the game!", winner.Name)
			return
		}
	}
}
