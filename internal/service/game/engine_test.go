package game

import (
	"math/rand"
	"testing"
)

func newSeatedEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewWithRand(rand.New(rand.NewSource(1)))
	if !e.AddPlayer("p0", "Alice") {
		t.Fatalf("failed to seat first player")
	}
	if !e.AddPlayer("p1", "Bob") {
		t.Fatalf("failed to seat second player")
	}
	return e
}

func newStartedEngine(t *testing.T) *Engine {
	t.Helper()
	e := newSeatedEngine(t)
	if !e.Start() {
		t.Fatalf("failed to start match")
	}
	return e
}

// rig replaces dealt state with a handcrafted position. Start has already
// run, so lifecycle flags stay consistent.
func (e *Engine) rig(hand0, hand1, pile []Card) {
	e.players[0].hand = append([]Card(nil), hand0...)
	e.players[1].hand = append([]Card(nil), hand1...)
	e.pile = append([]Card(nil), pile...)
}

func totalCards(e *Engine) int {
	return len(e.players[0].hand) + len(e.players[1].hand) + len(e.pile)
}

func TestAddPlayerLimits(t *testing.T) {
	e := newSeatedEngine(t)
	if e.AddPlayer("p2", "Carol") {
		t.Fatalf("third player should not be seated")
	}
	if !e.Start() {
		t.Fatalf("start failed")
	}
	if e.AddPlayer("p3", "Dave") {
		t.Fatalf("seating after start should fail")
	}
}

func TestStartDealsEvenHalves(t *testing.T) {
	e := newStartedEngine(t)
	if got := len(e.players[0].hand); got != 26 {
		t.Fatalf("seat 0 dealt %d cards, want 26", got)
	}
	if got := len(e.players[1].hand); got != 26 {
		t.Fatalf("seat 1 dealt %d cards, want 26", got)
	}
	if len(e.pile) != 0 {
		t.Fatalf("pile should start empty, has %d", len(e.pile))
	}

	seen := make(map[string]bool, 52)
	for _, p := range e.players {
		for _, c := range p.hand {
			if seen[c.ID] {
				t.Fatalf("duplicate card %s in deal", c.ID)
			}
			seen[c.ID] = true
		}
	}
	if len(seen) != 52 {
		t.Fatalf("deal produced %d distinct cards, want 52", len(seen))
	}
}

func TestStartRequiresTwoPlayers(t *testing.T) {
	e := New()
	e.AddPlayer("p0", "Alice")
	if e.Start() {
		t.Fatalf("start with one player should fail")
	}
}

func TestStartWhileRunningFails(t *testing.T) {
	e := newStartedEngine(t)
	if e.Start() {
		t.Fatalf("start during an active match should fail")
	}
	e.over = true
	if !e.Start() {
		t.Fatalf("restart after game over should succeed")
	}
	if e.over || e.winner != "" {
		t.Fatalf("restart did not reset terminal state")
	}
}

func TestPlayBeforeStart(t *testing.T) {
	e := newSeatedEngine(t)
	res := e.Play("p0")
	if res.Success || res.Message != "Game is not active." {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPlayNotYourTurn(t *testing.T) {
	e := newStartedEngine(t)
	before := totalCards(e)

	res := e.Play("p1")
	if res.Success {
		t.Fatalf("out-of-turn play should fail")
	}
	if res.Message != "Not your turn." {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if totalCards(e) != before || len(e.pile) != 0 {
		t.Fatalf("rejected play mutated state")
	}
}

func TestPlayUnknownPlayer(t *testing.T) {
	e := newStartedEngine(t)
	if res := e.Play("nobody"); res.Success || res.Message != "Player not found." {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestNumberCardPassesTurn(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitClubs, RankSix)},
		[]Card{newCard(SuitDiamonds, RankSeven)},
		nil,
	)

	res := e.Play("p0")
	if !res.Success {
		t.Fatalf("play failed: %s", res.Message)
	}
	if res.Card == nil || res.Card.Rank != RankFive {
		t.Fatalf("unexpected card: %+v", res.Card)
	}
	if !res.RevealPending || !e.revealPending {
		t.Fatalf("flip should leave the reveal pending")
	}
	if e.turn != 1 {
		t.Fatalf("turn should pass to seat 1, got %d", e.turn)
	}
}

func TestTurnStaysWhenOpponentEmpty(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitClubs, RankSix)},
		nil,
		[]Card{newCard(SuitDiamonds, RankNine)},
	)

	if res := e.Play("p0"); !res.Success {
		t.Fatalf("play failed: %s", res.Message)
	}
	if e.turn != 0 {
		t.Fatalf("turn should stay with seat 0 when seat 1 is empty, got %d", e.turn)
	}
	if e.over {
		t.Fatalf("match should not end while the pile holds cards")
	}
}

func TestFaceCardOpensChallenge(t *testing.T) {
	tests := []struct {
		rank    Rank
		chances int
	}{
		{RankJack, 1},
		{RankQueen, 2},
		{RankKing, 3},
		{RankAce, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.rank), func(t *testing.T) {
			e := newStartedEngine(t)
			e.rig(
				[]Card{newCard(SuitClubs, tt.rank)},
				[]Card{newCard(SuitDiamonds, RankTwo), newCard(SuitDiamonds, RankThree)},
				nil,
			)

			if res := e.Play("p0"); !res.Success {
				t.Fatalf("play failed: %s", res.Message)
			}
			if e.phase.kind != phaseChallenge {
				t.Fatalf("challenge not opened")
			}
			ch := e.phase.challenge
			if ch.ChallengerSeat != 0 || ch.ResponderSeat != 1 {
				t.Fatalf("unexpected challenge seats: %+v", ch)
			}
			if ch.ChancesLeft != tt.chances {
				t.Fatalf("chances = %d, want %d", ch.ChancesLeft, tt.chances)
			}
			if ch.OpeningRank != tt.rank {
				t.Fatalf("opening rank = %s, want %s", ch.OpeningRank, tt.rank)
			}
		})
	}
}

func TestChallengeExhaustionCreatesPendingCollection(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankKing), newCard(SuitClubs, RankTwo)},
		[]Card{
			newCard(SuitDiamonds, RankTwo),
			newCard(SuitDiamonds, RankFive),
			newCard(SuitDiamonds, RankNine),
			newCard(SuitDiamonds, RankSeven),
		},
		nil,
	)

	if res := e.Play("p0"); !res.Success {
		t.Fatalf("king flip failed: %s", res.Message)
	}
	for i := 0; i < 2; i++ {
		if res := e.Play("p1"); !res.Success {
			t.Fatalf("responder flip %d failed: %s", i, res.Message)
		}
		if e.phase.kind != phaseChallenge {
			t.Fatalf("challenge ended early after %d responses", i+1)
		}
	}
	if got := e.phase.challenge.ChancesLeft; got != 1 {
		t.Fatalf("chances left = %d, want 1", got)
	}

	res := e.Play("p1")
	if !res.Success {
		t.Fatalf("final responder flip failed: %s", res.Message)
	}
	if e.phase.kind != phaseCollect {
		t.Fatalf("exhausted challenge should leave a pending collection")
	}
	if e.phase.collect.Seat != 0 {
		t.Fatalf("collection owed to seat %d, want challenger seat 0", e.phase.collect.Seat)
	}
	if e.over {
		t.Fatalf("win check must not run while a collection is pending")
	}
}

func TestFaceCardResponseReversesChallenge(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankQueen), newCard(SuitClubs, RankTwo)},
		[]Card{newCard(SuitDiamonds, RankJack), newCard(SuitDiamonds, RankThree)},
		nil,
	)

	if res := e.Play("p0"); !res.Success {
		t.Fatalf("queen flip failed: %s", res.Message)
	}
	if res := e.Play("p1"); !res.Success {
		t.Fatalf("jack response failed: %s", res.Message)
	}

	if e.phase.kind != phaseChallenge {
		t.Fatalf("challenge should still be active")
	}
	ch := e.phase.challenge
	if ch.ChallengerSeat != 1 || ch.ResponderSeat != 0 {
		t.Fatalf("challenge did not reverse: %+v", ch)
	}
	if ch.ChancesLeft != 1 || ch.OpeningRank != RankJack {
		t.Fatalf("chances not reset for the new rank: %+v", ch)
	}
}

func TestChallengeAgainstEmptyHandResolvesImmediately(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankJack), newCard(SuitClubs, RankTwo)},
		nil,
		[]Card{newCard(SuitDiamonds, RankNine)},
	)

	res := e.Play("p0")
	if !res.Success {
		t.Fatalf("flip failed: %s", res.Message)
	}
	if e.phase.kind != phaseCollect || e.phase.collect.Seat != 0 {
		t.Fatalf("challenge against empty hand should award collection to seat 0, phase %+v", e.phase)
	}
}

func TestEmptyHandedResponderForfeitsOnPlay(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankTwo)},
		nil,
		[]Card{newCard(SuitDiamonds, RankKing), newCard(SuitDiamonds, RankNine)},
	)
	e.phase = phase{kind: phaseChallenge, challenge: ChallengeState{
		ChallengerSeat: 0,
		ResponderSeat:  1,
		ChancesLeft:    3,
		OpeningRank:    RankKing,
	}}

	before := totalCards(e)
	res := e.Play("p0")
	if !res.Success {
		t.Fatalf("play should resolve the challenge: %s", res.Message)
	}
	if res.Card != nil {
		t.Fatalf("no card should be flipped, got %+v", res.Card)
	}
	if totalCards(e) != before {
		t.Fatalf("forfeit resolution moved cards")
	}
	if e.phase.kind != phaseCollect || e.phase.collect.Seat != 0 {
		t.Fatalf("collection should be pending for the challenger, phase %+v", e.phase)
	}
}

func TestPlayBlockedByPendingCollection(t *testing.T) {
	e := newStartedEngine(t)
	e.phase = phase{kind: phaseCollect, collect: PendingCollection{Seat: 1, Reason: "Double!"}}

	res := e.Play("p0")
	if res.Success {
		t.Fatalf("play should be rejected while a collection is pending")
	}
	if res.Message != "Bob must collect the pile first!" {
		t.Fatalf("rejection should name the collector, got %q", res.Message)
	}
}

func TestSlapDouble(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankTwo)},
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitDiamonds, RankFive)},
	)

	res := e.Slap("p1")
	if !res.Valid || res.Reason != "Double!" {
		t.Fatalf("unexpected slap result: %+v", res)
	}
	if res.SlapperID != "p1" || res.SlapperName != "Bob" {
		t.Fatalf("slap result misattributed: %+v", res)
	}
	if e.phase.kind != phaseCollect || e.phase.collect.Seat != 1 {
		t.Fatalf("valid slap should award the pile to the slapper, phase %+v", e.phase)
	}
}

func TestSlapSandwich(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankTwo)},
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{
			newCard(SuitClubs, RankFive),
			newCard(SuitDiamonds, RankNine),
			newCard(SuitSpades, RankFive),
		},
	)

	res := e.Slap("p0")
	if !res.Valid || res.Reason != "Sandwich!" {
		t.Fatalf("unexpected slap result: %+v", res)
	}
}

func TestSlapInvalidBurnsToBottom(t *testing.T) {
	e := newStartedEngine(t)
	top := newCard(SuitSpades, RankTwo)
	burnCandidate := newCard(SuitHearts, RankEight)
	e.rig(
		[]Card{burnCandidate, newCard(SuitHearts, RankFour)},
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitDiamonds, RankNine), top},
	)

	res := e.Slap("p0")
	if res.Valid {
		t.Fatalf("slap should be invalid")
	}
	if res.BurnedCard == nil || res.BurnedCard.ID != burnCandidate.ID {
		t.Fatalf("unexpected burned card: %+v", res.BurnedCard)
	}
	if len(e.players[0].hand) != 1 {
		t.Fatalf("burn should cost exactly one card, hand has %d", len(e.players[0].hand))
	}
	if e.pile[0].ID != burnCandidate.ID {
		t.Fatalf("burned card should go to the pile bottom, bottom is %s", e.pile[0].ID)
	}
	if e.pile[len(e.pile)-1].ID != top.ID {
		t.Fatalf("pile top changed on burn")
	}
	if e.lastBurned == nil || e.lastBurned.ID != burnCandidate.ID {
		t.Fatalf("burned card not recorded")
	}
}

func TestSlapInvalidWithEmptyHand(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		nil,
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitDiamonds, RankNine)},
	)

	before := len(e.pile)
	res := e.Slap("p0")
	if res.Valid || res.BurnedCard != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Reason != "Bad slap! No cards to burn." {
		t.Fatalf("unexpected reason: %q", res.Reason)
	}
	if len(e.pile) != before {
		t.Fatalf("pile changed with nothing to burn")
	}
}

func TestSlapEmptyPile(t *testing.T) {
	e := newStartedEngine(t)
	e.rig([]Card{newCard(SuitClubs, RankTwo)}, []Card{newCard(SuitDiamonds, RankThree)}, nil)

	res := e.Slap("p0")
	if res.Valid || res.Reason != "Nothing to slap!" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSlapNotActive(t *testing.T) {
	e := newSeatedEngine(t)
	if res := e.Slap("p0"); res.Valid || res.Reason != "Game not active." {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSlapOverridesPendingCollection(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankTwo)},
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitDiamonds, RankFive)},
	)
	e.phase = phase{kind: phaseCollect, collect: PendingCollection{Seat: 0, Reason: "Face-card challenge won!"}}

	res := e.Slap("p1")
	if !res.Valid {
		t.Fatalf("slap should be valid: %+v", res)
	}
	if e.phase.kind != phaseCollect || e.phase.collect.Seat != 1 {
		t.Fatalf("slapper should take over the pending collection, phase %+v", e.phase)
	}
	if e.phase.collect.Reason != "Double!" {
		t.Fatalf("collection reason = %q, want Double!", e.phase.collect.Reason)
	}
}

func TestSlapDiscardsActiveChallenge(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankTwo)},
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitDiamonds, RankFive)},
	)
	e.phase = phase{kind: phaseChallenge, challenge: ChallengeState{
		ChallengerSeat: 0, ResponderSeat: 1, ChancesLeft: 2, OpeningRank: RankQueen,
	}}

	if res := e.Slap("p0"); !res.Valid {
		t.Fatalf("slap should be valid: %+v", res)
	}
	if e.phase.kind != phaseCollect {
		t.Fatalf("slap should replace the challenge with a collection, phase %+v", e.phase)
	}
}

func TestCollect(t *testing.T) {
	e := newStartedEngine(t)
	held := newCard(SuitHearts, RankFour)
	pile := []Card{
		newCard(SuitClubs, RankFive),
		newCard(SuitDiamonds, RankNine),
		newCard(SuitSpades, RankFive),
	}
	e.rig([]Card{held}, []Card{newCard(SuitDiamonds, RankThree)}, pile)
	e.phase = phase{kind: phaseCollect, collect: PendingCollection{Seat: 0, Reason: "Sandwich!"}}
	e.turn = 1

	if res := e.Collect("p1"); res.Success || res.Message != "You are not the one who should collect!" {
		t.Fatalf("wrong collector accepted: %+v", res)
	}

	res := e.Collect("p0")
	if !res.Success {
		t.Fatalf("collect failed: %s", res.Message)
	}
	hand := e.players[0].hand
	want := []Card{held, pile[0], pile[1], pile[2]}
	if len(hand) != len(want) {
		t.Fatalf("hand has %d cards, want %d", len(hand), len(want))
	}
	for i := range want {
		if hand[i].ID != want[i].ID {
			t.Fatalf("hand[%d] = %s, want %s (pile order must be preserved)", i, hand[i].ID, want[i].ID)
		}
	}
	if len(e.pile) != 0 {
		t.Fatalf("pile not emptied")
	}
	if e.phase.kind != phaseIdle {
		t.Fatalf("collection not cleared")
	}
	if e.turn != 0 {
		t.Fatalf("collector should flip next, turn = %d", e.turn)
	}
	if e.lastPlayed != nil || e.lastBurned != nil {
		t.Fatalf("audit fields should clear on collect")
	}

	if res := e.Collect("p0"); res.Success || res.Message != "No pile to collect." {
		t.Fatalf("second collect should fail: %+v", res)
	}
}

func TestCollectEndsMatch(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		nil,
		[]Card{newCard(SuitDiamonds, RankThree)},
		[]Card{newCard(SuitClubs, RankFive), newCard(SuitDiamonds, RankFive)},
	)
	e.phase = phase{kind: phaseCollect, collect: PendingCollection{Seat: 1, Reason: "Double!"}}

	if res := e.Collect("p1"); !res.Success {
		t.Fatalf("collect failed: %s", res.Message)
	}
	if !e.over {
		t.Fatalf("match should end when the loser has no cards and the pile is empty")
	}
	if e.winner != "Bob" {
		t.Fatalf("winner = %q, want Bob", e.winner)
	}
}

func TestChallengeForfeitThenCollectEndsMatch(t *testing.T) {
	e := newStartedEngine(t)
	e.rig(
		[]Card{newCard(SuitClubs, RankTwo)},
		[]Card{newCard(SuitDiamonds, RankNine), newCard(SuitDiamonds, RankEight)},
		[]Card{newCard(SuitSpades, RankKing)},
	)
	e.phase = phase{kind: phaseChallenge, challenge: ChallengeState{
		ChallengerSeat: 1, ResponderSeat: 0, ChancesLeft: 1, OpeningRank: RankKing,
	}}

	// Responder's last number card exhausts the challenge.
	if res := e.Play("p0"); !res.Success {
		t.Fatalf("response failed: %s", res.Message)
	}
	if e.phase.kind != phaseCollect || e.phase.collect.Seat != 1 {
		t.Fatalf("unexpected phase after exhaustion: %+v", e.phase)
	}
	if e.over {
		t.Fatalf("win must wait for the collect")
	}

	if res := e.Collect("p1"); !res.Success {
		t.Fatalf("collect failed: %s", res.Message)
	}
	if !e.over || e.winner != "Bob" {
		t.Fatalf("over=%v winner=%q, want Bob to win", e.over, e.winner)
	}
}

func TestRevealIdempotent(t *testing.T) {
	e := newStartedEngine(t)
	if res := e.Play("p0"); !res.Success {
		t.Fatalf("play failed: %s", res.Message)
	}
	if !e.revealPending {
		t.Fatalf("flip should set reveal pending")
	}

	e.Reveal()
	if e.Snapshot().RevealPending {
		t.Fatalf("reveal did not clear the flag")
	}

	turn, pileLen := e.turn, len(e.pile)
	e.Reveal()
	if e.Snapshot().RevealPending || e.turn != turn || len(e.pile) != pileLen {
		t.Fatalf("repeated reveal changed state")
	}
}

func TestReconnectPreservesState(t *testing.T) {
	e := newStartedEngine(t)
	if res := e.Play("p0"); !res.Success {
		t.Fatalf("play failed: %s", res.Message)
	}
	turn, pileLen := e.turn, len(e.pile)

	e.MarkDisconnected("p0")
	if e.players[0].Connected {
		t.Fatalf("disconnect flag not set")
	}
	if !e.Reconnect("p0", "p0-new") {
		t.Fatalf("reconnect failed")
	}
	if e.Reconnect("p0", "whatever") {
		t.Fatalf("reconnect of a stale identity should fail")
	}
	if !e.players[0].Connected || e.players[0].ID != "p0-new" {
		t.Fatalf("reconnect did not rebind identity")
	}
	if e.turn != turn || len(e.pile) != pileLen {
		t.Fatalf("reconnect altered game state")
	}

	if e.SeatOf("p0-new") != 0 {
		t.Fatalf("rebound identity not seated at 0")
	}
	if e.SeatOf("p0") != -1 {
		t.Fatalf("stale identity still resolves to a seat")
	}
}

func TestSnapshotExposesCountsNotHands(t *testing.T) {
	e := newStartedEngine(t)
	snap := e.Snapshot()
	if len(snap.Players) != 2 {
		t.Fatalf("snapshot players = %d", len(snap.Players))
	}
	if snap.Players[0].CardCount != 26 || snap.Players[1].CardCount != 26 {
		t.Fatalf("unexpected counts: %+v", snap.Players)
	}
	if snap.CanSlap {
		t.Fatalf("canSlap should be false with an empty pile")
	}

	if res := e.Play("p0"); !res.Success {
		t.Fatalf("play failed: %s", res.Message)
	}
	snap = e.Snapshot()
	if !snap.CanSlap {
		t.Fatalf("canSlap should be true with a non-empty pile")
	}
	if snap.CentralPileCount != len(snap.CentralPile) {
		t.Fatalf("pile count mismatch")
	}
}

// Drives a full match with legitimate actions only, checking at every step
// that all 52 cards are accounted for and that a challenge and a pending
// collection never coexist.
func TestScriptedMatchConservation(t *testing.T) {
	e := NewWithRand(rand.New(rand.NewSource(42)))
	e.AddPlayer("p0", "Alice")
	e.AddPlayer("p1", "Bob")
	if !e.Start() {
		t.Fatalf("start failed")
	}

	ids := []string{"p0", "p1"}
	const maxSteps = 20000
	for step := 0; step < maxSteps && !e.over; step++ {
		snap := e.Snapshot()
		if snap.Challenge != nil && snap.PendingCollection != nil {
			t.Fatalf("step %d: challenge and pending collection both set", step)
		}
		if got := totalCards(e); got != 52 {
			t.Fatalf("step %d: card count = %d, want 52", step, got)
		}

		if e.phase.kind == phaseCollect {
			if res := e.Collect(ids[e.phase.collect.Seat]); !res.Success {
				t.Fatalf("step %d: collect failed: %s", step, res.Message)
			}
			continue
		}

		actor := e.turn
		if e.phase.kind == phaseChallenge {
			actor = e.phase.challenge.ResponderSeat
			if len(e.players[actor].hand) == 0 {
				actor = e.phase.challenge.ChallengerSeat
			}
		}
		if len(e.players[actor].hand) == 0 {
			// Both hands can drain into the pile with no slappable top; the
			// rules leave such positions to a slap, so the script stops.
			break
		}
		if res := e.Play(ids[actor]); !res.Success {
			t.Fatalf("step %d: play failed: %s", step, res.Message)
		}
	}

	if e.over {
		winnerSeat := 0
		if len(e.players[0].hand) == 0 {
			winnerSeat = 1
		}
		if e.winner != e.players[winnerSeat].Name {
			t.Fatalf("winner = %q, want %q", e.winner, e.players[winnerSeat].Name)
		}
		if totalCards(e) != 52 {
			t.Fatalf("final card count = %d", totalCards(e))
		}
	}
}
