package game

// PlayerPublic is the public view of a seat: hand size only, never the
// cards themselves.
type PlayerPublic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CardCount int    `json:"cardCount"`
	Connected bool   `json:"connected"`
}

// Snapshot is the canonical read-only state pushed to clients after every
// action. The pile is public information in this game, so it is exposed in
// full.
type Snapshot struct {
	RoomCode          string             `json:"roomCode"`
	Players           []PlayerPublic     `json:"players"`
	CentralPile       []Card             `json:"centralPile"`
	CentralPileCount  int                `json:"centralPileCount"`
	CurrentSeat       int                `json:"currentPlayerIndex"`
	Challenge         *ChallengeState    `json:"challenge"`
	PendingCollection *PendingCollection `json:"pendingCollection"`
	GameStarted       bool               `json:"gameStarted"`
	GameOver          bool               `json:"gameOver"`
	Winner            string             `json:"winner,omitempty"`
	LastAction        string             `json:"lastAction"`
	LastSlapResult    *SlapResult        `json:"lastSlapResult"`
	LastCardPlayed    *Card              `json:"lastCardPlayed"`
	LastBurnedCard    *Card              `json:"lastBurnedCard"`
	LastCardPlayedBy  int                `json:"lastCardPlayedBy"`
	RevealPending     bool               `json:"revealPending"`
	CanSlap           bool               `json:"canSlap"`
	Plays             int                `json:"plays"`
}

// Snapshot projects the current state. Slices and nested records are copied
// so callers can hold the result across further mutations.
func (e *Engine) Snapshot() Snapshot {
	players := make([]PlayerPublic, len(e.players))
	for i, p := range e.players {
		players[i] = PlayerPublic{
			ID:        p.ID,
			Name:      p.Name,
			CardCount: len(p.hand),
			Connected: p.Connected,
		}
	}

	snap := Snapshot{
		Players:          players,
		CentralPile:      append([]Card(nil), e.pile...),
		CentralPileCount: len(e.pile),
		CurrentSeat:      e.turn,
		GameStarted:      e.started,
		GameOver:         e.over,
		Winner:           e.winner,
		LastAction:       e.lastAction,
		LastCardPlayedBy: e.lastPlayedBy,
		RevealPending:    e.revealPending,
		CanSlap:          len(e.pile) > 0 && !e.over,
		Plays:            e.plays,
	}

	switch e.phase.kind {
	case phaseChallenge:
		ch := e.phase.challenge
		snap.Challenge = &ch
	case phaseCollect:
		pc := e.phase.collect
		snap.PendingCollection = &pc
	}

	if e.lastSlap != nil {
		res := *e.lastSlap
		snap.LastSlapResult = &res
	}
	if e.lastPlayed != nil {
		c := *e.lastPlayed
		snap.LastCardPlayed = &c
	}
	if e.lastBurned != nil {
		c := *e.lastBurned
		snap.LastBurnedCard = &c
	}
	return snap
}
