package room

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ers-service/internal/service/game"
	appErr "ers-service/pkg/errors"
	"ers-service/pkg/logger"

	"go.uber.org/zap"
)

type OutgoingMessage struct {
	Type string      `json:"type"`
	Seq  int64       `json:"seq"`
	Data interface{} `json:"data"`
}

// MatchSummary is handed to the finish callback once per completed match.
type MatchSummary struct {
	RoomCode   string
	WinnerName string
	LoserName  string
	Plays      int
	StartedAt  time.Time
	EndedAt    time.Time
}

// Runtime owns one room. Every action runs to completion under the mutex,
// so racing session actions are serialized and judged against the state at
// the moment they are processed.
type Runtime struct {
	code   string
	engine *game.Engine

	subscribers map[string]chan OutgoingMessage
	seq         int64

	revealDelay time.Duration
	revealTimer *time.Timer

	startedAt time.Time
	recorded  bool

	onFinish func(MatchSummary)
	onEmpty  func(code string)

	mu sync.Mutex
}

func newRuntime(code string, engine *game.Engine, revealDelay time.Duration, onFinish func(MatchSummary), onEmpty func(code string)) *Runtime {
	return &Runtime{
		code:        code,
		engine:      engine,
		subscribers: make(map[string]chan OutgoingMessage),
		revealDelay: revealDelay,
		onFinish:    onFinish,
		onEmpty:     onEmpty,
	}
}

func (rt *Runtime) Code() string {
	return rt.code
}

func (rt *Runtime) Snapshot() game.Snapshot {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.snapshotLocked()
}

func (rt *Runtime) snapshotLocked() game.Snapshot {
	snap := rt.engine.Snapshot()
	snap.RoomCode = rt.code
	return snap
}

// AddPlayer seats a new player and announces the updated lobby.
func (rt *Runtime) AddPlayer(playerID, name string) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.engine.AddPlayer(playerID, name) {
		return false
	}
	rt.broadcastStateLocked()
	return true
}

// ReconnectPlayer rebinds a seat to a new session identity and returns the
// seat's display name.
func (rt *Runtime) ReconnectPlayer(oldID, newID string) (string, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.engine.Reconnect(oldID, newID) {
		return "", false
	}
	name := ""
	for _, p := range rt.engine.Snapshot().Players {
		if p.ID == newID {
			name = p.Name
		}
	}
	rt.broadcastStateLocked()
	return name, true
}

// FindDisconnectedByName returns the identity of a disconnected seat with
// the given display name, for the name-based rejoin path.
func (rt *Runtime) FindDisconnectedByName(name string) (string, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	for _, p := range rt.engine.Snapshot().Players {
		if p.Name == name && !p.Connected {
			return p.ID, true
		}
	}
	return "", false
}

func (rt *Runtime) Seated(playerID string) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.engine.SeatOf(playerID) != -1
}

func (rt *Runtime) Subscribe(playerID string) <-chan OutgoingMessage {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	ch := make(chan OutgoingMessage, 8)
	rt.subscribers[playerID] = ch
	rt.pushStateLocked(playerID)
	return ch
}

// Unsubscribe drops the session and marks the seat disconnected. The seat
// itself stays; the match does not auto-forfeit. When every seat is gone the
// room reports itself empty for teardown.
func (rt *Runtime) Unsubscribe(playerID string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if ch, ok := rt.subscribers[playerID]; ok {
		delete(rt.subscribers, playerID)
		close(ch)
	}
	rt.engine.MarkDisconnected(playerID)
	rt.broadcastStateLocked()

	players := rt.engine.Snapshot().Players
	if len(players) == 0 {
		return
	}
	for _, p := range players {
		if p.Connected {
			return
		}
	}
	if rt.onEmpty != nil {
		go rt.onEmpty(rt.code)
	}
}

// HandleAction dispatches one gameplay action. Returned errors are
// user-facing rejections delivered only to the acting session; state
// changes are broadcast to everyone.
func (rt *Runtime) HandleAction(playerID, action string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.engine.SeatOf(playerID) == -1 {
		return appErr.ErrNotSeated
	}

	switch action {
	case "start", "restart":
		if !rt.engine.Start() {
			return errors.New("cannot start: need exactly 2 players and no match in progress")
		}
		rt.startedAt = time.Now()
		rt.recorded = false
		rt.broadcastStateLocked()
		return nil

	case "play":
		res := rt.engine.Play(playerID)
		if !res.Success {
			return errors.New(res.Message)
		}
		if res.RevealPending {
			rt.armRevealLocked()
		}
		rt.broadcastStateLocked()
		rt.maybeFinishLocked()
		return nil

	case "slap":
		res := rt.engine.Slap(playerID)
		rt.broadcastEventLocked("slap_result", res)
		rt.broadcastStateLocked()
		rt.maybeFinishLocked()
		return nil

	case "collect":
		res := rt.engine.Collect(playerID)
		if !res.Success {
			return errors.New(res.Message)
		}
		rt.broadcastStateLocked()
		rt.maybeFinishLocked()
		return nil

	case "ping":
		rt.pushMessageLocked(playerID, OutgoingMessage{Type: "pong", Seq: rt.nextSeqLocked()})
		return nil

	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}

// armRevealLocked schedules the delayed face reveal. The engine never
// sleeps; the runtime owns the timer and simply calls the idempotent Reveal
// when it elapses.
func (rt *Runtime) armRevealLocked() {
	if rt.revealTimer != nil {
		rt.revealTimer.Stop()
	}
	if rt.revealDelay <= 0 {
		rt.engine.Reveal()
		return
	}
	rt.revealTimer = time.AfterFunc(rt.revealDelay, rt.reveal)
}

func (rt *Runtime) reveal() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.engine.Reveal()
	rt.broadcastStateLocked()
}

func (rt *Runtime) maybeFinishLocked() {
	snap := rt.engine.Snapshot()
	if !snap.GameOver || rt.recorded {
		return
	}
	rt.recorded = true

	summary := MatchSummary{
		RoomCode:   rt.code,
		WinnerName: snap.Winner,
		Plays:      snap.Plays,
		StartedAt:  rt.startedAt,
		EndedAt:    time.Now(),
	}
	for _, p := range snap.Players {
		if p.Name != snap.Winner {
			summary.LoserName = p.Name
		}
	}
	if rt.onFinish != nil {
		go rt.onFinish(summary)
	}
}

func (rt *Runtime) pushStateLocked(playerID string) {
	rt.pushMessageLocked(playerID, OutgoingMessage{
		Type: "state",
		Seq:  rt.nextSeqLocked(),
		Data: rt.snapshotLocked(),
	})
}

func (rt *Runtime) broadcastStateLocked() {
	rt.broadcastEventLocked("state", rt.snapshotLocked())
}

func (rt *Runtime) broadcastEventLocked(msgType string, data interface{}) {
	msg := OutgoingMessage{Type: msgType, Seq: rt.nextSeqLocked(), Data: data}
	for id, ch := range rt.subscribers {
		select {
		case ch <- msg:
		default:
			logger.Log.Warn("subscriber channel full",
				zap.String("roomCode", rt.code),
				zap.String("playerID", id),
			)
		}
	}
}

func (rt *Runtime) pushMessageLocked(playerID string, msg OutgoingMessage) {
	if ch, ok := rt.subscribers[playerID]; ok {
		select {
		case ch <- msg:
		default:
			logger.Log.Warn("subscriber channel full",
				zap.String("roomCode", rt.code),
				zap.String("playerID", playerID),
			)
		}
	}
}

func (rt *Runtime) nextSeqLocked() int64 {
	rt.seq++
	return rt.seq
}
