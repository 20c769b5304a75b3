package room

import (
	"strings"
	"sync"

	"ers-service/internal/config"
	"ers-service/internal/service/game"
	"ers-service/pkg/auth"
	appErr "ers-service/pkg/errors"
	"ers-service/pkg/logger"
	"ers-service/pkg/utils/random"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the room registry: it creates rooms, routes joins, and tears a
// room down once every seat has disconnected.
type Service struct {
	cfg      config.GameConfig
	onFinish func(MatchSummary)

	rooms map[string]*Runtime
	mu    sync.Mutex
}

func NewService(cfg config.GameConfig, onFinish func(MatchSummary)) *Service {
	return &Service{
		cfg:      cfg,
		onFinish: onFinish,
		rooms:    make(map[string]*Runtime),
	}
}

// JoinInfo is returned on every successful create/join/rejoin. The resume
// token proves seat ownership when the session later opens the websocket or
// reconnects.
type JoinInfo struct {
	RoomCode    string `json:"roomCode"`
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	ResumeToken string `json:"resumeToken"`
}

func (s *Service) CreateRoom(playerName string) (JoinInfo, error) {
	playerID := uuid.NewString()
	engine := game.New()
	if !engine.AddPlayer(playerID, playerName) {
		return JoinInfo{}, appErr.ErrRoomFull
	}

	s.mu.Lock()
	code := random.Code(s.cfg.RoomCodeLength)
	for s.rooms[code] != nil {
		code = random.Code(s.cfg.RoomCodeLength)
	}
	rt := newRuntime(code, engine, s.cfg.RevealDelay(), s.onFinish, s.remove)
	s.rooms[code] = rt
	s.mu.Unlock()

	token, err := auth.GenerateRoomToken(code, playerID)
	if err != nil {
		return JoinInfo{}, err
	}

	logger.Log.Info("room created",
		zap.String("roomCode", code),
		zap.String("playerName", playerName),
	)
	return JoinInfo{RoomCode: code, PlayerID: playerID, PlayerName: playerName, ResumeToken: token}, nil
}

// JoinRoom seats a new player, or rebinds a disconnected seat when the
// caller presents a valid resume token or the name of a disconnected seat.
func (s *Service) JoinRoom(code, playerName, resumeToken string) (JoinInfo, error) {
	code = normalizeCode(code)
	rt, err := s.Get(code)
	if err != nil {
		return JoinInfo{}, err
	}

	if resumeToken != "" {
		claims, err := auth.ParseRoomToken(resumeToken)
		if err == nil && claims.RoomCode == code {
			newID := uuid.NewString()
			if name, ok := rt.ReconnectPlayer(claims.PlayerID, newID); ok {
				return s.joinInfo(code, newID, name)
			}
		}
	}

	if oldID, ok := rt.FindDisconnectedByName(playerName); ok {
		newID := uuid.NewString()
		if name, ok := rt.ReconnectPlayer(oldID, newID); ok {
			return s.joinInfo(code, newID, name)
		}
	}

	playerID := uuid.NewString()
	if !rt.AddPlayer(playerID, playerName) {
		return JoinInfo{}, appErr.ErrRoomFull
	}

	logger.Log.Info("player joined",
		zap.String("roomCode", code),
		zap.String("playerName", playerName),
	)
	return s.joinInfo(code, playerID, playerName)
}

func (s *Service) joinInfo(code, playerID, playerName string) (JoinInfo, error) {
	token, err := auth.GenerateRoomToken(code, playerID)
	if err != nil {
		return JoinInfo{}, err
	}
	return JoinInfo{RoomCode: code, PlayerID: playerID, PlayerName: playerName, ResumeToken: token}, nil
}

func (s *Service) Get(code string) (*Runtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.rooms[normalizeCode(code)]
	if !ok {
		return nil, appErr.ErrRoomNotFound
	}
	return rt, nil
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

func (s *Service) remove(code string) {
	s.mu.Lock()
	delete(s.rooms, code)
	s.mu.Unlock()
	logger.Log.Info("room deleted", zap.String("roomCode", code))
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
