// Package session runs a breakout game for one player: it steps the game,
// logs its events and turns them into sound cues. Frontends own one Session
// each and drive it from their frame loop.
package session

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// ID uniquely identifies a session (e.g., an SSH connection).
type ID string

// CuePlayer plays sound cues. *audio.Manager implements it.
type CuePlayer interface {
	Play(c audio.Cue)
}

// Session is a single player's game. Not safe for concurrent Step calls;
// Score and Lives may be read from other goroutines.
type Session struct {
	id      ID
	user    string
	started time.Time

	game   *breakout.Game
	logger *log.Logger
	cues   CuePlayer

	score atomic.Int64
	lives atomic.Int64
}

// New creates a session around game. logger and cues may be nil.
func New(id ID, user string, game *breakout.Game, logger *log.Logger, cues CuePlayer) *Session {
	s := &Session{
		id:      id,
		user:    user,
		started: time.Now(),
		game:    game,
		logger:  logger,
		cues:    cues,
	}
	s.score.Store(int64(game.Score()))
	s.lives.Store(int64(game.Lives()))
	return s
}

// Step advances the game one frame and reports its events.
func (s *Session) Step(in core.InputFrame) breakout.StepResult {
	res := s.game.Step(in)
	s.score.Store(int64(res.Score))
	s.lives.Store(int64(res.Lives))

	for _, e := range res.Events {
		s.report(e, res)
	}
	return res
}

// Render draws the game onto dst and presents the frame.
func (s *Session) Render(dst core.Surface) {
	s.game.Render(dst)
	dst.Present()
}

// report logs an event and plays its cue.
func (s *Session) report(e breakout.Event, res breakout.StepResult) {
	if s.logger != nil {
		switch e.Kind {
		case breakout.EventLifeLost, breakout.EventGameOver:
			s.logger.Info(e.Kind.String(), "session", s.id, "lives", res.Lives, "score", res.Score)
		case breakout.EventStarted, breakout.EventQuit:
			s.logger.Info(e.Kind.String(), "session", s.id)
		default:
			s.logger.Debug(e.String(), "session", s.id, "score", res.Score)
		}
	}

	if s.cues == nil {
		return
	}
	if c, ok := CueFor(e.Kind); ok {
		s.cues.Play(c)
	}
}

// CueFor maps a game event to its sound cue.
func CueFor(kind breakout.EventKind) (audio.Cue, bool) {
	switch kind {
	case breakout.EventPaddleHit:
		return audio.CuePaddleHit, true
	case breakout.EventBrickDestroyed:
		return audio.CueBrickDestroyed, true
	case breakout.EventWallBounce:
		return audio.CueWallBounce, true
	case breakout.EventLifeLost:
		return audio.CueLifeLost, true
	case breakout.EventGameOver:
		return audio.CueGameOver, true
	default:
		return 0, false
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID { return s.id }

// User returns the player name, if known.
func (s *Session) User() string { return s.user }

// Started returns when the session was created.
func (s *Session) Started() time.Time { return s.started }

// Game returns the underlying game.
func (s *Session) Game() *breakout.Game { return s.game }

// Score returns the latest score.
func (s *Session) Score() int { return int(s.score.Load()) }

// Lives returns the latest lives count.
func (s *Session) Lives() int { return int(s.lives.Load()) }
