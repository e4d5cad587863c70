package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func cancel() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionCancel)
	return in
}

func held(left, right bool) core.InputFrame {
	in := core.NewInputFrame()
	in.Held = core.HeldKeys{Left: left, Right: right}
	return in
}

// playing returns a session already in the Playing state with the ball
// placed at (x, y) moving (vx, vy).
func playing(x, y, vx, vy float64) *Game {
	g := New(Options{})
	g.state = StatePlaying
	g.ball.Rect.X, g.ball.Rect.Y = x, y
	g.ball.VX, g.ball.VY = vx, vy
	return g
}

func TestNewSession(t *testing.T) {
	g := New(Options{})

	if g.State() != StateMenu {
		t.Errorf("initial state = %v, expected menu", g.State())
	}
	if g.Lives() != 3 || g.Score() != 0 {
		t.Errorf("lives/score = %d/%d, expected 3/0", g.Lives(), g.Score())
	}
	if p := g.Paddle(); p.Rect != core.NewRect(610, 840, 180, 30) || p.Speed != 9 {
		t.Errorf("paddle = %+v", p)
	}
	if b := g.Ball(); b.Rect != core.NewRect(700, 450, 26, 26) || b.VX != 6 || b.VY != -6 {
		t.Errorf("ball = %+v", b)
	}
	board := g.Board()
	if board.CountActive() != 60 {
		t.Errorf("active bricks = %d, expected 60", board.CountActive())
	}
	if first := board.At(0, 0).Rect; first != core.NewRect(55, 100, 120, 40) {
		t.Errorf("brick (0,0) = %+v", first)
	}
	if last := board.At(5, 9).Rect; last != core.NewRect(55+9*130, 100+5*50, 120, 40) {
		t.Errorf("brick (5,9) = %+v", last)
	}
	if board.At(2, 3).Color() != core.RGB(200, 200, 50) {
		t.Errorf("row 2 should be yellow, got %+v", board.At(2, 3).Color())
	}
}

func TestMenuConfirmStartsRound(t *testing.T) {
	g := New(Options{})
	g.board.At(1, 1).Active = false
	g.ball.Rect.X = 10
	g.ball.VX = -6
	g.respawn = RespawnDelay

	res := g.Step(confirm())

	if res.State != StatePlaying {
		t.Fatalf("state = %v, expected playing", res.State)
	}
	if !res.Has(EventStarted) {
		t.Error("expected a started event")
	}
	if res.Lives != 3 || res.Score != 0 {
		t.Errorf("lives/score = %d/%d, expected 3/0", res.Lives, res.Score)
	}
	if g.board.CountActive() != 60 {
		t.Errorf("all bricks should be active, got %d", g.board.CountActive())
	}
	if g.Respawning() {
		t.Error("respawn delay should be cleared")
	}
	// The physics step runs in the same frame: one tick of (6, -6) from the
	// launch position.
	if g.ball.Rect.X != 706 || g.ball.Rect.Y != 444 || g.ball.VX != 6 || g.ball.VY != -6 {
		t.Errorf("ball = %+v, expected launched from (700, 450) with (6, -6)", g.ball)
	}
}

func TestResetRound(t *testing.T) {
	g := New(Options{})
	g.score = 400
	g.lives = 1
	g.ball.Rect.Y = 10
	g.board.At(0, 0).Active = false

	g.resetRound()

	if g.ball != NewBall() {
		t.Errorf("ball = %+v, expected launch state", g.ball)
	}
	if g.board.CountActive() != 60 {
		t.Error("resetRound should restore all bricks")
	}
	if g.score != 400 || g.lives != 1 {
		t.Error("resetRound must not touch lives or score")
	}
}

func TestPhysicsIdleOutsidePlaying(t *testing.T) {
	for _, state := range []State{StateMenu, StatePaused, StateGameOver} {
		t.Run(state.String(), func(t *testing.T) {
			g := New(Options{})
			g.state = state
			if state == StateGameOver {
				g.lives = 0
			}
			paddle, ball, board := g.paddle, g.ball, g.board

			for range 50 {
				g.Step(held(false, true))
			}

			if g.state != state {
				t.Fatalf("state changed to %v", g.state)
			}
			if g.paddle != paddle || g.ball != ball || g.board != board {
				t.Error("entities moved outside Playing")
			}
		})
	}
}

func TestPaddleMovement(t *testing.T) {
	tests := []struct {
		name     string
		in       core.InputFrame
		expected float64
	}{
		{"none", held(false, false), 610},
		{"left", held(true, false), 601},
		{"right", held(false, true), 619},
		{"both favors right", held(true, true), 619},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playing(300, 600, 6, -6)
			g.Step(tc.in)
			if g.paddle.Rect.X != tc.expected {
				t.Errorf("paddle x = %v, expected %v", g.paddle.Rect.X, tc.expected)
			}
		})
	}
}

func TestPaddleClamp(t *testing.T) {
	p := NewPaddle()
	for range 200 {
		p.Move(1)
		if p.Rect.X < 0 || p.Rect.X > core.ViewportWidth-PaddleWidth {
			t.Fatalf("paddle escaped: x = %v", p.Rect.X)
		}
	}
	if p.Rect.X != 1220 {
		t.Errorf("paddle x = %v, expected 1220", p.Rect.X)
	}

	for range 200 {
		p.Move(-1)
	}
	if p.Rect.X != 0 {
		t.Errorf("paddle x = %v, expected 0", p.Rect.X)
	}
}

func TestPaddleCollision(t *testing.T) {
	g := playing(700, 814, 6, 6)

	res := g.Step(core.NewInputFrame())

	if !res.Has(EventPaddleHit) {
		t.Fatal("expected a paddle hit")
	}
	if g.ball.VY != -6 || g.ball.VX != 6 {
		t.Errorf("velocity = (%v, %v), expected (6, -6)", g.ball.VX, g.ball.VY)
	}
	if g.ball.Rect.Bottom() != g.paddle.Rect.Top() {
		t.Errorf("ball bottom = %v, expected to rest on paddle top %v", g.ball.Rect.Bottom(), g.paddle.Rect.Top())
	}

	// Resting on the paddle is not an overlap, so the next frame moves away.
	res = g.Step(core.NewInputFrame())
	if res.Has(EventPaddleHit) || g.ball.VY != -6 {
		t.Error("ball should leave the paddle without a second hit")
	}
}

func TestBrickHit(t *testing.T) {
	// After one tick the ball sits at (480, 220), inside brick (2, 3) only.
	g := playing(474, 226, 6, -6)

	res := g.Step(core.NewInputFrame())

	if g.board.At(2, 3).Active {
		t.Error("brick (2,3) should be inactive")
	}
	if g.board.CountActive() != 59 {
		t.Errorf("active bricks = %d, expected 59", g.board.CountActive())
	}
	if res.Score != 100 {
		t.Errorf("score = %d, expected 100", res.Score)
	}
	if g.ball.VY != 6 {
		t.Errorf("vy = %v, expected sign flip to 6", g.ball.VY)
	}
	if res.Count(EventBrickDestroyed) != 1 || res.Events[0] != (Event{Kind: EventBrickDestroyed, Row: 2, Col: 3}) {
		t.Errorf("events = %v", res.Events)
	}
}

func TestMultiBrickReflection(t *testing.T) {
	// After one tick the ball spans the gap between (2,3) and (2,4).
	tests := []struct {
		name       string
		legacy     bool
		expectedVY float64
	}{
		{"once per frame", false, 6},
		{"once per brick", true, -6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(Options{LegacyMultiBounce: tc.legacy})
			g.state = StatePlaying
			g.ball.Rect.X, g.ball.Rect.Y = 549, 226

			res := g.Step(core.NewInputFrame())

			if res.Count(EventBrickDestroyed) != 2 || res.Score != 200 {
				t.Fatalf("expected two bricks for 200 points, got %d for %d", res.Count(EventBrickDestroyed), res.Score)
			}
			if g.board.At(2, 3).Active || g.board.At(2, 4).Active {
				t.Error("both bricks should be inactive")
			}
			if g.ball.VY != tc.expectedVY {
				t.Errorf("vy = %v, expected %v", g.ball.VY, tc.expectedVY)
			}
		})
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		vx, vy     float64
		expectedVX float64
		expectedVY float64
	}{
		{"left", 2, 600, -6, 6, 6, 6},
		{"right", 1370, 600, 6, 6, -6, 6},
		{"top", 300, 4, 6, -6, 6, 6},
		{"top left corner", 2, 4, -6, -6, 6, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playing(tc.x, tc.y, tc.vx, tc.vy)
			res := g.Step(core.NewInputFrame())

			if !res.Has(EventWallBounce) {
				t.Error("expected a wall bounce")
			}
			if g.ball.VX != tc.expectedVX || g.ball.VY != tc.expectedVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", g.ball.VX, g.ball.VY, tc.expectedVX, tc.expectedVY)
			}
		})
	}
}

func TestLifeLost(t *testing.T) {
	g := playing(300, 870, -6, 6)

	res := g.Step(core.NewInputFrame())

	if !res.Has(EventLifeLost) || res.Lives != 2 {
		t.Fatalf("lives = %d, expected 2 after a miss", res.Lives)
	}
	if res.State != StatePlaying {
		t.Errorf("state = %v, expected playing", res.State)
	}
	if g.ball.Rect.X != 700 || g.ball.Rect.Y != 450 {
		t.Errorf("ball at (%v, %v), expected recentered", g.ball.Rect.X, g.ball.Rect.Y)
	}
	if g.ball.VY != -6 || g.ball.VX != -6 {
		t.Errorf("velocity = (%v, %v), expected (-6, -6)", g.ball.VX, g.ball.VY)
	}
	if !g.Respawning() {
		t.Error("expected respawn delay")
	}
}

func TestRespawnFreezesField(t *testing.T) {
	g := playing(300, 870, 6, 6)
	g.Step(core.NewInputFrame())
	paddleX := g.paddle.Rect.X

	// 500ms at 16ms per frame.
	for i := range 32 {
		res := g.Step(held(false, true))
		if g.ball.Rect.X != 700 || g.ball.Rect.Y != 450 || g.paddle.Rect.X != paddleX {
			t.Fatalf("frame %d: field moved during respawn", i)
		}
		if res.State != StatePlaying {
			t.Fatalf("frame %d: state = %v", i, res.State)
		}
	}
	if g.Respawning() {
		t.Fatal("respawn should be over")
	}

	g.Step(held(false, true))
	if g.ball.Rect.X != 706 || g.ball.Rect.Y != 444 || g.paddle.Rect.X != paddleX+9 {
		t.Errorf("field should move again, ball = %+v paddle x = %v", g.ball.Rect, g.paddle.Rect.X)
	}
}

func TestRespawnPausedKeepsCountdown(t *testing.T) {
	g := playing(300, 870, 6, 6)
	g.Step(core.NewInputFrame())
	remaining := g.respawn

	g.Step(confirm())
	for range 100 {
		g.Step(core.NewInputFrame())
	}

	if g.state != StatePaused || g.respawn != remaining {
		t.Errorf("paused countdown changed: %v -> %v", remaining, g.respawn)
	}
}

func TestGameOverFlow(t *testing.T) {
	g := playing(300, 870, 6, 6)
	g.lives = 1
	g.score = 1200

	res := g.Step(core.NewInputFrame())
	if res.Lives != 0 || res.State != StatePlaying {
		t.Fatalf("after last miss: lives=%d state=%v", res.Lives, res.State)
	}

	res = g.Step(core.NewInputFrame())
	if res.State != StateGameOver || !res.Has(EventGameOver) {
		t.Fatalf("state = %v, expected gameover", res.State)
	}
	if res.Score != 1200 {
		t.Errorf("score should survive until the menu, got %d", res.Score)
	}

	res = g.Step(confirm())
	if res.State != StateMenu || !res.Has(EventReturnedToMenu) {
		t.Fatalf("state = %v, expected menu", res.State)
	}
	if res.Lives != 3 || res.Score != 0 {
		t.Errorf("lives/score = %d/%d, expected 3/0", res.Lives, res.Score)
	}
}

func TestPauseResume(t *testing.T) {
	g := playing(300, 600, 6, 6)

	res := g.Step(confirm())
	if res.State != StatePaused || !res.Has(EventPaused) {
		t.Fatalf("state = %v, expected paused", res.State)
	}
	ball := g.ball

	res = g.Step(cancel())
	if res.Quit || res.State != StatePaused {
		t.Error("cancel must be ignored while paused")
	}

	res = g.Step(confirm())
	if res.State != StatePlaying || !res.Has(EventResumed) {
		t.Fatalf("state = %v, expected playing", res.State)
	}
	if g.ball.Rect.X != ball.Rect.X+6 {
		t.Error("physics should resume in the same frame")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		in       core.InputFrame
		expected bool
	}{
		{"cancel in menu", StateMenu, cancel(), true},
		{"cancel in playing", StatePlaying, cancel(), false},
		{"cancel in paused", StatePaused, cancel(), false},
		{"cancel in gameover", StateGameOver, cancel(), true},
	}

	for _, state := range []State{StateMenu, StatePlaying, StatePaused, StateGameOver} {
		in := core.NewInputFrame()
		in.Set(core.ActionQuit)
		tests = append(tests, struct {
			name     string
			state    State
			in       core.InputFrame
			expected bool
		}{"quit in " + state.String(), state, in, true})
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := playing(300, 600, 6, 6)
			g.state = tc.state
			res := g.Step(tc.in)
			if res.Quit != tc.expected {
				t.Errorf("Quit = %v, expected %v", res.Quit, tc.expected)
			}
			if res.Quit && !res.Has(EventQuit) {
				t.Error("quit should emit an event")
			}
		})
	}
}

func TestAutopilotInvariants(t *testing.T) {
	g := New(Options{})
	ap := Autopilot{}

	prevLives := g.lives
	prevScore := g.score
	var prevActive [BrickRows * BrickCols]bool

	for frame := range 5000 {
		res := g.Step(ap.Next(g))
		if res.State == StateGameOver {
			break
		}

		if x := g.paddle.Rect.X; x < 0 || x > core.ViewportWidth-PaddleWidth {
			t.Fatalf("frame %d: paddle x %v out of range", frame, x)
		}
		if abs(g.ball.VX) != BallSpeed || abs(g.ball.VY) != BallSpeed {
			t.Fatalf("frame %d: ball speed changed: (%v, %v)", frame, g.ball.VX, g.ball.VY)
		}
		if g.lives > prevLives || prevLives-g.lives > 1 {
			t.Fatalf("frame %d: lives went %d -> %d", frame, prevLives, g.lives)
		}
		if g.score < prevScore || (g.score-prevScore)%PointsPerBrick != 0 {
			t.Fatalf("frame %d: score went %d -> %d", frame, prevScore, g.score)
		}
		if want := PointsPerBrick * (60 - g.board.CountActive()); g.score != want {
			t.Fatalf("frame %d: score %d, expected %d", frame, g.score, want)
		}
		for i := range g.board.Bricks {
			if g.board.Bricks[i].Active && frame > 0 && !prevActive[i] {
				t.Fatalf("frame %d: brick %d reactivated", frame, i)
			}
			prevActive[i] = g.board.Bricks[i].Active
		}

		prevLives, prevScore = g.lives, g.score
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(Options{})
		Autopilot{}.Run(g, 3000, g.Step)
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}
}

func TestSnapshotRestore(t *testing.T) {
	g := New(Options{})
	Autopilot{}.Run(g, 700, g.Step)
	snap := g.Snapshot()

	restored := New(Options{})
	if err := restored.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}
	again := restored.Snapshot()

	if snap.Hash() != again.Hash() {
		t.Errorf("restored snapshot differs: %+v vs %+v", snap, again)
	}

	// Both continue identically.
	Autopilot{}.Run(g, 300, g.Step)
	Autopilot{}.Run(restored, 300, restored.Step)
	a, b := g.Snapshot(), restored.Snapshot()
	if a.Hash() != b.Hash() {
		t.Error("restored session diverged")
	}
}

func TestAutopilotRunStopsAtGameOver(t *testing.T) {
	g := New(Options{})
	g.state = StateGameOver
	steps := 0
	count := func(in core.InputFrame) StepResult {
		steps++
		return g.Step(in)
	}

	n := Autopilot{}.Run(g, 100, count)
	if n != 0 || steps != 0 || g.Tick() != 0 {
		t.Errorf("Run on a finished game stepped %d frames (returned %d)", steps, n)
	}
}

func TestApplySnapshotRejectsInvalid(t *testing.T) {
	g := New(Options{})
	good := g.Snapshot()

	tests := []struct {
		name   string
		modify func(*Snapshot)
	}{
		{"unknown state", func(s *Snapshot) { s.State = "warp" }},
		{"short brick list", func(s *Snapshot) { s.BrickData = s.BrickData[:10] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := good
			snap.BrickData = append([]int(nil), good.BrickData...)
			snap.Score = 500
			tt.modify(&snap)

			if err := g.ApplySnapshot(snap); err == nil {
				t.Error("expected an error")
			}
			if g.Score() != 0 {
				t.Error("a rejected snapshot must not change the game")
			}
		})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
