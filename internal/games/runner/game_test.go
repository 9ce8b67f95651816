package runner

import (
	"testing"

	"github.com/skywaylabs/skyway/internal/core"
)

// recordStage counts Add/Remove notifications for lifecycle assertions.
type recordStage struct {
	added   int
	removed int
}

func (s *recordStage) Add(Entity)    { s.added++ }
func (s *recordStage) Remove(Entity) { s.removed++ }

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func startedGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New("astro", "Astro Runner")
	g.Reset(testRuntime(seed))

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	if !g.State().Playing {
		t.Fatal("game should be playing after start command")
	}
	return g
}

func step(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func TestGameStartsIdle(t *testing.T) {
	g := New("astro", "Astro Runner")
	g.Reset(testRuntime(1))

	st := g.State()
	if st.Playing || st.GameOver {
		t.Errorf("fresh game should be idle, got %+v", st)
	}

	// Gameplay commands are ignored outside the playing window
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.Snapshot().Tick != 0 {
		t.Error("idle game should not advance ticks")
	}
	if g.player.Lane() != 1 {
		t.Error("idle game should ignore lane commands")
	}
}

func TestGameStartResetsSession(t *testing.T) {
	g := startedGame(t, 42)

	st := g.State()
	if st.Score != 0 {
		t.Errorf("score should start at 0, got %d", st.Score)
	}
	if st.Lives != 3 {
		t.Errorf("lives should start at 3, got %d", st.Lives)
	}
	if st.Speed != g.cfg.Gameplay.BaseSpeed {
		t.Errorf("speed should start at base %f, got %f", g.cfg.Gameplay.BaseSpeed, st.Speed)
	}
	if len(g.obstacles) != 0 || len(g.collectibles) != 0 {
		t.Error("entity collections should start empty")
	}
}

func TestGameScoreMonotonic(t *testing.T) {
	g := startedGame(t, 42)

	in := core.NewInputFrame()
	prevScore := 0
	prevLives := g.State().Lives
	for i := 0; i < 3000; i++ {
		// Occasional movement to vary collisions
		if i%37 == 0 {
			in.Set(core.ActionJump)
		}
		if i%53 == 0 {
			in.Set(core.ActionLeft)
		}
		if i%71 == 0 {
			in.Set(core.ActionRight)
		}

		st := g.Step(in).State
		in.Clear()

		if st.Score < prevScore {
			t.Fatalf("score decreased at tick %d: %d -> %d", i, prevScore, st.Score)
		}
		if st.Lives > prevLives {
			t.Fatalf("lives increased at tick %d: %d -> %d", i, prevLives, st.Lives)
		}
		if st.Lives < 0 {
			t.Fatalf("lives went negative at tick %d", i)
		}
		prevScore = st.Score
		prevLives = st.Lives

		if st.GameOver {
			if st.Lives != 0 {
				t.Fatalf("game over with %d lives remaining", st.Lives)
			}
			break
		}
	}
}

func TestGameSurvivalScore(t *testing.T) {
	g := startedGame(t, 42)

	// One second at 60 ticks with survival rate 10/s, before anything spawns
	step(g, 60)

	score := g.State().Score
	if score < 9 || score > 10 {
		t.Errorf("survival score after 1s = %d, expected ~10", score)
	}
}

func TestGameSpawnCycle(t *testing.T) {
	g := startedGame(t, 42)

	// Advance just past one default spawn interval (2.5s at 60 ticks/s)
	step(g, 160)

	snap := g.Snapshot()

	// Exactly one spawn tick: speed ramped once and the timer restarted
	want := g.cfg.Gameplay.BaseSpeed + g.cfg.Gameplay.SpeedIncrement
	if snap.Speed != want {
		t.Errorf("speed after one spawn cycle = %f, expected %f", snap.Speed, want)
	}
	if snap.SpawnTimer >= g.cfg.Spawner.Interval {
		t.Errorf("spawn timer should have reset, got %f", snap.SpawnTimer)
	}
	if snap.SpawnTimer > 0.5 {
		t.Errorf("spawn timer should be near 0 shortly after the cycle, got %f", snap.SpawnTimer)
	}
	if snap.Obstacles+snap.Collectibles == 0 {
		t.Log("spawn cycle produced no entities (legal with probabilistic rolls)")
	}
}

func TestGameSpeedNeverDecreases(t *testing.T) {
	g := startedGame(t, 7)

	in := core.NewInputFrame()
	prev := g.State().Speed
	for i := 0; i < 5000; i++ {
		if i%29 == 0 {
			in.Set(core.ActionJump)
		}
		st := g.Step(in).State
		in.Clear()
		if st.Speed < prev {
			t.Fatalf("speed decreased at tick %d: %f -> %f", i, prev, st.Speed)
		}
		prev = st.Speed
		if st.GameOver {
			break
		}
	}
}

func TestGameObstacleCollision(t *testing.T) {
	g := startedGame(t, 42)
	stage := &recordStage{}
	g.SetStage(stage)

	// Plant an obstacle dead ahead in the player's lane
	o := newObstacle(1, 0, 0.5, &g.pace)
	g.obstacles = append(g.obstacles, o)
	stage.Add(o)

	livesBefore := g.State().Lives
	step(g, 1)

	if got := g.State().Lives; got != livesBefore-1 {
		t.Errorf("lives after collision = %d, expected %d", got, livesBefore-1)
	}
	if !o.Disposed() {
		t.Error("hit obstacle should be disposed")
	}
	for _, live := range g.obstacles {
		if live == o {
			t.Error("hit obstacle should be removed from the active collection")
		}
	}
}

func TestGameCollectiblePickup(t *testing.T) {
	g := startedGame(t, 42)

	c := newCollectible(1, 0, 0.5, 10, &g.pace)
	c.pos.Y = 0 // directly in the player's path
	g.collectibles = append(g.collectibles, c)

	scoreBefore := g.State().Score
	step(g, 1)

	gained := g.State().Score - scoreBefore
	if gained < 10 {
		t.Errorf("pickup should award at least its value, gained %d", gained)
	}
	if !c.Disposed() {
		t.Error("consumed collectible should be disposed")
	}
	if len(g.collectibles) != 0 {
		t.Error("consumed collectible should be removed from the active collection")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g := startedGame(t, 42)
	g.lives = 1

	o := newObstacle(1, 0, 0.5, &g.pace)
	g.obstacles = append(g.obstacles, o)

	scoreBefore := g.State().Score
	st := g.Step(core.NewInputFrame()).State

	if !st.GameOver {
		t.Fatal("losing the last life should end the game")
	}
	if st.Playing {
		t.Error("GameOver state should not report Playing")
	}
	if st.Lives != 0 {
		t.Errorf("lives at game over = %d, expected exactly 0", st.Lives)
	}
	// The terminal frame stops before survival scoring
	if st.Score != scoreBefore {
		t.Errorf("terminal frame should not add survival score: %d -> %d", scoreBefore, st.Score)
	}

	// Further ticks are inert until restart
	tickAtDeath := g.Snapshot().Tick
	step(g, 10)
	if g.Snapshot().Tick != tickAtDeath {
		t.Error("game over session should not advance ticks")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := startedGame(t, 42)
	stage := &recordStage{}
	g.SetStage(stage)

	// Run until spawns exist, then force game over
	step(g, 400)
	g.lives = 1
	g.obstacles = append(g.obstacles, newObstacle(1, 0, 0.5, &g.pace))
	step(g, 1)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	st := g.Step(restart).State

	if !st.Playing || st.GameOver {
		t.Fatalf("restart should return to playing, got %+v", st)
	}
	if st.Score != 0 {
		t.Errorf("restart should reset score to 0, got %d", st.Score)
	}
	if st.Lives != 3 {
		t.Errorf("restart should reset lives to 3, got %d", st.Lives)
	}
	if st.Speed != g.cfg.Gameplay.BaseSpeed {
		t.Errorf("restart should reset speed to base, got %f", st.Speed)
	}
	if len(g.obstacles) != 0 || len(g.collectibles) != 0 {
		t.Error("restart should empty the active entity collections")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := startedGame(t, 42)
	step(g, 30)

	pauseFrame := core.NewInputFrame()
	pauseFrame.Set(core.ActionPause)
	g.Step(pauseFrame)

	if !g.State().Paused {
		t.Fatal("pause command should pause the game")
	}

	snap := g.Snapshot()
	step(g, 60)
	if g.Snapshot() != snap {
		t.Error("paused game should not change state")
	}

	g.Step(pauseFrame)
	if g.State().Paused {
		t.Error("second pause command should resume")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := New("astro", "Astro Runner")
		g.Reset(testRuntime(seed))

		in := core.NewInputFrame()
		in.Set(core.ActionStart)
		g.Step(in)
		in.Clear()

		for i := 0; i < 1000; i++ {
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			if i%40 == 0 {
				in.Set(core.ActionLeft)
			}
			if i%90 == 0 {
				in.Set(core.ActionRight)
			}
			st := g.Step(in).State
			in.Clear()
			if st.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a := run(12345)
	b := run(12345)
	if a != b {
		t.Errorf("determinism failed:\n run1: %+v\n run2: %+v", a, b)
	}
}

func TestGameStageLifecycle(t *testing.T) {
	g := New("astro", "Astro Runner")
	g.Reset(testRuntime(42))
	stage := &recordStage{}
	g.SetStage(stage)

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	// Long enough for spawns and despawns to cycle
	step(g, 4000)

	if stage.added == 0 {
		t.Fatal("expected entities to be added to the stage")
	}
	live := len(g.obstacles) + len(g.collectibles)
	if stage.removed != stage.added-live {
		t.Errorf("stage bookkeeping: added %d, removed %d, live %d",
			stage.added, stage.removed, live)
	}

	// Reset removes everything still on stage
	g.Reset(testRuntime(43))
	if stage.removed != stage.added {
		t.Errorf("reset should remove all staged entities: added %d, removed %d",
			stage.added, stage.removed)
	}
}
