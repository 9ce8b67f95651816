// Package runner implements a three-lane endless runner: dodge obstacles,
// grab pickups, survive as the world speeds up. Two variants are registered,
// "astro" and "neon", sharing one simulation with different tuning.
package runner

import (
	"github.com/skywaylabs/skyway/internal/config"
	"github.com/skywaylabs/skyway/internal/core"
	"github.com/skywaylabs/skyway/internal/registry"
)

// Phase is the session state. Transitions: Idle -> Playing (start),
// Playing -> GameOver (last life lost), GameOver -> Playing (restart).
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// Game implements the lane-runner session: it owns the player, the active
// entity collections, score/lives/speed bookkeeping, and the win/loss
// transitions. All updates happen in a fixed per-frame order: player,
// entities, spawner, collisions, score.
type Game struct {
	variant string
	title   string

	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	dt         float64
	difficulty *config.DifficultyManager

	phase  Phase
	paused bool

	player       *Player
	pace         pace
	spawner      *Spawner
	obstacles    []*Obstacle
	collectibles []*Collectible
	stage        Stage

	score       int
	survivalAcc float64
	lives       int
	tickCount   int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a runner game for the given variant.
func New(variant, title string) *Game {
	return &Game{
		variant: variant,
		title:   title,
		stage:   NopStage{},
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Kind reports that the runner is an interactive game.
func (g *Game) Kind() registry.Kind {
	return registry.KindGame
}

// SetStage attaches a render surface. Entities entering and leaving play
// are reported to it; pass nil to detach.
func (g *Game) SetStage(s Stage) {
	if s == nil {
		s = NopStage{}
	}
	g.stage = s
}

// Reset initializes or restarts the session into the idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DT()

	cfg, err := config.LoadRunner(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.spawner = nil // Rebuilt from the freshly loaded config

	g.resetSession()
	g.phase = PhaseIdle
}

// resetSession brings all mutable session state back to a fresh run:
// score 0, full lives, base speed, empty entity collections, timer 0.
func (g *Game) resetSession() {
	// Dispose whatever the previous run left on the stage
	for _, o := range g.obstacles {
		g.stage.Remove(o)
		o.Dispose()
	}
	for _, c := range g.collectibles {
		g.stage.Remove(c)
		c.Dispose()
	}
	g.obstacles = g.obstacles[:0]
	g.collectibles = g.collectibles[:0]

	g.player = NewPlayer(g.cfg.Lanes, g.cfg.Physics)
	g.pace = pace{speed: g.cfg.Gameplay.BaseSpeed}
	if g.spawner == nil {
		g.spawner = NewSpawner(g.runtime.Seed, g.cfg, g.difficulty)
	} else {
		g.spawner.Reset(g.runtime.Seed)
	}

	g.score = 0
	g.survivalAcc = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.paused = false
}

// Step advances the session by one fixed tick. Commands arriving outside
// their valid phase are silently ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseIdle:
		if in.Has(core.ActionStart) {
			g.startRun()
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.resetSession()
			g.phase = PhasePlaying
		}
		return core.StepResult{State: g.State()}
	}

	// Playing
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	if in.Has(core.ActionLeft) {
		g.player.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.player.MoveRight()
	}

	g.player.Update(g.dt)
	g.updateEntities()
	g.spawn()
	terminal := g.resolveCollisions()
	if terminal {
		g.phase = PhaseGameOver
		return core.StepResult{State: g.State()}
	}

	// Passive survival score, accumulated fractionally so the integer
	// score stays monotone at any tick rate
	g.survivalAcc += g.dt * g.cfg.Scoring.SurvivalRate
	if whole := int(g.survivalAcc); whole > 0 {
		g.score += whole
		g.survivalAcc -= float64(whole)
	}

	return core.StepResult{State: g.State()}
}

// startRun transitions Idle -> Playing on a fresh session.
func (g *Game) startRun() {
	g.resetSession()
	g.phase = PhasePlaying
}

// updateEntities advances every live entity and culls the ones that passed
// behind the player. Reverse iteration keeps removal safe mid-scan.
func (g *Game) updateEntities() {
	despawn := g.cfg.Spawner.DespawnZ

	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := g.obstacles[i]
		o.Update(g.dt)
		if o.Pos().Z < despawn {
			g.removeObstacle(o)
		}
	}
	for i := len(g.collectibles) - 1; i >= 0; i-- {
		c := g.collectibles[i]
		c.Update(g.dt)
		if c.Pos().Z < despawn {
			g.removeCollectible(c)
		}
	}
}

// spawn runs the spawner and attaches any new entities to the stage.
func (g *Game) spawn() {
	obs, cols, _ := g.spawner.TrySpawn(g.dt, &g.pace, g.score, g.tickCount)
	for _, o := range obs {
		g.obstacles = append(g.obstacles, o)
		g.stage.Add(o)
	}
	for _, c := range cols {
		g.collectibles = append(g.collectibles, c)
		g.stage.Add(c)
	}
}

// resolveCollisions applies this frame's collision deltas and reports
// whether the run ended.
func (g *Game) resolveCollisions() bool {
	rep := collide(g.player.Pos(), g.obstacles, g.collectibles,
		g.cfg.Gameplay.ObstacleRadius, g.cfg.Gameplay.PickupRadius, g.lives)

	for _, o := range rep.HitObstacles {
		g.removeObstacle(o)
	}
	for _, c := range rep.Consumed {
		g.removeCollectible(c)
	}

	g.score += rep.ScoreGained
	g.lives -= rep.LivesLost
	if g.lives < 0 {
		g.lives = 0 // shown to the user, never negative
	}

	return rep.LivesLost > 0 && g.lives == 0
}

// removeObstacle detaches an obstacle from play, the stage, and disposal.
func (g *Game) removeObstacle(o *Obstacle) {
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		if g.obstacles[i] == o {
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
			break
		}
	}
	g.stage.Remove(o)
	o.Dispose()
}

// removeCollectible detaches a collectible from play, the stage, and disposal.
func (g *Game) removeCollectible(c *Collectible) {
	for i := len(g.collectibles) - 1; i >= 0; i-- {
		if g.collectibles[i] == c {
			g.collectibles = append(g.collectibles[:i], g.collectibles[i+1:]...)
			break
		}
	}
	g.stage.Remove(c)
	c.Dispose()
}

// State returns the read-only session view for the UI layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Speed:    g.pace.speed,
		Playing:  g.phase == PhasePlaying,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register both runner variants with the registry
func init() {
	registry.Register("astro", func() registry.Game {
		return New("astro", "Astro Runner")
	})
	registry.Register("neon", func() registry.Game {
		return New("neon", "Neon Dash")
	})
}
