package runner

import (
	"fmt"

	"github.com/skywaylabs/skyway/internal/core"
)

// Visual characters for rendering
const (
	PlayerHead      = '◆'
	PlayerBody      = '█'
	ObstacleChar    = '▓'
	CollectibleChar = '¤'
	GroundChar      = '═'
	LaneMarkChar    = '·'
)

// focal controls the perspective: larger values flatten the projection.
const focal = 5.0

// Render draws the runner world with a simple perspective projection:
// entities shrink toward a horizon line as z grows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.player == nil {
		return
	}

	w := dst.Width()
	horizonY := 2
	groundY := dst.Height() - 3

	dst.DrawHLine(0, groundY, w, GroundChar)

	// Lane guides: sample points along each lane's depth
	for lane := 0; lane < g.cfg.Lanes.Count; lane++ {
		x := laneX(lane, g.cfg.Lanes)
		for z := 2.0; z < g.cfg.Spawner.SpawnZ; z += 3.0 {
			sx, sy := g.project(dst, core.Vec3{X: x, Y: 0, Z: z}, horizonY, groundY)
			dst.SetColor(sx, sy, LaneMarkChar, core.ColorGray)
		}
	}

	// Entities far-to-near so close ones draw on top
	for _, c := range g.collectibles {
		sx, sy := g.project(dst, c.Pos(), horizonY, groundY)
		dst.SetColor(sx, sy, CollectibleChar, core.ColorBrightYellow)
	}
	for _, o := range g.obstacles {
		g.drawObstacle(dst, o, horizonY, groundY)
	}

	g.drawPlayer(dst, horizonY, groundY)
	g.drawHUD(dst)

	switch {
	case g.phase == PhaseIdle:
		g.drawCenteredMessage(dst, g.title, "Press Enter to start")
	case g.phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// project maps a world position to screen coordinates. Rows interpolate
// from the horizon (far) to the ground line (near); jump height lifts the
// point off the ground row.
func (g *Game) project(dst *core.Screen, p core.Vec3, horizonY, groundY int) (int, int) {
	z := p.Z
	if z < 0 {
		z = 0
	}
	persp := focal / (focal + z)

	unit := float64(dst.Width()) / 12.0
	sx := float64(dst.Width())/2 + p.X*unit*persp
	sy := float64(horizonY) + (float64(groundY)-float64(horizonY))*persp - p.Y*2.0*persp

	return int(sx), int(sy)
}

// drawObstacle renders an obstacle as a block that grows as it approaches.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle, horizonY, groundY int) {
	sx, sy := g.project(dst, o.Pos(), horizonY, groundY)

	z := o.Pos().Z
	if z < 0 {
		z = 0
	}
	persp := focal / (focal + z)
	half := int(persp * 2)

	for dx := -half; dx <= half; dx++ {
		dst.SetColor(sx+dx, sy, ObstacleChar, core.ColorRed)
		if persp > 0.5 {
			dst.SetColor(sx+dx, sy-1, ObstacleChar, core.ColorRed)
		}
	}
}

// drawPlayer renders the avatar at its lane position and jump height.
func (g *Game) drawPlayer(dst *core.Screen, horizonY, groundY int) {
	sx, sy := g.project(dst, g.player.Pos(), horizonY, groundY)

	dst.SetColor(sx, sy-1, PlayerHead, core.ColorBrightCyan)
	dst.SetColor(sx-1, sy, PlayerBody, core.ColorCyan)
	dst.SetColor(sx, sy, PlayerBody, core.ColorCyan)
	dst.SetColor(sx+1, sy, PlayerBody, core.ColorCyan)
}

// drawHUD writes score, lives, and speed on the top rows.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	hearts := ""
	for i := 0; i < g.lives; i++ {
		hearts += "♥"
	}
	dst.DrawTextColor(2, 1, hearts, core.ColorRed)

	speedText := fmt.Sprintf(" Spd: %.1f ", g.pace.speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
