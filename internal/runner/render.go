package runner

import (
	"fmt"

	"github.com/pdudko/runcat/internal/core"
)

// Visual characters for rendering
const (
	CatEar     = '▲'
	CatHead    = '●'
	CatBody    = '█'
	CatTail    = '╰'
	CatLeg1    = '╱'
	CatLeg2    = '╲'
	CrateChar  = '▓'
	GroundChar = '═'
	PuffChar   = '·'
)

// Render draws the current game state to the screen. World units map to
// cells by plain proportional scaling, so any terminal size works.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := g.groundRow(dst)
	dst.DrawHLineColor(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	for i := 0; i < g.obstacles.Len(); i++ {
		g.drawCrate(dst, g.obstacles.At(i), groundY)
	}

	g.drawPuffs(dst, groundY)
	g.drawCat(dst, groundY)
	g.drawHUD(dst)

	switch g.phase {
	case core.PhaseHome:
		g.drawHome(dst)
	case core.PhasePaused:
		g.drawOverlay(dst, "PAUSED", []string{"Press P to resume"})
	case core.PhaseGameOver:
		g.drawGameOver(dst)
	}
}

// cellX maps a world x coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, wx float64) int {
	return int(wx * float64(dst.Width()) / g.cfg.World.Width)
}

// cellSpanX maps a world width to a column count, at least one.
func (g *Game) cellSpanX(dst *core.Screen, ww float64) int {
	return core.Max(int(ww*float64(dst.Width())/g.cfg.World.Width+0.5), 1)
}

// cellSpanY maps a world height to a row count, at least one.
func (g *Game) cellSpanY(dst *core.Screen, wh float64) int {
	return core.Max(int(wh*float64(dst.Height())/g.cfg.World.Height+0.5), 1)
}

// groundRow is the screen row of the ground line.
func (g *Game) groundRow(dst *core.Screen) int {
	return dst.Height() - g.cfg.World.GroundOffset
}

// drawCat renders the cat sprite with a two-frame run cycle. The sprite is
// anchored by its bottom row so jumps lift the whole body.
func (g *Game) drawCat(dst *core.Screen, groundY int) {
	lift := int(g.char.Y() * float64(dst.Height()) / g.cfg.World.Height)
	x := g.cellX(dst, g.char.x)
	bottom := groundY - 1 - lift

	// Ears over the head end
	dst.SetCell(x+1, bottom-2, CatEar, core.ColorOrange)
	dst.SetCell(x+2, bottom-2, CatEar, core.ColorOrange)

	// Tail, body, head facing the oncoming crates
	dst.SetCell(x, bottom-1, CatTail, core.ColorOrange)
	dst.SetCell(x+1, bottom-1, CatBody, core.ColorOrange)
	dst.SetCell(x+2, bottom-1, CatHead, core.ColorOrange)

	// Legs: animated on the ground, tucked in the air
	if g.char.Grounded() {
		if g.legFrame < 5 {
			dst.SetCell(x, bottom, CatLeg1, core.ColorOrange)
			dst.SetCell(x+2, bottom, CatLeg2, core.ColorOrange)
		} else {
			dst.SetCell(x+1, bottom, CatLeg1, core.ColorOrange)
			dst.SetCell(x+2, bottom, CatLeg2, core.ColorOrange)
		}
	} else {
		dst.SetCell(x, bottom, CatLeg1, core.ColorOrange)
		dst.SetCell(x+1, bottom, CatLeg2, core.ColorOrange)
	}
}

// drawCrate renders one crate resting on the ground.
func (g *Game) drawCrate(dst *core.Screen, o Obstacle, groundY int) {
	x := g.cellX(dst, o.X)
	w := g.cellSpanX(dst, o.Width)
	h := g.cellSpanY(dst, o.Height)
	dst.DrawRectColor(core.NewRect(x, groundY-h, w, h), CrateChar, core.ColorYellow)
}

// drawPuffs renders landing dust at both sides of the cat's feet.
func (g *Game) drawPuffs(dst *core.Screen, groundY int) {
	for _, p := range g.puffs {
		x := g.cellX(dst, p.x)
		dst.SetCell(x-1, groundY-1, PuffChar, core.ColorGray)
		dst.SetCell(x+3, groundY-1, PuffChar, core.ColorGray)
	}
}

// drawHUD renders score and progression along the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d  Best: %d ", int(g.score), g.best)
	dst.DrawText(2, 0, scoreText)

	levelText := fmt.Sprintf(" Lv: %d  Spd: %.1f ", g.level, g.speed)
	dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
}

// drawHome renders the title overlay with the leaderboard.
func (g *Game) drawHome(dst *core.Screen) {
	lines := []string{"Press SPACE to run", ""}
	lines = append(lines, g.boardLines()...)
	g.drawOverlay(dst, "R U N C A T", lines)
}

// drawGameOver renders the final score overlay with the leaderboard.
func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{fmt.Sprintf("Score: %d  |  Best: %d", int(g.score), g.best)}
	if g.newRecord {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "")
	lines = append(lines, g.boardLines()...)
	lines = append(lines, "", "Press R to restart")
	g.drawOverlay(dst, "GAME OVER", lines)
}

// boardLines formats the leaderboard for overlay display.
func (g *Game) boardLines() []string {
	scores := g.board.Scores()
	if len(scores) == 0 {
		return []string{"No scores yet"}
	}
	lines := make([]string, 0, len(scores)+1)
	lines = append(lines, "Top scores")
	for i, s := range scores {
		lines = append(lines, fmt.Sprintf("%d. %d", i+1, s))
	}
	return lines
}

// drawOverlay draws a centered message box with a title and body lines.
func (g *Game) drawOverlay(dst *core.Screen, title string, lines []string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
