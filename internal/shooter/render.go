package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for terminal rendering
const (
	ShipChar       = '▲'
	ShipBodyChar   = '█'
	ProjectileChar = '|'
	EnemyChar      = '▼'
	EnemyBodyChar  = '▓'
)

// cellMapper converts world coordinates to terminal cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(playfield core.Vec2, w, h int) cellMapper {
	return cellMapper{
		sx: float64(w) / playfield.X,
		sy: float64(h) / playfield.Y,
	}
}

// rect maps a world-space box with top-left at pos to a cell rectangle.
// Boxes never shrink below one cell.
func (m cellMapper) rect(pos, size core.Vec2) core.Rect {
	return core.NewRect(
		int(math.Floor(pos.X*m.sx)),
		int(math.Floor(pos.Y*m.sy)),
		core.Max(1, int(math.Round(size.X*m.sx))),
		core.Max(1, int(math.Round(size.Y*m.sy))),
	)
}

// Render draws the current snapshot scaled to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.world.Snapshot()
	m := newCellMapper(snap.Playfield, dst.Width(), dst.Height())

	for _, e := range snap.Enemies {
		r := m.rect(e.Pos, snap.EnemySize)
		dst.DrawRect(r, EnemyBodyChar, core.ColorBrightGreen)
		dst.SetColored(r.X+r.W/2, r.Bottom()-1, EnemyChar, core.ColorGreen)
	}

	for _, p := range snap.Projectiles {
		r := m.rect(p.Pos, snap.ProjectileSize)
		dst.DrawRect(r, ProjectileChar, core.ColorBrightRed)
	}

	ship := m.rect(snap.Player, snap.PlayerSize)
	dst.DrawRect(ship, ShipBodyChar, core.ColorCyan)
	dst.SetColored(ship.X+ship.W/2, ship.Y, ShipChar, core.ColorBrightCyan)

	hud := fmt.Sprintf(" Score: %d  Escaped: %d ", snap.Kills, snap.Escaped)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightYellow)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
