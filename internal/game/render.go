package game

import (
	"fmt"
	"math"

	"github.com/jecht83/Flappy-Swift/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '▶'
	BirdFlapChar  = '▷'
	BirdBodyChar  = '●'
	BirdFallen    = '▼'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	SoilDark      = '▓'
	SoilLight     = '▒'
)

// soilStripe is the width of one ground stripe in world units.
const soilStripe = 20.0

// Projection maps the y-up world frame onto a y-down grid of cells.
type Projection struct {
	sx, sy     float64
	cols, rows int
}

// NewProjection scales frame to cols x rows cells.
func NewProjection(frame core.Box, cols, rows int) Projection {
	return Projection{
		sx:   float64(cols) / frame.W,
		sy:   float64(rows) / frame.H,
		cols: cols,
		rows: rows,
	}
}

// Col returns the column containing world x.
func (p Projection) Col(x float64) int {
	return int(math.Floor(x * p.sx))
}

// Row returns the row containing world y.
func (p Projection) Row(y float64) int {
	return p.rows - 1 - int(math.Floor(y*p.sy))
}

// WorldX returns the world x at the center of column col.
func (p Projection) WorldX(col int) float64 {
	return (float64(col) + 0.5) / p.sx
}

// Rect returns the cells covered by a world box.
func (p Projection) Rect(b core.Box) core.Rect {
	x0 := floorCell(b.X * p.sx)
	x1 := ceilCell(b.Right() * p.sx)
	top := p.rows - ceilCell(b.Top()*p.sy)
	bottom := p.rows - floorCell(b.Y*p.sy)
	return core.NewRect(x0, top, x1-x0, bottom-top)
}

// cellSlop absorbs rounding when a world edge lands exactly on a cell edge.
const cellSlop = 1e-9

func floorCell(v float64) int {
	return int(math.Floor(v + cellSlop))
}

func ceilCell(v float64) int {
	return int(math.Ceil(v - cellSlop))
}

// Draw renders a snapshot onto dst.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	proj := NewProjection(snap.Frame, dst.Width(), dst.Height())

	drawGround(dst, proj, snap)
	for _, o := range snap.Obstacles {
		drawPipe(dst, proj, o[0], false)
		drawPipe(dst, proj, o[2], true)
	}
	drawBird(dst, proj, snap.Player)

	scoreRow := proj.Row(snap.Frame.Top() - 100)
	dst.DrawTextCentered(core.Clamp(scoreRow, 0, dst.Height()-1), snap.ScoreText, core.ColorBrightWhite)

	if snap.PromptVisible {
		row := proj.Row(snap.Frame.Center().Y - 10)
		dst.DrawTextCentered(row+2, "TAP TO START", core.ColorBrightYellow)
		dst.DrawTextCentered(row+3, "space / click", core.ColorGray)
	}
	if snap.State == StateEnded {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", snap.Score))
	}
}

// drawGround fills the floor band with stripes anchored to the scrolling
// tiles, so the ground visibly moves with the world.
func drawGround(dst *core.Screen, proj Projection, snap Snapshot) {
	floor := proj.Rect(core.NewBox(0, 0, snap.Frame.W, snap.FloorOffset))
	for col := 0; col < dst.Width(); col++ {
		x := proj.WorldX(col)
		r := SoilLight
		for _, t := range snap.Tiles {
			if x >= t.Box.X && x < t.Box.Right() {
				if int((x-t.Box.X)/soilStripe)%2 == 0 {
					r = SoilDark
				}
				break
			}
		}
		for row := floor.Y + 1; row < floor.Bottom(); row++ {
			dst.SetColored(col, row, r, core.ColorBrown)
		}
	}
	dst.DrawHLine(0, floor.Y, dst.Width(), GroundChar, core.ColorGreen)
}

func drawPipe(dst *core.Screen, proj Projection, pipe Sprite, upper bool) {
	r := proj.Rect(pipe.Box)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	dst.DrawRect(r, PipeChar, core.ColorGreen)
	if upper {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorBrightGreen)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, proj Projection, bird Sprite) {
	c := bird.Box.Center()
	col, row := proj.Col(c.X), proj.Row(c.Y)

	head := BirdChar
	switch {
	case bird.Rotation == FallenRotation:
		head = BirdFallen
	case bird.Texture == TextureBird2:
		head = BirdFlapChar
	}
	dst.SetColored(col-1, row, BirdBodyChar, core.ColorYellow)
	dst.SetColored(col, row, head, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
