package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paddle-duel/constant"
	"github.com/lixenwraith/paddle-duel/core"
	"github.com/lixenwraith/paddle-duel/engine"
	"github.com/lixenwraith/paddle-duel/event"
	"github.com/lixenwraith/paddle-duel/vmath"
)

const goalFlashDuration = 400 * time.Millisecond

// courtHalf is the court half-extent including the wall frame
const courtHalf = constant.WallOffsetFloat + constant.WallThicknessFloat

// Renderer draws the court onto a tcell screen. World coordinates are
// centered at the origin with y pointing up; cells flip y and stretch
// to the current screen size.
type Renderer struct {
	screen        tcell.Screen
	width, height int

	lastGoal time.Time

	wallStyle   tcell.Style
	paddleStyle tcell.Style
	ballStyle   tcell.Style
	scoreStyle  tcell.Style
	flashStyle  tcell.Style
}

func New(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen:      screen,
		wallStyle:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		paddleStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		ballStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		scoreStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		flashStyle:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
	r.width, r.height = screen.Size()
	return r
}

// Resize updates the projection to a new screen size
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Notify records resolver events the renderer reacts to (goal flash)
func (r *Renderer) Notify(events []event.Event, now time.Time) {
	for _, ev := range events {
		if ev.Type == event.TypeGoal {
			r.lastGoal = now
		}
	}
}

// Frame draws one complete frame and shows it
func (r *Renderer) Frame(w *engine.World, now time.Time) {
	r.screen.Clear()

	for _, wall := range w.Walls {
		r.fillRect(wall.Rect, '░', r.wallStyle)
	}
	for _, p := range w.Paddles {
		r.fillRect(p.Bounds(), '█', r.paddleStyle)
	}
	ball := core.Rect{
		X: w.Ball.Kin.PreciseX, Y: w.Ball.Kin.PreciseY,
		HalfW: w.Ball.Radius, HalfH: w.Ball.Radius,
	}
	r.fillRect(ball, '▓', r.ballStyle)

	style := r.scoreStyle
	if !r.lastGoal.IsZero() && now.Sub(r.lastGoal) < goalFlashDuration {
		style = r.flashStyle
	}
	text := w.Score.String()
	r.drawText((r.width-len(text))/2, 1, text, style)

	r.screen.Show()
}

// cell projects a world position to screen coordinates
func (r *Renderer) cell(wx, wy float64) (int, int) {
	cx := int((wx + courtHalf) * float64(r.width) / (2 * courtHalf))
	cy := int((courtHalf - wy) * float64(r.height) / (2 * courtHalf))
	return cx, cy
}

// fillRect paints all cells covered by a world rectangle, at least one
func (r *Renderer) fillRect(rect core.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.cell(vmath.ToFloat(rect.X-rect.HalfW), vmath.ToFloat(rect.Y+rect.HalfH))
	x1, y1 := r.cell(vmath.ToFloat(rect.X+rect.HalfW), vmath.ToFloat(rect.Y-rect.HalfH))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && x < r.width && y >= 0 && y < r.height {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
