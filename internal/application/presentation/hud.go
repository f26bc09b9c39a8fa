package presentation

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/motionctl/internal/domain/motion"
)

var (
	colorHUDText  = color.RGBA{230, 230, 230, 255}
	colorHUDPanel = color.RGBA{0, 0, 0, 140}
	colorDashOn   = color.RGBA{120, 200, 255, 255}
	colorDashOff  = color.RGBA{90, 90, 110, 255}
)

// HUD draws the controller state as text
type HUD struct {
	face text.Face
}

// NewHUD creates a HUD using the built-in 7x13 font
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Lines formats the state for display
func Lines(s motion.State, clip string) []string {
	return []string{
		fmt.Sprintf("clip %-6s  phase %s", clip, s.Phase),
		fmt.Sprintf("grounded %t  canDash %t", s.Grounded, s.CanDash),
		fmt.Sprintf("facing %+.0f  attack (%+.0f,%+.0f)", s.Facing, s.AttackDirection.X, s.AttackDirection.Y),
	}
}

// Draw renders the HUD panel in the top-left corner
func (h *HUD) Draw(screen *ebiten.Image, s motion.State, clip string) {
	lines := Lines(s, clip)
	const lineH = 14

	vector.FillRect(screen, 4, 4, 230, float32(len(lines)*lineH+8), colorHUDPanel, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*lineH))
		op.ColorScale.ScaleWithColor(colorHUDText)
		text.Draw(screen, line, h.face, op)
	}

	c := colorDashOff
	if s.CanDash {
		c = colorDashOn
	}
	vector.FillRect(screen, 222, 10, 8, 8, c, false)
}

// DrawBanner dims the screen and centers a message on it
func (h *HUD) DrawBanner(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorHUDPanel, false)

	w, hgt := text.Measure(msg, h.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, (float64(b.Dy())-hgt)/2)
	op.ColorScale.ScaleWithColor(colorHUDText)
	text.Draw(screen, msg, h.face, op)
}
