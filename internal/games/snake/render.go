package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Screen dimensions needed to draw the field and the side panel.
const (
	ScreenWidth  = 80
	ScreenHeight = FieldHeight
)

const (
	foodRune = '×'
	hudX     = FieldWidth + 2
)

// Render draws the game to the screen.
// The field occupies screen cells (0,0)..(59,19); the HUD sits to its right.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawText(0, 0, "Terminal too small", core.ColorRed)
		dst.DrawText(0, 1, fmt.Sprintf("Resize to %dx%d to continue", ScreenWidth, ScreenHeight), core.ColorGray)
		return
	}

	g.renderField(dst)
	g.renderSnake(dst)
	if g.food != noFood {
		dst.SetColored(g.food.X, g.food.Y, foodRune, core.ColorRed)
	}
	g.renderHUD(dst)

	if g.phase == PhaseGameOver {
		g.renderGameOver(dst)
	}
}

// renderField draws walls.
func (g *Game) renderField(dst *core.Screen) {
	for y := 0; y < g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if g.field.IsWall(p) {
				dst.SetColored(x, y, g.field.At(p), core.ColorBlue)
			}
		}
	}
}

// renderSnake draws the snake tail first so the head wins on overlap.
func (g *Game) renderSnake(dst *core.Screen) {
	parts := g.snake.parts
	for i := len(parts) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.SetColored(parts[i].Pos.X, parts[i].Pos.Y, parts[i].Glyph, color)
	}
}

// renderHUD draws the score panel and key help.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(hudX, 4, fmt.Sprintf("Hi-Score: %d", g.highScore), core.ColorGreen)
	dst.DrawText(hudX, 5, fmt.Sprintf("Score: %d", g.score), core.ColorGreen)
	dst.DrawText(hudX, 6, fmt.Sprintf("Length: %d", g.snake.Len()), core.ColorGray)
	dst.DrawText(hudX, 7, fmt.Sprintf("Round: %d", g.round), core.ColorGray)

	dst.DrawText(hudX, 10, "wasd/hjkl/arrows", core.ColorGray)
	dst.DrawText(hudX, 11, "  move", core.ColorGray)
	dst.DrawText(hudX, 12, "q quit", core.ColorGray)
}

// renderGameOver draws the end-of-round panel centered on the field.
func (g *Game) renderGameOver(dst *core.Screen) {
	const boxW, boxH = 25, 6
	box := core.NewRect((FieldWidth-boxW)/2, (FieldHeight-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBorder(box, '-', '|', core.ColorDefault)

	lines := []string{
		"Game Over!",
		fmt.Sprintf("HighScore: %d", g.highScore),
		fmt.Sprintf("Score: %d", g.score),
	}
	for i, line := range lines {
		x := box.X + (boxW-len(line))/2
		dst.DrawText(x, box.Y+1+i, line, core.ColorDefault)
	}
	dst.DrawText(box.X+1, box.Y+4, "(r)etry          (q)uit", core.ColorDefault)
}
