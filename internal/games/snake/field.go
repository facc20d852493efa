package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Field dimensions in cells, border included.
const (
	FieldWidth  = 60
	FieldHeight = 20
)

const (
	wallRune  = '#'
	emptyRune = ' '
)

// Field is the static bordered grid. The border is computed once at
// construction; the field is never mutated afterwards.
type Field struct {
	width  int
	height int
	cells  []rune // Row-major, index y*width + x
}

// NewField builds the fixed 60x20 field.
func NewField() *Field {
	f := &Field{
		width:  FieldWidth,
		height: FieldHeight,
		cells:  make([]rune, FieldWidth*FieldHeight),
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r := rune(emptyRune)
			if x == 0 || y == 0 || x == f.width-1 || y == f.height-1 {
				r = wallRune
			}
			f.cells[y*f.width+x] = r
		}
	}
	return f
}

// Width returns the field width in cells.
func (f *Field) Width() int { return f.width }

// Height returns the field height in cells.
func (f *Field) Height() int { return f.height }

// Bounds covers every cell of the field, walls included.
func (f *Field) Bounds() core.Rect {
	return core.NewRect(0, 0, f.width, f.height)
}

// Interior covers the cells inside the border.
func (f *Field) Interior() core.Rect {
	return f.Bounds().Inset(1)
}

// Center is the middle cell of the field.
func (f *Field) Center() core.Point {
	return f.Bounds().Center()
}

// At returns the background rune of a cell.
// Cells outside the field read as walls.
func (f *Field) At(p core.Point) rune {
	if !f.Bounds().Contains(p) {
		return wallRune
	}
	return f.cells[p.Y*f.width+p.X]
}

// IsWall reports whether p is a wall cell. Anything outside the field is
// treated as a wall.
func (f *Field) IsWall(p core.Point) bool {
	return f.At(p) == wallRune
}
