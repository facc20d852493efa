package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// noFood marks a board with no free cell left for food.
var noFood = core.Point{X: -1, Y: -1}

// placeFood picks a uniformly random free cell inside region by rejection
// sampling. After maxAttempts misses it falls back to scanning the region
// for free cells, so a crowded board still terminates. Returns noFood if
// every cell is taken.
func placeFood(rng *rand.Rand, field *Field, region core.Rect, snake *Snake) core.Point {
	if region.Empty() {
		return noFood
	}

	free := func(p core.Point) bool {
		return !field.IsWall(p) && !snake.Occupies(p)
	}

	maxAttempts := 4 * region.W * region.H
	for range maxAttempts {
		p := core.Point{
			X: region.X + rng.Intn(region.W),
			Y: region.Y + rng.Intn(region.H),
		}
		if free(p) {
			return p
		}
	}

	var emptyCells []core.Point
	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			if p := (core.Point{X: x, Y: y}); free(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}
	if len(emptyCells) == 0 {
		return noFood
	}
	return emptyCells[rng.Intn(len(emptyCells))]
}
