package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Horde-Sense/internal/nav"
)

// controls is one frame of sampled input. Toggles are edge-triggered.
type controls struct {
	moveX, moveY float64
	aim          nav.Vec
	fire         bool

	pause      bool
	togglePath bool
	restart    bool
	copyReport bool
	faster     bool
	slower     bool
}

func readControls(toWorld func(x, y int) nav.Vec) controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	c := controls{
		fire:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		pause:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		togglePath: inpututil.IsKeyJustPressed(ebiten.KeyP),
		restart:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		copyReport: inpututil.IsKeyJustPressed(ebiten.KeyC),
		faster:     inpututil.IsKeyJustPressed(ebiten.KeyPeriod),
		slower:     inpututil.IsKeyJustPressed(ebiten.KeyComma),
	}
	c.moveX, c.moveY = axes(
		pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		pressed(ebiten.KeyD, ebiten.KeyArrowRight),
	)
	c.aim = toWorld(ebiten.CursorPosition())
	return c
}

// axes maps held direction keys to -1..1 per axis; opposite keys cancel.
func axes(up, down, left, right bool) (x, y float64) {
	if left {
		x--
	}
	if right {
		x++
	}
	if up {
		y--
	}
	if down {
		y++
	}
	return x, y
}

// screenToWorld is the identity while Layout matches the map size.
func (g *Game) screenToWorld(x, y int) nav.Vec {
	return nav.Vec{X: float64(x), Y: float64(y)}
}
