package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// WallLocation says which side of the arena a wall is on.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// WallLocations lists every wall in spawn order.
var WallLocations = [...]WallLocation{WallLeft, WallRight, WallBottom, WallTop}

// String returns the wall name.
func (l WallLocation) String() string {
	switch l {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Arena is the static playfield geometry. Wall coordinates are the
// centerlines of the four walls; the origin is the arena center.
type Arena struct {
	Left, Right float64
	Bottom, Top float64
	Thickness   float64
}

// NewArena builds the arena from config.
// Panics if the arena has no positive width or height.
func NewArena(c config.ArenaConfig) Arena {
	a := Arena{
		Left:      c.LeftWall,
		Right:     c.RightWall,
		Bottom:    c.BottomWall,
		Top:       c.TopWall,
		Thickness: c.WallThickness,
	}
	if a.Width() <= 0 {
		panic(fmt.Sprintf("invaders: arena width must be positive, got %g", a.Width()))
	}
	if a.Height() <= 0 {
		panic(fmt.Sprintf("invaders: arena height must be positive, got %g", a.Height()))
	}
	return a
}

// Width returns the distance between the side wall centerlines.
func (a Arena) Width() float64 {
	return a.Right - a.Left
}

// Height returns the distance between the top and bottom wall centerlines.
func (a Arena) Height() float64 {
	return a.Top - a.Bottom
}

// WallPosition returns the center of a wall.
func (a Arena) WallPosition(loc WallLocation) core.Vec2 {
	switch loc {
	case WallLeft:
		return core.V2(a.Left, 0)
	case WallRight:
		return core.V2(a.Right, 0)
	case WallBottom:
		return core.V2(0, a.Bottom)
	default:
		return core.V2(0, a.Top)
	}
}

// WallSize returns the size of a wall. Walls overhang by half a thickness
// at each end so the corners are closed.
func (a Arena) WallSize(loc WallLocation) core.Vec2 {
	switch loc {
	case WallLeft, WallRight:
		return core.V2(a.Thickness, a.Height()+a.Thickness)
	default:
		return core.V2(a.Width()+a.Thickness, a.Thickness)
	}
}

// Wall returns the collision box of a wall.
func (a Arena) Wall(loc WallLocation) core.Box {
	return core.NewBox(a.WallPosition(loc), a.WallSize(loc))
}

// Bounds returns the outer box of the arena including the walls.
func (a Arena) Bounds() core.Box {
	center := core.V2((a.Left+a.Right)/2, (a.Bottom+a.Top)/2)
	return core.NewBox(center, core.V2(a.Width()+a.Thickness, a.Height()+a.Thickness))
}

// PaddleBounds returns the range the paddle center may occupy so that a
// paddle of the given width never touches a side wall.
func (a Arena) PaddleBounds(paddleWidth, padding float64) (lo, hi float64) {
	lo = a.Left + a.Thickness/2 + paddleWidth/2 + padding
	hi = a.Right - a.Thickness/2 - paddleWidth/2 - padding
	if lo > hi {
		mid := (a.Left + a.Right) / 2
		return mid, mid
	}
	return lo, hi
}

// SpawnRange returns the horizontal range for new alien centers.
func (a Arena) SpawnRange(alienWidth float64) (lo, hi float64) {
	lo = a.Left + alienWidth/2
	hi = a.Right - alienWidth/2
	if lo > hi {
		mid := (a.Left + a.Right) / 2
		return mid, mid
	}
	return lo, hi
}

// SpawnHeight returns the y coordinate for new aliens. It is offset from the
// top wall by half the alien's width, not its height.
func (a Arena) SpawnHeight(alienWidth float64) float64 {
	return a.Top - alienWidth/2
}
