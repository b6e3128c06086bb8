package gamemath

import (
	"image"
	"math"
)

// MaxCameras is the number of split-screen cameras the layout table knows about.
const MaxCameras = 4

// WorldLayer is the render layer every camera sees.
const WorldLayer = 0

// Rect is a normalized screen rectangle. X and Y locate the lower-left corner,
// measured from the bottom-left of the screen.
type Rect struct {
	X, Y, W, H float64
}

// FullScreen covers the whole screen.
var FullScreen = Rect{X: 0, Y: 0, W: 1, H: 1}

var (
	topHalf     = Rect{X: 0, Y: .5, W: 1, H: .5}
	bottomHalf  = Rect{X: 0, Y: 0, W: 1, H: .5}
	topLeft     = Rect{X: 0, Y: .5, W: .5, H: .5}
	topRight    = Rect{X: .5, Y: .5, W: .5, H: .5}
	bottomLeft  = Rect{X: 0, Y: 0, W: .5, H: .5}
	bottomRight = Rect{X: .5, Y: 0, W: .5, H: .5}
)

var viewportTable = map[int][]Rect{
	1: {FullScreen},
	2: {topHalf, bottomHalf},
	3: {topHalf, bottomLeft, bottomRight},
	4: {topLeft, topRight, bottomLeft, bottomRight},
}

// CalculateViewport returns the screen rectangle player idx renders into when
// count local players are active. Anything outside the table gets FullScreen.
func CalculateViewport(count, idx int) Rect {
	rects, ok := viewportTable[count]
	if !ok || idx < 0 || idx >= len(rects) {
		return FullScreen
	}
	return rects[idx]
}

// Pixels converts the normalized rect into a screen-space rectangle (y down).
func (r Rect) Pixels(screenW, screenH int) image.Rectangle {
	w := float64(screenW)
	h := float64(screenH)
	x0 := int(math.Round(r.X * w))
	x1 := int(math.Round((r.X + r.W) * w))
	y0 := int(math.Round((1 - r.Y - r.H) * h))
	y1 := int(math.Round((1 - r.Y) * h))
	return image.Rect(x0, y0, x1, y1)
}

// OverlayLayer is the render layer that holds camera idx's private overlay.
func OverlayLayer(idx int) int {
	return idx + 1
}

// CullingMask returns the layer mask for camera idx: every layer except the
// overlays that belong to the other cameras.
func CullingMask(idx int) uint32 {
	var hidden uint32
	for i := 0; i < MaxCameras; i++ {
		if i == idx {
			continue
		}
		hidden |= 1 << OverlayLayer(i)
	}
	return ^hidden
}

// Visible reports whether layer is drawn by a camera with the given mask.
func Visible(mask uint32, layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return mask&(1<<uint(layer)) != 0
}
