package canvas

import (
	"image"
	"image/color"
)

// drawMarker draws a filled circle at the marker position, scaled by zoom.
func (ic *ImageCanvas) drawMarker(output *image.RGBA, m Marker) {
	bounds := output.Bounds()

	cx := m.X * ic.zoom
	cy := m.Y * ic.zoom
	r := m.Radius * ic.zoom
	if r < 1 {
		r = 1
	}

	minX := int(cx - r - 1)
	maxX := int(cx + r + 1)
	minY := int(cy - r - 1)
	maxY := int(cy + r + 1)

	r2 := r * r
	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				output.Set(x, y, m.Color)
			}
		}
	}
}

// drawSegment draws a line segment between the two endpoints, scaled by
// zoom.
func (ic *ImageCanvas) drawSegment(output *image.RGBA, seg SegmentShape) {
	x1 := int(seg.X1 * ic.zoom)
	y1 := int(seg.Y1 * ic.zoom)
	x2 := int(seg.X2 * ic.zoom)
	y2 := int(seg.Y2 * ic.zoom)

	thickness := seg.Thickness
	if thickness < 1 {
		thickness = 1
	}
	drawLine(output, x1, y1, x2, y2, seg.Color, thickness)
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}
