package points

import "axescanvas/pkg/geometry"

// DefaultHitRadius is the pick distance in canvas pixels. It is the disc
// radius plus a few pixels of slack so small discs are easy to grab.
const DefaultHitRadius = 8.0

// FindTopmostWithin scans pts from last to first, matching render z-order,
// and returns the first point whose distance to pos is at most radius.
// Visibility filters are deliberately not consulted here.
func FindTopmostWithin(pts []Point, pos geometry.Point2D, radius float64) (Point, bool) {
	for i := len(pts) - 1; i >= 0; i-- {
		if pts[i].Pos.Distance(pos) <= radius {
			return pts[i], true
		}
	}
	return Point{}, false
}
