package geometry

// Viewport maps pointer positions reported by the windowing layer onto the
// backing raster. Display is the on-screen size of the drawing surface and
// Backing is the pixel size of the raster behind it; the two differ whenever
// the surface is stretched or the display scale is not 1:1.
type Viewport struct {
	Origin  Point2D // on-screen position of the surface's top-left corner
	Display Size
	Backing Size
}

// ToCanvasSpace converts a client-space position to canvas pixel coordinates.
// A viewport with an empty display size maps 1:1 after removing the origin.
func (v Viewport) ToCanvasSpace(client Point2D) Point2D {
	local := client.Sub(v.Origin)
	if v.Display.IsZero() || v.Backing.IsZero() {
		return local
	}
	return Point2D{
		X: local.X / v.Display.Width * v.Backing.Width,
		Y: local.Y / v.Display.Height * v.Backing.Height,
	}
}
