package preview

const (
	MinZoom     Zoom = 50
	MaxZoom     Zoom = 200
	DefaultZoom Zoom = 100
	zoomStep    Zoom = 10
)

// Zoom is the preview scale in percent.
type Zoom int

// In returns the next larger zoom, or z if it is already at the maximum.
func (z Zoom) In() Zoom {
	if n := z + zoomStep; n <= MaxZoom {
		return n
	}
	return z
}

// Out returns the next smaller zoom, or z if it is already at the minimum.
func (z Zoom) Out() Zoom {
	if n := z - zoomStep; n >= MinZoom {
		return n
	}
	return z
}

// Clamp snaps z into range and onto a step.
func (z Zoom) Clamp() Zoom {
	switch {
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z / zoomStep * zoomStep
}

// Scale returns the zoom as a factor, 1.0 for 100%.
func (z Zoom) Scale() float64 { return float64(z) / 100 }
