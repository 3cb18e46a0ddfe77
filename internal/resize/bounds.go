package resize

// BoundsInput is everything the maximum panel width depends on.
type BoundsInput struct {
	ContainerWidth int
	HandleWidth    int
	// FixedMax overrides the computed maximum when positive.
	FixedMax            int
	ContainerOwnsHandle bool
	Fullscreen          bool
}

// Bounds constrains the panel width.
type Bounds struct {
	Min int
	Max int
}

// MaxWidth derives the maximum panel width. A fixed maximum wins outright.
// Otherwise the handle has to stay visible inside the container whenever the
// container owns it or is fullscreen.
func MaxWidth(in BoundsInput) int {
	if in.FixedMax > 0 {
		return in.FixedMax
	}
	if in.ContainerOwnsHandle || in.Fullscreen {
		return in.ContainerWidth - in.HandleWidth
	}
	return in.ContainerWidth
}

// Clamp limits v to b. The minimum is checked first. When a container is
// narrower than the minimum width, values below Min end at Min and values
// above it end at Max.
func Clamp(v int, b Bounds) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}
