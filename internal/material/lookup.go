package material

import "github.com/lucasb-eyer/go-colorful"

// Lookup parses input and returns the nearest palette entry by metric.
func Lookup(input string, metric Metric) (Color, error) {
	target, err := ParseColor(input)
	if err != nil {
		return Color{}, err
	}

	colors, err := loadPalette()
	if err != nil {
		return Color{}, err
	}

	return Nearest(target, colors, metric), nil
}

// Nearest returns the entry of colors closest to target. Ties go to the
// earlier entry. colors must not be empty.
func Nearest(target colorful.Color, colors []Color, metric Metric) Color {
	best := 0
	bestDistance := metric.distance(target, colors[0].value)

	for i := 1; i < len(colors); i++ {
		if d := metric.distance(target, colors[i].value); d < bestDistance {
			best, bestDistance = i, d
		}
	}

	return colors[best]
}
