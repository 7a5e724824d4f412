package material

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for input no color form matches.
var ErrInvalidColor = errors.New("invalid color")

var (
	unprefixedHex = regexp.MustCompile(`^[0-9a-f]{3}([0-9a-f]{3})?$`)
	colorFunc     = regexp.MustCompile(`^(rgba?|hsla?)\((.*)\)$`)
)

// ParseColor reads a color given as hex (with or without '#', 3 or 6
// digits), rgb()/rgba(), hsl()/hsla() or a CSS color keyword. Alpha is
// accepted and ignored.
func ParseColor(input string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if unprefixedHex.MatchString(s) {
		s = "#" + s
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return colorful.Color{}, invalidColor(input)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, invalidColor(input)
		}
		return c, nil
	}

	if m := colorFunc.FindStringSubmatch(s); m != nil {
		args := splitArgs(m[2])
		if len(args) != 3 && len(args) != 4 {
			return colorful.Color{}, invalidColor(input)
		}

		var (
			c  colorful.Color
			ok bool
		)
		if strings.HasPrefix(m[1], "rgb") {
			c, ok = parseRGB(args[:3])
		} else {
			c, ok = parseHSL(args[:3])
		}
		if !ok {
			return colorful.Color{}, invalidColor(input)
		}
		return c, nil
	}

	if rgba, ok := colornames.Map[s]; ok {
		return colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}, nil
	}

	return colorful.Color{}, invalidColor(input)
}

func invalidColor(input string) error {
	return fmt.Errorf("%w %q", ErrInvalidColor, input)
}

// splitArgs accepts both "1,2,3" and "1 2 3 / 0.5".
func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
}

func parseRGB(args []string) (colorful.Color, bool) {
	var channels [3]float64
	for i, arg := range args {
		if pct, ok := strings.CutSuffix(arg, "%"); ok {
			v, ok := number(pct)
			if !ok || v < 0 || v > 100 {
				return colorful.Color{}, false
			}
			channels[i] = v / 100
			continue
		}

		v, ok := number(arg)
		if !ok || v < 0 || v > 255 {
			return colorful.Color{}, false
		}
		channels[i] = v / 255
	}
	return colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseHSL(args []string) (colorful.Color, bool) {
	h, ok := number(strings.TrimSuffix(args[0], "deg"))
	if !ok {
		return colorful.Color{}, false
	}

	s, ok := percent(args[1])
	if !ok {
		return colorful.Color{}, false
	}
	l, ok := percent(args[2])
	if !ok {
		return colorful.Color{}, false
	}

	// Hsl expects a hue in [0, 360).
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l), true
}

func percent(arg string) (float64, bool) {
	v, ok := number(strings.TrimSuffix(arg, "%"))
	if !ok || v < 0 || v > 100 {
		return 0, false
	}
	return v / 100, true
}

// number parses a finite float. NaN and infinities are rejected.
func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
