package material

import (
	_ "embed"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

var (
	shadeNames  = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	accentNames = []string{"A100", "A200", "A400", "A700"}
)

// Color is one palette entry.
type Color struct {
	Name string `json:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
	H    int    `json:"h"`
	S    int    `json:"s"`
	L    int    `json:"l"`
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	HSL  string `json:"hsl"`

	group string
	value colorful.Color
}

// Group returns the display name of the hue group, e.g. "Deep Purple".
func (c Color) Group() string {
	return c.group
}

type paletteGroup struct {
	Group   string   `yaml:"group"`
	Hex     string   `yaml:"hex"`
	Shades  []string `yaml:"shades"`
	Accents []string `yaml:"accents"`
}

var (
	paletteOnce sync.Once
	palette     []Color
	paletteErr  error
)

func loadPalette() ([]Color, error) {
	paletteOnce.Do(func() {
		palette, paletteErr = parsePalette(paletteYAML)
	})
	return palette, paletteErr
}

// Palette returns every palette entry in definition order.
func Palette() ([]Color, error) {
	colors, err := loadPalette()
	if err != nil {
		return nil, err
	}
	return slices.Clone(colors), nil
}

// Filter returns the entries of the named group. Case, spaces and dashes
// are ignored, so "deep-purple" matches "Deep Purple".
func Filter(colors []Color, group string) []Color {
	want := normalizeGroup(group)
	var out []Color
	for _, c := range colors {
		if normalizeGroup(c.group) == want {
			out = append(out, c)
		}
	}
	return out
}

func normalizeGroup(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func parsePalette(data []byte) ([]Color, error) {
	var groups []paletteGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	var colors []Color
	for _, g := range groups {
		group := displayName(g.Group)

		if g.Hex != "" {
			c, err := paletteColor(group, "", g.Hex)
			if err != nil {
				return nil, err
			}
			colors = append(colors, c)
			continue
		}

		if len(g.Shades) > len(shadeNames) || len(g.Accents) > len(accentNames) {
			return nil, fmt.Errorf("palette: group %q has too many entries", g.Group)
		}

		for i, hex := range g.Shades {
			c, err := paletteColor(group, shadeNames[i], hex)
			if err != nil {
				return nil, err
			}
			colors = append(colors, c)
		}
		for i, hex := range g.Accents {
			c, err := paletteColor(group, accentNames[i], hex)
			if err != nil {
				return nil, err
			}
			colors = append(colors, c)
		}
	}

	return colors, nil
}

func paletteColor(group, shade, hex string) (Color, error) {
	value, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("palette: %s %s: %w", group, shade, err)
	}

	name := group
	if shade != "" {
		name += " " + shade
	}

	c := newColor(name, value)
	c.group = group
	return c, nil
}

func newColor(name string, value colorful.Color) Color {
	r, g, b := value.RGB255()
	h, s, l := value.Hsl()

	c := Color{
		Name:  name,
		R:     r,
		G:     g,
		B:     b,
		H:     int(math.Round(h)) % 360,
		S:     int(math.Round(s * 100)),
		L:     int(math.Round(l * 100)),
		value: value,
	}
	c.Hex = fmt.Sprintf("#%02x%02x%02x", r, g, b)
	c.RGB = fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	c.HSL = fmt.Sprintf("hsl(%d,%d,%d)", c.H, c.S, c.L)
	return c
}

// displayName splits a camelCase group key into title-cased words:
// "deepPurple" becomes "Deep Purple".
func displayName(key string) string {
	var b strings.Builder
	startWord := true
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			startWord = true
		}
		if startWord {
			b.WriteRune(unicode.ToUpper(r))
			startWord = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
