package material

import (
	"encoding/json"
	"fmt"
)

// Format is an output representation of a Color.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatHSL  Format = "hsl"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatHex, FormatRGB, FormatHSL}

// ParseFormat resolves a format name. The empty string selects FormatText.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (use text, json, hex, rgb or hsl)", name)
}

// Render returns c in the given format.
func (c Color) Render(f Format) (string, error) {
	switch f {
	case FormatText, "":
		return fmt.Sprintf("%-16s %s  %-16s %s", c.Name, c.Hex, c.RGB, c.HSL), nil
	case FormatJSON:
		data, err := json.Marshal(c)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatHex:
		return c.Hex, nil
	case FormatRGB:
		return c.RGB, nil
	case FormatHSL:
		return c.HSL, nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}
