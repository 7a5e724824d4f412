package dispatchers

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/footprint-tools/materializer/internal/ui/style"
)

// helpItem is one row of a description table.
type helpItem struct {
	name        string
	description string
}

// helpPage is the content of one help screen; empty sections are skipped.
type helpPage struct {
	usage          string
	description    string
	commands       []helpItem
	options        []helpItem
	globalsHeading string
	globals        []helpItem
}

// RenderHelp renders the top-level help page: usage, description, the
// command list (subcommand mode) and option tables.
func RenderHelp(spec AppSpec) string {
	page := helpPage{
		usage:       spec.Name + commandMarker(spec) + " [options]" + inputMarker(spec.Input, spec.Multiple),
		description: spec.Description,
	}

	if spec.Commands != nil {
		for _, name := range slices.Sorted(maps.Keys(spec.Commands)) {
			page.commands = append(page.commands, helpItem{
				name:        name,
				description: spec.Commands[name].Description,
			})
		}
		page.globalsHeading = "Global options"
		page.globals = optionItems(spec.Options)
	} else {
		page.options = optionItems(spec.Options)
	}

	return page.render()
}

// RenderCommandHelp renders help for one command. An empty name renders the
// default command of a single-command app. Required options are spelled out
// in the usage line.
func RenderCommandHelp(spec AppSpec, name string) string {
	if name == "" && spec.Commands != nil {
		return RenderHelp(spec)
	}

	cmd := CommandSpec{
		Description: spec.Description,
		Input:       spec.Input,
		Multiple:    spec.Multiple,
	}
	if name != "" {
		var ok bool
		if cmd, ok = spec.Commands[name]; !ok {
			return RenderHelp(spec)
		}
	}

	usageLine := spec.Name
	if name != "" {
		usageLine += " " + name
	}
	if required := requiredOptionsUsage(append(append([]OptionSpec{}, cmd.Options...), spec.Options...)); required != "" {
		usageLine += " " + required
	}
	usageLine += " [options]" + inputMarker(cmd.Input, cmd.Multiple)

	page := helpPage{
		usage:       usageLine,
		description: cmd.Description,
		options:     optionItems(cmd.Options),
		globals:     optionItems(spec.Options),
	}
	page.globalsHeading = "Global options"
	if spec.Commands == nil {
		page.globalsHeading = "Options"
	}

	return page.render()
}

func (p helpPage) render() string {
	var out strings.Builder

	out.WriteString("\n")
	if p.usage != "" {
		fmt.Fprintf(&out, "  Usage: %s\n\n", formatUsage(p.usage))
	}
	if p.description != "" {
		fmt.Fprintf(&out, "  %s\n\n", p.description)
	}
	writeTable(&out, "Commands", p.commands)
	writeTable(&out, "Options", p.options)
	writeTable(&out, p.globalsHeading, p.globals)

	return out.String()
}

func writeTable(out *strings.Builder, heading string, items []helpItem) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(out, "  %s:\n\n", style.Header(heading))

	width := 0
	for _, item := range items {
		width = max(width, len(item.name))
	}
	for _, item := range items {
		padded := item.name + strings.Repeat(" ", width-len(item.name))
		fmt.Fprintf(out, "    %s    %s\n", style.Info(padded), item.description)
	}
	out.WriteString("\n")
}

func optionItems(options []OptionSpec) []helpItem {
	items := make([]helpItem, 0, len(options))
	for _, o := range options {
		name := "--" + o.Name
		if o.Alias != "" {
			name += ", -" + o.Alias
		}
		items = append(items, helpItem{name: name, description: o.Description})
	}
	return items
}

func commandMarker(spec AppSpec) string {
	if spec.Commands != nil {
		return " [command]"
	}
	return ""
}

func inputMarker(input, multiple bool) string {
	switch {
	case !input:
		return ""
	case multiple:
		return " <input> [...input]"
	default:
		return " <input>"
	}
}

func requiredOptionsUsage(options []OptionSpec) string {
	var parts []string
	for _, o := range options {
		if !o.Required {
			continue
		}
		part := "--" + o.Name
		if example := exampleValue(o); example != "" {
			part += "=" + example
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// exampleValue picks a placeholder from the first matching type in
// string, path, boolean order.
func exampleValue(o OptionSpec) string {
	switch {
	case o.Type.Has(TypeString):
		return "<value>"
	case o.Type.Has(TypePath):
		return "<path>"
	case o.Type.Has(TypeBoolean):
		return ""
	default:
		panic(fmt.Sprintf("dispatchers: option %q has invalid type %v", o.Name, o.Type))
	}
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the command ends (first [ or < or --)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || strings.HasPrefix(usage[i:], "--") {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}
