package stomlargs

import (
	"fmt"
	"strings"

	"github.com/parazyd/stoml-args/value"
)

// helpColumn is where option descriptions start; shorter flag columns are
// padded up to it.
const helpColumn = 28

// formatHelp renders the full help screen: usage line, description,
// positional arguments, then aligned options.
func (p *Program) formatHelp(specs []*Arg) string {
	var b strings.Builder

	b.WriteString("Usage: " + p.name)

	var positionals, options []*Arg
	for _, spec := range specs {
		if spec.positional {
			positionals = append(positionals, spec)
		} else {
			options = append(options, spec)
		}
	}

	if len(options) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	for _, spec := range positionals {
		name := strings.ToUpper(spec.displayName())
		if spec.required {
			fmt.Fprintf(&b, " <%s>", name)
		} else {
			fmt.Fprintf(&b, " [%s]", name)
		}
		if spec.variadic {
			b.WriteString("...")
		}
	}
	b.WriteByte('\n')

	if p.about != "" {
		b.WriteString("\n" + p.about + "\n")
	}

	if len(positionals) > 0 {
		b.WriteString("\nArguments:\n")
		for _, spec := range positionals {
			fmt.Fprintf(&b, "  <%s>", strings.ToUpper(spec.displayName()))
			if spec.help != "" {
				b.WriteString("  " + spec.help)
			}
			b.WriteByte('\n')
		}
	}

	if len(options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, spec := range options {
			b.WriteString(formatOption(spec))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func formatOption(spec *Arg) string {
	line := "  "

	if spec.short != 0 {
		line += "-" + string(spec.short)
		if spec.long != "" {
			line += ", "
		}
	} else {
		line += "    "
	}
	if spec.long != "" {
		line += "--" + spec.long
	}
	if spec.takesValue() {
		line += " <" + strings.ToUpper(spec.displayName()) + ">"
	}

	if pad := helpColumn - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	if spec.help != "" {
		line += spec.help
	}
	if spec.def != nil && !trivialDefault(*spec.def) {
		line += fmt.Sprintf(" [default: %s]", spec.def)
	}

	return line
}

// trivialDefault reports defaults that would only add noise to the help
// text: the implicit false of a flag and the implicit zero of a counter.
func trivialDefault(v value.Value) bool {
	if b, ok := v.AsBool(); ok && !b {
		return true
	}
	if n, ok := v.AsInt(); ok && n == 0 {
		return true
	}
	return false
}

// formatVersion renders the -V/--version line.
func (p *Program) formatVersion() string {
	version := p.version
	if version == "" {
		version = "unknown"
	}
	return p.name + " " + version
}

// displayName is the placeholder used in usage text.
func (a *Arg) displayName() string {
	if a.valueName != "" {
		return a.valueName
	}
	return a.name
}
