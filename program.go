package stomlargs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/parazyd/stoml-args/conf"
	"github.com/parazyd/stoml-args/internal/ctxlog"
	"github.com/parazyd/stoml-args/value"
)

// Program accumulates argument definitions and parse options through a
// fluent builder, then resolves a token list into a Matches. A Program is
// not safe for concurrent use while being built; once built it may be
// parsed repeatedly.
type Program struct {
	name            string
	version         string
	about           string
	args            []*Arg
	positionalCount int
	autoHelp        bool
	autoVersion     bool
	autoConfig      bool
	defaultConfig   string
	configTemplate  string
}

// New creates a Program with the given name. Automatic -h/--help is
// enabled, and -V/--version is enabled once a version is set.
func New(name string) *Program {
	return &Program{
		name:        name,
		autoHelp:    true,
		autoVersion: true,
	}
}

// Version sets the program version reported by -V/--version.
func (p *Program) Version(v string) *Program {
	p.version = v
	return p
}

// About sets the one-line description shown in help text.
func (p *Program) About(s string) *Program {
	p.about = s
	return p
}

// Arg registers an argument definition. Positional definitions receive
// their slot index here, in declaration order, independent of any
// alias-bearing definitions declared between them.
func (p *Program) Arg(a *Arg) *Program {
	if a.positional {
		a.position = p.positionalCount
		p.positionalCount++
	}
	p.args = append(p.args, a)
	return p
}

// DisableHelp removes the automatic -h/--help argument.
func (p *Program) DisableHelp() *Program {
	p.autoHelp = false
	return p
}

// DisableVersion removes the automatic -V/--version argument.
func (p *Program) DisableVersion() *Program {
	p.autoVersion = false
	return p
}

// ConfigFlag adds an automatic -c/--config FILE argument. The token list
// is pre-scanned for it before full parsing so the document can be
// loaded and merged in the same invocation.
func (p *Program) ConfigFlag() *Program {
	p.autoConfig = true
	return p
}

// ConfigFlagDefault is ConfigFlag with a fallback path tried when the
// user passes no -c/--config. A default path that does not exist is
// skipped silently; an explicit path that does not exist is an error.
func (p *Program) ConfigFlagDefault(path string) *Program {
	p.autoConfig = true
	p.defaultConfig = path
	return p
}

// ConfigTemplate sets file content written to the default config path
// when that path does not yet exist, so a first run bootstraps its own
// editable configuration.
func (p *Program) ConfigTemplate(content string) *Program {
	p.configTemplate = content
	return p
}

// Parse resolves the process's own argument list, minus the program
// name. It is a thin adapter; ParseFrom is the real entry point.
func (p *Program) Parse(ctx context.Context) (*Matches, error) {
	return p.ParseFrom(ctx, os.Args[1:])
}

// ParseFrom resolves an explicit token list: tokenize, surface help and
// version requests, merge the configuration tree, apply defaults, then
// validate required arguments. The pipeline aborts on the first failure.
func (p *Program) ParseFrom(ctx context.Context, tokens []string) (*Matches, error) {
	log := ctxlog.FromContext(ctx)

	var tree value.Table
	if p.autoConfig {
		var err error
		tree, err = p.loadConfigTree(ctx, tokens)
		if err != nil {
			return nil, err
		}
	}

	specs := p.withAutoArgs()
	m, err := newRegistry(specs).parse(ctx, tokens)
	if err != nil {
		return nil, err
	}

	if p.autoHelp && m.GetBool("help") {
		return nil, &HelpRequestedError{Text: p.formatHelp(specs)}
	}
	if p.autoVersion && p.version != "" && m.GetBool("version") {
		return nil, &VersionRequestedError{Text: p.formatVersion()}
	}

	if tree != nil {
		m.MergeTree(tree)
		m.resolveConfigKeys(specs)
	}
	m.applyDefaults(specs)

	if err := validateRequired(specs, m); err != nil {
		return nil, err
	}

	m.program = p.name
	log.Debug("Parse pipeline finished.", "program", p.name, "values", len(m.values))
	return m, nil
}

// withAutoArgs returns the declared definitions plus the automatic
// config/help/version arguments, without mutating the Program.
func (p *Program) withAutoArgs() []*Arg {
	specs := make([]*Arg, len(p.args), len(p.args)+3)
	copy(specs, p.args)
	if p.autoConfig {
		specs = append(specs, NewArg("config").Short('c').Long("config").
			Help("Path to configuration file").ValueName("FILE"))
	}
	if p.autoHelp {
		specs = append(specs, NewArg("help").Short('h').Long("help").Flag().
			Help("Print help information"))
	}
	if p.autoVersion && p.version != "" {
		specs = append(specs, NewArg("version").Short('V').Long("version").Flag().
			Help("Print version information"))
	}
	return specs
}

// loadConfigTree pre-scans for the config path and loads the document.
func (p *Program) loadConfigTree(ctx context.Context, tokens []string) (value.Table, error) {
	log := ctxlog.FromContext(ctx)

	path, explicit := p.extractConfigPath(tokens)
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !explicit && p.configTemplate != "" {
			log.Debug("Writing config template.", "path", path)
			if werr := os.WriteFile(path, []byte(p.configTemplate), 0o644); werr != nil {
				return nil, fmt.Errorf("stomlargs: write config template %s: %w", path, werr)
			}
		} else if explicit {
			return nil, &MissingConfigError{Path: path}
		} else {
			log.Debug("Default config path absent, skipping.", "path", path)
			return nil, nil
		}
	}

	tree, err := conf.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug("Config document loaded.", "path", path, "keys", len(tree))
	return tree, nil
}

// extractConfigPath scans the raw tokens for -c/--config without running
// the full state machine. It understands --config=path, --config path,
// -cpath, -c path, and a 'c' ending a short cluster like -vc path. The
// second return reports whether the path was explicit rather than the
// builder's default.
func (p *Program) extractConfigPath(tokens []string) (string, bool) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if rest, ok := strings.CutPrefix(tok, "--config"); ok {
			if path, hasEq := strings.CutPrefix(rest, "="); hasEq {
				return path, true
			}
			if rest == "" && i+1 < len(tokens) {
				return tokens[i+1], true
			}
			continue
		}

		if !strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "--") || len(tok) < 2 {
			continue
		}
		runes := []rune(tok[1:])
		for j, r := range runes {
			if r != 'c' {
				continue
			}
			if j == len(runes)-1 {
				if i+1 < len(tokens) {
					return tokens[i+1], true
				}
			} else {
				return string(runes[j+1:]), true
			}
			break
		}
	}
	return p.defaultConfig, false
}
