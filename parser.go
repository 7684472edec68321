package stomlargs

import (
	"context"
	"strings"

	"github.com/parazyd/stoml-args/internal/ctxlog"
	"github.com/parazyd/stoml-args/value"
)

// parse walks the token list left to right. Two states exist: normal
// scanning, and pass-through once a bare "--" is seen. The transition is
// one-directional; every later token lands in Matches.Rest untouched.
func (r *registry) parse(ctx context.Context, tokens []string) (*Matches, error) {
	log := ctxlog.FromContext(ctx)
	m := newMatches()
	positionalIndex := 0
	passThrough := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if passThrough {
			m.rest = append(m.rest, tok)
			continue
		}

		switch {
		case tok == "--":
			log.Debug("Entering pass-through state.", "index", i)
			passThrough = true

		case strings.HasPrefix(tok, "--"):
			consumed, err := r.scanLong(tok[2:], tokens[i+1:], m)
			if err != nil {
				return nil, err
			}
			i += consumed

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			consumed, err := r.scanCluster(tok, tokens[i+1:], m)
			if err != nil {
				return nil, err
			}
			i += consumed

		default:
			// Bare "-" falls through here too: it is the conventional
			// stdin/stdout marker and counts as a positional literal.
			if err := r.acceptPositional(tok, positionalIndex, m); err != nil {
				return nil, err
			}
			positionalIndex++
		}
	}

	log.Debug("Token scan complete.", "values", len(m.values), "rest", len(m.rest))
	return m, nil
}

// scanLong handles one token after its leading "--" has been stripped.
// The returned count is how many lookahead tokens were consumed as a
// value.
func (r *registry) scanLong(rest string, lookahead []string, m *Matches) (int, error) {
	// --no-flag negation short-circuits normal lookup, but only when the
	// suffix names a known boolean.
	if name, ok := strings.CutPrefix(rest, "no-"); ok {
		if idx, known := r.longIndex[name]; known && r.specs[idx].typ == TypeBool {
			m.values[r.specs[idx].name] = value.Bool(false)
			return 0, nil
		}
	}

	name, inline, hasInline := strings.Cut(rest, "=")
	idx, known := r.longIndex[name]
	if !known {
		return 0, &UnknownFlagError{Flag: "--" + name}
	}
	spec := r.specs[idx]

	switch spec.typ {
	case TypeBool:
		if hasInline {
			m.values[spec.name] = value.Bool(lenientBool(inline))
		} else {
			m.values[spec.name] = value.Bool(true)
		}
		return 0, nil
	case TypeCount:
		// Counters ignore any inline value and just increment.
		m.increment(spec.name)
		return 0, nil
	}

	if hasInline {
		return 0, r.setValue(spec, inline, m)
	}
	if len(lookahead) == 0 {
		return 0, &MissingValueError{Name: spec.name}
	}
	return 1, r.setValue(spec, lookahead[0], m)
}

// scanCluster handles a combined short-flag token such as -vvv or -p9090.
// Boolean and counter aliases each consume one character and scanning
// continues; a value-taking alias consumes the rest of the token (or the
// next whole token) and ends the cluster.
func (r *registry) scanCluster(tok string, lookahead []string, m *Matches) (int, error) {
	runes := []rune(tok[1:])

	for j := 0; j < len(runes); j++ {
		idx, known := r.shortIndex[runes[j]]
		if !known {
			return 0, &UnknownFlagError{Flag: "-" + string(runes[j])}
		}
		spec := r.specs[idx]

		switch spec.typ {
		case TypeBool:
			m.values[spec.name] = value.Bool(true)
		case TypeCount:
			m.increment(spec.name)
		default:
			if j+1 < len(runes) {
				return 0, r.setValue(spec, string(runes[j+1:]), m)
			}
			if len(lookahead) == 0 {
				return 0, &MissingValueError{Name: spec.name}
			}
			return 1, r.setValue(spec, lookahead[0], m)
		}
	}

	return 0, nil
}

// acceptPositional assigns a bare token to the next unfilled slot, or to
// the trailing variadic slot once all slots are filled.
func (r *registry) acceptPositional(raw string, index int, m *Matches) error {
	if index < len(r.positionals) {
		spec := r.specs[r.positionals[index]]
		if spec.variadic {
			m.appendElement(spec.name, value.Str(raw))
			return nil
		}
		v, err := coerce(spec.name, raw, spec.typ)
		if err != nil {
			return err
		}
		m.values[spec.name] = v
		return nil
	}

	if n := len(r.positionals); n > 0 {
		if last := r.specs[r.positionals[n-1]]; last.variadic {
			m.appendElement(last.name, value.Str(raw))
			return nil
		}
	}

	return &TooManyPositionalError{Max: len(r.positionals), Got: index + 1}
}

// setValue coerces and stores one value token. Arrays append per
// occurrence; everything else rejects a second occurrence.
func (r *registry) setValue(spec *Arg, raw string, m *Matches) error {
	if spec.typ == TypeArray {
		m.appendElement(spec.name, value.Str(raw))
		return nil
	}

	if _, dup := m.values[spec.name]; dup {
		return &DuplicateValueError{Name: spec.name}
	}
	v, err := coerce(spec.name, raw, spec.typ)
	if err != nil {
		return err
	}
	m.values[spec.name] = v
	return nil
}
