package stomlargs

import "github.com/parazyd/stoml-args/value"

// Type is the kind of value an argument accepts.
type Type int

const (
	// TypeString accepts any text verbatim.
	TypeString Type = iota
	// TypeInteger accepts a base-10 signed 64-bit integer.
	TypeInteger
	// TypeFloat accepts a decimal or scientific float.
	TypeFloat
	// TypeBool is a presence flag; --no-flag and --flag=value set it
	// explicitly.
	TypeBool
	// TypeArray accumulates one element per occurrence.
	TypeArray
	// TypeCount increments an integer once per occurrence, e.g. -vvv.
	TypeCount
)

// Arg is the definition of a single argument. Build one with NewArg or
// NewPositional and the chained setters, then register it on a Program.
// Definitions are not mutated after parsing begins.
type Arg struct {
	name       string
	short      rune
	long       string
	typ        Type
	def        *value.Value
	required   bool
	help       string
	configKey  string
	valueName  string
	positional bool
	position   int
	variadic   bool
}

// NewArg creates a flag-style argument with the given stable name. The
// name is the key used for lookup in Matches and, unless ConfigKey is
// set, for matching the configuration document.
func NewArg(name string) *Arg {
	return &Arg{name: name}
}

// NewPositional creates a positional argument. Its slot index is assigned
// in declaration order when it is registered on a Program.
func NewPositional(name string) *Arg {
	return &Arg{name: name, positional: true}
}

// Name returns the argument's stable name.
func (a *Arg) Name() string { return a.name }

// Short sets the single-letter alias, e.g. 'v' for -v.
func (a *Arg) Short(r rune) *Arg {
	a.short = r
	return a
}

// Long sets the multi-letter alias, e.g. "verbose" for --verbose.
func (a *Arg) Long(name string) *Arg {
	a.long = name
	return a
}

// Type sets the kind of value the argument accepts.
func (a *Arg) Type(t Type) *Arg {
	a.typ = t
	return a
}

// Flag marks the argument as a boolean flag defaulting to false.
func (a *Arg) Flag() *Arg {
	a.typ = TypeBool
	d := value.Bool(false)
	a.def = &d
	return a
}

// Count marks the argument as a counter defaulting to zero. Each
// occurrence increments it, so -vvv resolves to 3.
func (a *Arg) Count() *Arg {
	a.typ = TypeCount
	d := value.Int(0)
	a.def = &d
	return a
}

// Default sets the value used when the argument is absent from both the
// command line and the configuration document.
func (a *Arg) Default(v value.Value) *Arg {
	d := v.Clone()
	a.def = &d
	return a
}

// Required marks the argument as mandatory after the full merge.
func (a *Arg) Required() *Arg {
	a.required = true
	return a
}

// Optional clears the required flag and any default. Use it for clarity
// when an argument should simply be absent from Matches when not given.
func (a *Arg) Optional() *Arg {
	a.required = false
	a.def = nil
	return a
}

// Help sets the description shown in usage text.
func (a *Arg) Help(s string) *Arg {
	a.help = s
	return a
}

// ConfigKey sets the configuration lookup path, with dots for nesting
// such as "server.port". It defaults to the argument name.
func (a *Arg) ConfigKey(s string) *Arg {
	a.configKey = s
	return a
}

// ValueName sets the placeholder shown in usage text, e.g. the FILE in
// "--config <FILE>".
func (a *Arg) ValueName(s string) *Arg {
	a.valueName = s
	return a
}

// Variadic marks a positional argument as accepting all remaining
// positional tokens. It forces the type to Array and is only legal on
// the last positional.
func (a *Arg) Variadic() *Arg {
	a.variadic = true
	a.typ = TypeArray
	return a
}

// takesValue reports whether the argument consumes a value token, as
// opposed to bare presence (booleans) or repetition (counters).
func (a *Arg) takesValue() bool {
	return a.typ != TypeBool && a.typ != TypeCount
}
