package stomlargs

import (
	"github.com/parazyd/stoml-args/conf"
	"github.com/parazyd/stoml-args/value"
)

// Matches is the resolved mapping produced by a parse: argument stable
// names (and, after merging, dotted configuration keys) to values, plus
// the program name and any tokens that followed a "--" terminator.
//
// Precedence is enforced structurally: the tokenizer populates the
// mapping first and every later layer inserts only where a key is
// absent, so a CLI-supplied value is never overwritten.
type Matches struct {
	values  map[string]value.Value
	program string
	rest    []string
}

func newMatches() *Matches {
	return &Matches{values: make(map[string]value.Value)}
}

// Program returns the name of the program that produced this mapping.
func (m *Matches) Program() string { return m.program }

// Rest returns the tokens following a "--" terminator, untouched.
func (m *Matches) Rest() []string { return m.rest }

// Contains reports whether a value is present under name.
func (m *Matches) Contains(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Get returns the value stored under name.
func (m *Matches) Get(name string) (value.Value, bool) {
	v, ok := m.values[name]
	return v, ok
}

// GetString returns the string stored under name.
func (m *Matches) GetString(name string) (string, bool) {
	v, ok := m.values[name]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetStringOr returns the string stored under name, or def when absent
// or not a string.
func (m *Matches) GetStringOr(name, def string) string {
	if s, ok := m.GetString(name); ok {
		return s
	}
	return def
}

// GetInt returns the integer stored under name.
func (m *Matches) GetInt(name string) (int64, bool) {
	v, ok := m.values[name]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// GetIntOr returns the integer stored under name, or def when absent or
// not an integer.
func (m *Matches) GetIntOr(name string, def int64) int64 {
	if n, ok := m.GetInt(name); ok {
		return n
	}
	return def
}

// GetFloat returns the float stored under name.
func (m *Matches) GetFloat(name string) (float64, bool) {
	v, ok := m.values[name]
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// GetFloatOr returns the float stored under name, or def when absent or
// not a float.
func (m *Matches) GetFloatOr(name string, def float64) float64 {
	if f, ok := m.GetFloat(name); ok {
		return f
	}
	return def
}

// GetBool returns the boolean stored under name, or false when absent.
func (m *Matches) GetBool(name string) bool {
	b, _ := m.GetBoolOpt(name)
	return b
}

// GetBoolOpt returns the boolean stored under name and whether it was
// present.
func (m *Matches) GetBoolOpt(name string) (bool, bool) {
	v, ok := m.values[name]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// GetArray returns the array elements stored under name.
func (m *Matches) GetArray(name string) ([]value.Value, bool) {
	v, ok := m.values[name]
	if !ok {
		return nil, false
	}
	return v.AsArray()
}

// GetCount returns the counter stored under name, or zero when absent.
func (m *Matches) GetCount(name string) int64 {
	n, _ := m.GetCountOpt(name)
	return n
}

// GetCountOpt returns the counter stored under name and whether it was
// present.
func (m *Matches) GetCountOpt(name string) (int64, bool) {
	v, ok := m.values[name]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Values exposes the full resolved mapping. The map is shared with the
// Matches; treat it as read-only.
func (m *Matches) Values() map[string]value.Value { return m.values }

// ToTable converts the flat mapping into a nested table, splitting dotted
// keys. Lossless for mappings without dotted-key collisions.
func (m *Matches) ToTable() value.Table {
	return value.Unflatten(m.values)
}

// MergeTree layers a configuration tree under the already-parsed values.
// The tree is flattened depth-first into dotted keys and every key not
// already present is inserted; a nested table is also inserted whole
// under its own key before descending, so both the nested and the
// fully-qualified views remain addressable. The tree itself is never
// mutated and inserted values are deep clones.
func (m *Matches) MergeTree(tree value.Table) {
	m.mergeTable(tree, "")
}

func (m *Matches) mergeTable(t value.Table, prefix string) {
	for k, v := range t {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if sub, ok := v.AsTable(); ok {
			m.mergeTable(sub, full)
		}
		if _, present := m.values[full]; !present {
			m.values[full] = v.Clone()
		}
	}
}

// MergeFile loads a configuration document from path and merges it. The
// format is chosen by file extension.
func (m *Matches) MergeFile(path string) error {
	tree, err := conf.LoadFile(path)
	if err != nil {
		return err
	}
	m.MergeTree(tree)
	return nil
}

// MergeFileOptional merges a configuration document if the file exists
// and does nothing otherwise.
func (m *Matches) MergeFileOptional(path string) error {
	tree, err := conf.LoadFileOptional(path)
	if err != nil {
		return err
	}
	if tree != nil {
		m.MergeTree(tree)
	}
	return nil
}

// increment bumps a counter, starting from zero when absent.
func (m *Matches) increment(name string) {
	current, _ := m.GetCountOpt(name)
	m.values[name] = value.Int(current + 1)
}

// appendElement grows an array value by one element, creating the array
// on first use.
func (m *Matches) appendElement(name string, elem value.Value) {
	m.values[name] = m.values[name].Append(elem)
}

// resolveConfigKeys makes configuration values addressable by argument
// name: for every definition still unmatched whose config key (the
// dot-separated lookup path, defaulting to the name) was filled in by the
// merge, the value is aliased under the stable name as well.
func (m *Matches) resolveConfigKeys(specs []*Arg) {
	for _, spec := range specs {
		key := spec.configKey
		if key == "" || key == spec.name {
			continue
		}
		if _, present := m.values[spec.name]; present {
			continue
		}
		if v, ok := m.values[key]; ok {
			m.values[spec.name] = v.Clone()
		}
	}
}

// applyDefaults inserts each definition's static default wherever the
// stable name is still absent.
func (m *Matches) applyDefaults(specs []*Arg) {
	for _, spec := range specs {
		if spec.def == nil {
			continue
		}
		if _, present := m.values[spec.name]; !present {
			m.values[spec.name] = spec.def.Clone()
		}
	}
}

// validateRequired is the final merge step: any required definition still
// absent is a hard failure.
func validateRequired(specs []*Arg, m *Matches) error {
	for _, spec := range specs {
		if !spec.required {
			continue
		}
		if _, present := m.values[spec.name]; present {
			continue
		}
		if spec.positional {
			return &MissingPositionalError{Name: spec.name, Slot: spec.position}
		}
		return &MissingRequiredError{Name: spec.name}
	}
	return nil
}
