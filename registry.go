package stomlargs

import "fmt"

// registry holds the immutable argument definitions for one parse
// invocation plus the derived lookup indices: short alias to definition,
// long alias to definition, and the ordered positional slots.
type registry struct {
	specs       []*Arg
	shortIndex  map[rune]int
	longIndex   map[string]int
	positionals []int
}

// newRegistry builds the lookup indices. A misdeclared argument set is a
// programming error in the embedding application, not a runtime
// condition, so contract violations panic: duplicate aliases, a
// positional carrying an alias, or a variadic positional that is not
// last.
func newRegistry(specs []*Arg) *registry {
	r := &registry{
		specs:      specs,
		shortIndex: make(map[rune]int),
		longIndex:  make(map[string]int),
	}

	for i, spec := range specs {
		if spec.positional {
			if spec.short != 0 || spec.long != "" {
				panic(fmt.Sprintf("stomlargs: positional argument %q must not carry an alias", spec.name))
			}
			r.positionals = append(r.positionals, i)
			continue
		}
		if spec.variadic {
			panic(fmt.Sprintf("stomlargs: argument %q is variadic but not positional", spec.name))
		}
		if spec.short != 0 {
			if prev, dup := r.shortIndex[spec.short]; dup {
				panic(fmt.Sprintf("stomlargs: short alias -%c declared by both %q and %q",
					spec.short, specs[prev].name, spec.name))
			}
			r.shortIndex[spec.short] = i
		}
		if spec.long != "" {
			if prev, dup := r.longIndex[spec.long]; dup {
				panic(fmt.Sprintf("stomlargs: long alias --%s declared by both %q and %q",
					spec.long, specs[prev].name, spec.name))
			}
			r.longIndex[spec.long] = i
		}
	}

	for n, idx := range r.positionals {
		if r.specs[idx].variadic && n != len(r.positionals)-1 {
			panic(fmt.Sprintf("stomlargs: variadic positional %q must be the last positional", r.specs[idx].name))
		}
	}

	return r
}
