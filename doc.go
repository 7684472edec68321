// Package stomlargs is a command-line argument interpreter that resolves
// final configuration values from three layered sources: explicit
// command-line tokens, an optional structured configuration document, and
// per-argument static defaults. Precedence is fixed as CLI, then config,
// then default, and is enforced by insert-if-absent merging so a value the
// user typed is never overwritten.
//
// Arguments are declared with the fluent Arg builder and registered on a
// Program. Parsing walks the token list with a small state machine that
// understands long flags (--flag, --flag=value, --no-flag negation),
// combined short flag clusters (-vvv, -p9090), positional slots including
// a trailing variadic slot, and the -- pass-through terminator. The result
// is a Matches mapping that layers in the configuration tree and defaults
// before validating required arguments.
package stomlargs
