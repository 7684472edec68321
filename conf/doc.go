// Package conf is the boundary to the structured-document parsers. The
// resolver core consumes a pre-parsed value.Table and never reads bytes
// itself; this package provides the adapters that turn TOML, YAML, or
// HCL documents into that tree. The format is chosen by file extension,
// and every adapter produces the same value variant set so the merge
// engine is oblivious to where a tree came from.
package conf
