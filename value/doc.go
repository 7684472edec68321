// Package value defines the tagged-union Value type shared by every layer
// of the resolver: values tokenized from the command line, values read
// from a configuration document, and per-argument defaults all use the
// same variant set. It also provides the conversions between the nested
// table form and the flat dotted-key form used by the merge engine.
package value
