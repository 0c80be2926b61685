// Package requests defines the typed request bodies sent to the Egeria
// open metadata view services and validates caller-supplied bodies against them.
//
// A body may be supplied either as one of the typed shapes in this package or as a
// raw mapping (map[string]any, []byte or json.RawMessage). Raw mappings are checked
// against an embedded JSON Schema for the shape, then decoded. Element properties are
// a tagged union keyed by the "class" discriminator. Nothing in this package performs
// network I/O.
package requests
