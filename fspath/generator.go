package fspath

import (
	"net/url"
	"strings"
)

// FileScheme is the only URI scheme that maps directly onto a local path
const FileScheme = "file://"

// Generator generates a file path from a given identifier.  The resulting paths
// are used for mapping referent identifiers to the image files that back them.
type Generator interface {
	Generate(string) string
}

// GeneratorFunc is a function that can be used to satisfy the Generator interface
type GeneratorFunc func(string) string

// Generate a path from a given id string
func (g GeneratorFunc) Generate(id string) string {
	return g(id)
}

// Passthrough uses the identifier as the path, unchanged
var Passthrough = GeneratorFunc(func(id string) string {
	return id
})

// StripFileScheme maps file:// URIs to the path they name.  Anything without
// the file:// prefix is returned unchanged; no other schemes are recognized.
var StripFileScheme = GeneratorFunc(func(id string) string {
	return strings.TrimPrefix(id, FileScheme)
})

// FileURI is the inverse of StripFileScheme for absolute paths
func FileURI(path string) string {
	return FileScheme + path
}

// DoubleEscape form-encodes an identifier twice, which is how identifiers are
// expected to reach a resolver.
func DoubleEscape(id string) string {
	return url.QueryEscape(url.QueryEscape(id))
}
