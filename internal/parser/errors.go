// Package parser turns C# source text into the declaration model consumed by the report pipeline.
package parser

import "errors"

// ErrUnavailable is returned when the binary was built without cgo and the tree-sitter grammar is absent.
var ErrUnavailable = errors.New("parser: C# grammar unavailable without cgo")
