//go:build !cgo

package parser

import "github.com/temirov/cssnapshot/internal/types"

// CSharpParser is unavailable on platforms that cannot build the tree-sitter bindings.
type CSharpParser struct{}

// NewCSharpParser returns ErrUnavailable when cgo is disabled.
func NewCSharpParser() (*CSharpParser, error) {
	return nil, ErrUnavailable
}

// Parse always fails with ErrUnavailable.
func (parser *CSharpParser) Parse(relativePath string, source []byte) (types.ParsedSource, error) {
	return types.ParsedSource{}, ErrUnavailable
}
