// Package types defines every cross‑package data structure used by the cssnapshot CLI.
package types

// MemberKind identifies the variant of a type member.
type MemberKind string

const (
	MemberKindConstructor MemberKind = "constructor"
	MemberKindMethod      MemberKind = "method"
	MemberKindField       MemberKind = "field"
	MemberKindProperty    MemberKind = "property"

	DeclarationKindClass     = "class"
	DeclarationKindInterface = "interface"
	DeclarationKindStruct    = "struct"
	DeclarationKindEnum      = "enum"
	DeclarationKindRecord    = "record"
)

// FileSystemEntry is a directory or source file captured during a single traversal.
// Directories and Files are each ordered by name.
type FileSystemEntry struct {
	Name         string
	RelativePath string
	IsDir        bool
	Directories  []*FileSystemEntry
	Files        []*FileSystemEntry
}

// Member is a constructor, method, field or property of a type declaration.
type Member struct {
	Kind          MemberKind
	Modifiers     []string
	Name          string
	Documentation string
	// Parameters holds the verbatim text of each parameter for constructors and methods.
	Parameters []string
	// ReturnType is set for methods only.
	ReturnType string
	// Type is the declared type of a field or property.
	Type string
	// Names lists every variable bound by a field declaration.
	Names []string
}

// TypeDeclaration is one class, interface, struct, enum or record found in a source file.
type TypeDeclaration struct {
	Kind          string
	Modifiers     []string
	Name          string
	Documentation string
	Members       []Member
}

// ParsedSource is the declaration model of one source file.
// Declarations include nested types and follow source order.
type ParsedSource struct {
	RelativePath string
	Declarations []TypeDeclaration
}
