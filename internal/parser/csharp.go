//go:build cgo

package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	csharp "github.com/smacker/go-tree-sitter/csharp"

	"github.com/temirov/cssnapshot/internal/types"
)

const (
	commentNodeType             = "comment"
	modifierNodeType            = "modifier"
	declarationListNodeType     = "declaration_list"
	constructorNodeType         = "constructor_declaration"
	methodNodeType              = "method_declaration"
	fieldNodeType               = "field_declaration"
	propertyNodeType            = "property_declaration"
	variableDeclarationNodeType = "variable_declaration"
	variableDeclaratorNodeType  = "variable_declarator"
	identifierNodeType          = "identifier"

	nameField       = "name"
	bodyField       = "body"
	typeField       = "type"
	returnsField    = "returns"
	parametersField = "parameters"

	documentationCommentPrefix = "///"
	documentationLineSeparator = "\n"

	errorParseFormat = "parse %s: %w"
)

// declarationKinds maps tree-sitter node types to declaration keywords.
var declarationKinds = map[string]string{
	"class_declaration":         types.DeclarationKindClass,
	"interface_declaration":     types.DeclarationKindInterface,
	"struct_declaration":        types.DeclarationKindStruct,
	"enum_declaration":          types.DeclarationKindEnum,
	"record_declaration":        types.DeclarationKindRecord,
	"record_struct_declaration": types.DeclarationKindRecord,
}

// CSharpParser reads C# source with the tree-sitter C# grammar. It tolerates syntax errors and
// returns whatever declarations the error-recovering parse still exposes.
type CSharpParser struct {
	parser *sitter.Parser
}

// NewCSharpParser constructs a parser bound to the C# grammar.
func NewCSharpParser() (*CSharpParser, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())
	return &CSharpParser{parser: parser}, nil
}

// Parse returns every type declaration in source, nested types included, in source order.
func (parser *CSharpParser) Parse(relativePath string, source []byte) (types.ParsedSource, error) {
	parsed := types.ParsedSource{RelativePath: relativePath}
	syntaxTree, parseError := parser.parser.ParseCtx(context.Background(), nil, source)
	if parseError != nil {
		return parsed, fmt.Errorf(errorParseFormat, relativePath, parseError)
	}
	if syntaxTree == nil {
		return parsed, nil
	}
	collectDeclarations(syntaxTree.RootNode(), source, &parsed.Declarations)
	return parsed, nil
}

// collectDeclarations appends type declarations in pre-order so that an enclosing type precedes its nested types.
func collectDeclarations(node *sitter.Node, source []byte, declarations *[]types.TypeDeclaration) {
	if node == nil {
		return
	}
	if kind, isTypeDeclaration := declarationKinds[node.Type()]; isTypeDeclaration {
		*declarations = append(*declarations, buildDeclaration(node, kind, source))
	}
	for index := 0; index < int(node.NamedChildCount()); index++ {
		collectDeclarations(node.NamedChild(index), source, declarations)
	}
}

func buildDeclaration(node *sitter.Node, kind string, source []byte) types.TypeDeclaration {
	declaration := types.TypeDeclaration{
		Kind:          kind,
		Modifiers:     collectModifiers(node, source),
		Name:          fieldText(node, nameField, source),
		Documentation: documentationComment(node, source),
	}
	body := node.ChildByFieldName(bodyField)
	if body == nil {
		body = firstNamedChildOfType(node, declarationListNodeType)
	}
	if body == nil || body.Type() != declarationListNodeType {
		return declaration
	}
	for index := 0; index < int(body.NamedChildCount()); index++ {
		if member, recognized := buildMember(body.NamedChild(index), source); recognized {
			declaration.Members = append(declaration.Members, member)
		}
	}
	return declaration
}

func buildMember(node *sitter.Node, source []byte) (types.Member, bool) {
	if node == nil {
		return types.Member{}, false
	}
	member := types.Member{
		Modifiers: collectModifiers(node, source),
	}
	switch node.Type() {
	case constructorNodeType:
		member.Kind = types.MemberKindConstructor
		member.Name = fieldText(node, nameField, source)
		member.Parameters = collectParameters(node, source)
	case methodNodeType:
		member.Kind = types.MemberKindMethod
		member.Name = fieldText(node, nameField, source)
		member.Parameters = collectParameters(node, source)
		member.ReturnType = fieldText(node, returnsField, source)
		if member.ReturnType == "" {
			member.ReturnType = fieldText(node, typeField, source)
		}
	case fieldNodeType:
		member.Kind = types.MemberKindField
		variableDeclaration := firstNamedChildOfType(node, variableDeclarationNodeType)
		if variableDeclaration == nil {
			return types.Member{}, false
		}
		member.Type = fieldText(variableDeclaration, typeField, source)
		member.Names = collectDeclaratorNames(variableDeclaration, source)
	case propertyNodeType:
		member.Kind = types.MemberKindProperty
		member.Name = fieldText(node, nameField, source)
		member.Type = fieldText(node, typeField, source)
	default:
		return types.Member{}, false
	}
	member.Documentation = documentationComment(node, source)
	return member, true
}

func collectModifiers(node *sitter.Node, source []byte) []string {
	var modifiers []string
	for index := 0; index < int(node.NamedChildCount()); index++ {
		child := node.NamedChild(index)
		if child != nil && child.Type() == modifierNodeType {
			modifiers = append(modifiers, strings.TrimSpace(child.Content(source)))
		}
	}
	return modifiers
}

// collectParameters returns the verbatim text of every parameter, attributes, modifiers and default values
// included. The list text is split on top-level commas because the grammar emits a params array as bare
// type and name siblings rather than one parameter node.
func collectParameters(node *sitter.Node, source []byte) []string {
	parameterList := node.ChildByFieldName(parametersField)
	if parameterList == nil {
		return nil
	}
	return splitParameterList(parameterList.Content(source))
}

func collectDeclaratorNames(variableDeclaration *sitter.Node, source []byte) []string {
	var names []string
	for index := 0; index < int(variableDeclaration.NamedChildCount()); index++ {
		declarator := variableDeclaration.NamedChild(index)
		if declarator == nil || declarator.Type() != variableDeclaratorNodeType {
			continue
		}
		name := fieldText(declarator, nameField, source)
		if name == "" {
			if identifier := firstNamedChildOfType(declarator, identifierNodeType); identifier != nil {
				name = identifier.Content(source)
			}
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// documentationComment gathers the contiguous /// comment lines directly preceding node, prefixes removed.
func documentationComment(node *sitter.Node, source []byte) string {
	var lines []string
	for sibling := node.PrevNamedSibling(); sibling != nil && sibling.Type() == commentNodeType; sibling = sibling.PrevNamedSibling() {
		commentText := sibling.Content(source)
		if !strings.HasPrefix(commentText, documentationCommentPrefix) {
			break
		}
		lines = append([]string{strings.TrimPrefix(commentText, documentationCommentPrefix)}, lines...)
	}
	return strings.Join(lines, documentationLineSeparator)
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Content(source))
}

func firstNamedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for index := 0; index < int(node.NamedChildCount()); index++ {
		child := node.NamedChild(index)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}
	return nil
}
