// Package declarations formats the declaration model of a parsed source file into a markdown listing.
package declarations

import (
	"fmt"
	"strings"

	"github.com/temirov/cssnapshot/internal/types"
	"github.com/temirov/cssnapshot/internal/utils"
)

const (
	fileHeaderFormat      = "#### %s\n"
	codeFenceOpen         = "```csharp\n"
	codeFenceClose        = "```\n"
	memberIndentation     = "    "
	lineTerminator        = "\n"
	summaryCommentPrefix  = " // "
	statementTerminator   = ";"
	propertyAccessorsText = " { get; set; };"
	parameterSeparator    = ", "
	modifierSeparator     = " "
)

// Extract renders one fenced listing block for source. Every type declaration gets a header line and every
// constructor and method an indented signature line, in source order. In detailed mode fields and
// properties are listed as well.
func Extract(source types.ParsedSource, detailed bool) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(fileHeaderFormat, source.RelativePath))
	builder.WriteString(codeFenceOpen)
	for _, declaration := range source.Declarations {
		builder.WriteString(FormatDeclaration(declaration) + lineTerminator)
		for _, member := range declaration.Members {
			for _, memberLine := range FormatMember(member, detailed) {
				builder.WriteString(memberIndentation + memberLine + lineTerminator)
			}
		}
	}
	builder.WriteString(codeFenceClose)
	return builder.String()
}

// FormatDeclaration returns the header line of a type declaration.
func FormatDeclaration(declaration types.TypeDeclaration) string {
	headerLine := utils.JoinNonEmpty(
		strings.Join(declaration.Modifiers, modifierSeparator),
		strings.ToLower(declaration.Kind),
		declaration.Name,
	)
	return annotate(headerLine, declaration.Documentation)
}

// FormatMember returns the lines rendered for member. Fields and properties produce no lines
// unless detailed is true; a field yields one line per bound name.
func FormatMember(member types.Member, detailed bool) []string {
	modifiers := strings.Join(member.Modifiers, modifierSeparator)
	switch member.Kind {
	case types.MemberKindConstructor:
		return []string{annotate(utils.JoinNonEmpty(modifiers, signature(member)), member.Documentation)}
	case types.MemberKindMethod:
		return []string{annotate(utils.JoinNonEmpty(modifiers, member.ReturnType, signature(member)), member.Documentation)}
	case types.MemberKindField:
		if !detailed {
			return nil
		}
		names := member.Names
		if len(names) == 0 && member.Name != "" {
			names = []string{member.Name}
		}
		fieldLines := make([]string, 0, len(names))
		for _, boundName := range names {
			fieldLines = append(fieldLines, utils.JoinNonEmpty(modifiers, member.Type, boundName+statementTerminator))
		}
		return fieldLines
	case types.MemberKindProperty:
		if !detailed {
			return nil
		}
		propertyLine := utils.JoinNonEmpty(modifiers, member.Type, member.Name) + propertyAccessorsText
		return []string{annotate(propertyLine, member.Documentation)}
	default:
		return nil
	}
}

func signature(member types.Member) string {
	return member.Name + "(" + strings.Join(member.Parameters, parameterSeparator) + ")" + statementTerminator
}

// annotate appends the documentation summary as a trailing comment when there is one.
func annotate(line string, documentation string) string {
	summary := Summary(documentation)
	if summary == "" {
		return line
	}
	return line + summaryCommentPrefix + summary
}
