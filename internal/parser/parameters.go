package parser

import "strings"

const (
	parameterListOpen  = "("
	parameterListClose = ")"
)

// splitParameterList splits "(a, b)" into its parameters. Commas nested in generic arguments, brackets,
// parentheses, braces and literals do not split. Angle brackets count only before a default value.
func splitParameterList(listText string) []string {
	trimmed := strings.TrimSpace(listText)
	trimmed = strings.TrimPrefix(trimmed, parameterListOpen)
	trimmed = strings.TrimSuffix(trimmed, parameterListClose)

	var parameters []string
	var current strings.Builder
	depth := 0
	angleDepth := 0
	inDefaultValue := false
	var quote rune
	escaped := false
	flush := func() {
		if parameter := strings.Join(strings.Fields(current.String()), " "); parameter != "" {
			parameters = append(parameters, parameter)
		}
		current.Reset()
		depth, angleDepth, inDefaultValue = 0, 0, false
	}
	for _, character := range trimmed {
		if quote != 0 {
			current.WriteRune(character)
			switch {
			case escaped:
				escaped = false
			case character == '\\':
				escaped = true
			case character == quote:
				quote = 0
			}
			continue
		}
		switch character {
		case '"', '\'':
			quote = character
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '<':
			if !inDefaultValue {
				angleDepth++
			}
		case '>':
			if !inDefaultValue && angleDepth > 0 {
				angleDepth--
			}
		case '=':
			if depth == 0 && angleDepth == 0 {
				inDefaultValue = true
			}
		case ',':
			if depth == 0 && angleDepth == 0 {
				flush()
				continue
			}
		}
		current.WriteRune(character)
	}
	flush()
	return parameters
}
