package declarations

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/temirov/cssnapshot/internal/utils"
)

const (
	summaryElementSelector   = "summary"
	referenceElementSelector = "see, seealso, paramref, typeparamref"
)

// referenceAttributeNames are consulted in order when an inline reference element has no text of its own.
var referenceAttributeNames = []string{"cref", "name", "langword", "href"}

// selfClosingElementExpression matches XML self-closing tags, which an HTML parser would otherwise leave open.
var selfClosingElementExpression = regexp.MustCompile(`<([A-Za-z][\w:.-]*)([^<>]*?)\s*/>`)

// Summary returns the <summary> text of an XML documentation comment on a single line.
// Inline references such as <see cref="Foo"/> render as the referenced name.
// An absent or blank summary yields an empty string.
func Summary(documentation string) string {
	if strings.TrimSpace(documentation) == "" {
		return ""
	}
	balancedDocumentation := selfClosingElementExpression.ReplaceAllString(documentation, "<$1$2></$1>")
	document, parseError := goquery.NewDocumentFromReader(strings.NewReader(balancedDocumentation))
	if parseError != nil {
		return ""
	}
	summarySelection := document.Find(summaryElementSelector).First()
	if summarySelection.Length() == 0 {
		return ""
	}
	summarySelection.Find(referenceElementSelector).Each(func(_ int, reference *goquery.Selection) {
		reference.ReplaceWithHtml(html.EscapeString(referenceLabel(reference)))
	})
	return utils.CollapseWhitespace(summarySelection.Text())
}

func referenceLabel(reference *goquery.Selection) string {
	if text := strings.TrimSpace(reference.Text()); text != "" {
		return text
	}
	for _, attributeName := range referenceAttributeNames {
		if value, exists := reference.Attr(attributeName); exists && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
