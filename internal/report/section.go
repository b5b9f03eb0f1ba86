package report

import "strings"

const (
	// StructureHeading titles the directory tree section.
	StructureHeading = "Project Structure"
	// DeclarationsHeading titles the structural listing section.
	DeclarationsHeading = "Source Declarations"
	// EntitiesHeading titles the detailed entity listing section.
	EntitiesHeading = "Entity Details"

	headingMarker    = "#"
	headingSeparator = " "
	paragraphBreak   = "\n\n"
	blockSeparator   = "\n"
)

// Section is one heading with its body. Sections are values; a report is the ordered list joined once.
type Section struct {
	Heading string
	Level   int
	Body    string
}

// Render formats the section as a markdown heading followed by its body.
func (section Section) Render() string {
	level := section.Level
	if level < 1 {
		level = 1
	}
	heading := strings.Repeat(headingMarker, level) + headingSeparator + section.Heading + paragraphBreak
	return heading + section.Body
}

// Join renders every section in order, separating them with a blank line.
func Join(sections []Section) string {
	rendered := make([]string, 0, len(sections))
	for _, section := range sections {
		rendered = append(rendered, section.Render())
	}
	return strings.Join(rendered, blockSeparator)
}
