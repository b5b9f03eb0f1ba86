package tree

import (
	"strings"

	"github.com/temirov/cssnapshot/internal/filter"
	"github.com/temirov/cssnapshot/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
	directorySuffix     = "/"
	lineTerminator      = "\n"
)

// Render returns the ASCII tree for root. Files precede subdirectories at every level and
// directories matching segmentFilter are omitted together with everything beneath them.
// The root is always drawn as a last sibling.
func Render(root *types.FileSystemEntry, segmentFilter *filter.Filter) string {
	if root == nil {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(treeLastConnector + root.Name + directorySuffix + lineTerminator)
	renderChildren(&builder, root, segmentFilter, treeLastPadding)
	return builder.String()
}

// renderChildren writes the visible files and subdirectories of directory using indentation as the line prefix.
func renderChildren(builder *strings.Builder, directory *types.FileSystemEntry, segmentFilter *filter.Filter, indentation string) {
	visibleFiles := make([]*types.FileSystemEntry, 0, len(directory.Files))
	for _, file := range directory.Files {
		if file != nil && !segmentFilter.IsIgnored(file.Name) {
			visibleFiles = append(visibleFiles, file)
		}
	}
	visibleDirectories := make([]*types.FileSystemEntry, 0, len(directory.Directories))
	for _, subdirectory := range directory.Directories {
		if subdirectory != nil && !segmentFilter.IsIgnored(subdirectory.Name) {
			visibleDirectories = append(visibleDirectories, subdirectory)
		}
	}

	remaining := len(visibleFiles) + len(visibleDirectories)
	for _, file := range visibleFiles {
		remaining--
		builder.WriteString(indentation + connectorFor(remaining == 0) + file.Name + lineTerminator)
	}
	for _, subdirectory := range visibleDirectories {
		remaining--
		isLast := remaining == 0
		builder.WriteString(indentation + connectorFor(isLast) + subdirectory.Name + directorySuffix + lineTerminator)
		renderChildren(builder, subdirectory, segmentFilter, indentation+paddingFor(isLast))
	}
}

func connectorFor(isLast bool) string {
	if isLast {
		return treeLastConnector
	}
	return treeBranchConnector
}

func paddingFor(isLast bool) string {
	if isLast {
		return treeLastPadding
	}
	return treeBranchPadding
}
