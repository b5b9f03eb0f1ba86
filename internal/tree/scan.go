// Package tree captures a filtered snapshot of a project directory and renders it as an ASCII tree.
package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/cssnapshot/internal/filter"
	"github.com/temirov/cssnapshot/internal/types"
	"github.com/temirov/cssnapshot/internal/utils"
)

const (
	// DefaultSourceExtension is the extension of the files listed and parsed.
	DefaultSourceExtension = ".cs"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorWalkDirectoryFormat is used when a recursive walk fails.
	errorWalkDirectoryFormat = "walking directory %s: %w"
)

// PathMatcher reports whether an absolute path is excluded by an external rule set such as a .gitignore file.
type PathMatcher interface {
	Match(path string, isDir bool) bool
}

// ScanOptions controls which entries a traversal keeps.
type ScanOptions struct {
	Extension string
	Filter    *filter.Filter
	Matcher   PathMatcher
}

func (options ScanOptions) extension() string {
	if options.Extension == "" {
		return DefaultSourceExtension
	}
	return options.Extension
}

func (options ScanOptions) keepsDirectory(absolutePath string, name string) bool {
	if options.Filter.IsIgnored(name) {
		return false
	}
	if options.Matcher != nil && options.Matcher.Match(absolutePath, true) {
		return false
	}
	return true
}

func (options ScanOptions) keepsFile(absolutePath string, name string) bool {
	if !strings.EqualFold(filepath.Ext(name), options.extension()) {
		return false
	}
	if options.Filter.IsIgnored(name) {
		return false
	}
	if options.Matcher != nil && options.Matcher.Match(absolutePath, false) {
		return false
	}
	return true
}

// Scan reads rootDirectoryPath into a FileSystemEntry snapshot holding directories and source files.
// Ignored directories are pruned while reading; the root itself is always kept.
func Scan(rootDirectoryPath string, options ScanOptions) (*types.FileSystemEntry, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	rootEntry := &types.FileSystemEntry{
		Name:         filepath.Base(absoluteRootPath),
		RelativePath: ".",
		IsDir:        true,
	}
	if scanError := scanDirectory(rootEntry, absoluteRootPath, absoluteRootPath, options); scanError != nil {
		return nil, scanError
	}
	return rootEntry, nil
}

// scanDirectory fills directoryEntry with the visible children of currentDirectoryPath.
func scanDirectory(directoryEntry *types.FileSystemEntry, currentDirectoryPath string, rootDirectoryPath string, options ScanOptions) error {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	for _, childEntry := range directoryEntries {
		childPath := filepath.Join(currentDirectoryPath, childEntry.Name())
		relativeChildPath := utils.RelativePathOrSelf(childPath, rootDirectoryPath)
		if childEntry.IsDir() {
			if !options.keepsDirectory(childPath, childEntry.Name()) {
				continue
			}
			childDirectory := &types.FileSystemEntry{
				Name:         childEntry.Name(),
				RelativePath: relativeChildPath,
				IsDir:        true,
			}
			if scanError := scanDirectory(childDirectory, childPath, rootDirectoryPath, options); scanError != nil {
				return scanError
			}
			directoryEntry.Directories = append(directoryEntry.Directories, childDirectory)
			continue
		}
		if !options.keepsFile(childPath, childEntry.Name()) {
			continue
		}
		directoryEntry.Files = append(directoryEntry.Files, &types.FileSystemEntry{
			Name:         childEntry.Name(),
			RelativePath: relativeChildPath,
		})
	}

	sortEntriesByName(directoryEntry.Directories)
	sortEntriesByName(directoryEntry.Files)
	return nil
}

func sortEntriesByName(entries []*types.FileSystemEntry) {
	sort.SliceStable(entries, func(left, right int) bool {
		return entries[left].Name < entries[right].Name
	})
}

// CollectSourceFiles returns every kept source file beneath directoryPath as a slash-separated path
// relative to directoryPath, sorted alphabetically.
func CollectSourceFiles(directoryPath string, options ScanOptions) ([]string, error) {
	absoluteDirectoryPath, absolutePathError := filepath.Abs(directoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, directoryPath, absolutePathError)
	}

	var relativePaths []string
	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}
		if directoryEntry.IsDir() {
			if currentPath == absoluteDirectoryPath {
				return nil
			}
			if !options.keepsDirectory(currentPath, directoryEntry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !options.keepsFile(currentPath, directoryEntry.Name()) {
			return nil
		}
		relativePath := utils.RelativePathOrSelf(currentPath, absoluteDirectoryPath)
		if options.Filter.IsPathIgnored(relativePath) {
			return nil
		}
		relativePaths = append(relativePaths, relativePath)
		return nil
	}
	if walkError := filepath.WalkDir(absoluteDirectoryPath, walkFunction); walkError != nil {
		return nil, fmt.Errorf(errorWalkDirectoryFormat, directoryPath, walkError)
	}

	sort.Strings(relativePaths)
	return relativePaths, nil
}
