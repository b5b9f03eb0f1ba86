package config

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/temirov/cssnapshot/internal/tree"
	"github.com/temirov/cssnapshot/internal/utils"
)

const errorLoadGitignoreFormat = "load %s: %w"

// LoadGitignoreMatcher returns a matcher for the .gitignore file at the root of rootDirectory, or nil when
// the project has none. The matcher expects absolute paths beneath rootDirectory.
//
// #nosec G304
func LoadGitignoreMatcher(rootDirectory string) (tree.PathMatcher, error) {
	absoluteRoot, absoluteError := filepath.Abs(rootDirectory)
	if absoluteError != nil {
		return nil, fmt.Errorf(errorLoadGitignoreFormat, rootDirectory, absoluteError)
	}
	gitignorePath := filepath.Join(absoluteRoot, utils.GitIgnoreFileName)
	if _, statError := os.Stat(gitignorePath); statError != nil {
		if os.IsNotExist(statError) {
			return nil, nil
		}
		return nil, fmt.Errorf(errorLoadGitignoreFormat, gitignorePath, statError)
	}
	matcher, parseError := gitignore.NewGitIgnore(gitignorePath)
	if parseError != nil {
		return nil, fmt.Errorf(errorLoadGitignoreFormat, gitignorePath, parseError)
	}
	return matcher, nil
}
