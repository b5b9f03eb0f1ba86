package report

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	temporaryFilePattern = ".cssnapshot-*.tmp"
	reportFilePermission = 0o644

	errorCreateTemporaryFormat = "create temporary report in %s: %w"
	errorWriteTemporaryFormat  = "write temporary report %s: %w"
	errorReplaceReportFormat   = "replace report %s: %w"
)

// writeAtomically stores content at destinationPath through a temporary sibling file and a rename,
// so readers never observe a partially written report.
func writeAtomically(destinationPath string, content []byte) error {
	directoryPath := filepath.Dir(destinationPath)
	temporaryFile, createError := os.CreateTemp(directoryPath, temporaryFilePattern)
	if createError != nil {
		return fmt.Errorf(errorCreateTemporaryFormat, directoryPath, createError)
	}
	temporaryPath := temporaryFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(temporaryPath)
		}
	}()

	if _, writeError := temporaryFile.Write(content); writeError != nil {
		_ = temporaryFile.Close()
		return fmt.Errorf(errorWriteTemporaryFormat, temporaryPath, writeError)
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		return fmt.Errorf(errorWriteTemporaryFormat, temporaryPath, closeError)
	}
	if chmodError := os.Chmod(temporaryPath, reportFilePermission); chmodError != nil {
		return fmt.Errorf(errorWriteTemporaryFormat, temporaryPath, chmodError)
	}
	if renameError := os.Rename(temporaryPath, destinationPath); renameError != nil {
		return fmt.Errorf(errorReplaceReportFormat, destinationPath, renameError)
	}
	committed = true
	return nil
}
