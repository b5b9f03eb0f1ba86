package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/cssnapshot/internal/utils"
)

// textFileName defines the name of the file used in path tests.
const textFileName = "Sample.cs"

// TestRelativePathOrSelf verifies relative path calculation against a root.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	nestedDirectory := filepath.Join(temporaryRoot, "src")
	if makeDirectoryError := os.MkdirAll(nestedDirectory, 0o755); makeDirectoryError != nil {
		testingInstance.Fatalf("failed to create directory: %v", makeDirectoryError)
	}
	subPath := filepath.Join(nestedDirectory, textFileName)
	creationError := os.WriteFile(subPath, []byte("content"), 0600)
	if creationError != nil {
		testingInstance.Fatalf("failed to create file: %v", creationError)
	}
	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{
			testName: "root path returns dot",
			fullPath: temporaryRoot,
			root:     temporaryRoot,
			expected: ".",
		},
		{
			testName: "sub path returns slash separated relative path",
			fullPath: subPath,
			root:     temporaryRoot,
			expected: "src/" + textFileName,
		},
	}
	for index, testCase := range testCases {
		actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %s, got %s", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestCollapseWhitespace verifies that line breaks and whitespace runs fold into single spaces.
func TestCollapseWhitespace(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		input    string
		expected string
	}{
		{testName: "single line", input: "Adds two numbers.", expected: "Adds two numbers."},
		{testName: "line breaks", input: "\n   Adds two\r\n   numbers.\n", expected: "Adds two numbers."},
		{testName: "tabs and runs", input: "a\t\tb    c", expected: "a b c"},
		{testName: "blank", input: " \n\t ", expected: ""},
	}
	for index, testCase := range testCases {
		actual := utils.CollapseWhitespace(testCase.input)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %q, got %q", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestJoinNonEmpty verifies that empty parts never produce stray separators.
func TestJoinNonEmpty(testingInstance *testing.T) {
	if actual := utils.JoinNonEmpty("", "class", "", "Foo"); actual != "class Foo" {
		testingInstance.Fatalf("unexpected join: %q", actual)
	}
	if actual := utils.JoinNonEmpty(); actual != "" {
		testingInstance.Fatalf("unexpected join of nothing: %q", actual)
	}
}
