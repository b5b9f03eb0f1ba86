package filter_test

import (
	"errors"
	"testing"

	"github.com/temirov/cssnapshot/internal/filter"
)

// TestIsIgnoredMatchesWholeSegmentsCaseInsensitively verifies anchoring and case folding.
func TestIsIgnoredMatchesWholeSegmentsCaseInsensitively(testingHandle *testing.T) {
	segmentFilter, creationError := filter.New("bin|obj")
	if creationError != nil {
		testingHandle.Fatalf("New failed: %v", creationError)
	}
	testCases := []struct {
		testName string
		segment  string
		expected bool
	}{
		{testName: "exact", segment: "bin", expected: true},
		{testName: "upper case", segment: "Bin", expected: true},
		{testName: "second alternative", segment: "OBJ", expected: true},
		{testName: "prefix only", segment: "binary", expected: false},
		{testName: "suffix only", segment: "robj", expected: false},
		{testName: "unrelated", segment: "src", expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.testName, func(subTest *testing.T) {
			if actual := segmentFilter.IsIgnored(testCase.segment); actual != testCase.expected {
				subTest.Fatalf("IsIgnored(%q) = %t, want %t", testCase.segment, actual, testCase.expected)
			}
		})
	}
}

// TestIsPathIgnoredChecksEverySegment verifies that any ignored segment excludes the whole path.
func TestIsPathIgnoredChecksEverySegment(testingHandle *testing.T) {
	segmentFilter, creationError := filter.New(filter.DefaultPattern)
	if creationError != nil {
		testingHandle.Fatalf("New failed: %v", creationError)
	}
	testCases := []struct {
		relativePath string
		expected     bool
	}{
		{relativePath: "src/Foo.cs", expected: false},
		{relativePath: "bin/Ignored.cs", expected: true},
		{relativePath: "src/deep/obj/Generated.cs", expected: true},
		{relativePath: `src\Node_Modules\lib.cs`, expected: true},
		{relativePath: "binary/Tool.cs", expected: false},
		{relativePath: ".", expected: false},
	}
	for _, testCase := range testCases {
		if actual := segmentFilter.IsPathIgnored(testCase.relativePath); actual != testCase.expected {
			testingHandle.Errorf("IsPathIgnored(%q) = %t, want %t", testCase.relativePath, actual, testCase.expected)
		}
	}
}

// TestNewRejectsUnusablePatterns verifies that empty and malformed patterns fail at construction.
func TestNewRejectsUnusablePatterns(testingHandle *testing.T) {
	if _, emptyError := filter.New("   "); !errors.Is(emptyError, filter.ErrEmptyPattern) {
		testingHandle.Fatalf("expected ErrEmptyPattern, got %v", emptyError)
	}
	if _, invalidError := filter.New("bin|(obj"); invalidError == nil {
		testingHandle.Fatalf("expected an error for an unbalanced pattern")
	}
}

// TestNilFilterIgnoresNothing verifies the zero behavior of a nil filter.
func TestNilFilterIgnoresNothing(testingHandle *testing.T) {
	var segmentFilter *filter.Filter
	if segmentFilter.IsIgnored("bin") || segmentFilter.IsPathIgnored("bin/x.cs") {
		testingHandle.Fatalf("nil filter must not ignore anything")
	}
	if segmentFilter.Pattern() != "" {
		testingHandle.Fatalf("nil filter must report an empty pattern")
	}
}
