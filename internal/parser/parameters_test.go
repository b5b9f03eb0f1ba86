package parser

import (
	"reflect"
	"testing"
)

// TestSplitParameterList verifies top-level comma splitting with modifiers, attributes and nested commas.
func TestSplitParameterList(testingHandle *testing.T) {
	testCases := []struct {
		testName string
		listText string
		expected []string
	}{
		{testName: "empty", listText: "()", expected: nil},
		{testName: "params array", listText: "(int a, params string[] tags)", expected: []string{"int a", "params string[] tags"}},
		{testName: "modifiers and attributes", listText: "(this int b, [In] ref int c, out bool done)", expected: []string{"this int b", "[In] ref int c", "out bool done"}},
		{testName: "generic arguments", listText: "(Dictionary<string, List<int>> map, (int x, int y) point)", expected: []string{"Dictionary<string, List<int>> map", "(int x, int y) point"}},
		{testName: "attribute arguments", listText: "([Range(1, 10)] int level)", expected: []string{"[Range(1, 10)] int level"}},
		{testName: "default values", listText: "(string label = \"a, b\", char separator = ',', int mask = 1 << 2)", expected: []string{"string label = \"a, b\"", "char separator = ','", "int mask = 1 << 2"}},
		{testName: "line breaks", listText: "(\n    int a,\n    int   b\n)", expected: []string{"int a", "int b"}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.testName, func(subTest *testing.T) {
			actual := splitParameterList(testCase.listText)
			if !reflect.DeepEqual(actual, testCase.expected) {
				subTest.Fatalf("splitParameterList(%q) = %q, want %q", testCase.listText, actual, testCase.expected)
			}
		})
	}
}
