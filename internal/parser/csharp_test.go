//go:build cgo

package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/temirov/cssnapshot/internal/parser"
	"github.com/temirov/cssnapshot/internal/types"
)

const inventorySource = `using System;

namespace Shop.Inventory
{
    /// <summary>
    /// Tracks stock levels.
    /// </summary>
    public sealed class Inventory
    {
        private readonly int capacity, reserved;

        /// <summary>Creates an inventory.</summary>
        public Inventory(int capacity)
        {
            this.capacity = capacity;
        }

        public string Name { get; set; }

        /// <summary>Adds items.</summary>
        public int Add(string sku, int quantity = 1)
        {
            return quantity;
        }

        private class Slot
        {
            internal void Clear() { }
        }
    }

    public interface IAuditor
    {
        void Audit();
    }

    public enum Level { Low, High }
}
`

func newParser(testingHandle *testing.T) *parser.CSharpParser {
	testingHandle.Helper()
	csharpParser, creationError := parser.NewCSharpParser()
	if creationError != nil {
		testingHandle.Fatalf("NewCSharpParser failed: %v", creationError)
	}
	return csharpParser
}

// TestParseCollectsDeclarationsInSourceOrder verifies nested types and declaration kinds.
func TestParseCollectsDeclarationsInSourceOrder(testingHandle *testing.T) {
	parsed, parseError := newParser(testingHandle).Parse("Inventory.cs", []byte(inventorySource))
	if parseError != nil {
		testingHandle.Fatalf("Parse failed: %v", parseError)
	}
	if parsed.RelativePath != "Inventory.cs" {
		testingHandle.Fatalf("unexpected path %q", parsed.RelativePath)
	}
	var summaries []string
	for _, declaration := range parsed.Declarations {
		summaries = append(summaries, declaration.Kind+" "+declaration.Name)
	}
	expected := []string{"class Inventory", "class Slot", "interface IAuditor", "enum Level"}
	if !reflect.DeepEqual(summaries, expected) {
		testingHandle.Fatalf("unexpected declarations: got %v want %v", summaries, expected)
	}
	inventory := parsed.Declarations[0]
	if !reflect.DeepEqual(inventory.Modifiers, []string{"public", "sealed"}) {
		testingHandle.Fatalf("unexpected modifiers: %v", inventory.Modifiers)
	}
	if !strings.Contains(inventory.Documentation, "Tracks stock levels.") {
		testingHandle.Fatalf("documentation not captured: %q", inventory.Documentation)
	}
}

// TestParseCollectsMembers verifies member kinds, signatures and documentation.
func TestParseCollectsMembers(testingHandle *testing.T) {
	parsed, parseError := newParser(testingHandle).Parse("Inventory.cs", []byte(inventorySource))
	if parseError != nil {
		testingHandle.Fatalf("Parse failed: %v", parseError)
	}
	members := parsed.Declarations[0].Members
	if len(members) != 4 {
		testingHandle.Fatalf("expected 4 members, got %d: %+v", len(members), members)
	}

	field := members[0]
	if field.Kind != types.MemberKindField || field.Type != "int" || !reflect.DeepEqual(field.Names, []string{"capacity", "reserved"}) {
		testingHandle.Fatalf("unexpected field: %+v", field)
	}
	if !reflect.DeepEqual(field.Modifiers, []string{"private", "readonly"}) {
		testingHandle.Fatalf("unexpected field modifiers: %v", field.Modifiers)
	}

	constructor := members[1]
	if constructor.Kind != types.MemberKindConstructor || constructor.Name != "Inventory" {
		testingHandle.Fatalf("unexpected constructor: %+v", constructor)
	}
	if !reflect.DeepEqual(constructor.Parameters, []string{"int capacity"}) {
		testingHandle.Fatalf("unexpected constructor parameters: %v", constructor.Parameters)
	}
	if !strings.Contains(constructor.Documentation, "Creates an inventory.") {
		testingHandle.Fatalf("constructor documentation not captured: %q", constructor.Documentation)
	}

	property := members[2]
	if property.Kind != types.MemberKindProperty || property.Type != "string" || property.Name != "Name" {
		testingHandle.Fatalf("unexpected property: %+v", property)
	}
	if property.Documentation != "" {
		testingHandle.Fatalf("property must not inherit documentation: %q", property.Documentation)
	}

	method := members[3]
	if method.Kind != types.MemberKindMethod || method.Name != "Add" || method.ReturnType != "int" {
		testingHandle.Fatalf("unexpected method: %+v", method)
	}
	if !reflect.DeepEqual(method.Parameters, []string{"string sku", "int quantity = 1"}) {
		testingHandle.Fatalf("unexpected method parameters: %v", method.Parameters)
	}
}

// TestParseToleratesBrokenSource verifies that syntax errors do not fail the parse.
func TestParseToleratesBrokenSource(testingHandle *testing.T) {
	parsed, parseError := newParser(testingHandle).Parse("Broken.cs", []byte("public class Broken { public void Run( }"))
	if parseError != nil {
		testingHandle.Fatalf("Parse failed: %v", parseError)
	}
	if parsed.RelativePath != "Broken.cs" {
		testingHandle.Fatalf("unexpected path %q", parsed.RelativePath)
	}
}

// TestParseKeepsParameterModifiers verifies params arrays, extension receivers, ref/out and attributes.
func TestParseKeepsParameterModifiers(testingHandle *testing.T) {
	source := "static class C { public static void M(this int b, int a, params string[] tags) {} void N([In] ref int c, out bool done) { done = true; } }"
	parsed, parseError := newParser(testingHandle).Parse("C.cs", []byte(source))
	if parseError != nil {
		testingHandle.Fatalf("Parse failed: %v", parseError)
	}
	if len(parsed.Declarations) != 1 || len(parsed.Declarations[0].Members) != 2 {
		testingHandle.Fatalf("unexpected declarations: %+v", parsed.Declarations)
	}
	members := parsed.Declarations[0].Members
	if expected := []string{"this int b", "int a", "params string[] tags"}; !reflect.DeepEqual(members[0].Parameters, expected) {
		testingHandle.Fatalf("unexpected parameters of M: %q want %q", members[0].Parameters, expected)
	}
	if expected := []string{"[In] ref int c", "out bool done"}; !reflect.DeepEqual(members[1].Parameters, expected) {
		testingHandle.Fatalf("unexpected parameters of N: %q want %q", members[1].Parameters, expected)
	}
}
