package emitter_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/tsjs/internal/emitter"
	"github.com/cwbudde/tsjs/internal/parser"
)

func mustEmit(t *testing.T, source string) string {
	t.Helper()
	program, err := parser.ParseSource(source)
	require.NoError(t, err)
	return emitter.New(emitter.Options{}).Emit(program)
}

func TestEmitSimpleVarDeclaration(t *testing.T) {
	out := mustEmit(t, "let x: number = 42;")
	assert.Equal(t, "let x = 42;\n", out)
}

func TestEmitInterfaceRemovedAndFunctionErased(t *testing.T) {
	out := mustEmit(t, `interface Person { name: string; age: number; }
function createPerson(name: string, age: number): Person { return { name: name, age: age }; }
let alice: Person = createPerson("Alice", 30);`)
	assert.Contains(t, out, "// interface Person removed")
	assert.Contains(t, out, "function createPerson(name, age)")
	assert.Contains(t, out, `let alice = createPerson("Alice", 30);`)
}

func TestEmitRegularEnumLowering(t *testing.T) {
	out := mustEmit(t, "enum Color { Red, Green, Blue }")
	assert.Contains(t, out, "var Color;")
	assert.Contains(t, out, `Color[Color["Red"] = 0] = "Red";`)
	assert.Contains(t, out, `Color[Color["Green"] = 1] = "Green";`)
	assert.Contains(t, out, `Color[Color["Blue"] = 2] = "Blue";`)
}

func TestEmitStringEnumLowering(t *testing.T) {
	out := mustEmit(t, `enum Direction { Up = "UP", Down = "DOWN" }`)
	assert.Contains(t, out, `Direction["Up"] = "UP";`)
	assert.Contains(t, out, `Direction["Down"] = "DOWN";`)
}

func TestEmitConstEnumLowering(t *testing.T) {
	out := mustEmit(t, "const enum Flags { A, B }")
	assert.Equal(t, "// const enum Flags - inlined\n", out)
}

func TestEmitTypeAliasRemoved(t *testing.T) {
	out := mustEmit(t, "type ID = number | string;")
	assert.Equal(t, "// type ID removed\n", out)
}

func TestEmitAbstractMethodComment(t *testing.T) {
	out := mustEmit(t, `abstract class Shape {
	abstract area(): number;
}`)
	assert.Contains(t, out, "// abstract area()")
}

func TestEmitElseIfChainFlattened(t *testing.T) {
	out := mustEmit(t, `if (x === 1) {
	y = 1;
} else if (x === 2) {
	y = 2;
} else {
	y = 3;
}`)
	assert.NotContains(t, out, "else {\n  if")
	assert.Contains(t, out, "} else if (x === 2) {")
}

func TestEmitAsAndNonNullErasedKeepingValue(t *testing.T) {
	out := mustEmit(t, `let x = (y as number) + z!;`)
	assert.Equal(t, "let x = (y) + z;\n", out)
}

func TestEmitClassWithInheritance(t *testing.T) {
	out := mustEmit(t, `class Animal {
	name: string;
	constructor(name: string) {
		this.name = name;
	}
	speak(): string {
		return this.name;
	}
}
class Dog extends Animal {
	bark(): string {
		return this.name;
	}
}`)
	snaps.MatchSnapshot(t, "class_with_inheritance", out)
}

func TestEmitForOfLoop(t *testing.T) {
	out := mustEmit(t, `let items: number[] = [1, 2, 3];
for (const item of items) {
	console.log(item);
}`)
	snaps.MatchSnapshot(t, "for_of_loop", out)
}
