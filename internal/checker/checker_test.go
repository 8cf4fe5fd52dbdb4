package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/tsjs/internal/parser"
)

func mustCheck(t *testing.T, source string) []*Diagnostic {
	t.Helper()
	program, err := parser.ParseSource(source)
	require.NoError(t, err)
	return Check(program)
}

func TestCheckNumberAssignmentSucceeds(t *testing.T) {
	diags := mustCheck(t, `let x: number = 5;`)
	assert.Empty(t, diags)
}

func TestCheckStringToNumberAssignmentFails(t *testing.T) {
	diags := mustCheck(t, `let x: number = "hello";`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "not assignable")
}

func TestCheckInterfaceAndFunctionSucceed(t *testing.T) {
	diags := mustCheck(t, `
interface Point {
	x: number;
	y: number;
}
function distance(p: Point): number {
	return p.x;
}
let origin: Point = { x: 0, y: 0 };
distance(origin);
`)
	assert.Empty(t, diags)
}

func TestCheckInterfaceMissingMemberFails(t *testing.T) {
	diags := mustCheck(t, `
interface Point {
	x: number;
	y: number;
}
let p: Point = { x: 0 };
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "not assignable")
}

func TestCheckEnumSucceeds(t *testing.T) {
	diags := mustCheck(t, `
enum Color { Red, Green, Blue }
let c: Color = Color.Red;
`)
	assert.Empty(t, diags)
}

func TestCheckCallArityTooFewArguments(t *testing.T) {
	diags := mustCheck(t, `
function add(a: number, b: number): number {
	return a + b;
}
add(1);
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Expected at least 2 arguments, but got 1")
}

func TestCheckCallArityTooManyArguments(t *testing.T) {
	diags := mustCheck(t, `
function add(a: number, b: number): number {
	return a + b;
}
add(1, 2, 3);
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Expected at most 2 arguments, but got 3")
}

func TestCheckOptionalParameterAllowsOmission(t *testing.T) {
	diags := mustCheck(t, `
function greet(name: string, suffix?: string): string {
	return name;
}
greet("Ada");
`)
	assert.Empty(t, diags)
}

func TestCheckRedeclarationFails(t *testing.T) {
	diags := mustCheck(t, `
let x: number = 1;
let x: number = 2;
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "already declared")
}

func TestCheckReturnTypeMismatchFails(t *testing.T) {
	diags := mustCheck(t, `
function getName(): string {
	return 42;
}
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "not assignable to return type")
}

func TestCheckClassInheritanceSucceeds(t *testing.T) {
	diags := mustCheck(t, `
class Animal {
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
}
let d: Dog = new Dog("Rex");
d.speak();
d.bark();
`)
	assert.Empty(t, diags)
}

func TestCheckClassInheritanceForwardReferenceSucceeds(t *testing.T) {
	diags := mustCheck(t, `
class Dog extends Animal {
	bark(): string {
		return this.name;
	}
}
class Animal {
	name: string;
	constructor(name: string) {
		this.name = name;
	}
	speak(): string {
		return this.name;
	}
}
let d: Dog = new Dog("Rex");
d.speak();
d.bark();
`)
	assert.Empty(t, diags)
}

func TestCheckInterfaceExtendsForwardReferenceSucceeds(t *testing.T) {
	diags := mustCheck(t, `
interface Dog extends Animal {
	bark(): string;
}
interface Animal {
	name: string;
}
let d: Dog = { name: "Rex", bark: () => "Woof" };
`)
	assert.Empty(t, diags)
}

func TestCheckStaticMemberNotAccessibleOnInstance(t *testing.T) {
	diags := mustCheck(t, `
class Counter {
	static count: number = 0;
	value: number;
	constructor(value: number) {
		this.value = value;
	}
}
let c: Counter = new Counter(1);
let n: number = c.count;
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "does not exist")
}

func TestCheckStaticMemberAccessibleOnClass(t *testing.T) {
	diags := mustCheck(t, `
class Counter {
	static count: number = 0;
}
let n: number = Counter.count;
`)
	assert.Empty(t, diags)
}

func TestCheckInstanceMemberNotAccessibleOnClass(t *testing.T) {
	diags := mustCheck(t, `
class Counter {
	value: number = 0;
}
let n: number = Counter.value;
`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "does not exist")
}

func TestCheckArrowFunctionBodyTypeChecks(t *testing.T) {
	diags := mustCheck(t, `
let double = (x: number): number => x * 2;
let result: number = double(21);
`)
	assert.Empty(t, diags)
}

func TestCheckUndefinedIdentifierFails(t *testing.T) {
	diags := mustCheck(t, `let x: number = y;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Cannot find name")
}

func TestCheckUnionAssignability(t *testing.T) {
	diags := mustCheck(t, `
let value: number | string = 5;
value = "hello";
`)
	assert.Empty(t, diags)
}

func TestCheckForOfLoopBindsElementType(t *testing.T) {
	diags := mustCheck(t, `
let items: number[] = [1, 2, 3];
for (const item of items) {
	let doubled: number = item * 2;
}
`)
	assert.Empty(t, diags)
}
